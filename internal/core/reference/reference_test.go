package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReference_HasPrefix(t *testing.T) {
	three := Reference{Grammar: "main", Tokens: []string{"3"}}
	threeOne := Reference{Grammar: "main", Tokens: []string{"3", "1"}}
	thirty := Reference{Grammar: "main", Tokens: []string{"30"}}
	annexThree := Reference{Grammar: "annex", Tokens: []string{"3"}}

	assert.True(t, threeOne.HasPrefix(three))
	assert.True(t, three.HasPrefix(three))
	assert.False(t, thirty.HasPrefix(three))
	assert.False(t, three.HasPrefix(threeOne))
	assert.False(t, annexThree.HasPrefix(three))
	assert.True(t, three.HasPrefix(Reference{Grammar: "main"}))
}

func TestReference_Equal(t *testing.T) {
	a := Reference{Grammar: "main", Tokens: []string{"II", "A"}}

	assert.True(t, a.Equal(Reference{Grammar: "main", Tokens: []string{"II", "A"}}))
	assert.False(t, a.Equal(Reference{Grammar: "main", Tokens: []string{"II"}}))
	assert.False(t, a.Equal(Reference{Grammar: "annex", Tokens: []string{"II", "A"}}))
}

func TestReference_Prefix(t *testing.T) {
	r := Reference{Grammar: "main", Tokens: []string{"II", "A", "4"}}

	p := r.Prefix(2)
	assert.Equal(t, []string{"II", "A"}, p.Tokens)
	assert.Equal(t, 2, p.Depth())

	// The prefix does not alias the original tokens.
	p.Tokens[0] = "X"
	assert.Equal(t, "II", r.Tokens[0])

	assert.Equal(t, 3, r.Prefix(9).Depth())
}

func TestReference_Key(t *testing.T) {
	mainTwo := Reference{Grammar: "main", Tokens: []string{"2"}}
	annexTwo := Reference{Grammar: "annex", Tokens: []string{"2"}}
	split := Reference{Grammar: "main", Tokens: []string{"1", "2"}}
	joined := Reference{Grammar: "main", Tokens: []string{"12"}}

	assert.NotEqual(t, mainTwo.Key(), annexTwo.Key())
	assert.NotEqual(t, split.Key(), joined.Key())
	assert.Equal(t, mainTwo.Key(), Reference{Grammar: "main", Tokens: []string{"2"}}.Key())
}
