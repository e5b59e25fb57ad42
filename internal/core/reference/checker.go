package reference

import (
	"fmt"

	"github.com/custodia-labs/regdoc/internal/core/domain"
)

// Checker validates and parses references for one document.
// Implementations must be safe for concurrent use.
type Checker interface {
	// IsValid reports whether the text is a well-formed reference.
	IsValid(text string) bool

	// Parse splits the text into level tokens.
	// Returns an error wrapping domain.ErrInvalidReference when the text is not valid.
	Parse(text string) (Reference, error)

	// Canonical renders the canonical form of a parsed reference.
	Canonical(ref Reference) (string, error)

	// Grammars returns the grammar names in priority order.
	Grammars() []string
}

// Ensure both checkers implement the interface.
var (
	_ Checker = (*ReferenceChecker)(nil)
	_ Checker = (*CompositeReferenceChecker)(nil)
)

// ReferenceChecker validates references against a single grammar.
type ReferenceChecker struct {
	g *compiled
}

// NewReferenceChecker compiles the grammar into a checker.
func NewReferenceChecker(g Grammar) (*ReferenceChecker, error) {
	c, err := compile(g)
	if err != nil {
		return nil, err
	}
	return &ReferenceChecker{g: c}, nil
}

// MustReferenceChecker is like NewReferenceChecker but panics on a bad grammar.
// Intended for grammars declared as package-level tables.
func MustReferenceChecker(g Grammar) *ReferenceChecker {
	c, err := NewReferenceChecker(g)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the grammar name.
func (c *ReferenceChecker) Name() string {
	return c.g.Name
}

// Grammar returns the grammar the checker was built from.
func (c *ReferenceChecker) Grammar() Grammar {
	return c.g.Grammar
}

// Grammars returns the single grammar name.
func (c *ReferenceChecker) Grammars() []string {
	return []string{c.g.Name}
}

// IsValid applies the full pattern, checks that the first level matches once
// any leading excluded literal is removed, and that the level patterns
// consume the whole reference.
func (c *ReferenceChecker) IsValid(text string) bool {
	s := Normalize(text)
	if s == "" || !c.g.full.MatchString(s) {
		return false
	}
	rest := c.g.stripExclusion(s)
	if rest == "" || !c.g.levels[0].MatchString(rest) {
		return false
	}
	_, rest = c.walk(rest)
	return rest == ""
}

// Tokens consumes the reference level by level. A shorter token list than
// the grammar depth is a partial reference and is valid; unconsumed input is not.
func (c *ReferenceChecker) Tokens(text string) ([]string, error) {
	s := Normalize(text)
	if s == "" || !c.g.full.MatchString(s) {
		return nil, domain.NewInvalidReference("", text)
	}

	tokens, rest := c.walk(c.g.stripExclusion(s))
	if len(tokens) == 0 {
		return nil, domain.NewInvalidReference("", text)
	}
	if rest != "" {
		return nil, fmt.Errorf("%w: unparsed remainder %q", domain.NewInvalidReference("", text), rest)
	}
	return tokens, nil
}

// walk matches the level patterns in order against the remainder and
// returns the tokens read and whatever is left.
func (c *ReferenceChecker) walk(rest string) ([]string, string) {
	tokens := make([]string, 0, len(c.g.levels))
	for _, re := range c.g.levels {
		if rest == "" {
			break
		}
		loc := re.FindStringSubmatchIndex(rest)
		if loc == nil || loc[1] == 0 {
			break
		}
		token := rest[loc[0]:loc[1]]
		if len(loc) >= 4 && loc[2] >= 0 {
			token = rest[loc[2]:loc[3]]
		}
		tokens = append(tokens, token)
		rest = rest[loc[1]:]
	}
	return tokens, rest
}

// CanonicalForm joins tokens with the separators of the grammar.
func (c *ReferenceChecker) CanonicalForm(tokens []string) string {
	return c.g.render(tokens)
}

// Parse returns the tokens tagged with the grammar name.
func (c *ReferenceChecker) Parse(text string) (Reference, error) {
	tokens, err := c.Tokens(text)
	if err != nil {
		return Reference{}, err
	}
	return Reference{Grammar: c.g.Name, Tokens: tokens}, nil
}

// Canonical renders a reference produced by this checker.
func (c *ReferenceChecker) Canonical(ref Reference) (string, error) {
	if ref.Grammar != c.g.Name {
		return "", fmt.Errorf("reference from grammar %q rendered with %q: %w",
			ref.Grammar, c.g.Name, domain.ErrInvalidInput)
	}
	if len(ref.Tokens) > len(c.g.levels) {
		return "", fmt.Errorf("reference depth %d exceeds grammar %q depth %d: %w",
			len(ref.Tokens), c.g.Name, len(c.g.levels), domain.ErrInvalidInput)
	}
	return c.g.render(ref.Tokens), nil
}
