package status

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/regdoc/internal/adapters/driving/tui/keymap"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(nil, nil)

	assert.Equal(t, StateLoading, bar.State())
	assert.Contains(t, bar.View(), "Loading corpus...")
}

func TestBar_View(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(*Bar)
		contains []string
	}{
		{
			name: "ready shows position",
			setup: func(b *Bar) {
				b.SetState(StateReady)
				b.SetPosition(4, 13)
			},
			contains: []string{"4 / 12", "enter: read", "q: quit"},
		},
		{
			name: "ready without entries",
			setup: func(b *Bar) {
				b.SetState(StateReady)
			},
			contains: []string{"Ready"},
		},
		{
			name: "reading shows title and scroll keys",
			setup: func(b *Bar) {
				b.SetState(StateReading)
				b.SetMessage("II.A Profiling")
			},
			contains: []string{"II.A Profiling", "esc: back"},
		},
		{
			name: "error shows message",
			setup: func(b *Bar) {
				b.SetState(StateError)
				b.SetMessage("corpus missing")
			},
			contains: []string{"Error: corpus missing"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewBar(nil, nil)
			bar.SetWidth(120)
			tt.setup(bar)

			view := bar.View()
			for _, s := range tt.contains {
				assert.Contains(t, view, s)
			}
		})
	}
}

func TestBar_View_SkipsDisabledBindings(t *testing.T) {
	km := keymap.DefaultKeyMap()
	km.Help.SetEnabled(false)

	bar := NewBar(nil, km)
	bar.SetWidth(120)
	bar.SetState(StateReady)

	view := bar.View()
	assert.Contains(t, view, "enter: read")
	assert.NotContains(t, view, "?: help")
}
