// Package toc provides the table of contents view for the TUI.
//
// Entries are addressed by their position in the flattened table of
// contents, the same positions "regdoc toc" prints.
package toc

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/regdoc/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/regdoc/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/regdoc/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/regdoc/internal/core/domain"
	"github.com/custodia-labs/regdoc/internal/core/ports/driving"
)

// View lists the combined table of contents.
type View struct {
	ctx        context.Context
	styles     *styles.Styles
	keymap     *keymap.KeyMap
	tocService driving.TocService

	items        []domain.TocItem
	cursor       int
	scrollOffset int
	width        int
	height       int
	loading      bool
	err          error
}

// NewView creates a new table of contents view.
func NewView(s *styles.Styles, tocService driving.TocService) *View {
	return &View{
		ctx:        context.Background(),
		styles:     s,
		keymap:     keymap.DefaultKeyMap(),
		tocService: tocService,
	}
}

// WithContext sets the context used to load the table of contents.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the table of contents.
func (v *View) Init() tea.Cmd {
	v.loading = true
	ctx := v.ctx
	service := v.tocService
	return func() tea.Msg {
		items, err := service.Items(ctx)
		return messages.TocLoaded{Items: items, Err: err}
	}
}

// Update handles messages for the table of contents view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.TocLoaded:
		v.loading = false
		v.err = msg.Err
		v.items = msg.Items
		v.cursor = 0
		v.scrollOffset = 0
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if len(v.items) == 0 {
		return v, nil
	}

	k := msg.String()
	switch {
	case keymap.Matches(k, v.keymap.Up):
		v.moveTo(v.cursor - 1)
	case keymap.Matches(k, v.keymap.Down):
		v.moveTo(v.cursor + 1)
	case keymap.Matches(k, v.keymap.PageUp):
		v.moveTo(v.cursor - v.visibleLines())
	case keymap.Matches(k, v.keymap.PageDown):
		v.moveTo(v.cursor + v.visibleLines())
	case keymap.Matches(k, v.keymap.Top):
		v.moveTo(0)
	case keymap.Matches(k, v.keymap.Bottom):
		v.moveTo(len(v.items) - 1)
	case keymap.Matches(k, v.keymap.Select):
		item := v.items[v.cursor]
		return v, func() tea.Msg {
			return messages.ItemSelected{Item: item}
		}
	}
	return v, nil
}

// moveTo places the cursor at n, clamped to the list, and scrolls it into view.
func (v *View) moveTo(n int) {
	v.cursor = min(max(n, 0), len(v.items)-1)

	visible := v.visibleLines()
	if v.cursor < v.scrollOffset {
		v.scrollOffset = v.cursor
	}
	if v.cursor >= v.scrollOffset+visible {
		v.scrollOffset = v.cursor - visible + 1
	}
}

func (v *View) visibleLines() int {
	// Title, separator and status bar.
	const reserved = 5
	return max(v.height-reserved, 1)
}

// View renders the table of contents.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Table of Contents"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", min(max(v.width-4, 0), 60)))
	b.WriteString("\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading corpus..."))
		return b.String()
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		return b.String()
	case len(v.items) == 0:
		b.WriteString(v.styles.Muted.Render("(Empty corpus)"))
		return b.String()
	}

	end := min(v.scrollOffset+v.visibleLines(), len(v.items))
	for i := v.scrollOffset; i < end; i++ {
		b.WriteString(v.renderItem(v.items[i], i == v.cursor))
		b.WriteString("\n")
	}
	return b.String()
}

func (v *View) renderItem(item domain.TocItem, selected bool) string {
	line := fmt.Sprintf("%4d  %s%s", item.Index, strings.Repeat("  ", item.Depth), item.Title())
	switch {
	case selected:
		return v.styles.Selected.Render(line)
	case !item.Selectable():
		return v.styles.Grouping.Render(line)
	default:
		return v.styles.Normal.Render(line)
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	if len(v.items) > 0 {
		v.moveTo(v.cursor)
	}
}

// Items returns the loaded entries.
func (v *View) Items() []domain.TocItem {
	return v.items
}

// Cursor returns the position under the cursor.
func (v *View) Cursor() int {
	return v.cursor
}

// Err returns the load error, if any.
func (v *View) Err() error {
	return v.err
}
