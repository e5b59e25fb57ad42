// Package section provides the section text view for the TUI.
package section

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/regdoc/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/regdoc/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/regdoc/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/regdoc/internal/core/domain"
	"github.com/custodia-labs/regdoc/internal/core/ports/driving"
)

// View shows the text of one table of contents entry and everything nested
// under it.
type View struct {
	ctx        context.Context
	styles     *styles.Styles
	keymap     *keymap.KeyMap
	tocService driving.TocService

	item          *domain.TocItem
	text          domain.SectionText
	lines         []string
	footnoteStart int
	scrollOffset  int
	width         int
	height        int
	ready         bool
	err           error
	loading       bool
	noSelection   bool
}

// NewView creates a new section view.
func NewView(s *styles.Styles, tocService driving.TocService) *View {
	return &View{
		ctx:        context.Background(),
		styles:     s,
		keymap:     keymap.DefaultKeyMap(),
		tocService: tocService,
	}
}

// WithContext sets the context used to fetch text.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// SetItem selects the entry and loads its text.
func (v *View) SetItem(item domain.TocItem) tea.Cmd {
	v.item = &item
	v.text = domain.SectionText{}
	v.lines = nil
	v.scrollOffset = 0
	v.err = nil
	v.noSelection = false
	v.loading = true
	return v.loadText(item.Index)
}

// loadText returns a command that fetches the text of entry n.
func (v *View) loadText(n int) tea.Cmd {
	ctx := v.ctx
	service := v.tocService
	return func() tea.Msg {
		if service == nil {
			return messages.SectionLoaded{Index: n, Err: errors.New("table of contents service not available")}
		}
		text, err := service.ItemText(ctx, n)
		return messages.SectionLoaded{Index: n, Text: text, Err: err}
	}
}

// Update handles messages for the section view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SectionLoaded:
		if v.item == nil || msg.Index != v.item.Index {
			return v, nil
		}
		v.loading = false
		switch {
		case errors.Is(msg.Err, domain.ErrNoSelection):
			v.noSelection = true
		case msg.Err != nil:
			v.err = msg.Err
		default:
			v.text = msg.Text
			v.wrapContent()
		}
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	k := msg.String()
	switch {
	case keymap.Matches(k, v.keymap.Up):
		if v.scrollOffset > 0 {
			v.scrollOffset--
		}
	case keymap.Matches(k, v.keymap.Down):
		if v.scrollOffset < v.maxScrollOffset() {
			v.scrollOffset++
		}
	case keymap.Matches(k, v.keymap.PageUp):
		v.scrollOffset = max(v.scrollOffset-v.visibleLines(), 0)
	case keymap.Matches(k, v.keymap.PageDown):
		v.scrollOffset = min(v.scrollOffset+v.visibleLines(), v.maxScrollOffset())
	case keymap.Matches(k, v.keymap.Top):
		v.scrollOffset = 0
	case keymap.Matches(k, v.keymap.Bottom):
		v.scrollOffset = v.maxScrollOffset()
	case keymap.Matches(k, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewToc}
		}
	}

	return v, nil
}

// wrapContent splits the text and footnotes into lines that fit the width.
func (v *View) wrapContent() {
	v.lines = nil
	v.footnoteStart = -1
	if v.text.Text == "" {
		return
	}

	width := max(v.width-4, 20)
	for _, line := range strings.Split(v.text.Text, "\n") {
		v.lines = append(v.lines, wrap(line, width)...)
	}
	if len(v.text.Footnotes) > 0 {
		v.lines = append(v.lines, "")
		v.footnoteStart = len(v.lines)
		for _, note := range v.text.Footnotes {
			v.lines = append(v.lines, wrap(note, width-2)...)
		}
	}
	v.scrollOffset = min(v.scrollOffset, v.maxScrollOffset())
}

// wrap breaks a line into chunks of at most width runes.
func wrap(line string, width int) []string {
	runes := []rune(line)
	if len(runes) <= width {
		return []string{line}
	}

	var out []string
	for len(runes) > width {
		out = append(out, string(runes[:width]))
		runes = runes[width:]
	}
	if len(runes) > 0 {
		out = append(out, string(runes))
	}
	return out
}

// visibleLines returns the number of lines that can be displayed.
func (v *View) visibleLines() int {
	// Title, separator, scroll indicator and help.
	const reserved = 7
	return max(v.height-reserved, 1)
}

func (v *View) maxScrollOffset() int {
	return max(len(v.lines)-v.visibleLines(), 0)
}

// View renders the section view.
func (v *View) View() string {
	var b strings.Builder

	title := "Section"
	if v.item != nil {
		title = v.item.Title()
	}
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n")
	if v.item != nil && v.item.Reference != "" {
		b.WriteString(v.styles.Subtitle.Render(v.item.DocumentID + " " + v.item.Reference))
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat("─", min(max(v.width-4, 0), 60)))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading text..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
	case v.noSelection:
		b.WriteString(v.styles.Muted.Render("No selection to display."))
	case len(v.lines) == 0:
		b.WriteString(v.styles.Muted.Render("(No text)"))
	default:
		v.renderLines(&b)
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[↑/↓/PgUp/PgDn] scroll  [g/G] top/bottom  [esc] back"))
	return b.String()
}

func (v *View) renderLines(b *strings.Builder) {
	visible := v.visibleLines()
	end := min(v.scrollOffset+visible, len(v.lines))
	for i := v.scrollOffset; i < end; i++ {
		if v.footnoteStart >= 0 && i >= v.footnoteStart {
			b.WriteString(v.styles.Footnote.Render(v.lines[i]))
		} else {
			b.WriteString(v.styles.Normal.Render(v.lines[i]))
		}
		b.WriteString("\n")
	}

	if len(v.lines) > visible {
		percentage := 0
		if v.maxScrollOffset() > 0 {
			percentage = v.scrollOffset * 100 / v.maxScrollOffset()
		}
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [%d%%] Line %d-%d of %d",
			percentage, v.scrollOffset+1, end, len(v.lines))))
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.wrapContent()
}

// Item returns the selected entry.
func (v *View) Item() *domain.TocItem {
	return v.item
}

// Text returns the loaded section text.
func (v *View) Text() domain.SectionText {
	return v.text
}

// Lines returns the wrapped lines.
func (v *View) Lines() []string {
	return v.lines
}

// ScrollOffset returns the first visible line.
func (v *View) ScrollOffset() int {
	return v.scrollOffset
}

// NoSelection reports whether the entry has no text of its own.
func (v *View) NoSelection() bool {
	return v.noSelection
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
