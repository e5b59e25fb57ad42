package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/regdoc/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/regdoc/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/regdoc/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/regdoc/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/regdoc/internal/adapters/driving/tui/views/section"
	"github.com/custodia-labs/regdoc/internal/adapters/driving/tui/views/toc"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	// tocView lists the combined table of contents.
	tocView *toc.View

	// sectionView shows the text of the selected entry.
	sectionView *section.View

	statusBar *status.Bar

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		tocView:     toc.NewView(s, ports.Toc),
		sectionView: section.NewView(s, ports.Toc),
		statusBar:   status.NewBar(s, km),
		currentView: messages.ViewToc,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.tocView.WithContext(ctx)
	a.sectionView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("regdoc - Table of Contents"),
		a.tocView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.TocLoaded:
		a.tocView, cmd = a.tocView.Update(msg)
		if msg.Err != nil {
			a.err = msg.Err
			a.statusBar.SetState(status.StateError)
			a.statusBar.SetMessage(msg.Err.Error())
		} else {
			a.statusBar.SetState(status.StateReady)
			a.statusBar.SetPosition(a.tocView.Cursor(), len(msg.Items))
		}
		return a, cmd

	case messages.ItemSelected:
		a.currentView = messages.ViewSection
		a.statusBar.SetState(status.StateReading)
		a.statusBar.SetMessage(msg.Item.Title())
		return a, a.sectionView.SetItem(msg.Item)

	case messages.SectionLoaded:
		a.sectionView, cmd = a.sectionView.Update(msg)
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewToc {
			a.statusBar.SetState(status.StateReady)
			a.statusBar.SetPosition(a.tocView.Cursor(), len(a.tocView.Items()))
		}
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.statusBar.SetState(status.StateError)
		a.statusBar.SetMessage(msg.Err.Error())
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	return a, nil
}

func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	k := msg.String()

	// Global quit with ctrl+c
	if k == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.currentView {
	case messages.ViewToc:
		switch {
		case keymap.Matches(k, a.keymap.Quit):
			return a, tea.Quit
		case keymap.Matches(k, a.keymap.Help):
			a.currentView = messages.ViewHelp
			return a, nil
		}
		a.tocView, cmd = a.tocView.Update(msg)
		a.statusBar.SetPosition(a.tocView.Cursor(), len(a.tocView.Items()))
		return a, cmd

	case messages.ViewSection:
		if keymap.Matches(k, a.keymap.Quit) {
			return a, tea.Quit
		}
		a.sectionView, cmd = a.sectionView.Update(msg)
		return a, cmd

	case messages.ViewHelp:
		if keymap.Matches(k, a.keymap.Back) || keymap.Matches(k, a.keymap.Help) {
			a.currentView = messages.ViewToc
		}
		return a, nil
	}
	return a, nil
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewSection:
		body = a.sectionView.View()
	case messages.ViewHelp:
		body = a.viewHelp()
	default:
		body = a.tocView.View()
	}
	return body + "\n" + a.statusBar.View()
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Table of contents:
  j/k, ↑/↓    Move
  pgup/pgdn   Move one screen
  g/G         First/last entry
  enter       Read the entry and everything under it
  q           Quit

Section:
  j/k, ↑/↓    Scroll
  esc         Back to the table of contents

[esc] back`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	// One line for the status bar.
	a.tocView.SetDimensions(width, height-1)
	a.sectionView.SetDimensions(width, height-1)
	a.statusBar.SetWidth(width)
}
