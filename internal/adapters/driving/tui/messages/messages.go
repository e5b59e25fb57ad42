// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/regdoc/internal/core/domain"
)

// TocLoaded carries the flattened table of contents back to the model.
type TocLoaded struct {
	Items []domain.TocItem
	Err   error
}

// ItemSelected is sent when a table of contents entry is opened.
type ItemSelected struct {
	Item domain.TocItem
}

// SectionLoaded carries the text of an entry back to the model.
type SectionLoaded struct {
	Index int
	Text  domain.SectionText
	Err   error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewToc is the table of contents.
	ViewToc ViewType = iota
	// ViewSection shows the text of the selected entry.
	ViewSection
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewToc:
		return "toc"
	case ViewSection:
		return "section"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred is sent when an error needs to be displayed.
type ErrorOccurred struct {
	Err error
}

// Quit is sent to exit the application.
type Quit struct{}
