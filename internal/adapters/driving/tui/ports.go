// Package tui provides an interactive terminal user interface for regdoc.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/regdoc/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Toc exposes the combined table of contents and its text.
	Toc driving.TocService
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Toc == nil {
		return ErrMissingTocService
	}
	return nil
}
