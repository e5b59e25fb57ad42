package mcp

import (
	"github.com/custodia-labs/regdoc/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Corpus answers reference queries.
	Corpus driving.CorpusService

	// Toc exposes the combined table of contents. Optional; the toc tools
	// and resources are only registered when it is set.
	Toc driving.TocService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Corpus == nil {
		return ErrMissingCorpusService
	}
	return nil
}
