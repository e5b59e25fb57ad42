package driven

import (
	"context"

	"github.com/custodia-labs/regdoc/internal/core/domain"
)

// TableSource loads the tabular corpus of a document.
// Implementations read CSV files, the local SQLite database, or memory.
type TableSource interface {
	// Load returns the table for a catalogue document id.
	// Returns domain.ErrNotFound if the source has no corpus for the document.
	Load(ctx context.Context, documentID string) (*domain.Table, error)
}

// CorpusStore persists imported corpora and the log of imports.
// Backed by SQLite.
type CorpusStore interface {
	TableSource

	// SaveTable replaces the stored rows of a document and records the import.
	SaveTable(ctx context.Context, record domain.ImportRecord, table *domain.Table) error

	// ListImports returns the most recent import of every stored document,
	// ordered by document id.
	ListImports(ctx context.Context) ([]domain.ImportRecord, error)
}

// TableFileReader reads a corpus table from an arbitrary file.
// Used by corpus import.
type TableFileReader interface {
	ReadFile(ctx context.Context, path string) (*domain.Table, error)
}
