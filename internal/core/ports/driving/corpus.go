package driving

import (
	"context"

	"github.com/custodia-labs/regdoc/internal/core/domain"
)

// CorpusService answers reference queries against the loaded documents.
// This is the whole surface a retrieval engine needs.
type CorpusService interface {
	// Documents lists the loaded documents in catalogue order.
	Documents(ctx context.Context) ([]domain.DocumentInfo, error)

	// CheckReference reports how a reference parses under a document's grammars.
	// An unparseable reference is not an error; the result has Valid false.
	CheckReference(ctx context.Context, documentID, ref string) (domain.ReferenceInfo, error)

	// Resolve returns the rows a reference addresses, in corpus order.
	// A well-formed reference that addresses nothing yields an empty slice.
	Resolve(ctx context.Context, documentID, ref string, scope domain.Scope) ([]domain.Row, error)

	// GetText returns the text and footnotes of a reference.
	// Returns domain.ErrReferenceNotFound if nothing resolves.
	GetText(ctx context.Context, documentID, ref string, opts domain.TextOptions) (domain.SectionText, error)

	// GetHeading returns the heading of the row addressed exactly by ref.
	GetHeading(ctx context.Context, documentID, ref string) (string, error)
}

// TocService exposes the combined table of contents by position.
type TocService interface {
	// Items returns every entry of the combined table of contents in pre-order.
	// Item 0 is the synthetic corpus root.
	Items(ctx context.Context) ([]domain.TocItem, error)

	// Item returns the entry at position n.
	// Returns domain.ErrIndexOutOfRange when n is outside the table.
	Item(ctx context.Context, n int) (domain.TocItem, error)

	// ItemText returns the decorated text of the entry at position n and
	// everything nested under it.
	// Returns domain.ErrNoSelection when the entry has no text of its own.
	ItemText(ctx context.Context, n int) (domain.SectionText, error)

	// DocumentTree returns the table of contents of one document.
	// Indexes are relative to the document root.
	DocumentTree(ctx context.Context, documentID string) ([]domain.TocItem, error)
}

// ImportService copies corpus files into the local database.
type ImportService interface {
	// Import validates the CSV file at path against the document's grammars
	// and stores it.
	Import(ctx context.Context, documentID, path string) (domain.ImportRecord, error)

	// List returns the latest import of every stored document.
	List(ctx context.Context) ([]domain.ImportRecord, error)
}
