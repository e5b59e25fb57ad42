package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/regdoc/internal/core/domain"
	"github.com/custodia-labs/regdoc/internal/core/ports/driving"
	"github.com/custodia-labs/regdoc/internal/core/toc"
)

// Ensure TocService implements the interface.
var _ driving.TocService = (*TocService)(nil)

// TocService exposes the combined table of contents by position.
type TocService struct {
	library *LibraryLoader
}

// NewTocService creates a new table of contents service.
func NewTocService(library *LibraryLoader) *TocService {
	return &TocService{library: library}
}

// Items returns every entry in pre-order, the corpus root first.
func (s *TocService) Items(ctx context.Context) ([]domain.TocItem, error) {
	lib, err := s.library.Get(ctx)
	if err != nil {
		return nil, err
	}
	return lib.Forest().Items(), nil
}

// Item returns the entry at position n.
func (s *TocService) Item(ctx context.Context, n int) (domain.TocItem, error) {
	it, err := s.nth(ctx, n)
	if err != nil {
		return domain.TocItem{}, err
	}
	return it.TocItem(), nil
}

// ItemText returns the text of the entry at position n with everything
// nested under it, with headings and markdown decorators.
func (s *TocService) ItemText(ctx context.Context, n int) (domain.SectionText, error) {
	it, err := s.nth(ctx, n)
	if err != nil {
		return domain.SectionText{}, err
	}

	node := it.Node
	if node.FullReference == "" || node.Document == nil {
		return domain.SectionText{}, fmt.Errorf("item %d %q: %w", n, node.Title(), domain.ErrNoSelection)
	}

	return node.Document.SectionText(node.FullReference, domain.TextOptions{
		IncludeHeadings: true,
		Decorated:       true,
		Scope:           domain.ScopeDescendants,
	})
}

// DocumentTree returns the table of contents of one document, indexed from
// the document root.
func (s *TocService) DocumentTree(ctx context.Context, documentID string) ([]domain.TocItem, error) {
	lib, err := s.library.Get(ctx)
	if err != nil {
		return nil, err
	}
	tree, err := lib.Tree(documentID)
	if err != nil {
		return nil, err
	}
	return toc.NewTree(tree).Items(), nil
}

func (s *TocService) nth(ctx context.Context, n int) (toc.Item, error) {
	lib, err := s.library.Get(ctx)
	if err != nil {
		return toc.Item{}, err
	}
	return lib.Forest().NthItem(n)
}
