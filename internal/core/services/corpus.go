package services

import (
	"context"

	"github.com/custodia-labs/regdoc/internal/core/domain"
	"github.com/custodia-labs/regdoc/internal/core/ports/driving"
	"github.com/custodia-labs/regdoc/internal/logger"
)

// Ensure CorpusService implements the interface.
var _ driving.CorpusService = (*CorpusService)(nil)

// CorpusService answers reference queries against the Library.
type CorpusService struct {
	library *LibraryLoader
}

// NewCorpusService creates a new corpus service.
func NewCorpusService(library *LibraryLoader) *CorpusService {
	return &CorpusService{library: library}
}

// Documents lists the loaded documents in catalogue order.
func (s *CorpusService) Documents(ctx context.Context) ([]domain.DocumentInfo, error) {
	lib, err := s.library.Get(ctx)
	if err != nil {
		return nil, err
	}

	infos := make([]domain.DocumentInfo, 0, len(lib.Documents()))
	for _, doc := range lib.Documents() {
		infos = append(infos, doc.Info())
	}
	return infos, nil
}

// CheckReference reports how a reference parses under a document's grammars.
func (s *CorpusService) CheckReference(ctx context.Context, documentID, ref string) (domain.ReferenceInfo, error) {
	lib, err := s.library.Get(ctx)
	if err != nil {
		return domain.ReferenceInfo{}, err
	}
	doc, err := lib.Document(documentID)
	if err != nil {
		return domain.ReferenceInfo{}, err
	}
	return doc.Check(ref), nil
}

// Resolve returns the rows a reference addresses.
func (s *CorpusService) Resolve(ctx context.Context, documentID, ref string, scope domain.Scope) ([]domain.Row, error) {
	lib, err := s.library.Get(ctx)
	if err != nil {
		return nil, err
	}
	doc, err := lib.Document(documentID)
	if err != nil {
		return nil, err
	}

	entries, err := doc.Resolve(ref, scope)
	if err != nil {
		return nil, err
	}
	rows := make([]domain.Row, len(entries))
	for i, e := range entries {
		rows[i] = e.Row
	}
	logger.Debug("resolve %s %q (%s): %d rows", documentID, ref, scope, len(rows))
	return rows, nil
}

// GetText returns the text and footnotes of a reference.
func (s *CorpusService) GetText(
	ctx context.Context,
	documentID, ref string,
	opts domain.TextOptions,
) (domain.SectionText, error) {
	lib, err := s.library.Get(ctx)
	if err != nil {
		return domain.SectionText{}, err
	}
	doc, err := lib.Document(documentID)
	if err != nil {
		return domain.SectionText{}, err
	}
	return doc.SectionText(ref, opts)
}

// GetHeading returns the heading of the row addressed exactly by ref.
func (s *CorpusService) GetHeading(ctx context.Context, documentID, ref string) (string, error) {
	lib, err := s.library.Get(ctx)
	if err != nil {
		return "", err
	}
	doc, err := lib.Document(documentID)
	if err != nil {
		return "", err
	}
	return doc.GetHeading(ref)
}
