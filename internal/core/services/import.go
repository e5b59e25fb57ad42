package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/regdoc/internal/core/corpus"
	"github.com/custodia-labs/regdoc/internal/core/domain"
	"github.com/custodia-labs/regdoc/internal/core/ports/driven"
	"github.com/custodia-labs/regdoc/internal/core/ports/driving"
	"github.com/custodia-labs/regdoc/internal/documents"
	"github.com/custodia-labs/regdoc/internal/logger"
)

// Ensure ImportService implements the interface.
var _ driving.ImportService = (*ImportService)(nil)

// ImportService copies corpus files into the local database.
type ImportService struct {
	reader driven.TableFileReader
	store  driven.CorpusStore
}

// NewImportService creates a new import service.
func NewImportService(reader driven.TableFileReader, store driven.CorpusStore) *ImportService {
	return &ImportService{reader: reader, store: store}
}

// Import reads the file, validates it as the named document and stores it.
// Nothing is stored when validation fails.
func (s *ImportService) Import(ctx context.Context, documentID, path string) (domain.ImportRecord, error) {
	if s.reader == nil || s.store == nil {
		return domain.ImportRecord{}, domain.ErrNotImplemented
	}

	entry, err := documents.Lookup(documentID)
	if err != nil {
		return domain.ImportRecord{}, err
	}
	checker, err := entry.Checker()
	if err != nil {
		return domain.ImportRecord{}, err
	}

	table, err := s.reader.ReadFile(ctx, path)
	if err != nil {
		return domain.ImportRecord{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	doc, err := corpus.New(entry.ID, entry.Name, table, checker)
	if err != nil {
		return domain.ImportRecord{}, err
	}

	record := domain.ImportRecord{
		ID:         uuid.New().String(),
		DocumentID: entry.ID,
		Source:     path,
		Rows:       doc.Len(),
		ImportedAt: time.Now().UTC(),
	}
	if err := s.store.SaveTable(ctx, record, table); err != nil {
		return domain.ImportRecord{}, fmt.Errorf("failed to store %s: %w", entry.ID, err)
	}

	logger.Info("imported %s from %s: %d rows (import %s)", entry.ID, path, record.Rows, record.ID)
	return record, nil
}

// List returns the latest import of every stored document.
func (s *ImportService) List(ctx context.Context) ([]domain.ImportRecord, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.ListImports(ctx)
}
