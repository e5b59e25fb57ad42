package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/custodia-labs/regdoc/internal/core/domain"
	"github.com/custodia-labs/regdoc/internal/core/ports/driven"
)

// Ensure CorpusStore implements the interfaces.
var (
	_ driven.CorpusStore = (*CorpusStore)(nil)
	_ driven.TableSource = (*CorpusStore)(nil)
)

// CorpusStore is an in-memory implementation of driven.CorpusStore.
// It doubles as a TableSource for tests that build corpora in code.
type CorpusStore struct {
	mu      sync.RWMutex
	tables  map[string]*domain.Table
	imports map[string]domain.ImportRecord
}

// NewCorpusStore creates a new in-memory corpus store.
func NewCorpusStore() *CorpusStore {
	return &CorpusStore{
		tables:  make(map[string]*domain.Table),
		imports: make(map[string]domain.ImportRecord),
	}
}

// Put stores a table without recording an import.
func (s *CorpusStore) Put(documentID string, table *domain.Table) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[documentID] = cloneTable(table)
}

// Load returns a copy of the stored table.
func (s *CorpusStore) Load(_ context.Context, documentID string) (*domain.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	table, ok := s.tables[documentID]
	if !ok {
		return nil, fmt.Errorf("corpus %s: %w", documentID, domain.ErrNotFound)
	}
	return cloneTable(table), nil
}

// SaveTable replaces the table of a document and records the import.
func (s *CorpusStore) SaveTable(_ context.Context, record domain.ImportRecord, table *domain.Table) error {
	if record.DocumentID == "" || table == nil {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[record.DocumentID] = cloneTable(table)
	s.imports[record.DocumentID] = record
	return nil
}

// ListImports returns the latest import per document, ordered by document id.
func (s *CorpusStore) ListImports(_ context.Context) ([]domain.ImportRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]domain.ImportRecord, 0, len(s.imports))
	for _, r := range s.imports {
		records = append(records, r)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].DocumentID < records[j].DocumentID
	})
	return records, nil
}

func cloneTable(t *domain.Table) *domain.Table {
	if t == nil {
		return nil
	}
	rows := make([]domain.Row, len(t.Rows))
	copy(rows, t.Rows)
	return &domain.Table{
		Columns: append([]string(nil), t.Columns...),
		Rows:    rows,
	}
}
