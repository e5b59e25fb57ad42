package services

import (
	"context"
	"sync"

	"github.com/custodia-labs/regdoc/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/regdoc/internal/core/domain"
	"github.com/custodia-labs/regdoc/internal/core/ports/driven"
)

// countingSource wraps a TableSource and counts Load calls.
type countingSource struct {
	mu    sync.Mutex
	inner driven.TableSource
	calls map[string]int
}

func newCountingSource(inner driven.TableSource) *countingSource {
	return &countingSource{inner: inner, calls: make(map[string]int)}
}

func (s *countingSource) Load(ctx context.Context, documentID string) (*domain.Table, error) {
	s.mu.Lock()
	s.calls[documentID]++
	s.mu.Unlock()
	return s.inner.Load(ctx, documentID)
}

func (s *countingSource) count(documentID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[documentID]
}

// mockFileReader implements driven.TableFileReader for testing.
type mockFileReader struct {
	tables map[string]*domain.Table
	err    error
}

func (m *mockFileReader) ReadFile(_ context.Context, path string) (*domain.Table, error) {
	if m.err != nil {
		return nil, m.err
	}
	table, ok := m.tables[path]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return table, nil
}

// Ensure mocks implement interfaces
var (
	_ driven.TableSource     = (*countingSource)(nil)
	_ driven.TableFileReader = (*mockFileReader)(nil)
)

func row(ref, heading, text string) domain.Row {
	return domain.Row{Section: ref, Heading: heading, Text: text, SectionReference: ref}
}

func decisionMakingTable() *domain.Table {
	return &domain.Table{
		Columns: domain.RequiredColumns,
		Rows: []domain.Row{
			row("I", "Introduction", "Profiling is increasingly used."),
			row("II", "Definitions", "The GDPR introduces provisions."),
			row("II.A", "Profiling", "Profiling is composed of three elements.[^4]\n[^4]: Article 4(4)."),
			row("II.A.1", "", "Automated processing."),
			row("Annex 1", "Good practice", "Recommendations."),
		},
	}
}

func covidLocationTable() *domain.Table {
	return &domain.Table{
		Columns: domain.RequiredColumns,
		Rows: []domain.Row{
			row("1", "Introduction", "The outbreak."),
			row("2", "Location data", "Sources of location data."),
			row("2.1", "", "Telecom operators."),
			row("2.2", "", "Information society services."),
			row("3", "Contact tracing", "Apps."),
		},
	}
}

func newTestStore() *memory.CorpusStore {
	store := memory.NewCorpusStore()
	store.Put("decision_making", decisionMakingTable())
	store.Put("covid_location", covidLocationTable())
	return store
}
