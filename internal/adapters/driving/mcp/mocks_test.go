package mcp

import (
	"context"

	"github.com/custodia-labs/regdoc/internal/core/domain"
)

// mockCorpusService is a mock implementation of driving.CorpusService.
type mockCorpusService struct {
	documents []domain.DocumentInfo
	info      domain.ReferenceInfo
	rows      []domain.Row
	text      domain.SectionText
	heading   string
	err       error

	lastOpts domain.TextOptions
}

func (m *mockCorpusService) Documents(_ context.Context) ([]domain.DocumentInfo, error) {
	return m.documents, m.err
}

func (m *mockCorpusService) CheckReference(_ context.Context, _, ref string) (domain.ReferenceInfo, error) {
	info := m.info
	info.Input = ref
	return info, m.err
}

func (m *mockCorpusService) Resolve(_ context.Context, _, _ string, _ domain.Scope) ([]domain.Row, error) {
	return m.rows, m.err
}

func (m *mockCorpusService) GetText(
	_ context.Context,
	_, _ string,
	opts domain.TextOptions,
) (domain.SectionText, error) {
	m.lastOpts = opts
	return m.text, m.err
}

func (m *mockCorpusService) GetHeading(_ context.Context, _, _ string) (string, error) {
	return m.heading, m.err
}

// mockTocService is a mock implementation of driving.TocService.
type mockTocService struct {
	items []domain.TocItem
	text  domain.SectionText
	tree  []domain.TocItem
	err   error

	textCalls int
}

func (m *mockTocService) Items(_ context.Context) ([]domain.TocItem, error) {
	return m.items, m.err
}

func (m *mockTocService) Item(_ context.Context, n int) (domain.TocItem, error) {
	if m.err != nil {
		return domain.TocItem{}, m.err
	}
	if n < 0 || n >= len(m.items) {
		return domain.TocItem{}, domain.ErrIndexOutOfRange
	}
	return m.items[n], nil
}

func (m *mockTocService) ItemText(_ context.Context, _ int) (domain.SectionText, error) {
	m.textCalls++
	return m.text, m.err
}

func (m *mockTocService) DocumentTree(_ context.Context, _ string) ([]domain.TocItem, error) {
	return m.tree, m.err
}
