package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/regdoc/internal/core/domain"
	"github.com/custodia-labs/regdoc/internal/documents"
)

func testEntries(t *testing.T) []documents.Entry {
	t.Helper()
	entries, err := documents.Select([]string{"decision_making", "covid_location"})
	require.NoError(t, err)
	return entries
}

func TestLoadLibrary(t *testing.T) {
	lib, err := LoadLibrary(context.Background(), newTestStore(), testEntries(t))
	require.NoError(t, err)

	docs := lib.Documents()
	require.Len(t, docs, 2)
	assert.Equal(t, "decision_making", docs[0].ID())
	assert.Equal(t, "covid_location", docs[1].ID())
	assert.Equal(t, 13, lib.Forest().Len())

	doc, err := lib.Document("covid_location")
	require.NoError(t, err)
	assert.Equal(t, 5, doc.Len())

	tree, err := lib.Tree("decision_making")
	require.NoError(t, err)
	assert.Len(t, tree.Children, 3)

	_, err = lib.Document("gdpr")
	assert.ErrorIs(t, err, domain.ErrUnknownDocument)
	_, err = lib.Tree("gdpr")
	assert.ErrorIs(t, err, domain.ErrUnknownDocument)
}

func TestLoadLibrary_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("nil source", func(t *testing.T) {
		_, err := LoadLibrary(ctx, nil, testEntries(t))
		assert.ErrorIs(t, err, domain.ErrNotImplemented)
	})

	t.Run("missing corpus", func(t *testing.T) {
		entries, err := documents.Select(nil)
		require.NoError(t, err)
		_, err = LoadLibrary(ctx, newTestStore(), entries)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Contains(t, err.Error(), "gdpr")
	})

	t.Run("schema", func(t *testing.T) {
		store := newTestStore()
		store.Put("covid_location", &domain.Table{Columns: []string{"section", "text"}})
		_, err := LoadLibrary(ctx, store, testEntries(t))
		assert.ErrorIs(t, err, domain.ErrSchema)
	})

	t.Run("invalid row", func(t *testing.T) {
		store := newTestStore()
		store.Put("covid_location", &domain.Table{
			Columns: domain.RequiredColumns,
			Rows:    []domain.Row{row("II", "Roman", "Wrong grammar.")},
		})
		_, err := LoadLibrary(ctx, store, testEntries(t))
		assert.ErrorIs(t, err, domain.ErrInvalidReference)
	})

	t.Run("cancelled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := LoadLibrary(cctx, newTestStore(), testEntries(t))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestLibraryLoader_BuildsOnce(t *testing.T) {
	source := newCountingSource(newTestStore())
	loader := NewLibraryLoader(source, testEntries(t))

	var (
		wg   sync.WaitGroup
		libs = make([]*Library, 8)
	)
	for i := range libs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lib, err := loader.Get(context.Background())
			assert.NoError(t, err)
			libs[i] = lib
		}()
	}
	wg.Wait()

	for _, lib := range libs {
		assert.Same(t, libs[0], lib)
	}
	assert.Equal(t, 1, source.count("decision_making"))
	assert.Equal(t, 1, source.count("covid_location"))
}

func TestLibraryLoader_KeepsFailure(t *testing.T) {
	source := newCountingSource(newTestStore())
	entries, err := documents.Select([]string{"gdpr"})
	require.NoError(t, err)
	loader := NewLibraryLoader(source, entries)

	_, err = loader.Get(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = loader.Get(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 1, source.count("gdpr"))
}

func TestLibraryLoader_CancelledContext(t *testing.T) {
	source := newCountingSource(newTestStore())
	loader := NewLibraryLoader(source, testEntries(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := loader.Get(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, source.count("decision_making"))
}
