package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/regdoc/internal/core/domain"
)

func TestConfigStore(t *testing.T) {
	store := NewConfigStore(map[string]any{
		"corpus.backend":    "sqlite",
		"output.decorated":  true,
		"documents.enabled": []any{"gdpr", 7, "covid_location"},
		"count":             int64(3),
	})

	assert.Equal(t, "sqlite", store.GetString("corpus.backend"))
	assert.True(t, store.GetBool("output.decorated"))
	assert.Equal(t, []string{"gdpr", "covid_location"}, store.GetStringSlice("documents.enabled"))
	assert.Equal(t, 3, store.GetInt("count"))

	assert.Empty(t, store.GetString("missing"))
	assert.False(t, store.GetBool("corpus.backend"))
	assert.Nil(t, store.GetStringSlice("corpus.backend"))
	assert.Zero(t, store.GetInt("corpus.backend"))

	require.NoError(t, store.Set("corpus.dir", "/tmp/corpus"))
	v, ok := store.Get("corpus.dir")
	assert.True(t, ok)
	assert.Equal(t, "/tmp/corpus", v)

	assert.NoError(t, store.Save())
	assert.NoError(t, store.Load())
	assert.Equal(t, ":memory:", store.Path())
}

func TestCorpusStore_Load(t *testing.T) {
	store := NewCorpusStore()
	ctx := context.Background()

	_, err := store.Load(ctx, "gdpr")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	table := &domain.Table{
		Columns: domain.RequiredColumns,
		Rows:    []domain.Row{{Section: "5", SectionReference: "5", Text: "Principles"}},
	}
	store.Put("gdpr", table)
	table.Rows[0].Text = "changed"

	got, err := store.Load(ctx, "gdpr")
	require.NoError(t, err)
	assert.Equal(t, "Principles", got.Rows[0].Text)
	assert.Equal(t, domain.RequiredColumns, got.Columns)
}

func TestCorpusStore_SaveTable(t *testing.T) {
	store := NewCorpusStore()
	ctx := context.Background()
	table := &domain.Table{Columns: domain.RequiredColumns}

	err := store.SaveTable(ctx, domain.ImportRecord{}, table)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	now := time.Now().UTC()
	require.NoError(t, store.SaveTable(ctx, domain.ImportRecord{ID: "b", DocumentID: "gdpr", ImportedAt: now}, table))
	require.NoError(t, store.SaveTable(ctx, domain.ImportRecord{ID: "a", DocumentID: "covid_location", ImportedAt: now}, table))
	require.NoError(t, store.SaveTable(ctx, domain.ImportRecord{ID: "c", DocumentID: "gdpr", ImportedAt: now}, table))

	records, err := store.ListImports(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "covid_location", records[0].DocumentID)
	assert.Equal(t, "c", records[1].ID)

	_, err = store.Load(ctx, "gdpr")
	assert.NoError(t, err)
}
