package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/regdoc/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/regdoc/internal/core/domain"
)

func TestImportService_Import(t *testing.T) {
	store := memory.NewCorpusStore()
	reader := &mockFileReader{tables: map[string]*domain.Table{
		"/data/covid_location.csv": covidLocationTable(),
	}}
	service := NewImportService(reader, store)
	ctx := context.Background()

	record, err := service.Import(ctx, "covid_location", "/data/covid_location.csv")

	require.NoError(t, err)
	_, err = uuid.Parse(record.ID)
	assert.NoError(t, err)
	assert.Equal(t, "covid_location", record.DocumentID)
	assert.Equal(t, "/data/covid_location.csv", record.Source)
	assert.Equal(t, 5, record.Rows)
	assert.False(t, record.ImportedAt.IsZero())

	table, err := store.Load(ctx, "covid_location")
	require.NoError(t, err)
	assert.Len(t, table.Rows, 5)

	records, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, record.ID, records[0].ID)
}

func TestImportService_Import_InvalidCorpus(t *testing.T) {
	store := memory.NewCorpusStore()
	reader := &mockFileReader{tables: map[string]*domain.Table{
		"dm.csv": decisionMakingTable(),
	}}
	service := NewImportService(reader, store)
	ctx := context.Background()

	_, err := service.Import(ctx, "covid_location", "dm.csv")
	assert.ErrorIs(t, err, domain.ErrInvalidReference)

	_, err = store.Load(ctx, "covid_location")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestImportService_Import_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown document", func(t *testing.T) {
		service := NewImportService(&mockFileReader{}, memory.NewCorpusStore())
		_, err := service.Import(ctx, "dpia", "dpia.csv")
		assert.ErrorIs(t, err, domain.ErrUnknownDocument)
	})

	t.Run("read failure", func(t *testing.T) {
		readErr := errors.New("disk on fire")
		service := NewImportService(&mockFileReader{err: readErr}, memory.NewCorpusStore())
		_, err := service.Import(ctx, "gdpr", "gdpr.csv")
		assert.ErrorIs(t, err, readErr)
	})

	t.Run("not configured", func(t *testing.T) {
		service := NewImportService(nil, nil)
		_, err := service.Import(ctx, "gdpr", "gdpr.csv")
		assert.ErrorIs(t, err, domain.ErrNotImplemented)
		_, err = service.List(ctx)
		assert.ErrorIs(t, err, domain.ErrNotImplemented)
	})
}
