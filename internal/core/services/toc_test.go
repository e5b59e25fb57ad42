package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/regdoc/internal/core/domain"
)

func newTestTocService(t *testing.T) *TocService {
	t.Helper()
	return NewTocService(NewLibraryLoader(newTestStore(), testEntries(t)))
}

func TestTocService_Items(t *testing.T) {
	service := newTestTocService(t)

	items, err := service.Items(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 13)
	assert.Equal(t, "Corpus", items[0].Title())
	assert.Equal(t, "decision_making", items[1].DocumentID)
	assert.Equal(t, "II.A Profiling", items[4].Title())
	assert.Equal(t, "covid_location", items[7].DocumentID)
	assert.Equal(t, 1, items[7].Depth)
	assert.Equal(t, "3 Contact tracing", items[12].Title())
}

func TestTocService_Item(t *testing.T) {
	service := newTestTocService(t)
	ctx := context.Background()

	item, err := service.Item(ctx, 6)
	require.NoError(t, err)
	assert.Equal(t, "Annex 1", item.Reference)
	assert.Equal(t, "decision_making", item.DocumentID)

	again, err := service.Item(ctx, 6)
	require.NoError(t, err)
	assert.Equal(t, item, again)

	_, err = service.Item(ctx, -1)
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)
	_, err = service.Item(ctx, 13)
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)
}

func TestTocService_ItemText(t *testing.T) {
	service := newTestTocService(t)
	ctx := context.Background()

	st, err := service.ItemText(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, "covid_location", st.DocumentID)
	assert.Equal(t, "**2 Location data**\nSources of location data.\n\n"+
		"**2.1**\nTelecom operators.\n\n"+
		"**2.2**\nInformation society services.", st.Text)
	assert.Empty(t, st.Footnotes)

	_, err = service.ItemText(ctx, 0)
	assert.ErrorIs(t, err, domain.ErrNoSelection)
	_, err = service.ItemText(ctx, 7)
	assert.ErrorIs(t, err, domain.ErrNoSelection)
	_, err = service.ItemText(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)
}

func TestTocService_DocumentTree(t *testing.T) {
	service := newTestTocService(t)
	ctx := context.Background()

	items, err := service.DocumentTree(ctx, "covid_location")
	require.NoError(t, err)
	require.Len(t, items, 6)
	assert.Equal(t, 0, items[0].Index)
	assert.Equal(t, 0, items[0].Depth)
	assert.Contains(t, items[0].Name, "COVID-19")
	assert.Equal(t, "2.1", items[3].Reference)
	assert.Equal(t, 2, items[3].Depth)

	_, err = service.DocumentTree(ctx, "gdpr")
	assert.ErrorIs(t, err, domain.ErrUnknownDocument)
}
