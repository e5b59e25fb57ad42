package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/regdoc/internal/core/domain"
)

func TestExtractDocumentID(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{name: "valid toc URI", uri: "regdoc://documents/decision_making/toc", expected: "decision_making"},
		{name: "invalid prefix", uri: "file://documents/decision_making/toc", expected: ""},
		{name: "missing toc suffix", uri: "regdoc://documents/decision_making", expected: ""},
		{name: "empty URI", uri: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractDocumentID(tt.uri))
		})
	}
}

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleDocumentsResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns documents as JSON", func(t *testing.T) {
		corpus := &mockCorpusService{documents: []domain.DocumentInfo{
			{ID: "covid_location", Name: "Guidelines on location data", Grammars: []string{"numeric"}, Rows: 3},
		}}
		server := newTestServer(t, corpus, nil)

		result, err := server.handleDocumentsResource(ctx, makeReadResourceRequest("regdoc://documents"))
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "regdoc://documents", result.Contents[0].URI)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)

		var docs []DocumentOutput
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &docs))
		require.Len(t, docs, 1)
		assert.Equal(t, "covid_location", docs[0].ID)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		server := newTestServer(t, &mockCorpusService{err: errors.New("load failed")}, nil)

		_, err := server.handleDocumentsResource(ctx, makeReadResourceRequest("regdoc://documents"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "listing documents")
	})
}

func TestServer_handleTocResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns document tree", func(t *testing.T) {
		toc := &mockTocService{tree: []domain.TocItem{
			{Index: 0, Depth: 0, Name: "Guidelines on location data", DocumentID: "covid_location", HasChildren: true},
			{Index: 1, Depth: 1, Label: "1", Heading: "Introduction", Reference: "1", DocumentID: "covid_location"},
		}}
		server := newTestServer(t, &mockCorpusService{}, toc)

		uri := "regdoc://documents/covid_location/toc"
		result, err := server.handleTocResource(ctx, makeReadResourceRequest(uri))
		require.NoError(t, err)

		var items []TocItemOutput
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &items))
		require.Len(t, items, 2)
		assert.Equal(t, "1 Introduction", items[1].Title)
		assert.Equal(t, "1", items[1].Reference)
	})

	t.Run("malformed URI is not found", func(t *testing.T) {
		server := newTestServer(t, &mockCorpusService{}, &mockTocService{})

		_, err := server.handleTocResource(ctx, makeReadResourceRequest("regdoc://invalid/uri"))
		require.Error(t, err)
	})

	t.Run("unknown document is not found", func(t *testing.T) {
		toc := &mockTocService{err: fmt.Errorf("%q: %w", "nope", domain.ErrUnknownDocument)}
		server := newTestServer(t, &mockCorpusService{}, toc)

		_, err := server.handleTocResource(ctx, makeReadResourceRequest("regdoc://documents/nope/toc"))
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrUnknownDocument)
	})
}
