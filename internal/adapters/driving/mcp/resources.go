package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/regdoc/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for regdoc resources.
	uriScheme = "regdoc://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing documents.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "documents",
		Name:        "documents",
		Description: "Regulatory documents in the corpus",
		MIMEType:    "application/json",
	}, s.handleDocumentsResource)

	if s.ports.Toc == nil {
		return
	}

	// Template for one document's table of contents.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "documents/{documentId}/toc",
		Name:        "document-toc",
		Description: "Table of contents of a specific document",
		MIMEType:    "application/json",
	}, s.handleTocResource)
}

// handleDocumentsResource returns the loaded documents.
func (s *Server) handleDocumentsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	docs, err := s.ports.Corpus.Documents(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	infos := make([]DocumentOutput, len(docs))
	for i, d := range docs {
		infos[i] = DocumentOutput{ID: d.ID, Name: d.Name, Grammars: d.Grammars, Rows: d.Rows}
	}
	return jsonResult(req.Params.URI, infos)
}

// handleTocResource returns the table of contents of one document.
func (s *Server) handleTocResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract documentId from URI: regdoc://documents/{documentId}/toc
	docID := extractDocumentID(req.Params.URI)
	if docID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	items, err := s.ports.Toc.DocumentTree(ctx, docID)
	if errors.Is(err, domain.ErrUnknownDocument) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("building table of contents: %w", err)
	}

	out := make([]TocItemOutput, len(items))
	for i, item := range items {
		out[i] = tocItemOutput(item)
	}
	return jsonResult(req.Params.URI, out)
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractDocumentID extracts the document ID from a URI like regdoc://documents/{documentId}/toc.
func extractDocumentID(uri string) string {
	const prefix = uriScheme + "documents/"
	const suffix = "/toc"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	uri = strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(uri, suffix) {
		return ""
	}

	return strings.TrimSuffix(uri, suffix)
}
