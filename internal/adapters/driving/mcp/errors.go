// Package mcp provides an MCP (Model Context Protocol) server adapter for regdoc.
// It lets a retrieval engine or an AI assistant fetch regulatory text by reference
// and walk the combined table of contents.
package mcp

import "errors"

// ErrMissingCorpusService is returned when the corpus service is not provided.
var ErrMissingCorpusService = errors.New("mcp: corpus service is required")
