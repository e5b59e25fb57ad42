package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/regdoc/internal/core/domain"
	"github.com/custodia-labs/regdoc/internal/logger"
)

// ListDocumentsInput is the input schema for the list_documents tool.
type ListDocumentsInput struct{}

// ListDocumentsOutput is the output schema for the list_documents tool.
type ListDocumentsOutput struct {
	Documents []DocumentOutput `json:"documents"`
	Count     int              `json:"count"`
}

// DocumentOutput describes one loaded document.
type DocumentOutput struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Grammars []string `json:"grammars"`
	Rows     int      `json:"rows"`
}

// CheckReferenceInput is the input schema for the check_reference tool.
type CheckReferenceInput struct {
	Document  string `json:"document" jsonschema:"the document id, as listed by list_documents"`
	Reference string `json:"reference" jsonschema:"the reference to check, for example 5(1)(a) or II.A.3"`
}

// CheckReferenceOutput is the output schema for the check_reference tool.
type CheckReferenceOutput struct {
	Valid     bool     `json:"valid"`
	Grammar   string   `json:"grammar,omitempty"`
	Tokens    []string `json:"tokens,omitempty"`
	Canonical string   `json:"canonical,omitempty"`
}

// GetTextInput is the input schema for the get_text tool.
type GetTextInput struct {
	Document    string `json:"document" jsonschema:"the document id, as listed by list_documents"`
	Reference   string `json:"reference" jsonschema:"the reference whose text to fetch"`
	Descendants bool   `json:"descendants,omitempty" jsonschema:"also include every section nested under the reference"`
	NoHeadings  bool   `json:"no_headings,omitempty" jsonschema:"omit the reference and heading line before each section"`
	Plain       bool   `json:"plain,omitempty" jsonschema:"return plain text instead of markdown"`
}

// TextOutput is the output schema for tools returning section text.
type TextOutput struct {
	Document  string   `json:"document"`
	Reference string   `json:"reference"`
	Text      string   `json:"text"`
	Footnotes []string `json:"footnotes,omitempty"`
}

// GetHeadingInput is the input schema for the get_heading tool.
type GetHeadingInput struct {
	Document  string `json:"document" jsonschema:"the document id, as listed by list_documents"`
	Reference string `json:"reference" jsonschema:"the reference whose heading to fetch"`
}

// GetHeadingOutput is the output schema for the get_heading tool.
type GetHeadingOutput struct {
	Reference string `json:"reference"`
	Heading   string `json:"heading"`
}

// TocItemInput is the input schema for the toc_item tool.
type TocItemInput struct {
	Index int `json:"index" jsonschema:"position in the combined table of contents; 0 is the corpus root"`
}

// TocItemOutput is one entry of the table of contents.
type TocItemOutput struct {
	Index       int    `json:"index"`
	Depth       int    `json:"depth"`
	Title       string `json:"title"`
	Document    string `json:"document,omitempty"`
	Reference   string `json:"reference,omitempty"`
	HasChildren bool   `json:"has_children"`
}

// TocItemTextOutput is the output schema for the toc_item tool.
type TocItemTextOutput struct {
	Item    TocItemOutput `json:"item"`
	Section *TextOutput   `json:"section,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_documents",
		Description: "List the regulatory documents in the corpus",
	}, s.handleListDocuments)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "check_reference",
		Description: "Check whether a reference is well formed for a document and return its canonical form",
	}, s.handleCheckReference)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_text",
		Description: "Fetch the text and footnotes of a section of a document by reference",
	}, s.handleGetText)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_heading",
		Description: "Fetch the heading of a section of a document by reference",
	}, s.handleGetHeading)

	if s.ports.Toc != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "toc_item",
			Description: "Fetch an entry of the combined table of contents by position, with its text",
		}, s.handleTocItem)
	}
}

func (s *Server) handleListDocuments(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListDocumentsInput,
) (*mcp.CallToolResult, ListDocumentsOutput, error) {
	docs, err := s.ports.Corpus.Documents(ctx)
	if err != nil {
		return nil, ListDocumentsOutput{}, err
	}

	output := ListDocumentsOutput{
		Documents: make([]DocumentOutput, len(docs)),
		Count:     len(docs),
	}
	for i, d := range docs {
		output.Documents[i] = DocumentOutput{
			ID:       d.ID,
			Name:     d.Name,
			Grammars: d.Grammars,
			Rows:     d.Rows,
		}
	}
	return nil, output, nil
}

func (s *Server) handleCheckReference(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CheckReferenceInput,
) (*mcp.CallToolResult, CheckReferenceOutput, error) {
	info, err := s.ports.Corpus.CheckReference(ctx, input.Document, input.Reference)
	if err != nil {
		return nil, CheckReferenceOutput{}, err
	}
	return nil, CheckReferenceOutput{
		Valid:     info.Valid,
		Grammar:   info.Grammar,
		Tokens:    info.Tokens,
		Canonical: info.Canonical,
	}, nil
}

// handleGetText handles the get_text tool invocation.
// Defaults match a reader of a single section: headings on, markdown on.
func (s *Server) handleGetText(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetTextInput,
) (*mcp.CallToolResult, TextOutput, error) {
	opts := domain.DefaultTextOptions()
	opts.IncludeHeadings = !input.NoHeadings
	opts.Decorated = !input.Plain
	if input.Descendants {
		opts.Scope = domain.ScopeDescendants
	}

	logger.Debug("mcp: get_text %s %q (%s)", input.Document, input.Reference, opts.Scope)
	text, err := s.ports.Corpus.GetText(ctx, input.Document, input.Reference, opts)
	if err != nil {
		return nil, TextOutput{}, err
	}
	return nil, textOutput(text), nil
}

func (s *Server) handleGetHeading(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetHeadingInput,
) (*mcp.CallToolResult, GetHeadingOutput, error) {
	heading, err := s.ports.Corpus.GetHeading(ctx, input.Document, input.Reference)
	if err != nil {
		return nil, GetHeadingOutput{}, err
	}
	return nil, GetHeadingOutput{Reference: input.Reference, Heading: heading}, nil
}

// handleTocItem returns the entry at a position together with its text.
// Grouping entries have no text; they are returned without one.
func (s *Server) handleTocItem(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TocItemInput,
) (*mcp.CallToolResult, TocItemTextOutput, error) {
	item, err := s.ports.Toc.Item(ctx, input.Index)
	if err != nil {
		return nil, TocItemTextOutput{}, err
	}

	output := TocItemTextOutput{Item: tocItemOutput(item)}
	if !item.Selectable() {
		return nil, output, nil
	}

	text, err := s.ports.Toc.ItemText(ctx, input.Index)
	if err != nil {
		return nil, TocItemTextOutput{}, err
	}
	section := textOutput(text)
	output.Section = &section
	return nil, output, nil
}

func textOutput(text domain.SectionText) TextOutput {
	return TextOutput{
		Document:  text.DocumentID,
		Reference: text.Reference,
		Text:      text.Text,
		Footnotes: text.Footnotes,
	}
}

func tocItemOutput(item domain.TocItem) TocItemOutput {
	return TocItemOutput{
		Index:       item.Index,
		Depth:       item.Depth,
		Title:       item.Title(),
		Document:    item.DocumentID,
		Reference:   item.Reference,
		HasChildren: item.HasChildren,
	}
}
