package domain

// Scope selects which rows a text fetch covers.
type Scope int

const (
	// ScopeSection covers only the rows whose reference equals the requested one.
	ScopeSection Scope = iota

	// ScopeDescendants also covers every row nested under the requested reference.
	ScopeDescendants
)

// String returns the string representation of the scope.
func (s Scope) String() string {
	switch s {
	case ScopeSection:
		return "section"
	case ScopeDescendants:
		return "descendants"
	default:
		return "unknown"
	}
}

// TextOptions controls how section text is assembled.
type TextOptions struct {
	// IncludeHeadings prefixes each row with its reference and heading.
	IncludeHeadings bool

	// Decorated renders markdown decorators instead of plain text.
	Decorated bool

	// Scope selects exact rows only or rows plus descendants.
	Scope Scope
}

// DefaultTextOptions mirrors what a reader of a single section expects.
func DefaultTextOptions() TextOptions {
	return TextOptions{
		IncludeHeadings: true,
		Decorated:       true,
		Scope:           ScopeSection,
	}
}

// SectionText is the text of a reference together with its footnotes.
type SectionText struct {
	// DocumentID identifies the source document.
	DocumentID string

	// Reference is the canonical form of the requested reference.
	Reference string

	// Text is the concatenated body without footnote definitions.
	Text string

	// Footnotes are footnote definitions, deduplicated, in first-appearance order.
	Footnotes []string
}

// ReferenceInfo describes how a reference parsed.
type ReferenceInfo struct {
	// Input is the reference as supplied.
	Input string

	// Valid reports whether any grammar of the document accepted the input.
	Valid bool

	// Grammar names the grammar that accepted the input.
	Grammar string

	// Tokens are the level tokens, shallowest first.
	Tokens []string

	// Canonical is the canonical form of the reference.
	Canonical string
}
