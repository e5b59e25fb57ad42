package corpus

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/regdoc/internal/core/domain"
	"github.com/custodia-labs/regdoc/internal/core/reference"
	"github.com/custodia-labs/regdoc/internal/logger"
)

// Entry is one corpus row with its parsed reference.
type Entry struct {
	// Row is the row as loaded.
	Row domain.Row

	// Reference is the parsed section_reference.
	Reference reference.Reference

	// Canonical is the canonical form of Reference.
	Canonical string

	// Line is the 1-based row number within the table, for messages.
	Line int
}

// Document is one regulation or guideline with its numbering schemes.
type Document struct {
	id      string
	name    string
	columns []string
	checker reference.Checker
	entries []Entry
}

// New validates the table and builds a Document.
// Returns an error wrapping domain.ErrSchema when required columns are missing,
// and one wrapping domain.ErrInvalidReference when a row's reference does not
// parse or is not in canonical form.
func New(id, name string, table *domain.Table, checker reference.Checker) (*Document, error) {
	if checker == nil {
		return nil, fmt.Errorf("document %s: reference checker is required: %w", id, domain.ErrInvalidInput)
	}
	if table == nil {
		return nil, fmt.Errorf("document %s: no table: %w", id, domain.ErrSchema)
	}
	if missing := table.MissingColumns(); len(missing) > 0 {
		return nil, fmt.Errorf("document %s: missing columns %s: %w",
			id, strings.Join(missing, ", "), domain.ErrSchema)
	}

	d := &Document{
		id:      id,
		name:    name,
		columns: append([]string(nil), table.Columns...),
		checker: checker,
		entries: make([]Entry, 0, len(table.Rows)),
	}

	for i, row := range table.Rows {
		line := i + 1
		ref, err := checker.Parse(row.SectionReference)
		if err != nil {
			return nil, fmt.Errorf("document %s: row %d: %w", id, line, domain.NewInvalidReference(id, row.SectionReference))
		}
		canonical, err := checker.Canonical(ref)
		if err != nil {
			return nil, fmt.Errorf("document %s: row %d: %w", id, line, err)
		}
		if canonical != row.SectionReference {
			return nil, fmt.Errorf("document %s: row %d: stored reference is not canonical, want %q: %w",
				id, line, canonical, domain.NewInvalidReference(id, row.SectionReference))
		}
		if depth := row.HierarchyDepth(); depth != ref.Depth() {
			logger.Warn("%s: row %d: %q has %d levels but %d hierarchy columns are set",
				id, line, canonical, ref.Depth(), depth)
		}

		d.entries = append(d.entries, Entry{
			Row:       row,
			Reference: ref,
			Canonical: canonical,
			Line:      line,
		})
	}

	logger.Debug("document %s: %d rows, grammars %v", id, len(d.entries), checker.Grammars())
	return d, nil
}

// ID returns the catalogue identifier.
func (d *Document) ID() string {
	return d.id
}

// Name returns the display name.
func (d *Document) Name() string {
	return d.name
}

// Columns returns the table header as loaded, extra columns included.
func (d *Document) Columns() []string {
	return append([]string(nil), d.columns...)
}

// Checker returns the reference checker of the document.
func (d *Document) Checker() reference.Checker {
	return d.checker
}

// Len returns the number of rows.
func (d *Document) Len() int {
	return len(d.entries)
}

// Entries returns the rows in corpus order.
// The returned slice is shared; callers must not modify it.
func (d *Document) Entries() []Entry {
	return d.entries
}

// Info returns catalogue metadata for the document.
func (d *Document) Info() domain.DocumentInfo {
	return domain.DocumentInfo{
		ID:       d.id,
		Name:     d.name,
		Grammars: d.checker.Grammars(),
		Rows:     len(d.entries),
	}
}

// Parse parses a reference against the document's grammars.
func (d *Document) Parse(text string) (reference.Reference, error) {
	ref, err := d.checker.Parse(text)
	if err != nil {
		return reference.Reference{}, domain.NewInvalidReference(d.id, text)
	}
	return ref, nil
}

// Check reports how the text parses. It never fails; an unparseable
// reference comes back with Valid false.
func (d *Document) Check(text string) domain.ReferenceInfo {
	info := domain.ReferenceInfo{Input: text}
	ref, err := d.checker.Parse(text)
	if err != nil {
		return info
	}
	canonical, err := d.checker.Canonical(ref)
	if err != nil {
		return info
	}
	info.Valid = true
	info.Grammar = ref.Grammar
	info.Tokens = ref.Tokens
	info.Canonical = canonical
	return info
}

// Canonical returns the canonical form of a reference string.
func (d *Document) Canonical(text string) (string, error) {
	ref, err := d.Parse(text)
	if err != nil {
		return "", err
	}
	return d.checker.Canonical(ref)
}

// Resolve returns the rows addressed by the reference, in corpus order.
// With domain.ScopeDescendants, rows nested under the reference are included;
// nesting is decided on tokens, so "3" covers "3.1" but not "30".
// A well-formed reference that addresses nothing yields an empty result.
func (d *Document) Resolve(text string, scope domain.Scope) ([]Entry, error) {
	ref, err := d.Parse(text)
	if err != nil {
		return nil, err
	}
	return d.resolve(ref, scope), nil
}

func (d *Document) resolve(ref reference.Reference, scope domain.Scope) []Entry {
	var out []Entry
	for _, e := range d.entries {
		switch scope {
		case domain.ScopeDescendants:
			if e.Reference.HasPrefix(ref) {
				out = append(out, e)
			}
		default:
			if e.Reference.Equal(ref) {
				out = append(out, e)
			}
		}
	}
	return out
}

// GetTextAndFootnotes concatenates the text of the addressed rows and returns
// the footnote definitions found in them separately.
// Returns an error wrapping domain.ErrReferenceNotFound when no row matches.
func (d *Document) GetTextAndFootnotes(text string, opts domain.TextOptions) (string, []string, error) {
	entries, err := d.Resolve(text, opts.Scope)
	if err != nil {
		return "", nil, err
	}
	if len(entries) == 0 {
		return "", nil, domain.NewReferenceNotFound(d.id, text)
	}

	var (
		blocks    = make([]string, 0, len(entries))
		footnotes = newFootnoteSet()
	)
	for _, e := range entries {
		body, notes := splitFootnotes(e.Row.Text)
		footnotes.add(notes...)

		var b strings.Builder
		if opts.IncludeHeadings {
			b.WriteString(headingLine(e, opts.Decorated))
		}
		if body != "" {
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			b.WriteString(body)
		}
		if b.Len() > 0 {
			blocks = append(blocks, b.String())
		}
	}

	sep := "\n"
	if opts.Decorated {
		sep = "\n\n"
	}
	return strings.Join(blocks, sep), footnotes.list(), nil
}

// GetText returns the addressed text with its footnotes appended.
func (d *Document) GetText(text string, opts domain.TextOptions) (string, error) {
	body, footnotes, err := d.GetTextAndFootnotes(text, opts)
	if err != nil {
		return "", err
	}
	return FormatTextAndFootnotes(body, footnotes), nil
}

// SectionText is GetTextAndFootnotes packaged with the canonical reference.
func (d *Document) SectionText(text string, opts domain.TextOptions) (domain.SectionText, error) {
	body, footnotes, err := d.GetTextAndFootnotes(text, opts)
	if err != nil {
		return domain.SectionText{}, err
	}
	canonical, err := d.Canonical(text)
	if err != nil {
		return domain.SectionText{}, err
	}
	return domain.SectionText{
		DocumentID: d.id,
		Reference:  canonical,
		Text:       body,
		Footnotes:  footnotes,
	}, nil
}

// GetHeading returns the heading of the first row whose reference equals the
// given one. The heading may be empty.
func (d *Document) GetHeading(text string) (string, error) {
	ref, err := d.Parse(text)
	if err != nil {
		return "", err
	}
	for _, e := range d.entries {
		if e.Reference.Equal(ref) {
			return e.Row.Heading, nil
		}
	}
	return "", domain.NewReferenceNotFound(d.id, text)
}

// FormatTextAndFootnotes appends footnotes to a body, separated by a blank line.
func FormatTextAndFootnotes(body string, footnotes []string) string {
	if len(footnotes) == 0 {
		return body
	}
	if body == "" {
		return strings.Join(footnotes, "\n")
	}
	return body + "\n\n" + strings.Join(footnotes, "\n")
}

func headingLine(e Entry, decorated bool) string {
	line := e.Canonical
	if e.Row.Heading != "" {
		line += " " + e.Row.Heading
	}
	if decorated {
		return "**" + line + "**"
	}
	return line
}
