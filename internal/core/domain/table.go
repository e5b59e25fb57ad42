package domain

// Column names every corpus table must carry.
const (
	ColumnSection          = "section"
	ColumnSubsection       = "subsection"
	ColumnPoint            = "point"
	ColumnHeading          = "heading"
	ColumnText             = "text"
	ColumnSectionReference = "section_reference"
)

// RequiredColumns lists the corpus columns in their conventional order.
var RequiredColumns = []string{
	ColumnSection,
	ColumnSubsection,
	ColumnPoint,
	ColumnHeading,
	ColumnText,
	ColumnSectionReference,
}

// Row is one line of a document's tabular corpus.
// Empty hierarchy fields mean "not applicable at this depth".
type Row struct {
	Section    string
	Subsection string
	Point      string

	// Heading is the human-readable heading. May be empty.
	Heading string

	// Text is the body text. May contain footnote markers and definitions.
	Text string

	// SectionReference is the precomputed canonical key of the row.
	SectionReference string

	// Extra holds columns the core does not use, keyed by column name.
	Extra map[string]string
}

// HierarchyDepth returns the number of non-empty hierarchy columns.
func (r Row) HierarchyDepth() int {
	depth := 0
	for _, v := range []string{r.Section, r.Subsection, r.Point} {
		if v != "" {
			depth++
		}
	}
	return depth
}

// Table is a corpus as read from storage: the header plus the rows in document order.
type Table struct {
	// Columns is the header as found in the source, including extra columns.
	Columns []string

	// Rows are in corpus order, which is document order.
	Rows []Row
}

// MissingColumns returns the required columns absent from the table header.
func (t *Table) MissingColumns() []string {
	present := make(map[string]bool, len(t.Columns))
	for _, c := range t.Columns {
		present[c] = true
	}

	var missing []string
	for _, c := range RequiredColumns {
		if !present[c] {
			missing = append(missing, c)
		}
	}
	return missing
}

// RowFromRecord builds a Row from a header and one record of the same length.
// Unknown columns land in Extra.
func RowFromRecord(columns, record []string) Row {
	var row Row
	for i, col := range columns {
		if i >= len(record) {
			break
		}
		value := record[i]
		switch col {
		case ColumnSection:
			row.Section = value
		case ColumnSubsection:
			row.Subsection = value
		case ColumnPoint:
			row.Point = value
		case ColumnHeading:
			row.Heading = value
		case ColumnText:
			row.Text = value
		case ColumnSectionReference:
			row.SectionReference = value
		default:
			if row.Extra == nil {
				row.Extra = make(map[string]string)
			}
			row.Extra[col] = value
		}
	}
	return row
}
