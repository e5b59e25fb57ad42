// Package csvfile reads document corpora from CSV files.
//
// The first record is the header. Columns are matched by name, so their order
// is free and extra columns are carried along in domain.Row.Extra.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/regdoc/internal/core/domain"
	"github.com/custodia-labs/regdoc/internal/core/ports/driven"
	"github.com/custodia-labs/regdoc/internal/logger"
)

// Ensure TableSource implements the interfaces.
var (
	_ driven.TableSource     = (*TableSource)(nil)
	_ driven.TableFileReader = (*TableSource)(nil)
)

const utf8BOM = "\ufeff"

// TableSource loads corpora from a directory of CSV files.
type TableSource struct {
	dir   string
	files map[string]string
}

// NewTableSource creates a source reading from dir. files maps document ids
// to file names inside dir; unmapped ids are read from "<id>.csv".
func NewTableSource(dir string, files map[string]string) *TableSource {
	return &TableSource{dir: dir, files: files}
}

// Dir returns the corpus directory.
func (s *TableSource) Dir() string {
	return s.dir
}

// Path returns the file a document is read from.
func (s *TableSource) Path(documentID string) string {
	name, ok := s.files[documentID]
	if !ok || name == "" {
		name = documentID + ".csv"
	}
	return filepath.Join(s.dir, name)
}

// Load reads the corpus of a document.
// Returns domain.ErrNotFound if the file does not exist.
func (s *TableSource) Load(ctx context.Context, documentID string) (*domain.Table, error) {
	return s.ReadFile(ctx, s.Path(documentID))
}

// ReadFile reads a corpus table from a CSV file.
func (s *TableSource) ReadFile(ctx context.Context, path string) (*domain.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("corpus file %s: %w", path, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to open corpus file: %w", err)
	}
	defer f.Close()

	table, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("read %d rows from %s", len(table.Rows), path)
	return table, nil
}

// Read parses CSV from r. Header names are trimmed and lower-cased.
// A file without a header yields domain.ErrSchema.
func Read(r io.Reader) (*domain.Table, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("empty file: %w", domain.ErrSchema)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := make([]string, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		columns[i] = strings.ToLower(strings.TrimSpace(name))
	}

	table := &domain.Table{Columns: columns}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", len(table.Rows)+1, err)
		}
		table.Rows = append(table.Rows, domain.RowFromRecord(columns, record))
	}
	return table, nil
}

// Write writes a table as CSV, header first. Extra columns listed in the
// header are written from Row.Extra.
func Write(w io.Writer, table *domain.Table) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(table.Columns); err != nil {
		return err
	}
	for _, row := range table.Rows {
		if err := writer.Write(Record(table.Columns, row)); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// Record lays a row out in column order.
func Record(columns []string, row domain.Row) []string {
	record := make([]string, len(columns))
	for i, col := range columns {
		switch col {
		case domain.ColumnSection:
			record[i] = row.Section
		case domain.ColumnSubsection:
			record[i] = row.Subsection
		case domain.ColumnPoint:
			record[i] = row.Point
		case domain.ColumnHeading:
			record[i] = row.Heading
		case domain.ColumnText:
			record[i] = row.Text
		case domain.ColumnSectionReference:
			record[i] = row.SectionReference
		default:
			record[i] = row.Extra[col]
		}
	}
	return record
}
