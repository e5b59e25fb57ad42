package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/regdoc/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/regdoc/internal/core/domain"
	"github.com/custodia-labs/regdoc/internal/core/ports/driven"
)

// DatabaseFile is the database file name inside the data directory.
const DatabaseFile = "corpus.db"

// Store is the SQLite database holding imported corpora.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens or creates the database in dataDir and applies pending
// migrations. If dataDir is empty, defaults to ~/.regdoc/data.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".regdoc", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, DatabaseFile)
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_time_format=sqlite")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// CorpusStore returns a CorpusStore interface backed by this store.
func (s *Store) CorpusStore() driven.CorpusStore {
	return &corpusStore{store: s}
}

// SchemaVersion returns the highest applied migration.
func (s *Store) SchemaVersion(ctx context.Context) (int, error) {
	var version int
	err := s.db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("getting schema version: %w", err)
	}
	return version, nil
}

// migrate runs all pending up migrations in version order, each in its own
// transaction together with its schema_migrations record.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	current, err := s.SchemaVersion(context.Background())
	if err != nil {
		return err
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if name := entry.Name(); strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_corpus.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= current {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if err := s.apply(version, string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

func (s *Store) apply(version int, script string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(script); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
		return err
	}
	return tx.Commit()
}

// ==================== Corpus Store ====================

// corpusStore implements driven.CorpusStore.
type corpusStore struct {
	store *Store
}

var _ driven.CorpusStore = (*corpusStore)(nil)

// SaveTable replaces the rows of a document and records the import,
// atomically.
func (s *corpusStore) SaveTable(ctx context.Context, record domain.ImportRecord, table *domain.Table) error {
	if record.ID == "" || record.DocumentID == "" || table == nil {
		return domain.ErrInvalidInput
	}
	if record.ImportedAt.IsZero() {
		record.ImportedAt = time.Now().UTC()
	}

	columnsJSON, err := json.Marshal(table.Columns)
	if err != nil {
		return fmt.Errorf("marshalling columns: %w", err)
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	_, err = tx.ExecContext(ctx, `
		INSERT INTO corpus_imports (id, document_id, source, row_count, columns, imported_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, record.ID, record.DocumentID, record.Source, len(table.Rows), string(columnsJSON), record.ImportedAt)
	if err != nil {
		return fmt.Errorf("recording import: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM corpus_rows WHERE document_id = ?", record.DocumentID); err != nil {
		return fmt.Errorf("clearing rows: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO corpus_rows (document_id, position, import_id, section, subsection, point,
			heading, text, section_reference, extra)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing row insert: %w", err)
	}
	defer stmt.Close()

	for i, row := range table.Rows {
		extraJSON, err := marshalExtra(row.Extra)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
		_, err = stmt.ExecContext(ctx, record.DocumentID, i, record.ID,
			row.Section, row.Subsection, row.Point, row.Heading, row.Text,
			row.SectionReference, extraJSON)
		if err != nil {
			return fmt.Errorf("inserting row %d: %w", i+1, err)
		}
	}

	return tx.Commit()
}

// Load returns the stored table of a document, rows in corpus order.
func (s *corpusStore) Load(ctx context.Context, documentID string) (*domain.Table, error) {
	var columnsJSON string
	err := s.store.db.QueryRowContext(ctx, `
		SELECT columns FROM corpus_imports
		WHERE document_id = ?
		ORDER BY imported_at DESC, rowid DESC
		LIMIT 1
	`, documentID).Scan(&columnsJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("corpus %s: %w", documentID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("querying import: %w", err)
	}

	table := &domain.Table{}
	if err := json.Unmarshal([]byte(columnsJSON), &table.Columns); err != nil {
		return nil, fmt.Errorf("unmarshalling columns: %w", err)
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT section, subsection, point, heading, text, section_reference, extra
		FROM corpus_rows
		WHERE document_id = ?
		ORDER BY position
	`, documentID)
	if err != nil {
		return nil, fmt.Errorf("querying rows: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		row, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		table.Rows = append(table.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return table, nil
}

// ListImports returns the latest import per document, ordered by document id.
func (s *corpusStore) ListImports(ctx context.Context) ([]domain.ImportRecord, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT i.id, i.document_id, i.source, i.row_count, i.imported_at
		FROM corpus_imports i
		WHERE i.rowid = (
			SELECT latest.rowid FROM corpus_imports latest
			WHERE latest.document_id = i.document_id
			ORDER BY latest.imported_at DESC, latest.rowid DESC
			LIMIT 1
		)
		ORDER BY i.document_id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying imports: %w", err)
	}
	defer rows.Close()

	var records []domain.ImportRecord
	for rows.Next() {
		var r domain.ImportRecord
		if err := rows.Scan(&r.ID, &r.DocumentID, &r.Source, &r.Rows, &r.ImportedAt); err != nil {
			return nil, fmt.Errorf("scanning import: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating imports: %w", err)
	}

	return records, nil
}

// ==================== Helper Functions ====================

func scanRow(rows *sql.Rows) (domain.Row, error) {
	var (
		row       domain.Row
		extraJSON string
	)
	if err := rows.Scan(&row.Section, &row.Subsection, &row.Point, &row.Heading,
		&row.Text, &row.SectionReference, &extraJSON); err != nil {
		return domain.Row{}, fmt.Errorf("scanning row: %w", err)
	}

	var extra map[string]string
	if err := json.Unmarshal([]byte(extraJSON), &extra); err != nil {
		return domain.Row{}, fmt.Errorf("unmarshalling extra columns: %w", err)
	}
	if len(extra) > 0 {
		row.Extra = extra
	}
	return row, nil
}

func marshalExtra(extra map[string]string) (string, error) {
	if len(extra) == 0 {
		return "{}", nil
	}
	data, err := json.Marshal(extra)
	if err != nil {
		return "", fmt.Errorf("marshalling extra columns: %w", err)
	}
	return string(data), nil
}
