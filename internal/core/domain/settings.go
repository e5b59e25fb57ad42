package domain

// Backend selects where corpus tables are loaded from.
type Backend string

// Available backends.
const (
	// BackendCSV reads one CSV file per document from the corpus directory.
	BackendCSV Backend = "csv"

	// BackendSQLite reads corpora imported into the local database.
	BackendSQLite Backend = "sqlite"
)

// IsValid returns true if the backend is recognised.
func (b Backend) IsValid() bool {
	return b == BackendCSV || b == BackendSQLite
}

// String returns the string representation.
func (b Backend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b Backend) Description() string {
	switch b {
	case BackendCSV:
		return "CSV files in the corpus directory"
	case BackendSQLite:
		return "Corpora imported into the local database"
	default:
		return "Unknown"
	}
}

// Configuration keys.
const (
	KeyCorpusBackend    = "corpus.backend"
	KeyCorpusDir        = "corpus.dir"
	KeyDatabaseDir      = "corpus.database_dir"
	KeyDocumentsEnabled = "documents.enabled"
	KeyOutputDecorated  = "output.decorated"
)

// SettingKeys lists the configuration keys in display order.
var SettingKeys = []string{
	KeyCorpusBackend,
	KeyCorpusDir,
	KeyDatabaseDir,
	KeyDocumentsEnabled,
	KeyOutputDecorated,
}

// Settings is the effective configuration.
type Settings struct {
	// Backend selects the corpus source.
	Backend Backend

	// CorpusDir holds the CSV corpus files.
	CorpusDir string

	// DatabaseDir holds the SQLite database. Empty means ~/.regdoc/data.
	DatabaseDir string

	// Documents restricts the catalogue. Empty means every document.
	Documents []string

	// Decorated renders markdown decorators in text output.
	Decorated bool
}

// DefaultSettings returns the configuration used when nothing is set.
func DefaultSettings() Settings {
	return Settings{
		Backend:   BackendCSV,
		CorpusDir: "corpus",
		Decorated: true,
	}
}
