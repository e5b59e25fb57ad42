package domain

import "time"

// DocumentInfo is catalogue metadata for a loaded document.
type DocumentInfo struct {
	// ID is the stable catalogue identifier (e.g. "decision_making").
	ID string

	// Name is the display name of the regulation or guideline.
	Name string

	// Grammars lists grammar names in priority order.
	Grammars []string

	// Rows is the number of corpus rows.
	Rows int
}

// ImportRecord describes one corpus import into the local database.
type ImportRecord struct {
	// ID is a UUID assigned at import time.
	ID string

	// DocumentID is the catalogue identifier of the imported document.
	DocumentID string

	// Source is the file the rows were read from.
	Source string

	// Rows is the number of rows stored.
	Rows int

	// ImportedAt is when the import completed.
	ImportedAt time.Time
}
