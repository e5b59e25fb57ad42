// Package documents is the catalogue of supported regulatory documents.
//
// Each entry pairs a document identifier with its display name, its
// numbering grammars and the corpus file it is loaded from. Entries are kept
// in publication order, which is the order of the combined table of contents.
package documents

import (
	"fmt"
	"time"

	"github.com/custodia-labs/regdoc/internal/core/domain"
	"github.com/custodia-labs/regdoc/internal/core/reference"
)

// Entry describes one document.
type Entry struct {
	// ID is the stable identifier used on the command line and in storage.
	ID string

	// Name is the official title.
	Name string

	// Published orders the catalogue.
	Published time.Time

	// File is the corpus file name inside the corpus directory.
	File string

	// Grammars are in priority order: when two grammars accept the same
	// text, the earlier one decides how it is read.
	Grammars []reference.Grammar

	// Priority explains the grammar order for this document.
	Priority string
}

// Checker builds the reference checker for the entry. Documents with several
// grammars get a composite checker in the declared priority order.
func (e Entry) Checker() (reference.Checker, error) {
	if len(e.Grammars) == 0 {
		return nil, fmt.Errorf("document %s declares no grammar", e.ID)
	}

	children := make([]*reference.ReferenceChecker, len(e.Grammars))
	for i, g := range e.Grammars {
		c, err := reference.NewReferenceChecker(g)
		if err != nil {
			return nil, fmt.Errorf("document %s: %w", e.ID, err)
		}
		children[i] = c
	}

	if len(children) == 1 {
		return children[0], nil
	}
	return reference.NewCompositeReferenceChecker(children...)
}

// All returns the catalogue in publication order.
func All() []Entry {
	return append([]Entry(nil), catalogue...)
}

// IDs returns the document identifiers in publication order.
func IDs() []string {
	ids := make([]string, len(catalogue))
	for i, e := range catalogue {
		ids[i] = e.ID
	}
	return ids
}

// Lookup returns the entry for a document identifier.
func Lookup(id string) (Entry, error) {
	for _, e := range catalogue {
		if e.ID == id {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%q: %w", id, domain.ErrUnknownDocument)
}

// Select returns the entries for the given ids in publication order.
// An empty selection means every document.
func Select(ids []string) ([]Entry, error) {
	if len(ids) == 0 {
		return All(), nil
	}

	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		if _, err := Lookup(id); err != nil {
			return nil, err
		}
		wanted[id] = true
	}

	var out []Entry
	for _, e := range catalogue {
		if wanted[e.ID] {
			out = append(out, e)
		}
	}
	return out, nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
