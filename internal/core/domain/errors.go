package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// All of them are deterministic functions of the input and the corpus,
// so none of them is worth retrying.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates a required adapter was not configured.
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnknownDocument indicates a document id that is not in the catalogue.
	ErrUnknownDocument = errors.New("unknown document")

	// Corpus Errors.

	// ErrSchema indicates the corpus table is missing required columns.
	// Raised at load time only.
	ErrSchema = errors.New("corpus schema error")

	// ErrInvalidReference indicates a reference string does not parse under the grammar.
	ErrInvalidReference = errors.New("not a valid reference")

	// ErrReferenceNotFound indicates a well-formed reference that addresses no content.
	ErrReferenceNotFound = errors.New("reference not found")

	// ErrNoSelection indicates a table of contents entry with no text of its own.
	ErrNoSelection = errors.New("no selection to display")

	// ErrIndexOutOfRange indicates a positional lookup beyond the flattened table of contents.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// ReferenceError reports a failure tied to a specific reference string.
type ReferenceError struct {
	// Reference is the reference text as supplied by the caller.
	Reference string

	// Document is the document id or name the reference was checked against.
	Document string

	// Err is one of ErrInvalidReference or ErrReferenceNotFound.
	Err error
}

func (e *ReferenceError) Error() string {
	if e.Document == "" {
		return fmt.Sprintf("%q: %v", e.Reference, e.Err)
	}
	return fmt.Sprintf("%s: %q: %v", e.Document, e.Reference, e.Err)
}

func (e *ReferenceError) Unwrap() error {
	return e.Err
}

// NewInvalidReference returns a ReferenceError wrapping ErrInvalidReference.
func NewInvalidReference(document, reference string) error {
	return &ReferenceError{Reference: reference, Document: document, Err: ErrInvalidReference}
}

// NewReferenceNotFound returns a ReferenceError wrapping ErrReferenceNotFound.
func NewReferenceNotFound(document, reference string) error {
	return &ReferenceError{Reference: reference, Document: document, Err: ErrReferenceNotFound}
}
