// Package corpus holds a loaded regulatory document: its rows, the reference
// checker for its numbering schemes, and reference resolution over both.
//
// A Document is built once from a domain.Table and never modified, so it can
// be shared across goroutines without locking.
package corpus
