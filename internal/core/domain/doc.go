// Package domain defines the core business entities for regdoc.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Table / Row: the tabular corpus of one regulatory document
//   - TextOptions / Scope: how section text is assembled
//   - TocItem: one position in the flattened table of contents
//   - DocumentInfo: catalogue metadata for a loaded document
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
