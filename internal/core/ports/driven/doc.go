// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
//   - TableSource: loads a document's tabular corpus (CSV directory, SQLite, memory)
//   - CorpusStore: stores imported corpora in the local database
//   - TableFileReader: reads a corpus file offered for import
//   - ConfigStore: application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
