// Package services implements the driving port interfaces.
// Services contain the core logic and orchestrate calls to driven ports
// (adapters).
//
// All services share one Library: the documents of the catalogue and their
// combined table of contents, built on first use and immutable afterwards.
package services
