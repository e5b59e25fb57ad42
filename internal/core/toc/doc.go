// Package toc builds tables of contents from loaded documents and exposes
// them to position-only consumers.
//
// Build turns one corpus.Document into a tree with one node per distinct
// reference prefix. A Forest places the trees of several documents under a
// single synthetic root and numbers every node in pre-order, so a caller that
// can only hand back an integer can still address a section.
package toc
