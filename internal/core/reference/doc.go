// Package reference validates and parses the short section references used to
// address regulatory documents ("3.2", "Annex 2", "II.A.4", "5(1)(a)").
//
// A Grammar describes one numbering scheme as an ordered list of level patterns,
// a full-reference pattern and a list of excluded literals. A ReferenceChecker
// wraps one grammar; a CompositeReferenceChecker tries several in a fixed
// priority order, first acceptance wins.
//
// Everything in this package is immutable after construction and safe for
// concurrent use.
package reference
