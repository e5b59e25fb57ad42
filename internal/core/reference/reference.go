package reference

import "strings"

// Reference is a parsed reference: the grammar that accepted it and its level
// tokens, shallowest first.
type Reference struct {
	Grammar string
	Tokens  []string
}

// Depth returns the number of levels the reference addresses.
func (r Reference) Depth() int {
	return len(r.Tokens)
}

// Equal reports whether both references address the same node.
func (r Reference) Equal(other Reference) bool {
	return r.Grammar == other.Grammar && r.HasPrefix(other) && len(r.Tokens) == len(other.Tokens)
}

// HasPrefix reports whether prefix addresses r or one of its ancestors.
// Matching is per token: "3" is a prefix of "3.1" but not of "30".
func (r Reference) HasPrefix(prefix Reference) bool {
	if r.Grammar != prefix.Grammar || len(prefix.Tokens) > len(r.Tokens) {
		return false
	}
	for i, tok := range prefix.Tokens {
		if r.Tokens[i] != tok {
			return false
		}
	}
	return true
}

// Prefix returns the ancestor of r at the given depth.
func (r Reference) Prefix(depth int) Reference {
	if depth > len(r.Tokens) {
		depth = len(r.Tokens)
	}
	tokens := make([]string, depth)
	copy(tokens, r.Tokens[:depth])
	return Reference{Grammar: r.Grammar, Tokens: tokens}
}

// Key returns a string that is equal for equal references and distinct across
// grammars, usable as a map key.
func (r Reference) Key() string {
	return r.Grammar + "\x00" + strings.Join(r.Tokens, "\x1f")
}
