package reference

import (
	"fmt"

	"github.com/custodia-labs/regdoc/internal/core/domain"
)

// CompositeReferenceChecker holds several grammars for one document, e.g. the
// main body and the annexes. Children are tried in order and the first one
// that reports the text valid is authoritative, even if a later child would
// tokenise the text differently.
type CompositeReferenceChecker struct {
	children []*ReferenceChecker
	byName   map[string]*ReferenceChecker
}

// NewCompositeReferenceChecker creates a composite checker. Priority is the
// argument order. Grammar names must be unique.
func NewCompositeReferenceChecker(children ...*ReferenceChecker) (*CompositeReferenceChecker, error) {
	if len(children) == 0 {
		return nil, fmt.Errorf("composite checker needs at least one grammar")
	}

	byName := make(map[string]*ReferenceChecker, len(children))
	for _, child := range children {
		if child == nil {
			return nil, fmt.Errorf("composite checker child cannot be nil")
		}
		if _, exists := byName[child.Name()]; exists {
			return nil, fmt.Errorf("grammar %q registered twice", child.Name())
		}
		byName[child.Name()] = child
	}

	return &CompositeReferenceChecker{children: children, byName: byName}, nil
}

// IsValid reports whether any child accepts the text.
func (c *CompositeReferenceChecker) IsValid(text string) bool {
	return c.accepting(text) != nil
}

// Parse delegates to the first child that accepts the text.
func (c *CompositeReferenceChecker) Parse(text string) (Reference, error) {
	child := c.accepting(text)
	if child == nil {
		return Reference{}, domain.NewInvalidReference("", text)
	}
	return child.Parse(text)
}

// Tokens returns the tokens produced by the first accepting child.
func (c *CompositeReferenceChecker) Tokens(text string) ([]string, error) {
	ref, err := c.Parse(text)
	if err != nil {
		return nil, err
	}
	return ref.Tokens, nil
}

// Canonical routes the reference to the child that produced it.
func (c *CompositeReferenceChecker) Canonical(ref Reference) (string, error) {
	child, ok := c.byName[ref.Grammar]
	if !ok {
		return "", fmt.Errorf("unknown grammar %q: %w", ref.Grammar, domain.ErrInvalidInput)
	}
	return child.Canonical(ref)
}

// Grammars returns the child grammar names in priority order.
func (c *CompositeReferenceChecker) Grammars() []string {
	names := make([]string, len(c.children))
	for i, child := range c.children {
		names[i] = child.Name()
	}
	return names
}

func (c *CompositeReferenceChecker) accepting(text string) *ReferenceChecker {
	for _, child := range c.children {
		if child.IsValid(text) {
			return child
		}
	}
	return nil
}
