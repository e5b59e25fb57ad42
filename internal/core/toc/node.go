package toc

import (
	"strings"

	"github.com/custodia-labs/regdoc/internal/core/corpus"
	"github.com/custodia-labs/regdoc/internal/core/domain"
	"github.com/custodia-labs/regdoc/internal/core/reference"
)

// Node is one entry of a table of contents.
type Node struct {
	// Name is set on synthetic nodes: the corpus root and document roots.
	Name string

	// Label is the canonical reference of the node, empty on synthetic nodes.
	Label string

	// Heading is the heading of the row that addresses this node exactly.
	Heading string

	// FullReference is the reference to fetch text with. Empty on synthetic
	// nodes and on grouping nodes no row addresses exactly.
	FullReference string

	// Children are in corpus order.
	Children []*Node

	// Document is the document the node was built from. It is a lookup key,
	// the Forest owns the nodes. Nil on the corpus root.
	Document *corpus.Document
}

// Title returns the display text of the node.
func (n *Node) Title() string {
	switch {
	case n.Label == "":
		return n.Name
	case n.Heading == "":
		return n.Label
	default:
		return n.Label + " " + n.Heading
	}
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Build creates the table of contents of a document. The root is a synthetic
// node named after the document.
func Build(doc *corpus.Document) *Node {
	root := &Node{Name: doc.Name(), Document: doc}
	nodes := make(map[string]*Node)

	for _, e := range doc.Entries() {
		parent := root
		for depth := 1; depth <= e.Reference.Depth(); depth++ {
			prefix := e.Reference.Prefix(depth)
			key := prefix.Key()

			node, ok := nodes[key]
			if !ok {
				node = &Node{Label: label(doc, prefix), Document: doc}
				nodes[key] = node
				parent.Children = append(parent.Children, node)
			}
			parent = node
		}

		if parent.FullReference == "" {
			parent.FullReference = e.Canonical
		}
		if parent.Heading == "" {
			parent.Heading = e.Row.Heading
		}
	}

	return root
}

// label renders a reference prefix with the document's separators.
func label(doc *corpus.Document, prefix reference.Reference) string {
	s, err := doc.Checker().Canonical(prefix)
	if err != nil {
		return strings.Join(prefix.Tokens, ".")
	}
	return s
}

// item converts a positioned node to its display form.
func item(index, depth int, n *Node) domain.TocItem {
	it := domain.TocItem{
		Index:       index,
		Depth:       depth,
		Label:       n.Label,
		Heading:     n.Heading,
		Reference:   n.FullReference,
		Name:        n.Name,
		HasChildren: len(n.Children) > 0,
	}
	if n.Document != nil {
		it.DocumentID = n.Document.ID()
	}
	return it
}
