package toc

import (
	"fmt"
	"iter"
	"sync"
	"sync/atomic"

	"github.com/custodia-labs/regdoc/internal/core/domain"
)

// CorpusRootName is the name of the synthetic node above all documents.
const CorpusRootName = "Corpus"

// Item is a node at its pre-order position.
type Item struct {
	// Index is the position in the flattened sequence, 0 for the forest root.
	Index int

	// Depth is the distance from the forest root.
	Depth int

	Node *Node
}

// TocItem returns the display form of the item.
func (it Item) TocItem() domain.TocItem {
	return item(it.Index, it.Depth, it.Node)
}

// Forest is a set of document trees under one synthetic root. It is immutable
// once built and safe for concurrent use.
type Forest struct {
	root *Node

	flat  func() []Item
	built atomic.Bool
}

// NewForest places the trees under a synthetic "Corpus" root, in the order given.
func NewForest(trees ...*Node) *Forest {
	root := &Node{Name: CorpusRootName, Children: append([]*Node(nil), trees...)}
	return newForest(root)
}

// NewTree wraps a single tree so it can be navigated on its own.
func NewTree(root *Node) *Forest {
	return newForest(root)
}

func newForest(root *Node) *Forest {
	f := &Forest{root: root}
	f.flat = sync.OnceValue(func() []Item {
		var items []Item
		for it := range f.All() {
			items = append(items, it)
		}
		f.built.Store(true)
		return items
	})
	return f
}

// Root returns the synthetic root.
func (f *Forest) Root() *Node {
	return f.root
}

// All yields every node in pre-order: a node, then each child subtree in
// child order. Stopping the iteration stops the walk.
func (f *Forest) All() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		index := 0
		var walk func(n *Node, depth int) bool
		walk = func(n *Node, depth int) bool {
			if !yield(Item{Index: index, Depth: depth, Node: n}) {
				return false
			}
			index++
			for _, child := range n.Children {
				if !walk(child, depth+1) {
					return false
				}
			}
			return true
		}
		walk(f.root, 0)
	}
}

// Flatten returns the pre-order sequence. It is computed on first call and
// reused afterwards; callers must not modify the returned slice.
func (f *Forest) Flatten() []Item {
	return f.flat()
}

// Len returns the number of nodes, root included.
func (f *Forest) Len() int {
	return len(f.flat())
}

// NthItem returns the node at position n of the pre-order sequence.
// Before Flatten has run it walks the forest and stops at n.
// Returns an error wrapping domain.ErrIndexOutOfRange when n is negative or
// not below the number of nodes.
func (f *Forest) NthItem(n int) (Item, error) {
	if n < 0 {
		return Item{}, outOfRange(n)
	}

	if f.built.Load() {
		items := f.flat()
		if n >= len(items) {
			return Item{}, outOfRange(n)
		}
		return items[n], nil
	}

	for it := range f.All() {
		if it.Index == n {
			return it, nil
		}
	}
	return Item{}, outOfRange(n)
}

// Items returns the display form of every node in pre-order.
func (f *Forest) Items() []domain.TocItem {
	flat := f.Flatten()
	items := make([]domain.TocItem, len(flat))
	for i, it := range flat {
		items[i] = it.TocItem()
	}
	return items
}

func outOfRange(n int) error {
	return fmt.Errorf("table of contents item %d: %w", n, domain.ErrIndexOutOfRange)
}
