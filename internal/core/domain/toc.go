package domain

// TocItem is one position of the flattened table of contents.
// Index is stable for the lifetime of the process.
type TocItem struct {
	// Index is the pre-order position; 0 is the synthetic corpus root.
	Index int

	// Depth is 0 for the corpus root, 1 for documents, 2+ for sections.
	Depth int

	// Label is the canonical reference of the node, empty for synthetic nodes.
	Label string

	// Heading is the heading text, empty for synthetic and grouping nodes.
	Heading string

	// Reference is the fetchable reference, empty when the node has no text of its own.
	Reference string

	// DocumentID identifies the source document, empty for the corpus root.
	DocumentID string

	// Name is the display name of synthetic nodes (corpus root, document roots).
	Name string

	// HasChildren reports whether the node has children.
	HasChildren bool
}

// Title returns the display label of the item.
func (i TocItem) Title() string {
	if i.Reference == "" {
		if i.Label != "" {
			return i.Label
		}
		return i.Name
	}
	if i.Heading == "" {
		return i.Reference
	}
	return i.Reference + " " + i.Heading
}

// Selectable reports whether the item addresses fetchable text.
func (i TocItem) Selectable() bool {
	return i.Reference != "" && i.DocumentID != ""
}
