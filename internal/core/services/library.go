package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/regdoc/internal/core/corpus"
	"github.com/custodia-labs/regdoc/internal/core/domain"
	"github.com/custodia-labs/regdoc/internal/core/ports/driven"
	"github.com/custodia-labs/regdoc/internal/core/toc"
	"github.com/custodia-labs/regdoc/internal/documents"
	"github.com/custodia-labs/regdoc/internal/logger"
)

// Library is the loaded corpus: every document plus the combined table of
// contents. It is never modified after construction.
type Library struct {
	documents []*corpus.Document
	byID      map[string]*corpus.Document
	trees     map[string]*toc.Node
	forest    *toc.Forest
}

// NewLibrary builds the table of contents for the documents, keeping their order.
func NewLibrary(docs ...*corpus.Document) *Library {
	l := &Library{
		documents: docs,
		byID:      make(map[string]*corpus.Document, len(docs)),
		trees:     make(map[string]*toc.Node, len(docs)),
	}

	roots := make([]*toc.Node, 0, len(docs))
	for _, doc := range docs {
		tree := toc.Build(doc)
		l.byID[doc.ID()] = doc
		l.trees[doc.ID()] = tree
		roots = append(roots, tree)
	}
	l.forest = toc.NewForest(roots...)

	return l
}

// LoadLibrary loads the tables of the catalogue entries from source and
// validates them. The first failing document aborts the load.
func LoadLibrary(ctx context.Context, source driven.TableSource, entries []documents.Entry) (*Library, error) {
	if source == nil {
		return nil, fmt.Errorf("table source: %w", domain.ErrNotImplemented)
	}

	logger.Section("Loading corpus")
	defer logger.Timed("loading corpus")()

	docs := make([]*corpus.Document, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		checker, err := entry.Checker()
		if err != nil {
			return nil, err
		}
		table, err := source.Load(ctx, entry.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", entry.ID, err)
		}
		doc, err := corpus.New(entry.ID, entry.Name, table, checker)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded %s (%d rows)", entry.ID, doc.Len())
		docs = append(docs, doc)
	}

	lib := NewLibrary(docs...)
	logger.Debug("table of contents has %d entries", lib.forest.Len())
	return lib, nil
}

// Documents returns the documents in catalogue order.
func (l *Library) Documents() []*corpus.Document {
	return l.documents
}

// Document returns a document by id.
func (l *Library) Document(id string) (*corpus.Document, error) {
	doc, ok := l.byID[id]
	if !ok {
		return nil, fmt.Errorf("%q: %w", id, domain.ErrUnknownDocument)
	}
	return doc, nil
}

// Tree returns the table of contents of one document.
func (l *Library) Tree(id string) (*toc.Node, error) {
	tree, ok := l.trees[id]
	if !ok {
		return nil, fmt.Errorf("%q: %w", id, domain.ErrUnknownDocument)
	}
	return tree, nil
}

// Forest returns the combined table of contents.
func (l *Library) Forest() *toc.Forest {
	return l.forest
}

// LibraryLoader builds the Library once per process, on first use.
// Concurrent first callers share one build and its result, including a failure.
type LibraryLoader struct {
	load func() (*Library, error)
}

// NewLibraryLoader returns a loader for the given entries.
func NewLibraryLoader(source driven.TableSource, entries []documents.Entry) *LibraryLoader {
	return &LibraryLoader{
		load: sync.OnceValues(func() (*Library, error) {
			return LoadLibrary(context.Background(), source, entries)
		}),
	}
}

// NewStaticLoader returns a loader for an already built Library.
func NewStaticLoader(lib *Library) *LibraryLoader {
	return &LibraryLoader{
		load: func() (*Library, error) { return lib, nil },
	}
}

// Get returns the Library, building it on the first call.
// The build is not tied to ctx; a cancelled caller gives up waiting only
// before the build starts.
func (l *LibraryLoader) Get(ctx context.Context) (*Library, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return l.load()
}
