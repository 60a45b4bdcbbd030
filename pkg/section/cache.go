package section

import (
	"sync"
	"weak"

	"github.com/inkfold/mdsurface/pkg/document"
)

// DefaultMaxLines is the line-count guard above which folding is disabled.
// A full-document heading scan cannot be made viewport-local, so very large
// documents skip it instead of paying the cost on every lookup.
const DefaultMaxLines = 50000

// Cache memoizes section lists keyed by document identity. Entries hold only
// a weak handle to their document, so a cache entry never keeps a document
// alive and dies with it; no explicit teardown is required. Owners that
// retain one document value across structural edits must call Invalidate.
//
// Safe for concurrent use: a host may resolve folds from a render goroutine
// while another invalidates.
type Cache struct {
	mu       sync.Mutex
	maxLines int
	entries  map[uint64]cacheEntry
}

type cacheEntry struct {
	doc      weak.Pointer[document.Document]
	sections []Section
}

// NewCache creates a cache with the given line-count guard.
// maxLines <= 0 selects DefaultMaxLines.
func NewCache(maxLines int) *Cache {
	if maxLines <= 0 {
		maxLines = DefaultMaxLines
	}
	return &Cache{
		maxLines: maxLines,
		entries:  make(map[uint64]cacheEntry),
	}
}

// Sections returns the memoized section list for the document, building it
// on first access. Returns nil for documents above the line-count guard.
func (c *Cache) Sections(doc *document.Document) []Section {
	if doc.LineCount() > c.maxLines {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[doc.ID()]; ok && entry.doc.Value() == doc {
		return entry.sections
	}

	c.prune()

	sections := Build(doc)
	c.entries[doc.ID()] = cacheEntry{
		doc:      weak.Make(doc),
		sections: sections,
	}
	return sections
}

// SectionStartingAt returns the section whose heading is the given 1-based
// line, but only if that section is foldable (extends beyond the heading
// line). Above the line-count guard it returns false unconditionally.
func (c *Cache) SectionStartingAt(doc *document.Document, line int) (Section, bool) {
	if doc.LineCount() > c.maxLines {
		return Section{}, false
	}

	for _, s := range c.Sections(doc) {
		if s.HeadingLine == line {
			if !s.Foldable(doc) {
				return Section{}, false
			}
			return s, true
		}
		if s.HeadingLine > line {
			break
		}
	}

	return Section{}, false
}

// Invalidate drops the entry for the document, if any.
func (c *Cache) Invalidate(doc *document.Document) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, doc.ID())
}

// prune drops entries whose documents have been collected.
// Caller must hold mu.
func (c *Cache) prune() {
	for id, entry := range c.entries {
		if entry.doc.Value() == nil {
			delete(c.entries, id)
		}
	}
}

// Len returns the number of live entries, pruning dead ones first.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prune()
	return len(c.entries)
}
