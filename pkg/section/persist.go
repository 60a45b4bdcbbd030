package section

import (
	"encoding/json"
	"fmt"

	"github.com/inkfold/mdsurface/pkg/document"
)

// DefaultKeyPrefix namespaces fold-state keys in the shared store.
const DefaultKeyPrefix = "folds."

// Persister saves and restores the set of folded heading lines for a page.
// State is stored as a JSON array of 1-based line numbers, never as byte
// offsets, since offsets are invalidated by edits; on load each line is
// re-resolved through the section cache. Persistence is best-effort and
// never sits on the engine's hot path.
type Persister struct {
	store  Store
	prefix string
}

// NewPersister creates a Persister over the given store.
// An empty prefix selects DefaultKeyPrefix.
func NewPersister(store Store, prefix string) *Persister {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &Persister{store: store, prefix: prefix}
}

// Save writes the folded line set for a page. An empty set removes the key.
func (p *Persister) Save(pageID string, lines []int) error {
	key := p.prefix + pageID

	if len(lines) == 0 {
		if err := p.store.Delete(key); err != nil {
			return fmt.Errorf("clear fold state: %w", err)
		}
		return nil
	}

	payload, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("encode fold state: %w", err)
	}

	if err := p.store.Set(key, payload); err != nil {
		return fmt.Errorf("save fold state: %w", err)
	}
	return nil
}

// Load reads the folded line set for a page. A missing key yields nil.
// A value that fails to parse is treated as "no folds to restore" and the
// corrupt key is deleted so it cannot fail repeatedly.
func (p *Persister) Load(pageID string) ([]int, error) {
	key := p.prefix + pageID

	payload, ok, err := p.store.Get(key)
	if err != nil {
		return nil, fmt.Errorf("load fold state: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var lines []int
	if err := json.Unmarshal(payload, &lines); err != nil {
		_ = p.store.Delete(key)
		return nil, nil
	}

	return lines, nil
}

// Restore loads the saved fold lines for a page and re-resolves each one
// through the cache. Lines that no longer head a foldable section are
// dropped silently; the document has simply changed since the folds were
// saved.
func (p *Persister) Restore(cache *Cache, doc *document.Document, pageID string) ([]Section, error) {
	lines, err := p.Load(pageID)
	if err != nil {
		return nil, err
	}

	var sections []Section
	for _, line := range lines {
		if s, ok := cache.SectionStartingAt(doc, line); ok {
			sections = append(sections, s)
		}
	}

	return sections, nil
}
