package document

import (
	"fmt"

	"github.com/inkfold/mdsurface/pkg/edit"
)

// Apply returns a new Document with the transaction applied as one atomic
// step. The receiver is untouched; the result carries a fresh identity, so
// caches keyed on the old document are implicitly orphaned.
// A transaction that fails validation is not applied at all.
func (d *Document) Apply(edits []edit.TextEdit) (*Document, error) {
	prepared, err := edit.Prepare(edits, len(d.Content))
	if err != nil {
		return nil, fmt.Errorf("apply edits: %w", err)
	}

	return New(d.Path, edit.Apply(d.Content, prepared)), nil
}
