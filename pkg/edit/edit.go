// Package edit provides the text-edit transaction model for mdsurface.
// Every mutation the engine produces, whether a four-line block toggle or a
// one-byte checkbox flip, is expressed as a set of TextEdits that the host
// editor applies as a single atomic transaction. One transaction means one
// undo step in the host's history.
package edit

// TextEdit represents a single text replacement in a document.
type TextEdit struct {
	// StartOffset is the byte index where the edit begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the edit ends (exclusive).
	EndOffset int

	// NewText is the replacement text.
	NewText string
}

// Builder accumulates text edits for one transaction.
type Builder struct {
	Edits []TextEdit
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		Edits: make([]TextEdit, 0),
	}
}

// ReplaceRange adds an edit that replaces bytes [start, end) with newText.
func (b *Builder) ReplaceRange(start, end int, newText string) {
	b.Edits = append(b.Edits, TextEdit{
		StartOffset: start,
		EndOffset:   end,
		NewText:     newText,
	})
}

// Insert adds an edit that inserts text at the given offset.
func (b *Builder) Insert(offset int, text string) {
	b.ReplaceRange(offset, offset, text)
}

// Delete adds an edit that deletes bytes [start, end).
func (b *Builder) Delete(start, end int) {
	b.ReplaceRange(start, end, "")
}
