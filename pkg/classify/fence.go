package classify

import "github.com/inkfold/mdsurface/pkg/document"

// FenceField is the per-line "inside a fenced code block" state.
// A line is inside a fence iff an odd number of fence-delimiter lines precede
// it; delimiter lines themselves are not inside (the opener starts the block
// after itself, the closer ends it at itself). A document with zero
// delimiters is false everywhere. An unterminated opener leaves the rest of
// the document inside, by design.
//
// The field is recomputed on every document change; Update diffs from the
// first changed line onward and is guaranteed to produce the same result as
// a full recompute. Hosts keep one field per open document so that
// viewport-scoped classification and decoration never pay a whole-document
// scan per call.
type FenceField struct {
	// entry[i] is the fence state carried into line i+1.
	entry []bool

	// delims[i] is true iff line i+1 matches the fence delimiter pattern.
	delims []bool
}

// NewFenceField computes the fence field for a whole document.
func NewFenceField(doc *document.Document) *FenceField {
	f := &FenceField{}
	f.recompute(doc, 1)
	return f
}

// Inside reports whether the 1-based line is inside a fenced code block.
// Delimiter lines are not inside; out-of-range lines are outside.
func (f *FenceField) Inside(line int) bool {
	if line < 1 || line > len(f.entry) {
		return false
	}
	return f.entry[line-1] && !f.delims[line-1]
}

// Entering returns the fence state carried into the 1-based line, the value
// a mid-document classification pass starts from.
func (f *FenceField) Entering(line int) bool {
	if line < 1 || line > len(f.entry) {
		return false
	}
	return f.entry[line-1]
}

// IsDelimiter reports whether the 1-based line is a fence delimiter.
func (f *FenceField) IsDelimiter(line int) bool {
	if line < 1 || line > len(f.delims) {
		return false
	}
	return f.delims[line-1]
}

// LineCount returns the number of lines covered by the field.
func (f *FenceField) LineCount() int {
	return len(f.entry)
}

// Update recomputes the field for a changed document, rescanning only from
// firstChangedLine onward. Fence state can only change at a changed
// delimiter line, so the state entering firstChangedLine is derived from the
// cached delimiter flags of the unchanged prefix.
func (f *FenceField) Update(doc *document.Document, firstChangedLine int) {
	if firstChangedLine < 1 {
		firstChangedLine = 1
	}
	if firstChangedLine > len(f.delims)+1 {
		firstChangedLine = len(f.delims) + 1
	}
	f.recompute(doc, firstChangedLine)
}

func (f *FenceField) recompute(doc *document.Document, fromLine int) {
	n := doc.LineCount()

	inFence := false
	for i := 0; i < fromLine-1 && i < len(f.delims); i++ {
		if f.delims[i] {
			inFence = !inFence
		}
	}

	entry := make([]bool, n)
	delims := make([]bool, n)
	copy(entry, f.entry)
	copy(delims, f.delims)

	for line := fromLine; line <= n; line++ {
		entry[line-1] = inFence
		isDelim := fencePattern.Match(doc.LineContent(line))
		delims[line-1] = isDelim
		if isDelim {
			inFence = !inFence
		}
	}

	f.entry = entry
	f.delims = delims
}

// FenceStates returns the per-line fence field as a plain slice, true for
// lines inside a fenced block. Convenience for callers that do not retain a
// FenceField across edits.
func FenceStates(doc *document.Document) []bool {
	f := NewFenceField(doc)
	states := make([]bool, len(f.entry))
	for i := range states {
		states[i] = f.entry[i] && !f.delims[i]
	}
	return states
}
