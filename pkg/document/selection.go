package document

// Selection is a byte-offset range in a document, as reported by the host
// editor. Start and End may fall anywhere, including mid-line; an empty
// selection (Start == End) is a caret.
type Selection struct {
	// StartOffset is the byte index where the selection begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the selection ends (exclusive).
	EndOffset int
}

// Caret returns a zero-width selection at the given offset.
func Caret(offset int) Selection {
	return Selection{StartOffset: offset, EndOffset: offset}
}

// IsCaret returns true if the selection is zero-width.
func (s Selection) IsCaret() bool {
	return s.StartOffset == s.EndOffset
}

// normalized returns the selection with Start <= End.
func (s Selection) normalized() Selection {
	if s.EndOffset < s.StartOffset {
		return Selection{StartOffset: s.EndOffset, EndOffset: s.StartOffset}
	}
	return s
}

// LineSpan returns the 1-based first and last lines touched by the selection,
// snapped to whole lines regardless of where the endpoints fall mid-line.
// A caret spans the single line containing it.
//
// A selection ending exactly at the start of a line (immediately after the
// previous line's newline) still includes that line; hosts that want the
// common "exclude the line a selection merely ends on" behavior should trim
// the selection before calling.
func (s Selection) LineSpan(doc *Document) (int, int) {
	n := s.normalized()

	first, _ := doc.LineAt(clampOffset(n.StartOffset, len(doc.Content)))
	last, _ := doc.LineAt(clampOffset(n.EndOffset, len(doc.Content)))

	if first < 1 {
		first = 1
	}
	if last < first {
		last = first
	}
	return first, last
}

func clampOffset(offset, contentLen int) int {
	if offset < 0 {
		return 0
	}
	if offset > contentLen {
		return contentLen
	}
	return offset
}
