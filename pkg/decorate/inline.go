package decorate

import (
	"bytes"

	"github.com/inkfold/mdsurface/pkg/document"
)

// appendInlineRanges adds bold, underline, and inline-code spans for one
// non-fence line. Each completed span yields three ranges of its kind:
// opener delimiter, interior, closer delimiter. Delimiter ranges are hidden
// unless the caret touches the line; an unterminated opener yields nothing.
func appendInlineRanges(ranges []Range, doc *document.Document, line int, showMarkers bool) []Range {
	text := doc.LineContent(line)
	start, _, _ := doc.LineRange(line)
	hidden := !showMarkers

	ranges = appendDelimitedSpans(ranges, text, start, []byte("**"), KindBold, hidden, nil)
	ranges = appendDelimitedSpans(ranges, text, start, []byte("__"), KindUnderline, hidden, underscoreBoundaryOK)
	ranges = appendDelimitedSpans(ranges, text, start, []byte("`"), KindInlineCode, hidden, nil)

	return ranges
}

// boundaryFunc vets a delimiter occurrence; text is the whole line, at is
// the delimiter start, closing tells which side is being tested.
type boundaryFunc func(text []byte, at, delimLen int, closing bool) bool

// appendDelimitedSpans scans the line left to right for non-greedy
// delim…delim pairs and emits the three ranges per completed span.
func appendDelimitedSpans(ranges []Range, text []byte, lineStart int, delim []byte, kind Kind, hidden bool, boundary boundaryFunc) []Range {
	pos := 0
	for {
		open := nextDelimiter(text, pos, delim, boundary, false)
		if open < 0 {
			return ranges
		}

		interiorStart := open + len(delim)
		closeAt := nextDelimiter(text, interiorStart, delim, boundary, true)
		if closeAt < 0 {
			// Unterminated opener: no decoration for this run.
			return ranges
		}
		if closeAt == interiorStart {
			// Empty span ("****"); skip past the opener and keep scanning.
			pos = interiorStart
			continue
		}

		ranges = append(ranges,
			Range{From: lineStart + open, To: lineStart + interiorStart, Kind: kind, Hidden: hidden},
			Range{From: lineStart + interiorStart, To: lineStart + closeAt, Kind: kind},
			Range{From: lineStart + closeAt, To: lineStart + closeAt + len(delim), Kind: kind, Hidden: hidden},
		)

		pos = closeAt + len(delim)
	}
}

// nextDelimiter finds the next delimiter occurrence at or after pos that
// passes the boundary check, or -1.
func nextDelimiter(text []byte, pos int, delim []byte, boundary boundaryFunc, closing bool) int {
	for pos <= len(text)-len(delim) {
		idx := bytes.Index(text[pos:], delim)
		if idx < 0 {
			return -1
		}
		at := pos + idx
		if boundary == nil || boundary(text, at, len(delim), closing) {
			return at
		}
		pos = at + 1
	}
	return -1
}

// underscoreBoundaryOK implements the underscore-in-identifier guard: "__"
// delimits underline only when its outer side touches a non-identifier
// character (or the line edge), so "pkg__internal__name" is not decorated.
func underscoreBoundaryOK(text []byte, at, delimLen int, closing bool) bool {
	if closing {
		after := at + delimLen
		return after >= len(text) || !isIdentByte(text[after])
	}
	return at == 0 || !isIdentByte(text[at-1])
}

func isIdentByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}
