// Package decorate computes the visible decoration set for a document
// viewport. Markdown punctuation is folded to zero width on lines the caret
// is not touching and shown in full on caret lines, so the user edits raw
// markdown but reads formatted text. Decoration never mutates the document;
// the one exception is the checkbox widget, whose activation yields a
// single-character edit.
//
// Cost scales with the viewport, not the document: only lines intersecting
// the viewport are scanned.
package decorate

// Kind identifies what a decoration range represents.
type Kind uint8

const (
	// KindHeadingMarker covers the '#' run and its trailing space.
	KindHeadingMarker Kind = iota

	// KindBulletMarker covers an unordered list marker ("- ").
	KindBulletMarker

	// KindOrderedMarker covers an ordered list marker ("3. ").
	KindOrderedMarker

	// KindBlockquoteMarker covers the '>' run and its trailing space.
	KindBlockquoteMarker

	// KindCheckboxToken covers the "[ ]" / "[x]" token a widget replaces.
	KindCheckboxToken

	// KindBold covers bold delimiters and interiors ("**…**").
	KindBold

	// KindUnderline covers underline delimiters and interiors ("__…__").
	KindUnderline

	// KindInlineCode covers inline code delimiters and interiors ("`…`").
	KindInlineCode

	// KindCodeBlock is the wrapper decoration over fenced code lines.
	KindCodeBlock
)

// String returns the kind name for logs and CLI output.
func (k Kind) String() string {
	switch k {
	case KindHeadingMarker:
		return "heading-marker"
	case KindBulletMarker:
		return "bullet-marker"
	case KindOrderedMarker:
		return "ordered-marker"
	case KindBlockquoteMarker:
		return "blockquote-marker"
	case KindCheckboxToken:
		return "checkbox-token"
	case KindBold:
		return "bold"
	case KindUnderline:
		return "underline"
	case KindInlineCode:
		return "inline-code"
	case KindCodeBlock:
		return "code-block"
	default:
		return "unknown"
	}
}

// Range is a single decoration over a byte range of the document.
// Ranges of the same kind never overlap. Hidden ranges stay in the model but
// render at zero width; marker ranges on caret lines are emitted with Hidden
// false so the user can edit the punctuation.
type Range struct {
	// From is the byte index where the decoration begins (inclusive).
	From int

	// To is the byte index where the decoration ends (exclusive).
	To int

	// Kind classifies the decoration.
	Kind Kind

	// Hidden marks ranges rendered at zero visual width.
	Hidden bool

	// Lang is the normalized language hint, set on KindCodeBlock ranges only.
	Lang string
}

// Viewport is the 1-based inclusive line range currently on screen.
type Viewport struct {
	FromLine int
	ToLine   int
}

// CaretLines is the set of 1-based lines the caret or selection touches.
// Markers on these lines are shown in full.
type CaretLines map[int]struct{}

// NewCaretLines builds a caret set from line numbers.
func NewCaretLines(lines ...int) CaretLines {
	set := make(CaretLines, len(lines))
	for _, line := range lines {
		set[line] = struct{}{}
	}
	return set
}

// Has reports whether the caret touches the given line.
func (c CaretLines) Has(line int) bool {
	_, ok := c[line]
	return ok
}
