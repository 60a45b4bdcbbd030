// Package classify implements per-line classification of markdown text.
// Classification is regex-driven, one forward pass, with no grammar tree:
// every line gets exactly one tag, derived from the line's own text plus the
// fence state carried from the previous line. The grammar is intentionally
// small; anything unmatched is plain text, never an error.
package classify

// Tag identifies the syntactic zone of a single line.
type Tag uint8

const (
	// TagPlain is any line not matching the block grammar.
	TagPlain Tag = iota

	// TagHeading is an ATX heading line ('#' through '######').
	TagHeading

	// TagBulletItem is an unordered list item ('-', '*', '+').
	TagBulletItem

	// TagOrderedItem is an ordered list item ('1.', '2)').
	TagOrderedItem

	// TagCheckboxItem is a task list item ('- [ ]', '- [x]').
	TagCheckboxItem

	// TagBlockquote is a quoted line ('>', '>>').
	TagBlockquote

	// TagThematicBreak is a horizontal rule line.
	TagThematicBreak

	// TagFenceDelimiter is a code fence open/close line (``` plus optional info).
	TagFenceDelimiter

	// TagFenceInterior is any line inside a fenced code block.
	TagFenceInterior
)

// String returns the tag name for logs and CLI output.
func (t Tag) String() string {
	switch t {
	case TagPlain:
		return "plain"
	case TagHeading:
		return "heading"
	case TagBulletItem:
		return "bullet-item"
	case TagOrderedItem:
		return "ordered-item"
	case TagCheckboxItem:
		return "checkbox-item"
	case TagBlockquote:
		return "blockquote"
	case TagThematicBreak:
		return "thematic-break"
	case TagFenceDelimiter:
		return "fence-delimiter"
	case TagFenceInterior:
		return "fence-interior"
	default:
		return "unknown"
	}
}

// LineTag is the classification record for one line.
// Exactly one LineTag exists per line; fields beyond Tag are populated only
// where they apply.
type LineTag struct {
	// Tag is the syntactic zone of the line.
	Tag Tag

	// Level is the heading level (1-6) or blockquote depth (count of '>').
	Level int

	// Indent is the count of leading-whitespace units before the marker.
	// Any deeper run of leading whitespace is one level deeper; there is no
	// multiple-of-N requirement.
	Indent int

	// Checked is the checkbox state for TagCheckboxItem lines.
	Checked bool

	// Number is the numeral text of an ordered marker (e.g. "12"), without
	// the delimiter.
	Number string

	// Info is the info string of a TagFenceDelimiter line (e.g. "go"), empty
	// for bare fences and for non-delimiter lines.
	Info string
}
