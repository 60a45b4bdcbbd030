package classify

import (
	"regexp"

	"github.com/inkfold/mdsurface/pkg/document"
)

// Block grammar patterns. Matching is per line; none of these cross lines.
var (
	// fencePattern matches a code fence delimiter: three or more backticks,
	// optionally followed by an info string, alone on the line.
	fencePattern = regexp.MustCompile("^[ \t]*(`{3,})[ \t]*([^`\r\n]*?)[ \t]*$")

	// headingPattern matches ATX headings.
	headingPattern = regexp.MustCompile(`^(#{1,6})(?:[ \t]+.*)?$`)

	// checkboxPattern matches task list items. Tested before bulletPattern
	// because a checkbox line also matches the bullet pattern as a prefix.
	checkboxPattern = regexp.MustCompile(`^([ \t]*)[-*+] \[([ xX])\](?:[ \t].*)?$`)

	// bulletPattern matches unordered list items, including empty ones
	// ("- " with no content yet).
	bulletPattern = regexp.MustCompile(`^([ \t]*)([-*+])[ \t]+`)

	// orderedPattern matches ordered list items.
	orderedPattern = regexp.MustCompile(`^([ \t]*)(\d{1,9})[.)][ \t]+`)

	// blockquotePattern matches quoted lines.
	blockquotePattern = regexp.MustCompile(`^([ \t]*)(>+)`)

	// thematicBreakPattern matches horizontal rules.
	thematicBreakPattern = regexp.MustCompile(`^[ \t]*((-[ \t]*){3,}|(\*[ \t]*){3,}|(_[ \t]*){3,})$`)
)

// Classify tags every line of the document in a single forward pass.
// The result has exactly one entry per line, indexed by line-1.
func Classify(doc *document.Document) []LineTag {
	tags := make([]LineTag, doc.LineCount())
	inFence := false

	for line := 1; line <= doc.LineCount(); line++ {
		tags[line-1], inFence = classifyLine(doc.LineContent(line), inFence)
	}

	return tags
}

// ClassifyRange tags only lines [fromLine, toLine], clamped to the document.
// Fence state is the single whole-document dependency, so the prefix is
// scanned for delimiters only; full tag matching runs just on the requested
// lines. Cost is O(prefix delimiter scan + range size). Callers that hold a
// maintained FenceField should use ClassifyRangeWithFence, which skips the
// prefix scan entirely.
func ClassifyRange(doc *document.Document, fromLine, toLine int) []LineTag {
	if fromLine < 1 {
		fromLine = 1
	}
	if toLine > doc.LineCount() {
		toLine = doc.LineCount()
	}
	if toLine < fromLine {
		return nil
	}

	return classifyLines(doc, fromLine, toLine, EnteringFence(doc, fromLine))
}

// EnteringFence reports whether line begins inside a fenced code block,
// derived from a delimiter parity scan of the preceding lines. A delimiter
// line itself enters with the state left by the line above it, so the opening
// fence of a block enters false and the closing fence enters true.
func EnteringFence(doc *document.Document, line int) bool {
	inFence := false
	for l := 1; l < line; l++ {
		if fencePattern.Match(doc.LineContent(l)) {
			inFence = !inFence
		}
	}
	return inFence
}

// ClassifyRangeWithFence tags lines [fromLine, toLine] using an
// incrementally-maintained fence field for the entry state, so cost scales
// with the range size alone. The field must be current for doc.
func ClassifyRangeWithFence(doc *document.Document, fence *FenceField, fromLine, toLine int) []LineTag {
	if fromLine < 1 {
		fromLine = 1
	}
	if toLine > doc.LineCount() {
		toLine = doc.LineCount()
	}
	if toLine < fromLine {
		return nil
	}

	return classifyLines(doc, fromLine, toLine, fence.Entering(fromLine))
}

func classifyLines(doc *document.Document, fromLine, toLine int, inFence bool) []LineTag {
	tags := make([]LineTag, 0, toLine-fromLine+1)
	for line := fromLine; line <= toLine; line++ {
		var tag LineTag
		tag, inFence = classifyLine(doc.LineContent(line), inFence)
		tags = append(tags, tag)
	}
	return tags
}

// classifyLine tags a single line given the fence state carried from the
// previous line, returning the tag and the state to carry forward.
func classifyLine(text []byte, inFence bool) (LineTag, bool) {
	if m := fencePattern.FindSubmatch(text); m != nil {
		return LineTag{Tag: TagFenceDelimiter, Info: string(m[2])}, !inFence
	}

	if inFence {
		return LineTag{Tag: TagFenceInterior}, true
	}

	// Priority order matters: heading before list kinds, checkbox before
	// bullet, bullet before thematic break ('* * *' is a bullet item here).
	if m := headingPattern.FindSubmatch(text); m != nil {
		return LineTag{Tag: TagHeading, Level: len(m[1])}, false
	}

	if m := checkboxPattern.FindSubmatch(text); m != nil {
		return LineTag{
			Tag:     TagCheckboxItem,
			Indent:  indentUnits(m[1]),
			Checked: m[2][0] == 'x' || m[2][0] == 'X',
		}, false
	}

	if m := bulletPattern.FindSubmatch(text); m != nil {
		return LineTag{Tag: TagBulletItem, Indent: indentUnits(m[1])}, false
	}

	if m := orderedPattern.FindSubmatch(text); m != nil {
		return LineTag{
			Tag:    TagOrderedItem,
			Indent: indentUnits(m[1]),
			Number: string(m[2]),
		}, false
	}

	if m := blockquotePattern.FindSubmatch(text); m != nil {
		return LineTag{Tag: TagBlockquote, Indent: indentUnits(m[1]), Level: len(m[2])}, false
	}

	if thematicBreakPattern.Match(text) {
		return LineTag{Tag: TagThematicBreak}, false
	}

	return LineTag{Tag: TagPlain}, false
}

// indentUnits counts leading-whitespace units. A tab counts as one unit, the
// same as a space; indentation depth is ordinal, not columnar.
func indentUnits(leading []byte) int {
	return len(leading)
}
