package decorate

import (
	"regexp"

	"github.com/inkfold/mdsurface/pkg/classify"
	"github.com/inkfold/mdsurface/pkg/document"
	"github.com/inkfold/mdsurface/pkg/langdetect"
)

// Marker locator patterns. These find the exact marker substrings to hide;
// classification already decided what each line is.
var (
	headingMarkerPattern    = regexp.MustCompile(`^#{1,6}[ \t]?`)
	checkboxMarkerPattern   = regexp.MustCompile(`^([ \t]*)([-*+] )\[([ xX])\][ \t]?`)
	bulletMarkerPattern     = regexp.MustCompile(`^([ \t]*)([-*+][ \t]+)`)
	orderedMarkerPattern    = regexp.MustCompile(`^([ \t]*)(\d{1,9}[.)][ \t]+)`)
	blockquoteMarkerPattern = regexp.MustCompile(`^([ \t]*)(>+[ \t]?)`)
)

// Decorate computes the decoration set for the lines of doc intersecting the
// viewport. Marker substrings become hidden ranges unless their line is in
// caretLines. Fence lines get only the code-block wrapper decoration; no
// marker or inline decoration applies inside a fence, so a '#' line in a
// fenced block stays plain text.
//
// Decorate derives fence state itself, which costs a delimiter scan of the
// prefix above the viewport. Hosts on the keystroke path should maintain a
// classify.FenceField across edits and call DecorateWithFence, whose cost
// scales with the viewport alone.
func Decorate(doc *document.Document, vp Viewport, caretLines CaretLines) []Range {
	fromLine, toLine := clampViewport(doc, vp)
	if toLine < fromLine {
		return nil
	}

	tags := classify.ClassifyRange(doc, fromLine, toLine)
	return decorateLines(doc, tags, fromLine, toLine, caretLines,
		classify.EnteringFence(doc, fromLine))
}

// DecorateWithFence is Decorate with the fence prefix scans replaced by
// lookups in an incrementally-maintained fence field.
func DecorateWithFence(doc *document.Document, fence *classify.FenceField, vp Viewport, caretLines CaretLines) []Range {
	fromLine, toLine := clampViewport(doc, vp)
	if toLine < fromLine {
		return nil
	}

	tags := classify.ClassifyRangeWithFence(doc, fence, fromLine, toLine)
	return decorateLines(doc, tags, fromLine, toLine, caretLines, fence.Entering(fromLine))
}

func decorateLines(doc *document.Document, tags []classify.LineTag, fromLine, toLine int, caretLines CaretLines, entering bool) []Range {

	var ranges []Range
	inFence := entering
	line := fromLine
	for line <= toLine {
		tag := tags[line-fromLine]

		if tag.Tag == classify.TagFenceDelimiter || tag.Tag == classify.TagFenceInterior {
			var block Range
			block, line, inFence = codeBlockRange(doc, tags, fromLine, toLine, line, inFence)
			ranges = append(ranges, block)
			continue
		}

		showMarkers := caretLines.Has(line)
		ranges = appendMarkerRanges(ranges, doc, tag, line, showMarkers)
		ranges = appendInlineRanges(ranges, doc, line, showMarkers)
		line++
	}

	return ranges
}

// codeBlockRange emits the wrapper decoration for one fenced block starting
// at line, given the fence state the run is entered with. The run ends at the
// closing delimiter, so back-to-back blocks each get their own wrapper; it
// returns the range, the first line past the run, and the fence state after
// it. The language hint comes from the opening delimiter's info string, or
// from content detection when the block is unlabeled or its opener is
// scrolled out of view.
func codeBlockRange(doc *document.Document, tags []classify.LineTag, fromLine, toLine, line int, inFence bool) (Range, int, bool) {
	start, _, _ := doc.LineRange(line)

	lang := ""
	interiorFrom, interiorTo := -1, -1
	end := start

	last := line
	for last <= toLine {
		tag := tags[last-fromLine]
		if tag.Tag != classify.TagFenceDelimiter && tag.Tag != classify.TagFenceInterior {
			break
		}
		lineStart, lineEnd, _ := doc.LineRange(last)
		end = lineEnd

		if tag.Tag == classify.TagFenceDelimiter {
			if inFence {
				// Closing delimiter: the block ends here.
				inFence = false
				last++
				break
			}
			inFence = true
			if tag.Info != "" {
				lang = langdetect.Normalize(tag.Info)
			}
		} else {
			if interiorFrom < 0 {
				interiorFrom = lineStart
			}
			interiorTo = lineEnd
		}
		last++
	}

	if lang == "" && interiorFrom >= 0 {
		lang = langdetect.Detect(doc.Content[interiorFrom:interiorTo])
	}

	return Range{From: start, To: end, Kind: KindCodeBlock, Lang: lang}, last, inFence
}

// appendMarkerRanges adds the hidden-marker decoration for a block line.
func appendMarkerRanges(ranges []Range, doc *document.Document, tag classify.LineTag, line int, showMarkers bool) []Range {
	text := doc.LineContent(line)
	start, _, _ := doc.LineRange(line)
	hidden := !showMarkers

	switch tag.Tag {
	case classify.TagHeading:
		if m := headingMarkerPattern.FindIndex(text); m != nil {
			ranges = append(ranges, Range{
				From: start + m[0], To: start + m[1],
				Kind: KindHeadingMarker, Hidden: hidden,
			})
		}

	case classify.TagCheckboxItem:
		if m := checkboxMarkerPattern.FindSubmatchIndex(text); m != nil {
			// Bullet part hides like any list marker; the bracket token gets
			// its own range for the widget to replace.
			ranges = append(ranges, Range{
				From: start + m[4], To: start + m[5],
				Kind: KindBulletMarker, Hidden: hidden,
			})
			ranges = append(ranges, Range{
				From: start + m[5], To: start + m[7] + 1,
				Kind: KindCheckboxToken, Hidden: hidden,
			})
		}

	case classify.TagBulletItem:
		if m := bulletMarkerPattern.FindSubmatchIndex(text); m != nil {
			ranges = append(ranges, Range{
				From: start + m[4], To: start + m[5],
				Kind: KindBulletMarker, Hidden: hidden,
			})
		}

	case classify.TagOrderedItem:
		if m := orderedMarkerPattern.FindSubmatchIndex(text); m != nil {
			ranges = append(ranges, Range{
				From: start + m[4], To: start + m[5],
				Kind: KindOrderedMarker, Hidden: hidden,
			})
		}

	case classify.TagBlockquote:
		if m := blockquoteMarkerPattern.FindSubmatchIndex(text); m != nil {
			ranges = append(ranges, Range{
				From: start + m[4], To: start + m[5],
				Kind: KindBlockquoteMarker, Hidden: hidden,
			})
		}

	case classify.TagPlain, classify.TagThematicBreak,
		classify.TagFenceDelimiter, classify.TagFenceInterior:
		// No marker decoration.
	}

	return ranges
}

func clampViewport(doc *document.Document, vp Viewport) (int, int) {
	fromLine := vp.FromLine
	toLine := vp.ToLine
	if fromLine < 1 {
		fromLine = 1
	}
	if toLine > doc.LineCount() {
		toLine = doc.LineCount()
	}
	return fromLine, toLine
}
