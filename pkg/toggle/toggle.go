// Package toggle implements selection-scoped block-format toggles: bullet,
// ordered, checkbox, and blockquote. A toggle consumes the current selection,
// snaps it to whole lines, and emits one atomic text-replacement transaction;
// the host's history mechanism undoes it in a single step.
//
// Two policies coexist deliberately. Bullet, ordered, and blockquote use the
// uniform policy: the whole selection is inspected first, and either every
// line is stripped or every line gets the marker. Checkbox uses the per-line
// policy: each line decides independently, which makes repeated invocations
// cycle a plain selection through unchecked and checked states.
package toggle

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/inkfold/mdsurface/pkg/document"
	"github.com/inkfold/mdsurface/pkg/edit"
)

// Kind selects which block format a toggle targets.
type Kind uint8

const (
	// KindBullet toggles the "- " marker.
	KindBullet Kind = iota

	// KindOrdered toggles sequential "1. " markers.
	KindOrdered

	// KindCheckbox toggles "- [ ] " / "- [x] " task markers.
	KindCheckbox

	// KindBlockquote toggles the "> " marker.
	KindBlockquote
)

// String returns the kind name for logs and CLI flags.
func (k Kind) String() string {
	switch k {
	case KindBullet:
		return "bullet"
	case KindOrdered:
		return "ordered"
	case KindCheckbox:
		return "checkbox"
	case KindBlockquote:
		return "blockquote"
	default:
		return "unknown"
	}
}

// ParseKind converts a kind name (as accepted by the CLI) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "bullet":
		return KindBullet, nil
	case "ordered":
		return KindOrdered, nil
	case "checkbox":
		return KindCheckbox, nil
	case "blockquote":
		return KindBlockquote, nil
	default:
		return 0, fmt.Errorf("unknown toggle kind %q", s)
	}
}

// Request is a toggle command captured at invocation time. It is consumed
// once, producing exactly one transaction.
type Request struct {
	Selection document.Selection
	Kind      Kind
}

// Marker patterns, anchored at start of line after optional leading
// whitespace. Strip removes only the marker; leading whitespace survives.
var (
	bulletMarker     = regexp.MustCompile(`^([ \t]*)- `)
	blockquoteMarker = regexp.MustCompile(`^([ \t]*)> `)
	orderedMarker    = regexp.MustCompile(`^([ \t]*)(\d{1,9})[.)] `)
	checkboxMarker   = regexp.MustCompile(`^([ \t]*)([-*+]) \[([ xX])\]`)
)

// Toggle computes the transaction for applying kind to the lines spanned by
// the selection. Edits cover exactly the whole lines touched, snapped to
// line boundaries regardless of where the selection endpoints fall. The
// transformation is computed in full before any edit is emitted; there is no
// partial-application mode.
func Toggle(doc *document.Document, sel document.Selection, kind Kind) ([]edit.TextEdit, error) {
	first, last := sel.LineSpan(doc)

	builder := edit.NewBuilder()
	switch kind {
	case KindBullet:
		toggleUniform(doc, first, last, builder, bulletMarker, "- ")
	case KindBlockquote:
		toggleUniform(doc, first, last, builder, blockquoteMarker, "> ")
	case KindOrdered:
		toggleOrdered(doc, first, last, builder)
	case KindCheckbox:
		toggleCheckbox(doc, first, last, builder)
	default:
		return nil, fmt.Errorf("unknown toggle kind %d", kind)
	}

	return edit.Prepare(builder.Edits, len(doc.Content))
}

// Edits consumes the request against the document.
func (r Request) Edits(doc *document.Document) ([]edit.TextEdit, error) {
	return Toggle(doc, r.Selection, r.Kind)
}

// toggleUniform implements the whole-selection policy for bullet and
// blockquote. If every line already matches the marker, the marker is
// stripped from every line; otherwise the marker is prepended to every line
// unconditionally, even to lines already carrying this or another marker.
// Doubling ("- Has bullet" to "- - Has bullet") is the observed behavior and
// is kept as-is.
func toggleUniform(doc *document.Document, first, last int, builder *edit.Builder, marker *regexp.Regexp, prefix string) {
	if allLinesMatch(doc, first, last, marker) {
		for line := first; line <= last; line++ {
			stripMarker(doc, line, builder, marker)
		}
		return
	}

	for line := first; line <= last; line++ {
		start, _, _ := doc.LineRange(line)
		builder.Insert(start, prefix)
	}
}

// toggleOrdered implements the whole-selection policy for ordered lists.
// Uniform match strips every numeral marker. Otherwise each line receives a
// fresh sequential numeral 1..N; a pre-existing ordered marker is stripped
// first so renumbering does not double, while any other content (bullets,
// plain text) is left in place under the new numeral.
func toggleOrdered(doc *document.Document, first, last int, builder *edit.Builder) {
	if allLinesMatch(doc, first, last, orderedMarker) {
		for line := first; line <= last; line++ {
			stripMarker(doc, line, builder, orderedMarker)
		}
		return
	}

	number := 1
	for line := first; line <= last; line++ {
		text := doc.LineContent(line)
		start, _, _ := doc.LineRange(line)
		numeral := strconv.Itoa(number) + ". "
		number++

		if m := orderedMarker.FindSubmatchIndex(text); m != nil {
			// Swap the old numeral marker for the new one in place, keeping
			// the leading whitespace.
			builder.ReplaceRange(start+m[4], start+m[1], numeral)
			continue
		}

		builder.Insert(start, numeral)
	}
}

// toggleCheckbox implements the per-line policy. Each selected line is
// evaluated independently, so mixed selections converge instead of
// flip-flopping: existing checkboxes flip their state in place, bare bullets
// gain an unchecked box, and anything else gains a full "- [ ] " prefix.
func toggleCheckbox(doc *document.Document, first, last int, builder *edit.Builder) {
	for line := first; line <= last; line++ {
		text := doc.LineContent(line)
		start, _, _ := doc.LineRange(line)

		if m := checkboxMarker.FindSubmatchIndex(text); m != nil {
			// m[6]:m[7] is the state character inside the brackets.
			state := " "
			if text[m[6]] == ' ' {
				state = "x"
			}
			builder.ReplaceRange(start+m[6], start+m[7], state)
			continue
		}

		if m := bulletMarker.FindSubmatchIndex(text); m != nil {
			builder.Insert(start+m[1], "[ ] ")
			continue
		}

		builder.Insert(start, "- [ ] ")
	}
}

// allLinesMatch reports whether every line in [first, last] matches the
// marker pattern at start of line.
func allLinesMatch(doc *document.Document, first, last int, marker *regexp.Regexp) bool {
	for line := first; line <= last; line++ {
		if !marker.Match(doc.LineContent(line)) {
			return false
		}
	}
	return true
}

// stripMarker removes the matched marker from a line, preserving leading
// whitespace and everything after the marker.
func stripMarker(doc *document.Document, line int, builder *edit.Builder, marker *regexp.Regexp) {
	text := doc.LineContent(line)
	m := marker.FindSubmatchIndex(text)
	if m == nil {
		return
	}

	start, _, _ := doc.LineRange(line)
	// Delete from the end of the leading whitespace to the end of the match.
	builder.Delete(start+m[3], start+m[1])
}
