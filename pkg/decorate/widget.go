package decorate

import (
	"github.com/inkfold/mdsurface/pkg/classify"
	"github.com/inkfold/mdsurface/pkg/document"
	"github.com/inkfold/mdsurface/pkg/edit"
)

// Widget is the interactive replacement for a checkbox token. Activating it
// flips the checked state through a single-character edit at the bracket
// interior; the surrounding text is never rewritten.
type Widget struct {
	// Line is the 1-based line carrying the checkbox.
	Line int

	// TokenFrom and TokenTo are the byte range of the "[ ]" / "[x]" token.
	TokenFrom int
	TokenTo   int

	// stateOffset is the byte offset of the state character inside the
	// brackets.
	stateOffset int

	// Checked is the current state.
	Checked bool
}

// ToggleEdit returns the one-character transaction that flips the checkbox.
func (w Widget) ToggleEdit() edit.TextEdit {
	state := " "
	if !w.Checked {
		state = "x"
	}
	return edit.TextEdit{
		StartOffset: w.stateOffset,
		EndOffset:   w.stateOffset + 1,
		NewText:     state,
	}
}

// CheckboxWidgets returns one widget per checkbox item in the viewport.
func CheckboxWidgets(doc *document.Document, vp Viewport) []Widget {
	fromLine, toLine := clampViewport(doc, vp)
	if toLine < fromLine {
		return nil
	}

	tags := classify.ClassifyRange(doc, fromLine, toLine)

	var widgets []Widget
	for line := fromLine; line <= toLine; line++ {
		if tags[line-fromLine].Tag != classify.TagCheckboxItem {
			continue
		}

		text := doc.LineContent(line)
		m := checkboxMarkerPattern.FindSubmatchIndex(text)
		if m == nil {
			continue
		}

		start, _, _ := doc.LineRange(line)
		widgets = append(widgets, Widget{
			Line:        line,
			TokenFrom:   start + m[5],
			TokenTo:     start + m[7] + 1,
			stateOffset: start + m[6],
			Checked:     text[m[6]] == 'x' || text[m[6]] == 'X',
		})
	}

	return widgets
}
