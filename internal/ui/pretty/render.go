package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/inkfold/mdsurface/pkg/classify"
	"github.com/inkfold/mdsurface/pkg/decorate"
	"github.com/inkfold/mdsurface/pkg/document"
	"github.com/inkfold/mdsurface/pkg/section"
)

// snippetWidth caps the text excerpt shown next to a range.
const snippetWidth = 40

// FormatLineTag formats one classified line for terminal output:
// "  12  heading(2)      ## Title".
func (s *Styles) FormatLineTag(doc *document.Document, line int, tag classify.LineTag) string {
	label := tag.Tag.String()
	switch tag.Tag {
	case classify.TagHeading, classify.TagBlockquote:
		label = fmt.Sprintf("%s(%d)", label, tag.Level)
	case classify.TagCheckboxItem:
		if tag.Checked {
			label += "(x)"
		} else {
			label += "( )"
		}
	case classify.TagOrderedItem:
		label = fmt.Sprintf("%s(%s)", label, tag.Number)
	case classify.TagFenceDelimiter:
		if tag.Info != "" {
			label = fmt.Sprintf("%s(%s)", label, tag.Info)
		}
	}

	text := truncate.StringWithTail(string(doc.LineContent(line)), snippetWidth, "…")

	return fmt.Sprintf("  %s  %-22s %s",
		s.LineNum.Render(fmt.Sprintf("%4d", line)),
		s.tagStyle(tag.Tag).Render(label),
		s.Plain.Render(text),
	)
}

// FormatDecoration formats one decoration range:
// "  [3:14)   bold        hidden  **".
func (s *Styles) FormatDecoration(doc *document.Document, r decorate.Range) string {
	visibility := "shown "
	style := s.Plain
	if r.Hidden {
		visibility = "hidden"
		style = s.TableHidden
	}

	kind := r.Kind.String()
	if r.Kind == decorate.KindCodeBlock && r.Lang != "" {
		kind += " " + s.Lang.Render("("+r.Lang+")")
	}

	snippet := snippetAt(doc, r.From, r.To)

	return fmt.Sprintf("  %-12s %-24s %s  %s",
		s.Location.Render(fmt.Sprintf("[%d:%d)", r.From, r.To)),
		kind,
		s.Dim.Render(visibility),
		style.Render(snippet),
	)
}

// FormatSection formats one section for terminal output:
// "  5  ## Title  (lines 5-12, foldable)".
func (s *Styles) FormatSection(doc *document.Document, sec section.Section) string {
	heading := strings.TrimRight(string(doc.LineContent(sec.HeadingLine)), " \t")
	heading = truncate.StringWithTail(heading, snippetWidth, "…")

	endLine, _ := doc.LineAt(max(sec.To-1, sec.From))
	state := "foldable"
	if !sec.Foldable(doc) {
		state = "empty"
	}

	return fmt.Sprintf("  %s  %s  %s",
		s.LineNum.Render(fmt.Sprintf("%4d", sec.HeadingLine)),
		s.Heading.Render(heading),
		s.Dim.Render(fmt.Sprintf("(lines %d-%d, %s)", sec.HeadingLine, endLine, state)),
	)
}

// FormatWidget formats one checkbox widget:
// "  3  [x]  checked".
func (s *Styles) FormatWidget(w decorate.Widget) string {
	token := "[ ]"
	state := "unchecked"
	if w.Checked {
		token = "[x]"
		state = "checked"
	}

	return fmt.Sprintf("  %s  %s  %s",
		s.LineNum.Render(fmt.Sprintf("%4d", w.Line)),
		s.Checkbox.Render(token),
		s.Dim.Render(state),
	)
}

// tagStyle maps a line tag to its display style.
func (s *Styles) tagStyle(tag classify.Tag) lipgloss.Style {
	switch tag {
	case classify.TagHeading:
		return s.Heading
	case classify.TagBulletItem:
		return s.Bullet
	case classify.TagOrderedItem:
		return s.Ordered
	case classify.TagCheckboxItem:
		return s.Checkbox
	case classify.TagBlockquote:
		return s.Blockquote
	case classify.TagThematicBreak:
		return s.ThematicBreak
	case classify.TagFenceDelimiter, classify.TagFenceInterior:
		return s.Fence
	default:
		return s.Plain
	}
}

// snippetAt extracts a one-line display excerpt of a byte range.
func snippetAt(doc *document.Document, from, to int) string {
	if from < 0 || to > len(doc.Content) || to <= from {
		return ""
	}
	text := string(doc.Content[from:to])
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		text = text[:idx] + "⏎"
	}
	return truncate.StringWithTail(text, snippetWidth, "…")
}
