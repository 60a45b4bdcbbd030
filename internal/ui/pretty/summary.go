package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/inkfold/mdsurface/pkg/document"
)

const summaryDividerWidth = 40

// DocumentStats holds the per-document counts the summary block renders.
type DocumentStats struct {
	Sections    int
	Foldable    int
	Decorations int
	Hidden      int
	Widgets     int
}

// FormatDocumentHeader formats a one-line document header.
// Example: "notes.md  (340 lines, 12 KiB)".
func (s *Styles) FormatDocumentHeader(doc *document.Document) string {
	lineWord := "lines"
	if doc.LineCount() == 1 {
		lineWord = "line"
	}
	return s.FilePath.Render(doc.Path) +
		s.Dim.Render(fmt.Sprintf("  (%s %s, %s)",
			humanize.Comma(int64(doc.LineCount())), lineWord,
			humanize.IBytes(uint64(len(doc.Content)))))
}

// FormatSummary formats document statistics as a summary block.
func (s *Styles) FormatSummary(doc *document.Document, stats DocumentStats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Lines:        " +
		s.SummaryValue.Render(humanize.Comma(int64(doc.LineCount()))) + "\n")
	builder.WriteString("  Size:         " +
		s.SummaryValue.Render(humanize.IBytes(uint64(len(doc.Content)))) + "\n")

	if stats.Sections > 0 {
		builder.WriteString("  Sections:     " +
			s.SummaryValue.Render(strconv.Itoa(stats.Sections)) + "\n")
		builder.WriteString("    Foldable:   " +
			s.SummaryValue.Render(strconv.Itoa(stats.Foldable)) + "\n")
	}

	if stats.Decorations > 0 {
		builder.WriteString("  Decorations:  " +
			s.SummaryValue.Render(strconv.Itoa(stats.Decorations)) + "\n")
		builder.WriteString("    Hidden:     " +
			s.SummaryValue.Render(strconv.Itoa(stats.Hidden)) + "\n")
	}

	if stats.Widgets > 0 {
		builder.WriteString("  Checkboxes:   " +
			s.SummaryValue.Render(strconv.Itoa(stats.Widgets)) + "\n")
	}

	return builder.String()
}
