package pretty

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/inkfold/mdsurface/pkg/decorate"
	"github.com/inkfold/mdsurface/pkg/document"
)

// Table formatting constants.
const (
	tablePadding     = 2
	minKindWidth     = 12
	minTextWidth     = 20
	heavySeparator   = "="
	defaultTermWidth = 100
)

// TableRow represents a single row in the decoration table.
type TableRow struct {
	Line   int
	Range  string
	Kind   string
	Hidden bool
	Text   string
}

// TableFormatter formats decoration ranges as a styled table.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:    styles,
		termWidth: termWidth,
	}
}

// FormatDecorationTable formats a decoration set as a table.
func (t *TableFormatter) FormatDecorationTable(doc *document.Document, ranges []decorate.Range) string {
	if len(ranges) == 0 {
		return ""
	}

	rows := make([]TableRow, 0, len(ranges))
	for _, r := range ranges {
		line, _ := doc.LineAt(r.From)
		kind := r.Kind.String()
		if r.Kind == decorate.KindCodeBlock && r.Lang != "" {
			kind += " (" + r.Lang + ")"
		}
		rows = append(rows, TableRow{
			Line:   line,
			Range:  fmt.Sprintf("[%d:%d)", r.From, r.To),
			Kind:   kind,
			Hidden: r.Hidden,
			Text:   snippetAt(doc, r.From, r.To),
		})
	}

	widths := t.calculateColumnWidths(rows)

	var builder strings.Builder
	builder.WriteString(t.formatHeader(widths))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(widths))
	builder.WriteString("\n")

	for _, row := range rows {
		builder.WriteString(t.formatRow(row, widths))
		builder.WriteString("\n")
	}

	builder.WriteString(t.formatSeparator(widths))
	builder.WriteString("\n")

	return builder.String()
}

type columnWidths struct {
	line int
	rng  int
	kind int
	text int
}

// calculateColumnWidths determines column widths based on content, display
// width aware so wide runes in snippets do not break alignment.
func (t *TableFormatter) calculateColumnWidths(rows []TableRow) columnWidths {
	widths := columnWidths{
		line: len("LINE"),
		rng:  len("RANGE"),
		kind: minKindWidth,
		text: minTextWidth,
	}

	for _, row := range rows {
		if w := len(fmt.Sprintf("%d", row.Line)); w > widths.line {
			widths.line = w
		}
		if w := len(row.Range); w > widths.rng {
			widths.rng = w
		}
		if w := runewidth.StringWidth(row.Kind); w > widths.kind {
			widths.kind = w
		}
		if w := runewidth.StringWidth(row.Text); w > widths.text {
			widths.text = w
		}
	}

	// Constrain to terminal width; the text column gives way first.
	totalWidth := t.calculateTotalWidth(widths)
	if totalWidth > t.termWidth {
		excess := totalWidth - t.termWidth
		widths.text = max(minTextWidth, widths.text-excess)
	}

	return widths
}

func (t *TableFormatter) calculateTotalWidth(widths columnWidths) int {
	const columnCount = 5 // LINE, RANGE, KIND, VIS, TEXT
	return widths.line + widths.rng + widths.kind + len("hidden") + widths.text +
		tablePadding*columnCount
}

// formatHeader formats the table header row.
func (t *TableFormatter) formatHeader(widths columnWidths) string {
	header := fmt.Sprintf(" %-*s  %-*s  %-*s  %-6s  %s",
		widths.line, "LINE",
		widths.rng, "RANGE",
		widths.kind, "KIND",
		"VIS",
		"TEXT",
	)
	return t.styles.TableHeader.Render(header)
}

// formatSeparator formats a separator line.
func (t *TableFormatter) formatSeparator(widths columnWidths) string {
	sep := strings.Repeat(heavySeparator, t.calculateTotalWidth(widths))
	return t.styles.TableSeparator.Render(sep)
}

// formatRow formats a single table row.
func (t *TableFormatter) formatRow(row TableRow, widths columnWidths) string {
	visibility := "shown"
	style := t.styles.Plain
	if row.Hidden {
		visibility = "hidden"
		style = t.styles.TableHidden
	}

	text := runewidth.Truncate(row.Text, widths.text, "…")

	content := fmt.Sprintf(" %*d  %-*s  %-*s  %-6s  %s",
		widths.line, row.Line,
		widths.rng, row.Range,
		widths.kind, row.Kind,
		visibility,
		text,
	)

	return style.Render(content)
}
