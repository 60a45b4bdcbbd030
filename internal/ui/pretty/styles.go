// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Line tag styles
	Heading       lipgloss.Style
	Bullet        lipgloss.Style
	Ordered       lipgloss.Style
	Checkbox      lipgloss.Style
	Blockquote    lipgloss.Style
	ThematicBreak lipgloss.Style
	Fence         lipgloss.Style
	Plain         lipgloss.Style

	// Decoration styles
	Marker     lipgloss.Style
	HiddenText lipgloss.Style
	Emphasis   lipgloss.Style
	InlineCode lipgloss.Style
	CodeBlock  lipgloss.Style
	Lang       lipgloss.Style

	// Document components
	FilePath lipgloss.Style
	Location lipgloss.Style
	LineNum  lipgloss.Style

	// Summary styles
	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style

	// Table styles
	TableHeader    lipgloss.Style
	TableSeparator lipgloss.Style
	TableHidden    lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		Heading:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Bullet:        lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Ordered:       lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Checkbox:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Blockquote:    lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		ThematicBreak: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Fence:         lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Plain:         lipgloss.NewStyle(),

		Marker:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		HiddenText: lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true),
		Emphasis:   lipgloss.NewStyle().Bold(true),
		InlineCode: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		CodeBlock:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Lang:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),

		FilePath: lipgloss.NewStyle().Bold(true),
		Location: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		LineNum:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		SummaryTitle: lipgloss.NewStyle().Bold(true),
		SummaryValue: lipgloss.NewStyle(),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		TableHeader:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		TableSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		TableHidden:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Heading:        plain,
		Bullet:         plain,
		Ordered:        plain,
		Checkbox:       plain,
		Blockquote:     plain,
		ThematicBreak:  plain,
		Fence:          plain,
		Plain:          plain,
		Marker:         plain,
		HiddenText:     plain,
		Emphasis:       plain,
		InlineCode:     plain,
		CodeBlock:      plain,
		Lang:           plain,
		FilePath:       plain,
		Location:       plain,
		LineNum:        plain,
		SummaryTitle:   plain,
		SummaryValue:   plain,
		Success:        plain,
		Failure:        plain,
		TableHeader:    plain,
		TableSeparator: plain,
		TableHidden:    plain,
		Dim:            plain,
		Bold:           plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		// Check if output is a TTY
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
