package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/inkfold/mdsurface/internal/logging"
	"github.com/inkfold/mdsurface/internal/ui/pretty"
	"github.com/inkfold/mdsurface/pkg/config"
	"github.com/inkfold/mdsurface/pkg/decorate"
	"github.com/inkfold/mdsurface/pkg/document"
)

type decorateFlags struct {
	format     string
	fromLine   int
	toLine     int
	caretLines []int
	showHidden bool
	widgets    bool
}

func newDecorateCommand() *cobra.Command {
	flags := &decorateFlags{}

	cmd := &cobra.Command{
		Use:   "decorate <file>",
		Short: "Compute the decoration set for a viewport",
		Long: `Compute the decoration ranges an editor would render for a viewport of
a Markdown file: hidden punctuation markers, inline span triples, code
block wrappers with language hints, and checkbox tokens.

Markers on caret lines are reported visible; everything else that folds
to zero width is reported hidden and omitted unless --show-hidden is set.

Examples:
  mdsurface decorate notes.md --from 1 --to 40
  mdsurface decorate notes.md --caret 12 --show-hidden
  mdsurface decorate notes.md --format table
  mdsurface decorate notes.md --widgets      # List checkbox widgets`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecorate(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "Output format: text, table, or json")
	cmd.Flags().IntVar(&flags.fromLine, "from", 0, "First viewport line (1-based)")
	cmd.Flags().IntVar(&flags.toLine, "to", 0, "Last viewport line (0 = end of file)")
	cmd.Flags().IntSliceVar(&flags.caretLines, "caret", nil, "Lines the caret touches (markers shown)")
	cmd.Flags().BoolVar(&flags.showHidden, "show-hidden", false, "Include zero-width ranges in the output")
	cmd.Flags().BoolVar(&flags.widgets, "widgets", false, "List checkbox widgets instead of ranges")

	return cmd
}

func runDecorate(cmd *cobra.Command, path string, flags *decorateFlags) error {
	logger := logging.FromContext(cmd.Context())

	cliCfg := &config.Config{
		Format:     config.OutputFormat(flags.format),
		ShowHidden: flags.showHidden,
	}

	cfg, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}

	doc, err := readDocument(path)
	if err != nil {
		return err
	}
	vp := resolveViewport(doc, flags.fromLine, flags.toLine)

	if flags.widgets {
		return writeWidgets(cmd, cfg, doc, vp)
	}

	caret := decorate.NewCaretLines(flags.caretLines...)
	ranges := decorate.Decorate(doc, vp, caret)

	logger.Debug("decorated viewport",
		logging.FieldPath, path,
		logging.FieldFromLine, vp.FromLine,
		logging.FieldToLine, vp.ToLine,
		logging.FieldDecorations, len(ranges),
	)

	if !cfg.ShowHidden {
		visible := ranges[:0]
		for _, r := range ranges {
			if !r.Hidden {
				visible = append(visible, r)
			}
		}
		ranges = visible
	}

	return writeDecorations(cmd, cfg, doc, ranges)
}

// decorationRecord is the JSON shape of one decoration range.
type decorationRecord struct {
	From   int    `json:"from"`
	To     int    `json:"to"`
	Kind   string `json:"kind"`
	Hidden bool   `json:"hidden"`
	Lang   string `json:"lang,omitempty"`
}

func writeDecorations(cmd *cobra.Command, cfg *config.Config, doc *document.Document, ranges []decorate.Range) error {
	out := cmd.OutOrStdout()

	switch cfg.Format {
	case config.FormatJSON:
		records := make([]decorationRecord, len(ranges))
		for i, r := range ranges {
			records[i] = decorationRecord{
				From:   r.From,
				To:     r.To,
				Kind:   r.Kind.String(),
				Hidden: r.Hidden,
				Lang:   r.Lang,
			}
		}
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(records)

	case config.FormatTable:
		styles := outputStyles(cmd)
		formatter := pretty.NewTableFormatter(styles, terminalWidth())
		fmt.Fprint(out, formatter.FormatDecorationTable(doc, ranges))
		return nil

	default:
		styles := outputStyles(cmd)
		fmt.Fprintln(out, styles.FormatDocumentHeader(doc))
		for _, r := range ranges {
			fmt.Fprintln(out, styles.FormatDecoration(doc, r))
		}
		return nil
	}
}

// widgetRecord is the JSON shape of one checkbox widget.
type widgetRecord struct {
	Line    int  `json:"line"`
	From    int  `json:"from"`
	To      int  `json:"to"`
	Checked bool `json:"checked"`
}

func writeWidgets(cmd *cobra.Command, cfg *config.Config, doc *document.Document, vp decorate.Viewport) error {
	out := cmd.OutOrStdout()
	widgets := decorate.CheckboxWidgets(doc, vp)

	if cfg.Format == config.FormatJSON {
		records := make([]widgetRecord, len(widgets))
		for i, w := range widgets {
			records[i] = widgetRecord{
				Line:    w.Line,
				From:    w.TokenFrom,
				To:      w.TokenTo,
				Checked: w.Checked,
			}
		}
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(records)
	}

	styles := outputStyles(cmd)
	for _, w := range widgets {
		fmt.Fprintln(out, styles.FormatWidget(w))
	}
	return nil
}

// outputStyles builds the style set honoring the --color flag.
func outputStyles(cmd *cobra.Command) *pretty.Styles {
	colorMode, _ := cmd.Flags().GetString("color")
	return pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))
}

// terminalWidth returns the stdout width, or a reasonable default when
// stdout is not a terminal.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 100
}
