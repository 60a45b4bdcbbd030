package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/inkfold/mdsurface/internal/logging"
	"github.com/inkfold/mdsurface/internal/ui/pretty"
	"github.com/inkfold/mdsurface/pkg/classify"
	"github.com/inkfold/mdsurface/pkg/config"
	"github.com/inkfold/mdsurface/pkg/document"
)

type classifyFlags struct {
	format   string
	fromLine int
	toLine   int
	watch    bool
}

func newClassifyCommand() *cobra.Command {
	flags := &classifyFlags{}

	cmd := &cobra.Command{
		Use:   "classify <file>",
		Short: "Classify each line of a Markdown file",
		Long: `Classify every line of a Markdown file into its syntactic zone:
heading, bullet item, ordered item, checkbox item, blockquote, thematic
break, fence delimiter, fence interior, or plain text.

Examples:
  mdsurface classify notes.md                 # Classify all lines
  mdsurface classify notes.md --from 10 --to 30
  mdsurface classify notes.md --format json   # Machine-readable output
  mdsurface classify notes.md --watch         # Re-classify on file change`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "Output format: text or json")
	cmd.Flags().IntVar(&flags.fromLine, "from", 0, "First line to classify (1-based)")
	cmd.Flags().IntVar(&flags.toLine, "to", 0, "Last line to classify (0 = end of file)")
	cmd.Flags().BoolVarP(&flags.watch, "watch", "w", false, "Re-classify when the file changes")

	return cmd
}

func runClassify(cmd *cobra.Command, path string, flags *classifyFlags) error {
	logger := logging.FromContext(cmd.Context())

	// Only flag-provided values go into the CLI layer; everything else is
	// left zero so file and env config can fill it in.
	cliCfg := &config.Config{
		Format: config.OutputFormat(flags.format),
		Watch:  flags.watch,
	}

	cfg, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}

	run := func() error {
		doc, err := readDocument(path)
		if err != nil {
			return err
		}
		vp := resolveViewport(doc, flags.fromLine, flags.toLine)

		logger.Debug("classifying",
			logging.FieldPath, path,
			logging.FieldFromLine, vp.FromLine,
			logging.FieldToLine, vp.ToLine,
		)

		tags := classify.ClassifyRange(doc, vp.FromLine, vp.ToLine)
		return writeClassification(cmd, cfg, doc, vp.FromLine, tags)
	}

	if err := run(); err != nil {
		return err
	}
	if !cfg.Watch {
		return nil
	}
	return watchFile(cmd, path, run)
}

// classificationRecord is the JSON shape of one classified line.
type classificationRecord struct {
	Line    int    `json:"line"`
	Tag     string `json:"tag"`
	Level   int    `json:"level,omitempty"`
	Indent  int    `json:"indent,omitempty"`
	Checked bool   `json:"checked,omitempty"`
	Number  string `json:"number,omitempty"`
	Info    string `json:"info,omitempty"`
}

func writeClassification(cmd *cobra.Command, cfg *config.Config, doc *document.Document, fromLine int, tags []classify.LineTag) error {
	out := cmd.OutOrStdout()

	if cfg.Format == config.FormatJSON {
		records := make([]classificationRecord, len(tags))
		for i, tag := range tags {
			records[i] = classificationRecord{
				Line:    fromLine + i,
				Tag:     tag.Tag.String(),
				Level:   tag.Level,
				Indent:  tag.Indent,
				Checked: tag.Checked,
				Number:  tag.Number,
				Info:    tag.Info,
			}
		}
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(records)
	}

	colorMode, _ := cmd.Flags().GetString("color")
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))

	fmt.Fprintln(out, styles.FormatDocumentHeader(doc))
	for i, tag := range tags {
		fmt.Fprintln(out, styles.FormatLineTag(doc, fromLine+i, tag))
	}
	return nil
}

// watchFile re-runs fn whenever path is written. The watch is placed on the
// containing directory so editors that replace the file (write to temp,
// rename over) keep triggering.
func watchFile(cmd *cobra.Command, path string, fn func() error) error {
	logger := logging.FromContext(cmd.Context())

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(absPath), err)
	}

	logger.Info("watching for changes", logging.FieldPath, path)

	ctx := cmd.Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != absPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			// A rename-over can race the reader; a missing file on this
			// pass will be picked up on the next event.
			if _, err := os.Stat(absPath); err != nil {
				continue
			}
			if err := fn(); err != nil {
				logger.Error("refresh failed", logging.FieldError, err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", logging.FieldError, err)
		}
	}
}
