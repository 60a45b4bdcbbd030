package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/inkfold/mdsurface/internal/logging"
	"github.com/inkfold/mdsurface/internal/ui/pretty"
	"github.com/inkfold/mdsurface/pkg/config"
	"github.com/inkfold/mdsurface/pkg/document"
	"github.com/inkfold/mdsurface/pkg/section"
)

type sectionsFlags struct {
	format    string
	find      string
	pageID    string
	saveFolds []int
}

func newSectionsCommand() *cobra.Command {
	flags := &sectionsFlags{}

	cmd := &cobra.Command{
		Use:   "sections <file>",
		Short: "List the foldable sections of a Markdown file",
		Long: `Derive the heading-rooted sections of a Markdown file. Each section
spans from its heading to the next heading of equal or higher rank, and
is foldable when it has at least one body line.

With --page, persisted fold state for that page is loaded from the
configured store and folded sections are marked. With --save-folds, the
given heading lines are persisted as the page's fold state instead.

Examples:
  mdsurface sections notes.md
  mdsurface sections notes.md --find "api design"
  mdsurface sections notes.md --page notes --save-folds 3,12
  mdsurface sections notes.md --page notes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSections(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&flags.find, "find", "", "Fuzzy-match sections by heading text")
	cmd.Flags().StringVar(&flags.pageID, "page", "", "Page identifier for fold persistence")
	cmd.Flags().IntSliceVar(&flags.saveFolds, "save-folds", nil, "Heading lines to persist as folded")

	return cmd
}

func runSections(cmd *cobra.Command, path string, flags *sectionsFlags) error {
	logger := logging.FromContext(cmd.Context())

	cliCfg := &config.Config{
		Format: config.OutputFormat(flags.format),
	}

	cfg, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}

	doc, err := readDocument(path)
	if err != nil {
		return err
	}

	cache := section.NewCache(cfg.Folds.MaxScanLines)
	sections := cache.Sections(doc)

	logger.Debug("derived sections",
		logging.FieldPath, path,
		logging.FieldLines, doc.LineCount(),
		logging.FieldSections, len(sections),
	)

	if flags.find != "" {
		sections = findSections(doc, sections, flags.find)
	}

	folded := map[int]bool{}
	if flags.pageID != "" {
		persister, err := newPersister(cfg)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("save-folds") {
			if err := persister.Save(flags.pageID, flags.saveFolds); err != nil {
				return fmt.Errorf("save folds: %w", err)
			}
			logger.Info("saved fold state",
				logging.FieldPage, flags.pageID,
				logging.FieldFolds, len(flags.saveFolds),
			)
		}
		restored, err := persister.Restore(cache, doc, flags.pageID)
		if err != nil {
			return fmt.Errorf("restore folds: %w", err)
		}
		for _, sec := range restored {
			folded[sec.HeadingLine] = true
		}
	}

	return writeSections(cmd, cfg, doc, sections, folded)
}

// newPersister builds the fold persister from config; an empty store dir
// falls back to a process-local memory store.
func newPersister(cfg *config.Config) (*section.Persister, error) {
	if cfg.Folds.StoreDir == "" {
		return section.NewPersister(section.NewMemoryStore(), cfg.Folds.KeyPrefix), nil
	}
	store, err := section.NewFileStore(cfg.Folds.StoreDir)
	if err != nil {
		return nil, fmt.Errorf("open fold store: %w", err)
	}
	return section.NewPersister(store, cfg.Folds.KeyPrefix), nil
}

// findSections fuzzy-matches sections against their heading text and
// returns them in match-rank order.
func findSections(doc *document.Document, sections []section.Section, query string) []section.Section {
	headings := make([]string, len(sections))
	for i, sec := range sections {
		headings[i] = headingText(doc, sec)
	}

	matches := fuzzy.Find(query, headings)
	matched := make([]section.Section, len(matches))
	for i, m := range matches {
		matched[i] = sections[m.Index]
	}
	return matched
}

// headingText returns the heading line with its marker stripped.
func headingText(doc *document.Document, sec section.Section) string {
	text := string(doc.LineContent(sec.HeadingLine))
	return strings.TrimLeft(strings.TrimLeft(text, "#"), " ")
}

// sectionRecord is the JSON shape of one section.
type sectionRecord struct {
	HeadingLine int    `json:"heading_line"`
	Level       int    `json:"level"`
	From        int    `json:"from"`
	To          int    `json:"to"`
	Heading     string `json:"heading"`
	Foldable    bool   `json:"foldable"`
	Folded      bool   `json:"folded,omitempty"`
}

func writeSections(cmd *cobra.Command, cfg *config.Config, doc *document.Document, sections []section.Section, folded map[int]bool) error {
	out := cmd.OutOrStdout()

	if cfg.Format == config.FormatJSON {
		records := make([]sectionRecord, len(sections))
		for i, sec := range sections {
			records[i] = sectionRecord{
				HeadingLine: sec.HeadingLine,
				Level:       sec.Level,
				From:        sec.From,
				To:          sec.To,
				Heading:     headingText(doc, sec),
				Foldable:    sec.Foldable(doc),
				Folded:      folded[sec.HeadingLine],
			}
		}
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(records)
	}

	styles := outputStyles(cmd)
	fmt.Fprintln(out, styles.FormatDocumentHeader(doc))
	foldable := 0
	for _, sec := range sections {
		if sec.Foldable(doc) {
			foldable++
		}
		line := styles.FormatSection(doc, sec)
		if folded[sec.HeadingLine] {
			line += " [folded]"
		}
		fmt.Fprintln(out, line)
	}
	fmt.Fprint(out, styles.FormatSummary(doc, pretty.DocumentStats{
		Sections: len(sections),
		Foldable: foldable,
	}))
	return nil
}
