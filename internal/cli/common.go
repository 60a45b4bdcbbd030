package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inkfold/mdsurface/internal/configloader"
	"github.com/inkfold/mdsurface/pkg/config"
	"github.com/inkfold/mdsurface/pkg/decorate"
	"github.com/inkfold/mdsurface/pkg/document"
)

// loadConfig resolves the effective configuration for a command, merging
// config files, environment, and the given CLI overrides.
func loadConfig(cmd *cobra.Command, cliCfg *config.Config) (*config.Config, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	result, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	return result.Config, nil
}

// readDocument loads a markdown file into a document value.
func readDocument(path string) (*document.Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return document.New(path, content), nil
}

// resolveViewport builds a viewport from --from/--to flags; 0 for toLine
// means end of document.
func resolveViewport(doc *document.Document, fromLine, toLine int) decorate.Viewport {
	if fromLine < 1 {
		fromLine = 1
	}
	if toLine < 1 || toLine > doc.LineCount() {
		toLine = doc.LineCount()
	}
	return decorate.Viewport{FromLine: fromLine, ToLine: toLine}
}

// parseSelection parses a "start:end" byte-offset pair (or a single caret
// offset) into a selection.
func parseSelection(spec string, contentLen int) (document.Selection, error) {
	if spec == "" {
		return document.Selection{StartOffset: 0, EndOffset: contentLen}, nil
	}

	start, end, found := strings.Cut(spec, ":")
	startOffset, err := strconv.Atoi(start)
	if err != nil {
		return document.Selection{}, fmt.Errorf("invalid selection %q: %w", spec, err)
	}
	if !found {
		return document.Caret(startOffset), nil
	}

	endOffset, err := strconv.Atoi(end)
	if err != nil {
		return document.Selection{}, fmt.Errorf("invalid selection %q: %w", spec, err)
	}

	return document.Selection{StartOffset: startOffset, EndOffset: endOffset}, nil
}
