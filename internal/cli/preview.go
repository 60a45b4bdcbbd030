package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/inkfold/mdsurface/internal/logging"
	"github.com/inkfold/mdsurface/pkg/config"
)

// maxPreviewWidth caps auto-detected terminal width for readability.
const maxPreviewWidth = 120

type previewFlags struct {
	theme string
	width int
}

func newPreviewCommand() *cobra.Command {
	flags := &previewFlags{}

	cmd := &cobra.Command{
		Use:   "preview <file>",
		Short: "Render a Markdown file to the terminal",
		Long: `Render a Markdown file as styled terminal output. This is the static
counterpart of the live decoration surface: instead of per-range folding
it produces a fully formatted read-only view.

The theme and wrap width come from configuration and can be overridden
per invocation. With theme "auto", a dark or light style is picked from
the terminal background, falling back to plain output when stdout is not
a terminal.

Examples:
  mdsurface preview notes.md
  mdsurface preview notes.md --theme light --width 100`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.theme, "theme", "", "Style theme: auto, dark, light, or notty")
	cmd.Flags().IntVar(&flags.width, "width", 0, "Wrap width in columns (0 = detect)")

	return cmd
}

func runPreview(cmd *cobra.Command, path string, flags *previewFlags) error {
	logger := logging.FromContext(cmd.Context())

	cliCfg := &config.Config{}
	if cmd.Flags().Changed("theme") {
		cliCfg.Theme = config.Theme(flags.theme)
	}
	if cmd.Flags().Changed("width") {
		cliCfg.Width = flags.width
	}

	cfg, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	width := previewWidth(cfg)
	theme := cfg.Theme
	if theme == config.ThemeAuto && !term.IsTerminal(int(os.Stdout.Fd())) {
		theme = config.ThemeNoTTY
	}

	logger.Debug("rendering preview",
		logging.FieldPath, path,
		logging.FieldBytes, len(content),
	)

	renderer, err := glamour.NewTermRenderer(
		themeStyle(theme),
		glamour.WithWordWrap(width),
		glamour.WithPreservedNewLines(),
	)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	out, err := renderer.Render(string(content))
	if err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}

	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

func themeStyle(theme config.Theme) glamour.TermRendererOption {
	switch theme {
	case config.ThemeDark:
		return glamour.WithStandardStyle(styles.DarkStyle)
	case config.ThemeLight:
		return glamour.WithStandardStyle(styles.LightStyle)
	case config.ThemeNoTTY:
		return glamour.WithStandardStyle(styles.NoTTYStyle)
	default:
		if termenv.HasDarkBackground() {
			return glamour.WithStandardStyle(styles.DarkStyle)
		}
		return glamour.WithStandardStyle(styles.LightStyle)
	}
}

// previewWidth resolves the wrap width: explicit config wins, then the
// terminal size, then a plain default.
func previewWidth(cfg *config.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		if w > maxPreviewWidth {
			return maxPreviewWidth
		}
		return w
	}
	return 80
}
