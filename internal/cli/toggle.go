package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inkfold/mdsurface/internal/logging"
	"github.com/inkfold/mdsurface/pkg/toggle"
)

// documentFilePermissions is the file mode for rewritten documents.
const documentFilePermissions = 0644

type toggleFlags struct {
	kind      string
	selection string
	write     bool
}

func newToggleCommand() *cobra.Command {
	flags := &toggleFlags{}

	cmd := &cobra.Command{
		Use:   "toggle <file>",
		Short: "Toggle a block format across a selection",
		Long: `Toggle a block format (bullet, ordered, checkbox, or blockquote) on the
lines a selection touches and print the resulting document.

The selection is given as byte offsets: "start:end" for a range, or a
single offset for a caret. Omitting --selection toggles the whole file.
Bullet, ordered, and blockquote apply uniformly across the selection;
checkbox flips each line independently.

Examples:
  mdsurface toggle notes.md --kind bullet --selection 120:180
  mdsurface toggle notes.md --kind checkbox --selection 42
  mdsurface toggle notes.md --kind ordered --write`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToggle(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.kind, "kind", "k", "", "Format to toggle: bullet, ordered, checkbox, or blockquote")
	cmd.Flags().StringVarP(&flags.selection, "selection", "s", "", "Selection as byte offsets: start:end, or a caret offset")
	cmd.Flags().BoolVar(&flags.write, "write", false, "Write the result back to the file instead of stdout")

	if err := cmd.MarkFlagRequired("kind"); err != nil {
		panic(err)
	}

	return cmd
}

func runToggle(cmd *cobra.Command, path string, flags *toggleFlags) error {
	logger := logging.FromContext(cmd.Context())

	kind, err := toggle.ParseKind(flags.kind)
	if err != nil {
		return err
	}

	doc, err := readDocument(path)
	if err != nil {
		return err
	}

	sel, err := parseSelection(flags.selection, len(doc.Content))
	if err != nil {
		return err
	}

	edits, err := toggle.Toggle(doc, sel, kind)
	if err != nil {
		return fmt.Errorf("toggle %s: %w", kind, err)
	}

	logger.Debug("toggled selection",
		logging.FieldPath, path,
		logging.FieldKind, kind.String(),
		logging.FieldSelStart, sel.StartOffset,
		logging.FieldSelEnd, sel.EndOffset,
		logging.FieldEdits, len(edits),
	)

	next, err := doc.Apply(edits)
	if err != nil {
		return fmt.Errorf("apply edits: %w", err)
	}

	if flags.write {
		if err := os.WriteFile(path, next.Content, documentFilePermissions); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		logger.Info("updated file",
			logging.FieldPath, path,
			logging.FieldEdits, len(edits),
		)
		return nil
	}

	_, err = cmd.OutOrStdout().Write(next.Content)
	return err
}
