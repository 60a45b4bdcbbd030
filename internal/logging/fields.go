// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldPage   = "page"
	FieldOutput = "output"

	// Document fields.
	FieldLine     = "line"
	FieldLines    = "lines"
	FieldBytes    = "bytes"
	FieldFromLine = "from_line"
	FieldToLine   = "to_line"
	FieldSelStart = "sel_start"
	FieldSelEnd   = "sel_end"

	// Engine fields.
	FieldKind        = "kind"
	FieldEdits       = "edits"
	FieldDecorations = "decorations"
	FieldSections    = "sections"
	FieldFolds       = "folds"
	FieldLang        = "lang"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
