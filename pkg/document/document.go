// Package document provides the line-addressed document model for mdsurface.
// A Document is an immutable view of the text the host editor owns: raw
// content bytes plus a line index. The engine reads line text and converts
// between byte offsets and 1-based line/column positions; it never mutates
// content in place.
package document

import (
	"sort"
	"sync/atomic"
)

// nextID is the source of process-unique document identities.
//
//nolint:gochecknoglobals // Identity counter must be package-level.
var nextID atomic.Uint64

// Document is an immutable snapshot of editor text.
// Identity (ID) is stable for the life of the value and never reused within
// a process, so it can key caches that must not outlive the document.
type Document struct {
	// Path is the file path (may be empty for in-memory content).
	Path string

	// Content is the full document bytes.
	Content []byte

	// Lines contains metadata for each line.
	Lines []LineInfo

	id uint64
}

// LineInfo holds byte-offset metadata for a single line.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline (e.g., last line), this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of content).
	EndOffset int
}

// New creates a Document from content, building the line index.
func New(path string, content []byte) *Document {
	return &Document{
		Path:    path,
		Content: content,
		Lines:   BuildLines(content),
		id:      nextID.Add(1),
	}
}

// ID returns the process-unique identity of this document.
func (d *Document) ID() uint64 {
	return d.id
}

// BuildLines constructs line metadata from content.
// It handles both LF (\n) and CRLF (\r\n) line endings.
// Empty content yields a single empty line, matching how editors address an
// empty buffer as line 1.
func BuildLines(content []byte) []LineInfo {
	var lines []LineInfo
	lineStart := 0

	for idx, char := range content {
		if char == '\n' {
			newlineStart := idx
			if idx > 0 && content[idx-1] == '\r' {
				newlineStart = idx - 1
			}

			lines = append(lines, LineInfo{
				StartOffset:  lineStart,
				NewlineStart: newlineStart,
				EndOffset:    idx + 1,
			})
			lineStart = idx + 1
		}
	}

	// Last line, which may not have a trailing newline. Also covers empty
	// content (a single empty line).
	lines = append(lines, LineInfo{
		StartOffset:  lineStart,
		NewlineStart: len(content),
		EndOffset:    len(content),
	})

	return lines
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	return len(d.Lines)
}

// LineAt converts a byte offset to 1-based line and column numbers.
// Column counts bytes, not runes.
// Returns (0, 0) if the offset is negative.
func (d *Document) LineAt(offset int) (int, int) {
	if offset < 0 || len(d.Lines) == 0 {
		return 0, 0
	}

	if offset >= len(d.Content) {
		lastLine := d.Lines[len(d.Lines)-1]
		return len(d.Lines), offset - lastLine.StartOffset + 1
	}

	// Binary search for the line containing the offset.
	lineIdx := sort.Search(len(d.Lines), func(i int) bool {
		return d.Lines[i].EndOffset > offset
	})

	if lineIdx >= len(d.Lines) {
		lineIdx = len(d.Lines) - 1
	}

	info := d.Lines[lineIdx]
	if offset < info.StartOffset {
		return 0, 0
	}

	return lineIdx + 1, offset - info.StartOffset + 1
}

// Offset converts 1-based line and column numbers to a byte offset.
// Returns (offset, true) on success, or (0, false) if out of range.
// Column 1 is the first byte of the line; the column just past the line end
// is allowed for cursor positioning.
func (d *Document) Offset(line, col int) (int, bool) {
	if line < 1 || line > len(d.Lines) {
		return 0, false
	}

	info := d.Lines[line-1]
	if col < 1 {
		return 0, false
	}

	offset := info.StartOffset + col - 1
	if offset > info.EndOffset {
		return 0, false
	}

	return offset, true
}

// LineContent returns the content of a 1-based line number, excluding the newline.
// Returns nil if the line number is out of range.
func (d *Document) LineContent(line int) []byte {
	if line < 1 || line > len(d.Lines) {
		return nil
	}

	info := d.Lines[line-1]
	return d.Content[info.StartOffset:info.NewlineStart]
}

// LineRange returns the byte range [start, end) of a 1-based line's content,
// excluding the newline. Returns (0, 0, false) if out of range.
func (d *Document) LineRange(line int) (int, int, bool) {
	if line < 1 || line > len(d.Lines) {
		return 0, 0, false
	}

	info := d.Lines[line-1]
	return info.StartOffset, info.NewlineStart, true
}
