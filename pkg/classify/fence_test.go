package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkfold/mdsurface/pkg/document"
)

func TestFenceFieldInside(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []bool
	}{
		{
			name:    "no fences",
			content: "a\nb\nc",
			want:    []bool{false, false, false},
		},
		{
			name:    "delimiters are not inside",
			content: "```\ncode\n```",
			want:    []bool{false, true, false},
		},
		{
			name:    "unterminated fence runs to end",
			content: "text\n```\na\nb",
			want:    []bool{false, false, true, true},
		},
		{
			name:    "back to back blocks",
			content: "```\na\n```\n```\nb\n```",
			want:    []bool{false, true, false, false, true, false},
		},
		{
			name:    "indented delimiter counts",
			content: "  ```\nx\n  ```",
			want:    []bool{false, true, false},
		},
		{
			name:    "empty document",
			content: "",
			want:    []bool{false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := document.New("test.md", []byte(tt.content))
			f := NewFenceField(doc)

			require.Equal(t, len(tt.want), f.LineCount())
			for i, want := range tt.want {
				assert.Equal(t, want, f.Inside(i+1), "line %d", i+1)
			}

			assert.Equal(t, tt.want, FenceStates(doc))
		})
	}
}

func TestFenceFieldOutOfRange(t *testing.T) {
	f := NewFenceField(document.New("test.md", []byte("a")))

	assert.False(t, f.Inside(0))
	assert.False(t, f.Inside(2))
	assert.False(t, f.Entering(0))
	assert.False(t, f.IsDelimiter(99))
}

func TestFenceFieldEntering(t *testing.T) {
	doc := document.New("test.md", []byte("a\n```\nb\n```\nc"))
	f := NewFenceField(doc)

	// The closer carries the fence state in, even though it is not "inside".
	assert.False(t, f.Entering(2))
	assert.True(t, f.Entering(3))
	assert.True(t, f.Entering(4))
	assert.False(t, f.Entering(5))

	assert.True(t, f.IsDelimiter(2))
	assert.False(t, f.IsDelimiter(3))
	assert.True(t, f.IsDelimiter(4))
}

// EnteringFence derives the same state as a maintained fence field, just
// from a prefix scan instead of a precomputed table.
func TestEnteringFenceMatchesFenceField(t *testing.T) {
	contents := []string{
		"a\n```\nb\n```\nc",
		"```go\nx := 1\n```\n```python\ny = 2\n```",
		"text\n```\nunterminated",
		"",
	}

	for _, content := range contents {
		doc := document.New("test.md", []byte(content))
		f := NewFenceField(doc)

		for line := 1; line <= doc.LineCount(); line++ {
			assert.Equal(t, f.Entering(line), EnteringFence(doc, line),
				"line %d of %q", line, content)
		}
	}
}

// Applying an edit and Update-ing from the first changed line must equal a
// full recompute on the new document.
func TestFenceFieldUpdateMatchesRecompute(t *testing.T) {
	base := strings.Join([]string{
		"intro",
		"```go",
		"func main() {}",
		"```",
		"middle",
		"```",
		"tail",
	}, "\n")

	tests := []struct {
		name         string
		replaceLine  int
		with         string
		firstChanged int
	}{
		{name: "open a new fence", replaceLine: 5, with: "```", firstChanged: 5},
		{name: "close the dangling fence", replaceLine: 7, with: "```", firstChanged: 7},
		{name: "remove the opener", replaceLine: 2, with: "plain", firstChanged: 2},
		{name: "touch a plain line", replaceLine: 1, with: "changed", firstChanged: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := document.New("test.md", []byte(base))
			f := NewFenceField(doc)

			lines := strings.Split(base, "\n")
			lines[tt.replaceLine-1] = tt.with
			next := document.New("test.md", []byte(strings.Join(lines, "\n")))

			f.Update(next, tt.firstChanged)

			fresh := NewFenceField(next)
			for line := 1; line <= next.LineCount(); line++ {
				assert.Equal(t, fresh.Inside(line), f.Inside(line), "line %d", line)
				assert.Equal(t, fresh.Entering(line), f.Entering(line), "line %d entry", line)
			}
		})
	}
}

func TestFenceFieldUpdateHandlesGrowthAndShrink(t *testing.T) {
	doc := document.New("test.md", []byte("a\n```\nb"))
	f := NewFenceField(doc)

	grown := document.New("test.md", []byte("a\n```\nb\nc\nd"))
	f.Update(grown, 3)
	assert.Equal(t, 5, f.LineCount())
	assert.True(t, f.Inside(5))

	shrunk := document.New("test.md", []byte("a"))
	f.Update(shrunk, 1)
	assert.Equal(t, 1, f.LineCount())
	assert.False(t, f.Inside(1))
}
