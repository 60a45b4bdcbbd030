package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLines(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantCount int
	}{
		{
			name:      "empty content is one empty line",
			content:   "",
			wantCount: 1,
		},
		{
			name:      "single line no newline",
			content:   "hello",
			wantCount: 1,
		},
		{
			name:      "single line with newline",
			content:   "hello\n",
			wantCount: 2,
		},
		{
			name:      "multiple lines",
			content:   "a\nb\nc",
			wantCount: 3,
		},
		{
			name:      "crlf endings",
			content:   "a\r\nb\r\n",
			wantCount: 3,
		},
		{
			name:      "blank lines",
			content:   "a\n\n\nb",
			wantCount: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := BuildLines([]byte(tt.content))
			assert.Len(t, lines, tt.wantCount)

			// Lines must cover the content contiguously.
			require.NotEmpty(t, lines)
			assert.Equal(t, 0, lines[0].StartOffset)
			assert.Equal(t, len(tt.content), lines[len(lines)-1].EndOffset)
			for i := 1; i < len(lines); i++ {
				assert.Equal(t, lines[i-1].EndOffset, lines[i].StartOffset)
			}
		})
	}
}

func TestLineContent(t *testing.T) {
	doc := New("test.md", []byte("first\nsecond\r\nthird"))

	assert.Equal(t, "first", string(doc.LineContent(1)))
	assert.Equal(t, "second", string(doc.LineContent(2)))
	assert.Equal(t, "third", string(doc.LineContent(3)))
	assert.Nil(t, doc.LineContent(0))
	assert.Nil(t, doc.LineContent(4))
}

func TestLineAt(t *testing.T) {
	doc := New("test.md", []byte("ab\ncd\nef"))

	tests := []struct {
		offset   int
		wantLine int
		wantCol  int
	}{
		{offset: 0, wantLine: 1, wantCol: 1},
		{offset: 1, wantLine: 1, wantCol: 2},
		{offset: 2, wantLine: 1, wantCol: 3}, // newline belongs to line 1
		{offset: 3, wantLine: 2, wantCol: 1},
		{offset: 6, wantLine: 3, wantCol: 1},
		{offset: 7, wantLine: 3, wantCol: 2},
		{offset: 8, wantLine: 3, wantCol: 3}, // end of content
	}

	for _, tt := range tests {
		line, col := doc.LineAt(tt.offset)
		assert.Equal(t, tt.wantLine, line, "offset %d line", tt.offset)
		assert.Equal(t, tt.wantCol, col, "offset %d col", tt.offset)
	}

	line, col := doc.LineAt(-1)
	assert.Zero(t, line)
	assert.Zero(t, col)
}

func TestOffsetRoundTrip(t *testing.T) {
	doc := New("test.md", []byte("alpha\nbeta\ngamma\n"))

	for offset := 0; offset < len(doc.Content); offset++ {
		line, col := doc.LineAt(offset)
		back, ok := doc.Offset(line, col)
		require.True(t, ok, "offset %d", offset)
		assert.Equal(t, offset, back, "offset %d", offset)
	}

	_, ok := doc.Offset(0, 1)
	assert.False(t, ok)
	_, ok = doc.Offset(99, 1)
	assert.False(t, ok)
	_, ok = doc.Offset(1, 0)
	assert.False(t, ok)
}

func TestDocumentIdentity(t *testing.T) {
	a := New("a.md", []byte("same"))
	b := New("a.md", []byte("same"))

	assert.NotEqual(t, a.ID(), b.ID(), "identity must be unique per value, not per content")
}

func TestSelectionLineSpan(t *testing.T) {
	doc := New("test.md", []byte("one\ntwo\nthree\n"))

	tests := []struct {
		name      string
		sel       Selection
		wantFirst int
		wantLast  int
	}{
		{
			name:      "caret mid line",
			sel:       Caret(5),
			wantFirst: 2,
			wantLast:  2,
		},
		{
			name:      "mid-line endpoints snap to whole lines",
			sel:       Selection{StartOffset: 1, EndOffset: 9},
			wantFirst: 1,
			wantLast:  3,
		},
		{
			name:      "reversed selection normalizes",
			sel:       Selection{StartOffset: 9, EndOffset: 1},
			wantFirst: 1,
			wantLast:  3,
		},
		{
			name:      "whole document",
			sel:       Selection{StartOffset: 0, EndOffset: 14},
			wantFirst: 1,
			wantLast:  4,
		},
		{
			name:      "out of range clamps",
			sel:       Selection{StartOffset: -5, EndOffset: 999},
			wantFirst: 1,
			wantLast:  4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := tt.sel.LineSpan(doc)
			assert.Equal(t, tt.wantFirst, first)
			assert.Equal(t, tt.wantLast, last)
		})
	}
}
