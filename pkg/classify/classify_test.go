package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkfold/mdsurface/pkg/document"
)

func classifyText(t *testing.T, text string) []LineTag {
	t.Helper()
	return Classify(document.New("test.md", []byte(text)))
}

func TestClassifySingleLines(t *testing.T) {
	tests := []struct {
		name string
		line string
		want LineTag
	}{
		{
			name: "plain text",
			line: "just some text",
			want: LineTag{Tag: TagPlain},
		},
		{
			name: "h1",
			line: "# Title",
			want: LineTag{Tag: TagHeading, Level: 1},
		},
		{
			name: "h6",
			line: "###### Deep",
			want: LineTag{Tag: TagHeading, Level: 6},
		},
		{
			name: "seven hashes is plain",
			line: "####### Too deep",
			want: LineTag{Tag: TagPlain},
		},
		{
			name: "bare hash is a heading",
			line: "#",
			want: LineTag{Tag: TagHeading, Level: 1},
		},
		{
			name: "hash without space is plain",
			line: "#hashtag",
			want: LineTag{Tag: TagPlain},
		},
		{
			name: "bullet dash",
			line: "- item",
			want: LineTag{Tag: TagBulletItem},
		},
		{
			name: "bullet star",
			line: "* item",
			want: LineTag{Tag: TagBulletItem},
		},
		{
			name: "empty bullet",
			line: "- ",
			want: LineTag{Tag: TagBulletItem},
		},
		{
			name: "indented bullet",
			line: "  - item",
			want: LineTag{Tag: TagBulletItem, Indent: 2},
		},
		{
			name: "ordered dot",
			line: "12. item",
			want: LineTag{Tag: TagOrderedItem, Number: "12"},
		},
		{
			name: "ordered paren",
			line: "3) item",
			want: LineTag{Tag: TagOrderedItem, Number: "3"},
		},
		{
			name: "unchecked checkbox",
			line: "- [ ] task",
			want: LineTag{Tag: TagCheckboxItem},
		},
		{
			name: "checked checkbox",
			line: "- [x] task",
			want: LineTag{Tag: TagCheckboxItem, Checked: true},
		},
		{
			name: "checked uppercase",
			line: "- [X] task",
			want: LineTag{Tag: TagCheckboxItem, Checked: true},
		},
		{
			name: "empty checkbox item",
			line: "- [ ]",
			want: LineTag{Tag: TagCheckboxItem},
		},
		{
			name: "blockquote",
			line: "> quoted",
			want: LineTag{Tag: TagBlockquote, Level: 1},
		},
		{
			name: "nested blockquote",
			line: ">> deeper",
			want: LineTag{Tag: TagBlockquote, Level: 2},
		},
		{
			name: "thematic break dashes",
			line: "---",
			want: LineTag{Tag: TagThematicBreak},
		},
		{
			name: "thematic break underscores",
			line: "___",
			want: LineTag{Tag: TagThematicBreak},
		},
		{
			name: "spaced stars are a bullet not a rule",
			line: "* * *",
			want: LineTag{Tag: TagBulletItem},
		},
		{
			name: "lone dash is plain",
			line: "-",
			want: LineTag{Tag: TagPlain},
		},
		{
			name: "empty line is plain",
			line: "",
			want: LineTag{Tag: TagPlain},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags := classifyText(t, tt.line)
			require.Len(t, tags, 1)
			assert.Equal(t, tt.want, tags[0])
		})
	}
}

func TestClassifyCheckboxBeforeBullet(t *testing.T) {
	// A checkbox line also matches the bullet pattern as a prefix; the
	// checkbox tag must win.
	tags := classifyText(t, "- [ ] not a plain bullet")
	assert.Equal(t, TagCheckboxItem, tags[0].Tag)
}

func TestClassifyFences(t *testing.T) {
	input := strings.Join([]string{
		"before",
		"```go",
		"# not a heading",
		"- not a bullet",
		"```",
		"# after",
	}, "\n")

	tags := classifyText(t, input)
	require.Len(t, tags, 6)

	assert.Equal(t, TagPlain, tags[0].Tag)
	assert.Equal(t, TagFenceDelimiter, tags[1].Tag)
	assert.Equal(t, "go", tags[1].Info)
	assert.Equal(t, TagFenceInterior, tags[2].Tag)
	assert.Equal(t, TagFenceInterior, tags[3].Tag)
	assert.Equal(t, TagFenceDelimiter, tags[4].Tag)
	assert.Equal(t, "", tags[4].Info)
	assert.Equal(t, TagHeading, tags[5].Tag)
}

func TestClassifyUnterminatedFence(t *testing.T) {
	input := "text\n```\neverything\n# below\nis interior"

	tags := classifyText(t, input)
	require.Len(t, tags, 5)

	assert.Equal(t, TagPlain, tags[0].Tag)
	assert.Equal(t, TagFenceDelimiter, tags[1].Tag)
	for i := 2; i < 5; i++ {
		assert.Equal(t, TagFenceInterior, tags[i].Tag, "line %d", i+1)
	}
}

func TestClassifyLongerFenceDelimiter(t *testing.T) {
	tags := classifyText(t, "````\ncode\n````")
	assert.Equal(t, TagFenceDelimiter, tags[0].Tag)
	assert.Equal(t, TagFenceInterior, tags[1].Tag)
	assert.Equal(t, TagFenceDelimiter, tags[2].Tag)
}

func TestClassifyEveryLineGetsExactlyOneTag(t *testing.T) {
	input := "# h\n\n- a\n1. b\n> q\n```\nx\n```\nplain"
	doc := document.New("test.md", []byte(input))

	tags := Classify(doc)
	assert.Len(t, tags, doc.LineCount())
}

func TestClassifyRangeMatchesFullClassification(t *testing.T) {
	input := strings.Join([]string{
		"# top",
		"```",
		"interior",
		"```",
		"- bullet",
		"```python",
		"# hidden",
		"```",
		"> quote",
		"plain",
	}, "\n")
	doc := document.New("test.md", []byte(input))

	full := Classify(doc)
	for from := 1; from <= doc.LineCount(); from++ {
		for to := from; to <= doc.LineCount(); to++ {
			got := ClassifyRange(doc, from, to)
			assert.Equal(t, full[from-1:to], got, "range %d..%d", from, to)
		}
	}
}

func TestClassifyRangeWithFenceMatchesFullClassification(t *testing.T) {
	input := "a\n```\nb\n```\n# c"
	doc := document.New("test.md", []byte(input))
	fence := NewFenceField(doc)

	full := Classify(doc)
	for from := 1; from <= doc.LineCount(); from++ {
		got := ClassifyRangeWithFence(doc, fence, from, doc.LineCount())
		assert.Equal(t, full[from-1:], got, "from %d", from)
	}
}

func TestClassifyRangeClamps(t *testing.T) {
	doc := document.New("test.md", []byte("a\nb"))

	assert.Len(t, ClassifyRange(doc, -3, 99), 2)
	assert.Nil(t, ClassifyRange(doc, 2, 1))
}
