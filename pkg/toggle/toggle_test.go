package toggle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkfold/mdsurface/pkg/document"
)

// applyToggle runs one toggle over a whole-content selection and returns the
// resulting text.
func applyToggle(t *testing.T, content string, kind Kind) string {
	t.Helper()

	doc := document.New("test.md", []byte(content))
	sel := document.Selection{StartOffset: 0, EndOffset: len(content)}

	edits, err := Toggle(doc, sel, kind)
	require.NoError(t, err)

	next, err := doc.Apply(edits)
	require.NoError(t, err)
	return string(next.Content)
}

func TestParseKind(t *testing.T) {
	for _, kind := range []Kind{KindBullet, KindOrdered, KindCheckbox, KindBlockquote} {
		parsed, err := ParseKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}

	_, err := ParseKind("heading")
	assert.Error(t, err)
}

func TestToggleBulletRoundTrip(t *testing.T) {
	once := applyToggle(t, "Item one", KindBullet)
	assert.Equal(t, "- Item one", once)

	twice := applyToggle(t, once, KindBullet)
	assert.Equal(t, "Item one", twice)
}

func TestToggleBulletMixedSelectionDoubles(t *testing.T) {
	// Uniform policy: one non-bullet line in the selection means every line
	// gets a marker, doubling lines that already had one.
	got := applyToggle(t, "- Has bullet\nNo bullet", KindBullet)
	assert.Equal(t, "- - Has bullet\n- No bullet", got)
}

func TestToggleBulletPreservesIndent(t *testing.T) {
	got := applyToggle(t, "  - nested", KindBullet)
	assert.Equal(t, "  nested", got)
}

func TestToggleBlockquoteRoundTrip(t *testing.T) {
	once := applyToggle(t, "a\nb", KindBlockquote)
	assert.Equal(t, "> a\n> b", once)

	twice := applyToggle(t, once, KindBlockquote)
	assert.Equal(t, "a\nb", twice)
}

func TestToggleOrderedNumbersSequentially(t *testing.T) {
	got := applyToggle(t, "Item A\nItem B\nItem C", KindOrdered)
	assert.Equal(t, "1. Item A\n2. Item B\n3. Item C", got)

	back := applyToggle(t, got, KindOrdered)
	assert.Equal(t, "Item A\nItem B\nItem C", back)
}

func TestToggleOrderedUniformStrip(t *testing.T) {
	// Every line already numbered, however badly, means strip.
	got := applyToggle(t, "5. Wrong\n10. Also\n99. Off", KindOrdered)
	assert.Equal(t, "Wrong\nAlso\nOff", got)
}

func TestToggleOrderedRenumbersMixedSelection(t *testing.T) {
	// One unnumbered line forces the add path; existing numerals are swapped
	// in place instead of doubled.
	got := applyToggle(t, "5. Wrong\nplain\n  9) Indented", KindOrdered)
	assert.Equal(t, "1. Wrong\n2. plain\n  3. Indented", got)
}

func TestToggleCheckboxPerLine(t *testing.T) {
	input := "- Bullet\n1. Numbered\n- [ ] Checkbox\nPlain text"
	want := "- [ ] Bullet\n- [ ] 1. Numbered\n- [x] Checkbox\n- [ ] Plain text"

	assert.Equal(t, want, applyToggle(t, input, KindCheckbox))
}

func TestToggleCheckboxCycle(t *testing.T) {
	// plain -> unchecked -> checked -> unchecked, then a 2-cycle forever.
	s := "task"

	s = applyToggle(t, s, KindCheckbox)
	assert.Equal(t, "- [ ] task", s)

	s = applyToggle(t, s, KindCheckbox)
	assert.Equal(t, "- [x] task", s)

	s = applyToggle(t, s, KindCheckbox)
	assert.Equal(t, "- [ ] task", s)
}

func TestToggleCheckboxStarBullet(t *testing.T) {
	// Star and plus bullets flip their checkbox state too; only the bare
	// bullet add path is dash-specific.
	got := applyToggle(t, "* [x] done", KindCheckbox)
	assert.Equal(t, "* [ ] done", got)
}

func TestToggleSnapsSelectionToWholeLines(t *testing.T) {
	content := "one\ntwo\nthree"
	doc := document.New("test.md", []byte(content))

	// Selection from mid "one" to mid "three" covers all three lines.
	sel := document.Selection{StartOffset: 2, EndOffset: 10}
	edits, err := Toggle(doc, sel, KindBullet)
	require.NoError(t, err)

	next, err := doc.Apply(edits)
	require.NoError(t, err)
	assert.Equal(t, "- one\n- two\n- three", string(next.Content))
}

func TestToggleCaretActsOnItsLine(t *testing.T) {
	doc := document.New("test.md", []byte("first\nsecond"))

	edits, err := Toggle(doc, document.Caret(8), KindBullet)
	require.NoError(t, err)

	next, err := doc.Apply(edits)
	require.NoError(t, err)
	assert.Equal(t, "first\n- second", string(next.Content))
}

func TestToggleIsOneTransaction(t *testing.T) {
	doc := document.New("test.md", []byte("a\nb\nc"))
	sel := document.Selection{StartOffset: 0, EndOffset: len(doc.Content)}

	edits, err := Toggle(doc, sel, KindBullet)
	require.NoError(t, err)

	// One edit per line, sorted and non-overlapping, ready for atomic apply.
	require.Len(t, edits, 3)
	for i := 1; i < len(edits); i++ {
		assert.LessOrEqual(t, edits[i-1].EndOffset, edits[i].StartOffset)
	}
}

func TestToggleUnknownKind(t *testing.T) {
	doc := document.New("test.md", []byte("x"))

	_, err := Toggle(doc, document.Caret(0), Kind(42))
	assert.Error(t, err)
}

func TestRequestEdits(t *testing.T) {
	doc := document.New("test.md", []byte("note"))
	req := Request{Selection: document.Caret(0), Kind: KindBullet}

	edits, err := req.Edits(doc)
	require.NoError(t, err)

	next, err := doc.Apply(edits)
	require.NoError(t, err)
	assert.Equal(t, "- note", string(next.Content))
}
