package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkfold/mdsurface/pkg/document"
)

func TestPersisterSaveLoadRoundTrip(t *testing.T) {
	p := NewPersister(NewMemoryStore(), "")

	require.NoError(t, p.Save("page-1", []int{1, 5, 12}))

	lines, err := p.Load("page-1")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 5, 12}, lines)
}

func TestPersisterMissingKey(t *testing.T) {
	p := NewPersister(NewMemoryStore(), "")

	lines, err := p.Load("never-saved")
	require.NoError(t, err)
	assert.Nil(t, lines)
}

func TestPersisterEmptySetClearsKey(t *testing.T) {
	store := NewMemoryStore()
	p := NewPersister(store, "")

	require.NoError(t, p.Save("page", []int{3}))
	require.NoError(t, p.Save("page", nil))

	_, ok, err := store.Get("folds.page")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPersisterCorruptValueIsClearedAndIgnored(t *testing.T) {
	store := NewMemoryStore()
	p := NewPersister(store, "")

	require.NoError(t, store.Set("folds.page", []byte("{not json]")))

	lines, err := p.Load("page")
	require.NoError(t, err)
	assert.Nil(t, lines)

	_, ok, err := store.Get("folds.page")
	require.NoError(t, err)
	assert.False(t, ok, "corrupt value must be deleted")
}

func TestPersisterKeyPrefix(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, NewPersister(store, "custom:").Save("p", []int{1}))

	_, ok, err := store.Get("custom:p")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPersisterRestore(t *testing.T) {
	content := "# a\nbody\n# b\n# c\nbody"
	doc := document.New("test.md", []byte(content))
	cache := NewCache(0)
	p := NewPersister(NewMemoryStore(), "")

	// Line 1 is foldable, line 3 is a heading with no body, line 2 is not a
	// heading at all; only line 1 survives the round trip.
	require.NoError(t, p.Save("page", []int{1, 2, 3, 99}))

	sections, err := p.Restore(cache, doc, "page")
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Equal(t, 1, sections[0].HeadingLine)
}

func TestPersisterRestoreNothingSaved(t *testing.T) {
	doc := document.New("test.md", []byte("# a\nbody"))
	p := NewPersister(NewMemoryStore(), "")

	sections, err := p.Restore(NewCache(0), doc, "page")
	require.NoError(t, err)
	assert.Empty(t, sections)
}

func TestFileStore(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, ok, err := store.Get("folds.page")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set("folds.page", []byte("[1,2]")))

	value, ok, err := store.Get("folds.page")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "[1,2]", string(value))

	require.NoError(t, store.Delete("folds.page"))
	require.NoError(t, store.Delete("folds.page"), "deleting an absent key is fine")

	_, ok, err = store.Get("folds.page")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStoreEscapesKeys(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	// A hostile page identifier must not escape the store directory.
	key := "folds.../../etc/passwd"
	require.NoError(t, store.Set(key, []byte("[]")))

	value, ok, err := store.Get(key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "[]", string(value))
}
