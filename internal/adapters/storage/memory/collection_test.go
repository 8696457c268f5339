package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   string
	Name string
}

func newItems(t *testing.T, ids ...string) *collection[item] {
	t.Helper()
	c := newCollection(func(i item) string { return i.ID })
	for _, id := range ids {
		require.NoError(t, c.add(item{ID: id, Name: "name-" + id}))
	}
	return c
}

func TestCollection_AddKeepsInsertionOrder(t *testing.T) {
	c := newItems(t, "c", "a", "b")

	got := c.list(nil)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"c", "a", "b"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestCollection_AddRejectsDuplicateAndEmptyID(t *testing.T) {
	c := newItems(t, "a")

	assert.ErrorIs(t, c.add(item{ID: "a"}), errAlreadyExist)
	assert.ErrorIs(t, c.add(item{ID: "  "}), errIDRequired)
	assert.Equal(t, 1, c.len())
}

func TestCollection_ReplaceOnlyTouchesMatchingID(t *testing.T) {
	c := newItems(t, "a", "b", "c")

	ok := c.replace(item{ID: "b", Name: "updated"})
	require.True(t, ok)

	got := c.list(nil)
	assert.Equal(t, item{ID: "a", Name: "name-a"}, got[0])
	assert.Equal(t, item{ID: "b", Name: "updated"}, got[1])
	assert.Equal(t, item{ID: "c", Name: "name-c"}, got[2])

	assert.False(t, c.replace(item{ID: "zzz", Name: "x"}))
	assert.Equal(t, 3, c.len())
}

func TestCollection_RemoveReindexes(t *testing.T) {
	c := newItems(t, "a", "b", "c")

	require.True(t, c.remove("a"))
	assert.False(t, c.remove("a"))
	assert.Equal(t, 2, c.len())

	v, ok := c.get("c")
	require.True(t, ok)
	assert.Equal(t, "name-c", v.Name)

	require.True(t, c.replace(item{ID: "c", Name: "after-remove"}))
	v, _ = c.get("c")
	assert.Equal(t, "after-remove", v.Name)
}

func TestCollection_ListFilter(t *testing.T) {
	c := newItems(t, "a", "b", "c")

	got := c.list(func(i item) bool { return i.ID != "b" })
	assert.Len(t, got, 2)

	none := c.list(func(item) bool { return false })
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
