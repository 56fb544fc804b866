package catalog

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCopiesInput(t *testing.T) {
	items := Defaults()
	c, err := New(items...)
	require.NoError(t, err)

	items[0].Title = "mutated"
	items[0].Features[0] = "mutated"

	got, ok := c.Lookup(1)
	require.True(t, ok)
	require.Equal(t, "Duel System", got.Title)
	require.Equal(t, "Player matchmaking & queue", got.Features[0])

	out := c.Items()
	out[1].Features[0] = "mutated"
	again, _ := c.At(1)
	require.Equal(t, "Full equipment + hotbar snapshot", again.Features[0])
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	_, err := New(Item{ID: 7, Title: "a"}, Item{ID: 7, Title: "b"})
	require.ErrorIs(t, err, ErrDuplicateID)
}

func TestOrderAndLookup(t *testing.T) {
	c := MustNew(Defaults()...)
	require.Equal(t, 3, c.Len())
	require.Equal(t, []ID{1, 2, 3}, c.IDs())
	require.Equal(t, 2, c.Position(3))
	require.Equal(t, -1, c.Position(99))
	require.False(t, c.Contains(99))
	_, ok := c.At(3)
	require.False(t, ok)
}

func TestNilCatalogIsEmpty(t *testing.T) {
	var c *Catalog
	require.Zero(t, c.Len())
	require.Nil(t, c.Items())
	_, ok := c.Lookup(1)
	require.False(t, ok)
}

func TestMatch(t *testing.T) {
	c := MustNew(Defaults()...)

	cases := []struct {
		query string
		want  ID
	}{
		{"duel", 1},
		{"Duel System", 1},
		{"restore", 2},
		{"playtme", 3},
		{"  PLAYTIME rewards ", 3},
	}
	for _, tc := range cases {
		it, err := c.Match(tc.query)
		require.NoError(t, err, tc.query)
		require.Equal(t, tc.want, it.ID, tc.query)
	}

	_, err := c.Match("zzzzzzzz")
	require.True(t, errors.Is(err, ErrNoMatch))
	_, err = c.Match("   ")
	require.ErrorIs(t, err, ErrNoMatch)
}

func TestBundleRoundTripFormats(t *testing.T) {
	b := DefaultBundle()
	for _, f := range []Format{FormatJSON, FormatMsgpack} {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, b, f))
		got, err := Decode(&buf, f)
		require.NoError(t, err)
		require.Equal(t, b, got, string(f))
	}
}

func TestBundleFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "catalog.msgpack")
	require.NoError(t, SaveFile(path, DefaultBundle(), FormatMsgpack))

	b, err := LoadFile(path)
	require.NoError(t, err)
	c, err := b.Catalog()
	require.NoError(t, err)
	require.Equal(t, 3, c.Len())

	_, err = LoadFile(filepath.Join(dir, "catalog.yaml"))
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestMissingMediaRef(t *testing.T) {
	it := Item{ID: 4, Title: "No media"}
	require.False(t, it.HasMedia())
	require.True(t, Defaults()[0].HasMedia())
}
