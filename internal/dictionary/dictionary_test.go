package dictionary

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetOracle(t *testing.T) {
	ctx := context.Background()
	o := NewSetOracle("en", []string{"cat", "Act", " tact "})

	cases := []struct {
		name string
		text string
		want *Range
	}{
		{"known word", "cat", nil},
		{"stored lowercased", "act", nil},
		{"lookup is case-insensitive", "TACT", nil},
		{"unknown word", "tca", &Range{Location: 0, Length: 3}},
		{"second word unknown", "cat xyz", &Range{Location: 4, Length: 3}},
		{"no letters", "  ", &Range{Location: 0, Length: 2}},
		{"punctuation only", "-", &Range{Location: 0, Length: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := o.CheckSpelling(ctx, tc.text, "en")
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("empty language defaults to en", func(t *testing.T) {
		got, err := o.CheckSpelling(ctx, "cat", "")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("unknown language errors", func(t *testing.T) {
		_, err := o.CheckSpelling(ctx, "chat", "fr")
		assert.ErrorIs(t, err, ErrUnsupportedLanguage)
	})

	t.Run("add extends the set", func(t *testing.T) {
		o.Add("fr", "chat")
		got, err := o.CheckSpelling(ctx, "chat", "fr")
		require.NoError(t, err)
		assert.Nil(t, got)
		assert.Equal(t, 1, o.Len("fr"))
	})
}

func TestEmbeddedOracle(t *testing.T) {
	o, err := NewEmbeddedOracle()
	require.NoError(t, err)
	assert.Greater(t, o.Len("en"), 100)

	r, err := o.CheckSpelling(context.Background(), "worm", "en")
	require.NoError(t, err)
	assert.Nil(t, r)

	r, err = o.CheckSpelling(context.Background(), "wrmo", "en")
	require.NoError(t, err)
	assert.NotNil(t, r)
}

func TestSQLiteOracle(t *testing.T) {
	ctx := context.Background()
	o, err := OpenSQLite(memoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { _ = o.Close() })

	_, err = o.CheckSpelling(ctx, "cat", "en")
	assert.ErrorIs(t, err, ErrUnsupportedLanguage, "empty table has no languages")

	n, err := o.Import(ctx, "en", []string{"cat", "ACT", "", "cat"})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	count, err := o.Count(ctx, "en")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	has, err := o.HasLanguage(ctx, "EN")
	require.NoError(t, err)
	assert.True(t, has)
	has, err = o.HasLanguage(ctx, "fr")
	require.NoError(t, err)
	assert.False(t, has)

	r, err := o.CheckSpelling(ctx, "act", "en")
	require.NoError(t, err)
	assert.Nil(t, r)

	r, err = o.CheckSpelling(ctx, "tac", "en")
	require.NoError(t, err)
	assert.Equal(t, &Range{Location: 0, Length: 3}, r)

	r, err = o.CheckSpelling(ctx, "-", "en")
	require.NoError(t, err)
	assert.Equal(t, &Range{Location: 0, Length: 1}, r)
}

func TestSQLiteOracleFileReopen(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "data", "dict.db")

	o, err := OpenSQLite(dsn)
	require.NoError(t, err)
	_, err = o.Import(ctx, "en", []string{"silk", "worm"})
	require.NoError(t, err)
	require.NoError(t, o.Close())

	// migrations are recorded, so reopening is a no-op for the schema
	o, err = OpenSQLite(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = o.Close() })

	count, err := o.Count(ctx, "en")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
