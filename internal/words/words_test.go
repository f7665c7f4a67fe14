package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedSource(t *testing.T) {
	ws, err := EmbeddedSource{}.LoadWords()
	require.NoError(t, err)
	assert.NotEmpty(t, ws)
	assert.Contains(t, ws, DefaultRoot)
}

func TestFileSource(t *testing.T) {
	t.Run("reads and normalizes", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "start.txt")
		require.NoError(t, os.WriteFile(path, []byte("Alpha\n\n  beta \n"), 0o644))

		ws, err := FileSource{Path: path}.LoadWords()
		require.NoError(t, err)
		assert.Equal(t, []string{"alpha", "beta"}, ws)
	})

	t.Run("empty file loads without error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.txt")
		require.NoError(t, os.WriteFile(path, nil, 0o644))

		ws, err := FileSource{Path: path}.LoadWords()
		require.NoError(t, err)
		assert.Empty(t, ws)
	})

	t.Run("missing file is ErrResourceMissing", func(t *testing.T) {
		_, err := FileSource{Path: filepath.Join(t.TempDir(), "nope.txt")}.LoadWords()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrResourceMissing)
	})
}

func TestSourceFor(t *testing.T) {
	assert.IsType(t, EmbeddedSource{}, SourceFor(""))
	assert.Equal(t, FileSource{Path: "/tmp/x"}, SourceFor("/tmp/x"))
}

func TestChoose(t *testing.T) {
	first := PickerFunc(func(int) int { return 0 })
	last := PickerFunc(func(n int) int { return n - 1 })

	cases := []struct {
		name string
		list []string
		p    Picker
		want string
	}{
		{"empty list falls back", nil, first, DefaultRoot},
		{"first", []string{"tactical", "marigold"}, first, "tactical"},
		{"last", []string{"tactical", "marigold"}, last, "marigold"},
		{"blank entry falls back", []string{""}, first, DefaultRoot},
		{"out of range falls back", []string{"tactical"}, PickerFunc(func(int) int { return 5 }), DefaultRoot},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Choose(tc.list, tc.p))
		})
	}
}

func TestRandomPickerInRange(t *testing.T) {
	var p RandomPicker
	for i := 0; i < 200; i++ {
		n := p.Pick(7)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 7)
	}
}
