package assets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLinesNormalizes(t *testing.T) {
	in := "# header\n  Silkworm \n\nTACTICAL\n#skip\nmarigold"
	got, err := ReadLines(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"silkworm", "tactical", "marigold"}, got)
}

func TestBundledLists(t *testing.T) {
	start, err := StartWords()
	require.NoError(t, err)
	assert.Contains(t, start, "silkworm")

	dict, err := DictionaryWords()
	require.NoError(t, err)
	assert.Contains(t, dict, "worm")
	assert.Contains(t, dict, "tactic")
	for _, w := range dict {
		assert.Equal(t, strings.ToLower(w), w)
	}
}
