package game

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordscramble/internal/dictionary"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "cat", Normalize("  Cat \n"))
	assert.Equal(t, "", Normalize(" \t "))
	assert.Equal(t, "ice cream", Normalize(" Ice Cream "))
}

func TestIsOriginal(t *testing.T) {
	assert.True(t, IsOriginal("cat", nil))
	assert.True(t, IsOriginal("cat", []string{"act", "tact"}))
	assert.False(t, IsOriginal("cat", []string{"act", "cat"}))
}

func TestIsPossible(t *testing.T) {
	cases := []struct {
		candidate, root string
		want            bool
	}{
		{"cat", "tactic", true},
		{"cats", "tactic", false},
		{"tt", "tactic", true},
		{"ttt", "tactic", false},
		{"tactic", "tactic", true},
		{"", "tactic", true},
		{"worm", "silkworm", true},
		{"wormy", "silkworm", false},
		{"café", "facet", false},
		{"éa", "éaé", true},
	}
	for _, tc := range cases {
		t.Run(tc.candidate+"/"+tc.root, func(t *testing.T) {
			assert.Equal(t, tc.want, IsPossible(tc.candidate, tc.root))
		})
	}
}

func TestIsPossibleDoesNotMutateRoot(t *testing.T) {
	root := "tactic"
	require.True(t, IsPossible("tact", root))
	assert.Equal(t, "tactic", root)
	assert.True(t, IsPossible("tact", root))
}

func TestIsReal(t *testing.T) {
	ctx := context.Background()
	oracle := dictionary.NewSetOracle("en", []string{"cat", "at", "tactic", "a"})

	cases := []struct {
		name      string
		candidate string
		rules     Rules
		want      bool
	}{
		{"known word", "cat", DefaultRules(), true},
		{"unknown word", "tca", DefaultRules(), false},
		{"empty always rejected", "", Rules{Language: "en"}, false},
		{"root rejected when configured", "tactic", DefaultRules(), false},
		{"root allowed when not configured", "tactic", Rules{Language: "en"}, true},
		{"min length", "at", Rules{MinLength: 3, Language: "en"}, false},
		{"min length met", "cat", Rules{MinLength: 3, Language: "en"}, true},
		{"single letter", "a", DefaultRules(), true},
		{"no letters", "-", DefaultRules(), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := IsReal(ctx, oracle, tc.candidate, "tactic", tc.rules)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("oracle error propagates", func(t *testing.T) {
		boom := errors.New("boom")
		failing := dictionary.OracleFunc(func(context.Context, string, string) (*dictionary.Range, error) {
			return nil, boom
		})
		_, err := IsReal(ctx, failing, "cat", "tactic", DefaultRules())
		assert.ErrorIs(t, err, boom)
	})
}
