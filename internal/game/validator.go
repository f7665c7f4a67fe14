package game

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/robalobadob/wordscramble/internal/dictionary"
)

// Normalize lowercases and trims a raw submission.
func Normalize(raw string) string {
	return strings.TrimSpace(strings.ToLower(raw))
}

// IsOriginal reports whether candidate is not already in guesses.
func IsOriginal(candidate string, guesses []string) bool {
	for _, g := range guesses {
		if g == candidate {
			return false
		}
	}
	return true
}

// IsPossible reports whether candidate can be spelled from root, using each
// letter of root at most once.
func IsPossible(candidate, root string) bool {
	pool := []rune(root)
	for _, r := range candidate {
		i := indexRune(pool, r)
		if i < 0 {
			return false
		}
		pool = append(pool[:i], pool[i+1:]...)
	}
	return true
}

func indexRune(rs []rune, r rune) int {
	for i, x := range rs {
		if x == r {
			return i
		}
	}
	return -1
}

// IsReal reports whether candidate passes rules and the oracle finds no
// misspelling across its full span. Oracle failures are returned as errors.
func IsReal(ctx context.Context, oracle dictionary.Oracle, candidate, root string, rules Rules) (bool, error) {
	n := utf8.RuneCountInString(candidate)
	if n == 0 || n < rules.MinLength {
		return false, nil
	}
	if rules.RejectRoot && candidate == root {
		return false, nil
	}
	rng, err := oracle.CheckSpelling(ctx, candidate, rules.Language)
	if err != nil {
		return false, err
	}
	return rng == nil, nil
}
