// Package dictionary answers "is this a real word in language L?".
//
// Oracles report the first misspelled range in a piece of text; a nil range
// means every word in the text is known. Two implementations are provided:
// SetOracle keeps an in-memory word set per language, SQLiteOracle looks
// words up in a sqlite table.
package dictionary

import (
	"context"
	"errors"
	"strings"
	"unicode"
)

// DefaultLanguage is used when a caller passes an empty language tag.
const DefaultLanguage = "en"

// ErrUnsupportedLanguage is returned for a language with no loaded words.
var ErrUnsupportedLanguage = errors.New("dictionary: unsupported language")

// Range is a misspelled span of text, in runes.
type Range struct {
	Location int `json:"location"`
	Length   int `json:"length"`
}

// Oracle checks spelling. A nil *Range with a nil error means no misspelling.
type Oracle interface {
	CheckSpelling(ctx context.Context, text, lang string) (*Range, error)
}

// OracleFunc adapts a plain function to Oracle.
type OracleFunc func(ctx context.Context, text, lang string) (*Range, error)

func (f OracleFunc) CheckSpelling(ctx context.Context, text, lang string) (*Range, error) {
	return f(ctx, text, lang)
}

// NormalizeLanguage lowercases lang and maps the empty tag to DefaultLanguage.
func NormalizeLanguage(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || r == '\''
}

// firstUnknown walks the letter runs of text and returns the range of the
// first one known reports false for. Text without any letter run is
// unknown as a whole.
func firstUnknown(text string, known func(word string) (bool, error)) (*Range, error) {
	runes := []rune(text)
	found := false
	for i := 0; i < len(runes); {
		if !isWordRune(runes[i]) {
			i++
			continue
		}
		start := i
		found = true
		for i < len(runes) && isWordRune(runes[i]) {
			i++
		}
		ok, err := known(strings.ToLower(string(runes[start:i])))
		if err != nil {
			return nil, err
		}
		if !ok {
			return &Range{Location: start, Length: i - start}, nil
		}
	}
	if !found {
		return &Range{Location: 0, Length: len(runes)}, nil
	}
	return nil, nil
}
