package dictionary

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/robalobadob/wordscramble/assets"
)

// SetOracle is an in-memory dictionary keyed by language.
type SetOracle struct {
	mu    sync.RWMutex
	langs map[string]map[string]struct{}
}

// NewSetOracle returns an oracle knowing words in lang.
func NewSetOracle(lang string, words []string) *SetOracle {
	o := &SetOracle{langs: make(map[string]map[string]struct{})}
	o.Add(lang, words...)
	return o
}

// NewEmbeddedOracle loads the bundled English dictionary.
func NewEmbeddedOracle() (*SetOracle, error) {
	ws, err := assets.DictionaryWords()
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", assets.DictionaryFile, err)
	}
	return NewSetOracle(DefaultLanguage, ws), nil
}

// Add registers words for lang. Words are lowercased and trimmed.
func (o *SetOracle) Add(lang string, words ...string) {
	lang = NormalizeLanguage(lang)
	o.mu.Lock()
	defer o.mu.Unlock()
	set, ok := o.langs[lang]
	if !ok {
		set = make(map[string]struct{}, len(words))
		o.langs[lang] = set
	}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			set[w] = struct{}{}
		}
	}
}

// Len returns the number of words known for lang.
func (o *SetOracle) Len(lang string) int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.langs[NormalizeLanguage(lang)])
}

func (o *SetOracle) CheckSpelling(_ context.Context, text, lang string) (*Range, error) {
	lang = NormalizeLanguage(lang)
	o.mu.RLock()
	defer o.mu.RUnlock()
	set, ok := o.langs[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}
	return firstUnknown(text, func(w string) (bool, error) {
		_, ok := set[w]
		return ok, nil
	})
}
