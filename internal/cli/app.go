package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/assets"
	"github.com/robalobadob/wordscramble/internal/config"
	"github.com/robalobadob/wordscramble/internal/dictionary"
	"github.com/robalobadob/wordscramble/internal/game"
	"github.com/robalobadob/wordscramble/internal/words"
)

// app holds the wired engine for one command run.
type app struct {
	source words.Source
	ctrl   *game.Controller
	closer io.Closer
}

func (a *app) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

// newApp wires source, oracle and controller from c. The word list is
// loaded once up front so a missing resource fails before anything starts.
func newApp(ctx context.Context, c config.Config) (*app, error) {
	src := words.SourceFor(c.StartWordsFile)
	if _, err := src.LoadWords(); err != nil {
		return nil, fmt.Errorf("load word list: %w", err)
	}

	oracle, closer, err := openOracle(ctx, c)
	if err != nil {
		return nil, err
	}

	rules := c.Rules
	ctrl, err := game.NewController(game.Options{
		Source: src,
		Oracle: oracle,
		Rules:  &rules,
	})
	if err != nil {
		if closer != nil {
			_ = closer.Close()
		}
		return nil, err
	}
	return &app{source: src, ctrl: ctrl, closer: closer}, nil
}

// openOracle returns the sqlite dictionary when configured and the in-memory
// bundled dictionary otherwise. The bundled list is English only: it seeds an
// empty sqlite store for DefaultLanguage, and any other language must already
// have words stored.
func openOracle(ctx context.Context, c config.Config) (dictionary.Oracle, io.Closer, error) {
	lang := dictionary.NormalizeLanguage(c.Rules.Language)
	if c.DictionaryDB == "" {
		if lang != dictionary.DefaultLanguage {
			return nil, nil, fmt.Errorf("%w: %q has no bundled dictionary, set DICTIONARY_DB", dictionary.ErrUnsupportedLanguage, lang)
		}
		o, err := dictionary.NewEmbeddedOracle()
		if err != nil {
			return nil, nil, err
		}
		log.Debug().Int("words", o.Len(lang)).Msg("using bundled dictionary")
		return o, nil, nil
	}

	o, err := dictionary.OpenSQLite(c.DictionaryDB)
	if err != nil {
		return nil, nil, fmt.Errorf("open dictionary %s: %w", c.DictionaryDB, err)
	}
	if err := seedOracle(ctx, o, lang); err != nil {
		_ = o.Close()
		return nil, nil, err
	}
	return o, o, nil
}

func seedOracle(ctx context.Context, o *dictionary.SQLiteOracle, lang string) error {
	ok, err := o.HasLanguage(ctx, lang)
	if err != nil {
		return fmt.Errorf("check dictionary: %w", err)
	}
	if ok {
		return nil
	}
	if lang != dictionary.DefaultLanguage {
		return fmt.Errorf("%w: no %q words stored, run dict import --lang %s", dictionary.ErrUnsupportedLanguage, lang, lang)
	}
	ws, err := assets.DictionaryWords()
	if err != nil {
		return err
	}
	n, err := o.Import(ctx, lang, ws)
	if err != nil {
		return err
	}
	log.Info().Int("words", n).Str("lang", lang).Msg("seeded dictionary from bundled list")
	return nil
}
