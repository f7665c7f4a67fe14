// internal/game/engine.go
//
// Game controller for word-scramble sessions.
// Responsibilities:
//   - Start games: load the word list source and pick a root word.
//   - Submit candidates: normalize, then run IsOriginal → IsPossible → IsReal,
//     reporting the first failure or recording the guess.
//   - Notify subscribers with a Snapshot after every state change.
//
// Notes:
//   - A failed word list load is returned wrapped around words.ErrResourceMissing;
//     hosts treat it as fatal at startup.
//   - A list that loads but is empty starts a game on words.DefaultRoot.
//   - Dictionary errors are infrastructure failures, not rejections.
package game

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/internal/dictionary"
	"github.com/robalobadob/wordscramble/internal/words"
)

// Options configures a Controller. Source and Oracle are required.
type Options struct {
	Source words.Source
	Oracle dictionary.Oracle
	Picker words.Picker    // defaults to words.RandomPicker
	Rules  *Rules          // defaults to DefaultRules()
	Logger *zerolog.Logger // defaults to the global logger
}

// Controller runs submissions against sessions. It is safe to share across
// sessions; each session must only be driven by one caller at a time.
type Controller struct {
	source words.Source
	oracle dictionary.Oracle
	picker words.Picker
	rules  Rules
	logger zerolog.Logger

	mu   sync.RWMutex
	subs []func(Snapshot)
}

// NewController validates opts and fills defaults.
func NewController(opts Options) (*Controller, error) {
	if opts.Source == nil {
		return nil, errors.New("game: nil word list source")
	}
	if opts.Oracle == nil {
		return nil, errors.New("game: nil dictionary oracle")
	}
	c := &Controller{
		source: opts.Source,
		oracle: opts.Oracle,
		picker: opts.Picker,
		rules:  DefaultRules(),
		logger: log.Logger,
	}
	if c.picker == nil {
		c.picker = words.RandomPicker{}
	}
	if opts.Rules != nil {
		c.rules = *opts.Rules
	}
	if opts.Logger != nil {
		c.logger = *opts.Logger
	}
	return c, nil
}

// Rules returns the rules the controller validates with.
func (c *Controller) Rules() Rules { return c.rules }

// Subscribe registers fn to receive a Snapshot whenever a game starts or a
// guess is accepted. fn runs synchronously on the caller's goroutine.
func (c *Controller) Subscribe(fn func(Snapshot)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = append(c.subs, fn)
}

func (c *Controller) notify(s *Session) {
	c.mu.RLock()
	subs := c.subs
	c.mu.RUnlock()
	if len(subs) == 0 {
		return
	}
	snap := s.Snapshot()
	for _, fn := range subs {
		fn(snap)
	}
}

// StartGame returns a fresh session rooted at a randomly picked word.
func (c *Controller) StartGame(ctx context.Context) (*Session, error) {
	return c.StartGameWith(ctx, c.picker)
}

// StartGameWith is StartGame with an explicit picker.
func (c *Controller) StartGameWith(ctx context.Context, p words.Picker) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	list, err := c.source.LoadWords()
	if err != nil {
		return nil, fmt.Errorf("start game: %w", err)
	}
	root := words.Choose(list, p)
	if len(list) == 0 {
		c.logger.Warn().Str("root", root).Msg("word list empty, using default root")
	}
	s := NewSession(root)
	c.logger.Debug().Str("root", root).Int("pool", len(list)).Msg("game started")
	c.notify(s)
	return s, nil
}

// Submit validates raw against s and records it when every check passes.
// Blank input yields StatusIgnored. The returned error is non-nil only for
// dictionary failures; rejections are reported in the Outcome.
func (c *Controller) Submit(ctx context.Context, s *Session, raw string) (Outcome, error) {
	candidate := Normalize(raw)
	if candidate == "" {
		return Outcome{Status: StatusIgnored}, nil
	}

	if !IsOriginal(candidate, s.guesses) {
		return c.reject(s, candidate, alreadyUsed()), nil
	}
	if !IsPossible(candidate, s.root) {
		return c.reject(s, candidate, notPossible(s.root)), nil
	}
	ok, err := IsReal(ctx, c.oracle, candidate, s.root, c.rules)
	if err != nil {
		return Outcome{}, fmt.Errorf("check spelling %q: %w", candidate, err)
	}
	if !ok {
		return c.reject(s, candidate, notReal()), nil
	}

	s.RecordGuess(candidate)
	c.logger.Debug().Str("root", s.root).Str("word", candidate).Int("total", s.Len()).Msg("word accepted")
	c.notify(s)
	return Outcome{Status: StatusAccepted, Word: candidate}, nil
}

func (c *Controller) reject(s *Session, candidate string, r *Rejection) Outcome {
	c.logger.Debug().Str("root", s.root).Str("word", candidate).Str("reason", string(r.Reason)).Msg("word rejected")
	return Outcome{Status: StatusRejected, Word: candidate, Rejection: r}
}
