package game

import "strings"

// Session is the mutable state of one game: the root word and the accepted
// guesses, most recent first. It holds no lock; one caller drives it at a time.
type Session struct {
	root    string
	guesses []string
}

// NewSession starts an empty session for root.
func NewSession(root string) *Session {
	return &Session{
		root:    strings.ToLower(strings.TrimSpace(root)),
		guesses: []string{},
	}
}

// Root returns the session's root word.
func (s *Session) Root() string { return s.root }

// Guesses returns a copy of the accepted words, most recent first.
func (s *Session) Guesses() []string {
	out := make([]string, len(s.guesses))
	copy(out, s.guesses)
	return out
}

// Len returns the number of accepted words.
func (s *Session) Len() int { return len(s.guesses) }

// RecordGuess puts candidate at the front of the guess list. It performs no
// validation.
func (s *Session) RecordGuess(candidate string) {
	s.guesses = append([]string{candidate}, s.guesses...)
}

// Snapshot copies the session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{Root: s.root, Guesses: s.Guesses()}
}
