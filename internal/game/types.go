// internal/game/types.go
//
// Core type definitions for the word-scramble engine.
// Defines:
//   - Status:    outcome of one submission (accepted/rejected/ignored).
//   - Reason:    why a candidate was rejected.
//   - Rejection: user-facing title/message pair, usable as an error.
//   - Outcome:   result of Controller.Submit.
//   - Rules:     tunable validity rules.
//   - Snapshot:  read-only copy of a session for observers.

package game

import (
	"errors"
	"fmt"
)

// Status is the coarse result of a submission.
type Status string

const (
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
	StatusIgnored  Status = "ignored" // blank input, nothing changed
)

// Reason identifies which validity check failed.
type Reason string

const (
	ReasonAlreadyUsed Reason = "already_used"
	ReasonNotPossible Reason = "not_possible"
	ReasonNotReal     Reason = "not_real"
)

// Sentinels matched by errors.Is against a *Rejection.
var (
	ErrAlreadyUsed = errors.New("game: word already used")
	ErrNotPossible = errors.New("game: word not possible")
	ErrNotReal     = errors.New("game: word not real")
)

func (r Reason) sentinel() error {
	switch r {
	case ReasonAlreadyUsed:
		return ErrAlreadyUsed
	case ReasonNotPossible:
		return ErrNotPossible
	case ReasonNotReal:
		return ErrNotReal
	}
	return nil
}

// Rejection is a recoverable validation failure shown to the player.
type Rejection struct {
	Reason  Reason `json:"reason"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("%s: %s", r.Title, r.Message)
}

// Is lets errors.Is match a Rejection against ErrAlreadyUsed and friends.
func (r *Rejection) Is(target error) bool {
	return target != nil && target == r.Reason.sentinel()
}

func alreadyUsed() *Rejection {
	return &Rejection{
		Reason:  ReasonAlreadyUsed,
		Title:   "Word used already",
		Message: "Be more original!",
	}
}

func notPossible(root string) *Rejection {
	return &Rejection{
		Reason:  ReasonNotPossible,
		Title:   "Word not possible",
		Message: fmt.Sprintf("You can't spell that word from '%s'!", root),
	}
}

func notReal() *Rejection {
	return &Rejection{
		Reason:  ReasonNotReal,
		Title:   "Word not recognized",
		Message: "You do know that you can't just make up words, right?",
	}
}

// Outcome is the result of one Submit call.
type Outcome struct {
	Status    Status     `json:"status"`
	Word      string     `json:"word,omitempty"`
	Rejection *Rejection `json:"rejection,omitempty"`
}

// Err returns the Rejection as an error, or nil when nothing was rejected.
func (o Outcome) Err() error {
	if o.Rejection == nil {
		return nil
	}
	return o.Rejection
}

// Rules tunes the dictionary check.
type Rules struct {
	// MinLength rejects candidates with fewer runes. The empty string is
	// always rejected.
	MinLength int `yaml:"min_length"`
	// RejectRoot rejects a candidate equal to the root word.
	RejectRoot bool `yaml:"reject_root"`
	// Language is passed to the dictionary oracle.
	Language string `yaml:"language"`
}

// DefaultRules rejects the empty string and the root word itself.
func DefaultRules() Rules {
	return Rules{MinLength: 1, RejectRoot: true, Language: "en"}
}

// Snapshot is a copy of a session's state.
type Snapshot struct {
	Root    string   `json:"root"`
	Guesses []string `json:"guesses"`
}
