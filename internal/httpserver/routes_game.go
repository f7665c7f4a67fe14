// internal/httpserver/routes_game.go
//
// HTTP routes for playing a game:
//   - POST /game/new     → start a game on a random root word
//   - POST /game/daily   → start a game on today's deterministic root word
//   - GET  /game         → current root and accepted words
//   - POST /game/guess   → submit a candidate word
//   - POST /game/restart → replace the current game with a fresh one
//
// /game/new and /game/daily issue a token bound to the new game ID; the other
// routes require it (Authorization: Bearer <token> or the game cookie).

package httpserver

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/internal/daily"
	"github.com/robalobadob/wordscramble/internal/game"
	"github.com/robalobadob/wordscramble/internal/words"
)

// ctxGameKey is the context key for the authenticated game ID.
type ctxGameKey struct{}

// mountGame registers all /game routes.
func (s *Server) mountGame(r chi.Router) {
	r.Route("/game", func(r chi.Router) {
		r.Post("/new", s.handleNew)
		r.Post("/daily", s.handleDaily)

		r.Group(func(r chi.Router) {
			r.Use(s.requireGame)
			r.Get("/", s.handleState)
			r.Post("/guess", s.handleGuess)
			r.Post("/restart", s.handleRestart)
		})
	})
}

// requireGame verifies the game token and puts its game ID in the context.
func (s *Server) requireGame(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok := bearerOrCookie(r)
		if tok == "" {
			writeError(w, http.StatusUnauthorized, "missing_token")
			return
		}
		id, err := s.tokens.parse(tok)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid_token")
			return
		}
		ctx := context.WithValue(r.Context(), ctxGameKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func gameID(r *http.Request) string {
	id, _ := r.Context().Value(ctxGameKey{}).(string)
	return id
}

// -----------------------------------------------------------------------------
// /game/new, /game/daily

// gameRes describes a game's state; Token is only set when a game is created.
type gameRes struct {
	GameID  string   `json:"gameId"`
	Token   string   `json:"token,omitempty"`
	Root    string   `json:"root"`
	Guesses []string `json:"guesses"`
}

func (s *Server) handleNew(w http.ResponseWriter, r *http.Request) {
	s.startGame(w, r, nil)
}

func (s *Server) handleDaily(w http.ResponseWriter, r *http.Request) {
	s.startGame(w, r, daily.Today(s.salt))
}

// startGame creates a session with p (the controller's picker when nil),
// stores it and issues a token for it.
func (s *Server) startGame(w http.ResponseWriter, r *http.Request, p words.Picker) {
	var (
		sess *game.Session
		err  error
	)
	if p == nil {
		sess, err = s.ctrl.StartGame(r.Context())
	} else {
		sess, err = s.ctrl.StartGameWith(r.Context(), p)
	}
	if err != nil {
		log.Error().Err(err).Msg("start game")
		writeError(w, http.StatusInternalServerError, "start_failed")
		return
	}

	id, err := s.store.Create(r.Context(), sess)
	if err != nil {
		log.Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	tok, exp, err := s.tokens.sign(id)
	if err != nil {
		log.Error().Err(err).Str("gameId", id).Msg("sign token")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	setGameCookie(w, tok, exp)

	log.Info().Str("gameId", id).Str("root", sess.Root()).Msg("game started")
	writeJSON(w, http.StatusOK, gameRes{GameID: id, Token: tok, Root: sess.Root(), Guesses: sess.Guesses()})
}

// -----------------------------------------------------------------------------
// /game

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)
	snap, err := s.store.Snapshot(r.Context(), id)
	if err != nil {
		status, code := storeStatus(err)
		writeError(w, status, code)
		return
	}
	writeJSON(w, http.StatusOK, gameRes{GameID: id, Root: snap.Root, Guesses: snap.Guesses})
}

// -----------------------------------------------------------------------------
// /game/guess

type guessReq struct {
	Word string `json:"word"`
}

// guessRes carries the submission outcome and the state after it.
type guessRes struct {
	game.Outcome
	Root    string   `json:"root"`
	Guesses []string `json:"guesses"`
}

// handleGuess runs one submission. Rejections are normal outcomes (200);
// only dictionary or store failures are HTTP errors.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	id := gameID(r)
	var res guessRes
	err := s.store.Update(r.Context(), id, func(sess *game.Session) error {
		out, err := s.ctrl.Submit(r.Context(), sess, req.Word)
		if err != nil {
			return err
		}
		res = guessRes{Outcome: out, Root: sess.Root(), Guesses: sess.Guesses()}
		return nil
	})
	if err != nil {
		status, code := storeStatus(err)
		if status == http.StatusInternalServerError {
			log.Error().Err(err).Str("gameId", id).Msg("submit")
		}
		writeError(w, status, code)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// -----------------------------------------------------------------------------
// /game/restart

// handleRestart replaces the game behind the token with a new one; the
// previous guesses are discarded.
func (s *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	sess, err := s.ctrl.StartGame(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("restart game")
		writeError(w, http.StatusInternalServerError, "start_failed")
		return
	}
	id := gameID(r)
	if err := s.store.Replace(r.Context(), id, sess); err != nil {
		status, code := storeStatus(err)
		writeError(w, status, code)
		return
	}
	writeJSON(w, http.StatusOK, gameRes{GameID: id, Root: sess.Root(), Guesses: sess.Guesses()})
}
