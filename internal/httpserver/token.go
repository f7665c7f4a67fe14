package httpserver

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const gameCookieName = "wordscramble_game"

var errInvalidToken = errors.New("invalid token")

// gameClaims binds a bearer to one game ID.
type gameClaims struct {
	GameID string `json:"gid"`
	jwt.RegisteredClaims
}

// tokens signs and verifies HS256 game tokens.
type tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func newTokens(secret string, ttl time.Duration) *tokens {
	if secret == "" {
		secret = "dev_secret_change_me"
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &tokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// sign creates a token for gameID and returns it with its expiry.
func (tk *tokens) sign(gameID string) (string, time.Time, error) {
	now := tk.now()
	exp := now.Add(tk.ttl)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, gameClaims{
		GameID: gameID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
	ss, err := t.SignedString(tk.secret)
	return ss, exp, err
}

// parse verifies s and returns the game ID it carries.
func (tk *tokens) parse(s string) (string, error) {
	var claims gameClaims
	t, err := jwt.ParseWithClaims(s, &claims, func(t *jwt.Token) (interface{}, error) {
		return tk.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(tk.now),
	)
	if err != nil || !t.Valid || claims.GameID == "" {
		return "", errInvalidToken
	}
	return claims.GameID, nil
}

// setGameCookie writes the game token cookie.
func setGameCookie(w http.ResponseWriter, token string, exp time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     gameCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  exp,
	})
}

// bearerOrCookie extracts a bearer token from Authorization header or game cookie.
func bearerOrCookie(r *http.Request) string {
	// Authorization: Bearer <token>
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(gameCookieName); err == nil {
		return c.Value
	}
	return ""
}
