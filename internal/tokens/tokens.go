// Package tokens signs and verifies the session id carried by the browser
// cookie, so a forged cookie cannot address an arbitrary server-side session.
package tokens

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the session cookie set on every response that creates a session.
const CookieName = "dailyhome_session"

// Tokens wraps session ids into signed JWT cookie values.
type Tokens struct {
	SecretKey string        // Secret key for signing tokens
	Exp       time.Duration // Token (and session cookie) lifetime
}

// New creates a new Tokens instance
func New(secretKey string, expiration time.Duration) *Tokens {
	return &Tokens{
		SecretKey: secretKey,
		Exp:       expiration,
	}
}

// Generate creates a signed token carrying the given session id.
func (t *Tokens) Generate(ctx context.Context, sid string) (string, error) {
	claims := jwt.MapClaims{
		"sid": sid,
		"exp": time.Now().Add(t.Exp).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(t.SecretKey))
}

// GetSessionID parses the token string and returns the session id if valid.
func (t *Tokens) GetSessionID(ctx context.Context, tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(t.SecretKey), nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if sid, ok := claims["sid"].(string); ok && sid != "" {
			return sid, nil
		}
		return "", errors.New("sid not found in token")
	}
	return "", errors.New("invalid token")
}

// GetSessionIDFromRequest extracts and verifies the session id from the
// request cookie. Returns an empty id without error when no cookie is set.
func (t *Tokens) GetSessionIDFromRequest(ctx context.Context, r *http.Request) (string, error) {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return "", nil
	}
	return t.GetSessionID(ctx, c.Value)
}

// SetCookie writes the signed session cookie for the given session id.
func (t *Tokens) SetCookie(ctx context.Context, w http.ResponseWriter, sid string) error {
	value, err := t.Generate(ctx, sid)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(t.Exp.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
