package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strings"
	"time"
)

// Transport moves the session token between requests and responses.
type Transport interface {
	// GetToken extracts the session token from the request
	GetToken(r *http.Request) (string, error)

	// SetToken writes the session token to the response
	SetToken(w http.ResponseWriter, token string, ttl time.Duration) error

	// ClearToken removes the session token from the client
	ClearToken(w http.ResponseWriter) error
}

// cookieTransport carries the token in an HMAC-signed cookie. The cookie
// value is "token.signature"; a broken signature is treated as no token.
type cookieTransport struct {
	name   string
	secret []byte
	secure bool
}

// NewCookieTransport creates a cookie transport signing tokens with the
// given secret.
func NewCookieTransport(name, secret string, secure bool) Transport {
	return &cookieTransport{
		name:   name,
		secret: []byte(secret),
		secure: secure,
	}
}

func (t *cookieTransport) GetToken(r *http.Request) (string, error) {
	c, err := r.Cookie(t.name)
	if err != nil || c.Value == "" {
		return "", ErrNoToken
	}

	token, sig, found := strings.Cut(c.Value, ".")
	if !found || token == "" {
		return "", ErrInvalidToken
	}

	if !hmac.Equal([]byte(sig), []byte(t.sign(token))) {
		return "", ErrInvalidToken
	}

	return token, nil
}

func (t *cookieTransport) SetToken(w http.ResponseWriter, token string, ttl time.Duration) error {
	http.SetCookie(w, &http.Cookie{
		Name:     t.name,
		Value:    token + "." + t.sign(token),
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   t.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (t *cookieTransport) ClearToken(w http.ResponseWriter) error {
	http.SetCookie(w, &http.Cookie{
		Name:     t.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   t.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (t *cookieTransport) sign(token string) string {
	mac := hmac.New(sha256.New, t.secret)
	mac.Write([]byte(token))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
