package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"
)

// Manager ties a Store and a Transport together.
type Manager struct {
	store     Store
	transport Transport
	config    Config
}

// New creates a session manager with the given options. When no transport
// is configured, a signed-cookie transport is built from the config; that
// requires a non-empty secret.
func New(opts ...Option) *Manager {
	m := &Manager{
		config: DefaultConfig(),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.store == nil {
		m.store = NewMemoryStore(m.config.CleanupInterval)
	}

	if m.transport == nil {
		if m.config.Secret == "" {
			// Fail fast on misconfiguration: unsigned session cookies are forgeable
			panic("session: secret is required when using default cookie transport")
		}
		m.transport = NewCookieTransport(m.config.CookieName, m.config.Secret, m.config.SecureCookies)
	}

	return m
}

// Ensure retrieves the request's session, creating one when absent or
// expired. New sessions get their token set on the response.
func (m *Manager) Ensure(ctx context.Context, w http.ResponseWriter, r *http.Request) (*Session, error) {
	session, err := m.Get(ctx, r)
	if err == nil {
		return session, nil
	}

	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	session = NewSession(token, m.config.TTL)
	if err := m.store.Create(ctx, session); err != nil {
		return nil, err
	}

	if err := m.transport.SetToken(w, session.Token, m.config.TTL); err != nil {
		_ = m.store.Delete(ctx, session.Token)
		return nil, err
	}

	return session, nil
}

// Get retrieves an existing session from the request.
func (m *Manager) Get(ctx context.Context, r *http.Request) (*Session, error) {
	token, err := m.transport.GetToken(r)
	if err != nil {
		return nil, err
	}

	session, err := m.store.Get(ctx, token)
	if err != nil {
		return nil, err
	}

	if session.IsExpired() {
		return nil, ErrSessionExpired
	}

	return session, nil
}

// Save persists session data changes.
func (m *Manager) Save(ctx context.Context, session *Session) error {
	if session == nil {
		return ErrSessionNotFound
	}
	return m.store.Update(ctx, session)
}

// Set stores a value in the request's session, creating one when needed.
func (m *Manager) Set(ctx context.Context, w http.ResponseWriter, r *http.Request, key string, value any) error {
	session, err := m.Ensure(ctx, w, r)
	if err != nil {
		return err
	}

	session.Set(key, value)
	return m.store.Update(ctx, session)
}

// Destroy deletes the session and clears the cookie.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	token, err := m.transport.GetToken(r)
	if err == nil && token != "" {
		_ = m.store.Delete(ctx, token)
	}

	return m.transport.ClearToken(w)
}

// Close releases store resources when the store supports it.
func (m *Manager) Close() error {
	if closer, ok := m.store.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

// generateToken creates a cryptographically secure token.
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
