package session_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robinboening/mobylette/pkg/session"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func setupManager(t *testing.T) *session.Manager {
	t.Helper()
	manager := session.New(
		session.WithSecret(testSecret),
		session.WithTTL(time.Hour),
	)
	t.Cleanup(func() { _ = manager.Close() })
	return manager
}

// withSessionCookie copies the session cookie from a recorded response onto
// a fresh request.
func withSessionCookie(t *testing.T, w *httptest.ResponseRecorder, target string) *http.Request {
	t.Helper()
	r := httptest.NewRequest("GET", target, nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestManagerEnsure(t *testing.T) {
	t.Parallel()
	manager := setupManager(t)

	t.Run("creates session and sets cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/", nil)

		sess, err := manager.Ensure(r.Context(), w, r)
		require.NoError(t, err)
		require.NotNil(t, sess)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "sid", cookies[0].Name)
		assert.True(t, cookies[0].HttpOnly)
		assert.Contains(t, cookies[0].Value, ".")
	})

	t.Run("returns existing session", func(t *testing.T) {
		w1 := httptest.NewRecorder()
		r1 := httptest.NewRequest("GET", "/", nil)
		sess1, err := manager.Ensure(r1.Context(), w1, r1)
		require.NoError(t, err)

		r2 := withSessionCookie(t, w1, "/")
		w2 := httptest.NewRecorder()
		sess2, err := manager.Ensure(r2.Context(), w2, r2)
		require.NoError(t, err)

		assert.Equal(t, sess1.ID, sess2.ID)
		assert.Empty(t, w2.Result().Cookies(), "no new cookie for an existing session")
	})
}

func TestManagerGet(t *testing.T) {
	t.Parallel()
	manager := setupManager(t)

	t.Run("no cookie", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		_, err := manager.Get(r.Context(), r)
		assert.ErrorIs(t, err, session.ErrNoToken)
	})

	t.Run("tampered cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/", nil)
		_, err := manager.Ensure(r.Context(), w, r)
		require.NoError(t, err)

		r2 := httptest.NewRequest("GET", "/", nil)
		c := w.Result().Cookies()[0]
		token, _, _ := strings.Cut(c.Value, ".")
		c.Value = token + ".forged-signature"
		r2.AddCookie(c)

		_, err = manager.Get(r2.Context(), r2)
		assert.ErrorIs(t, err, session.ErrInvalidToken)
	})
}

func TestManagerSaveRoundTrip(t *testing.T) {
	t.Parallel()
	manager := setupManager(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)
	sess, err := manager.Ensure(r.Context(), w, r)
	require.NoError(t, err)

	sess.Set("language", "de")
	require.NoError(t, manager.Save(r.Context(), sess))

	r2 := withSessionCookie(t, w, "/")
	got, err := manager.Get(r2.Context(), r2)
	require.NoError(t, err)

	lang, ok := got.GetString("language")
	assert.True(t, ok)
	assert.Equal(t, "de", lang)
}

func TestManagerSet(t *testing.T) {
	t.Parallel()
	manager := setupManager(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)
	require.NoError(t, manager.Set(r.Context(), w, r, "theme", "dark"))

	r2 := withSessionCookie(t, w, "/")
	got, err := manager.Get(r2.Context(), r2)
	require.NoError(t, err)

	theme, ok := got.GetString("theme")
	assert.True(t, ok)
	assert.Equal(t, "dark", theme)
}

func TestManagerDestroy(t *testing.T) {
	t.Parallel()
	manager := setupManager(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)
	_, err := manager.Ensure(r.Context(), w, r)
	require.NoError(t, err)

	r2 := withSessionCookie(t, w, "/")
	w2 := httptest.NewRecorder()
	require.NoError(t, manager.Destroy(r2.Context(), w2, r2))

	cookies := w2.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)

	_, err = manager.Get(r2.Context(), r2)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestManagerExpiredSession(t *testing.T) {
	t.Parallel()
	manager := session.New(
		session.WithSecret(testSecret),
		session.WithTTL(time.Millisecond),
	)
	t.Cleanup(func() { _ = manager.Close() })

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)
	_, err := manager.Ensure(r.Context(), w, r)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	r2 := withSessionCookie(t, w, "/")
	_, err = manager.Get(r2.Context(), r2)
	assert.ErrorIs(t, err, session.ErrSessionExpired)

	// Ensure replaces the expired session with a fresh one
	w2 := httptest.NewRecorder()
	sess, err := manager.Ensure(r2.Context(), w2, r2)
	require.NoError(t, err)
	assert.False(t, sess.IsExpired())
}

func TestManagerRequiresSecret(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		session.New()
	})
}

func TestManagerCustomTransportSkipsSecret(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		manager := session.New(session.WithTransport(session.NewCookieTransport("sid", testSecret, false)))
		_ = manager.Close()
	})
}
