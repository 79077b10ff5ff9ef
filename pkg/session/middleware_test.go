package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robinboening/mobylette/pkg/session"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()
	manager := setupManager(t)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sess, ok := session.FromContext(r.Context()); ok {
			w.Header().Set("X-Session-ID", sess.ID.String())
		}
		w.WriteHeader(http.StatusOK)
	})

	middleware := manager.Middleware(handler)

	t.Run("injects existing session", func(t *testing.T) {
		w1 := httptest.NewRecorder()
		r1 := httptest.NewRequest("GET", "/", nil)
		sess, err := manager.Ensure(r1.Context(), w1, r1)
		require.NoError(t, err)

		r2 := withSessionCookie(t, w1, "/")
		w2 := httptest.NewRecorder()
		middleware.ServeHTTP(w2, r2)

		assert.Equal(t, http.StatusOK, w2.Code)
		assert.Equal(t, sess.ID.String(), w2.Header().Get("X-Session-ID"))
	})

	t.Run("continues without session", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		w := httptest.NewRecorder()

		middleware.ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("X-Session-ID"))
	})
}

func TestEnsureSession(t *testing.T) {
	t.Parallel()
	manager := setupManager(t)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.MustFromContext(r.Context())
		w.Header().Set("X-Session-ID", sess.ID.String())
		w.WriteHeader(http.StatusOK)
	})

	middleware := manager.EnsureSession(handler)

	t.Run("creates session for fresh request", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		w := httptest.NewRecorder()

		middleware.ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-Session-ID"))
		assert.Len(t, w.Result().Cookies(), 1)
	})

	t.Run("reuses session across requests", func(t *testing.T) {
		r1 := httptest.NewRequest("GET", "/", nil)
		w1 := httptest.NewRecorder()
		middleware.ServeHTTP(w1, r1)
		first := w1.Header().Get("X-Session-ID")

		r2 := withSessionCookie(t, w1, "/")
		w2 := httptest.NewRecorder()
		middleware.ServeHTTP(w2, r2)

		assert.Equal(t, first, w2.Header().Get("X-Session-ID"))
	})
}

func TestContextHelpers(t *testing.T) {
	t.Parallel()

	t.Run("must panics without session", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest("GET", "/", nil)
		assert.Panics(t, func() {
			session.MustFromContext(r.Context())
		})
	})
}
