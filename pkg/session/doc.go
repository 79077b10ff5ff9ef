// Package session provides cookie-based HTTP sessions.
//
// A Session is a token-addressed bag of values persisted through a Store
// (in-memory or Redis) and transported as an HMAC-signed cookie. The Manager
// ties store and transport together and exposes middleware that injects the
// session into the request context.
//
// Basic usage:
//
//	manager := session.New(session.WithSecret(secret))
//	defer manager.Close()
//
//	mux.Handle("/", manager.EnsureSession(handler))
//
// Inside a handler:
//
//	sess := session.MustFromContext(r.Context())
//	sess.Set("theme", "dark")
//	_ = manager.Save(r.Context(), sess)
package session
