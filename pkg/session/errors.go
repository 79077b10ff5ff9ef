package session

import "errors"

var (
	// ErrSessionNotFound indicates no session was found for the token
	ErrSessionNotFound = errors.New("session.not_found")

	// ErrSessionExpired indicates the session has expired
	ErrSessionExpired = errors.New("session.expired")

	// ErrNoToken indicates the request carries no session cookie
	ErrNoToken = errors.New("session.no_token")

	// ErrInvalidToken indicates the cookie signature did not verify
	ErrInvalidToken = errors.New("session.invalid_token")

	// ErrTokenGeneration indicates token generation failed
	ErrTokenGeneration = errors.New("session.token_generation_failed")

	// ErrStoreFailure indicates the backing store rejected an operation
	ErrStoreFailure = errors.New("session.store_failure")
)
