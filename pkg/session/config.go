package session

import "time"

// Config holds session configuration.
type Config struct {
	// CookieName is the name of the session cookie (default: "sid")
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"sid"`

	// Secret signs session cookies; required for the default cookie transport
	Secret string `env:"SESSION_SECRET"`

	// TTL is the session lifetime
	TTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	// CleanupInterval for expired sessions in the memory store (0 to disable)
	CleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"5m"`

	// SecureCookies enables the Secure flag on session cookies
	SecureCookies bool `env:"SESSION_SECURE_COOKIES" envDefault:"false"`
}

// DefaultConfig returns default session configuration.
func DefaultConfig() Config {
	return Config{
		CookieName:      "sid",
		TTL:             24 * time.Hour,
		CleanupInterval: 5 * time.Minute,
	}
}

// NewFromConfig creates a Manager from the provided Config.
func NewFromConfig(cfg Config, opts ...Option) *Manager {
	configOpts := append([]Option{WithConfig(cfg)}, opts...)
	return New(configOpts...)
}
