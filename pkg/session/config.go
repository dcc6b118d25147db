package session

import "time"

// Config holds session configuration.
type Config struct {
	// SecretKeyBase is the application-wide secret, used by NewFromConfig.
	SecretKeyBase string `env:"SECRET_KEY_BASE"`

	// CookieName is the name of the session cookie (default: "_session").
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"_session"`

	// SigningSalt scopes the session signing key to this purpose.
	SigningSalt string `env:"SESSION_SIGNING_SALT" envDefault:"signed session cookie"`

	// MaxAge bounds both the cookie lifetime and the signed token age.
	MaxAge time.Duration `env:"SESSION_MAX_AGE" envDefault:"720h"`

	// SecureCookies enables the Secure flag on session cookies.
	SecureCookies bool `env:"SESSION_SECURE_COOKIES" envDefault:"false"`
}

// DefaultConfig returns default session configuration.
func DefaultConfig() Config {
	return Config{
		CookieName:    "_session",
		SigningSalt:   "signed session cookie",
		MaxAge:        30 * 24 * time.Hour,
		SecureCookies: false,
	}
}

// NewFromConfig creates a Manager from the provided Config.
func NewFromConfig(cfg Config, opts ...Option) (*Manager, error) {
	configOpts := append([]Option{WithConfig(cfg)}, opts...)
	return New(cfg.SecretKeyBase, configOpts...)
}
