package flash

import (
	"log/slog"

	"github.com/dmitrymomot/flashkit/pkg/cookie"
)

// Option is a functional option for configuring the Manager.
type Option func(*Manager)

// WithConfig sets custom configuration.
func WithConfig(config Config) Option {
	return func(m *Manager) {
		m.config = config
	}
}

// WithCookieName sets the flash cookie name.
func WithCookieName(name string) Option {
	return func(m *Manager) {
		m.config.CookieName = name
	}
}

// WithSigningSalt sets the purpose salt for the flash token key.
func WithSigningSalt(salt string) Option {
	return func(m *Manager) {
		m.config.SigningSalt = salt
	}
}

// WithCookieManager sets the cookie manager used for the token cookie.
func WithCookieManager(cookies *cookie.Manager) Option {
	return func(m *Manager) {
		m.cookies = cookies
	}
}

// WithLogger sets the logger for degraded-token diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}
