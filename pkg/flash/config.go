package flash

import "time"

// Config holds flash configuration.
type Config struct {
	// SecretKeyBase is the application-wide secret, used by NewFromConfig.
	SecretKeyBase string `env:"SECRET_KEY_BASE"`

	// SigningSalt scopes the flash token key to this purpose. It must
	// differ from the session signing salt.
	SigningSalt string `env:"FLASH_SIGNING_SALT" envDefault:"flash"`

	// CookieName is the cookie carrying the self-contained flash token.
	CookieName string `env:"FLASH_COOKIE_NAME" envDefault:"__flash__"`

	// CookieMaxAge bounds both the cookie lifetime and the token age. The
	// flash only has to survive one redirect hop, so keep it short.
	CookieMaxAge time.Duration `env:"FLASH_COOKIE_MAX_AGE" envDefault:"1m"`

	// SecureCookies enables the Secure flag on the flash cookie.
	SecureCookies bool `env:"FLASH_SECURE_COOKIES" envDefault:"false"`
}

// DefaultConfig returns default flash configuration.
func DefaultConfig() Config {
	return Config{
		SigningSalt:   "flash",
		CookieName:    "__flash__",
		CookieMaxAge:  time.Minute,
		SecureCookies: false,
	}
}

// NewFromConfig creates a Manager from the provided Config.
func NewFromConfig(cfg Config, opts ...Option) (*Manager, error) {
	configOpts := append([]Option{WithConfig(cfg)}, opts...)
	return New(cfg.SecretKeyBase, configOpts...)
}
