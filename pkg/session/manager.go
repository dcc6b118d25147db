package session

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/flashkit/pkg/cookie"
	"github.com/dmitrymomot/flashkit/pkg/signer"
)

// Manager fetches the session container from its signed cookie and writes
// it back on send when the container was mutated.
type Manager struct {
	signer  *signer.Signer
	cookies *cookie.Manager
	config  Config
	log     *slog.Logger
}

// payload is the signed wire form of a session container.
type payload struct {
	ID   uuid.UUID      `json:"id"`
	Data map[string]any `json:"data"`
}

// New creates a session manager. The signing key is derived from the secret
// key base and the configured session salt, so session cookies are never
// interchangeable with tokens minted for other purposes.
func New(secretKeyBase string, opts ...Option) (*Manager, error) {
	m := &Manager{
		config: DefaultConfig(),
		log:    slog.Default(),
	}

	for _, opt := range opts {
		opt(m)
	}

	s, err := signer.New(secretKeyBase, m.config.SigningSalt, signer.WithMaxAge(m.config.MaxAge))
	if err != nil {
		return nil, err
	}
	m.signer = s

	if m.cookies == nil {
		m.cookies = cookie.New()
	}

	return m, nil
}

// Fetch resolves the session container from the request cookie. A missing,
// tampered or expired cookie yields a fresh empty container, never an
// error. The returned container is marked fetched and clean.
func (m *Manager) Fetch(r *http.Request) *Session {
	fresh := &Session{
		id:      uuid.New(),
		data:    make(map[string]any),
		fetched: true,
	}

	raw, err := m.cookies.Get(r, m.config.CookieName)
	if err != nil {
		return fresh
	}

	var p payload
	if err := m.signer.Verify(raw, &p); err != nil {
		m.log.DebugContext(r.Context(), "session cookie rejected",
			slog.String("cookie", m.config.CookieName),
			slog.Any("error", err))
		return fresh
	}

	sess := &Session{
		id:      p.ID,
		data:    p.Data,
		fetched: true,
	}
	if sess.data == nil {
		sess.data = make(map[string]any)
	}
	return sess
}

// Write persists the container into its signed cookie. Untouched containers
// are skipped so that a request which never mutates the session produces no
// Set-Cookie header.
func (m *Manager) Write(w http.ResponseWriter, sess *Session) error {
	if !sess.IsDirty() {
		return nil
	}

	token, err := m.signer.Sign(payload{ID: sess.id, Data: sess.data})
	if err != nil {
		return err
	}

	opts := []cookie.Option{
		cookie.WithMaxAge(int(m.config.MaxAge.Seconds())),
	}
	if m.config.SecureCookies {
		opts = append(opts, cookie.WithSecure(true))
	}

	m.cookies.Set(w, m.config.CookieName, token, opts...)
	return nil
}

// Destroy expires the session cookie on the client.
func (m *Manager) Destroy(w http.ResponseWriter) {
	m.cookies.Delete(w, m.config.CookieName)
}
