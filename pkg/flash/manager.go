package flash

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/flashkit/pkg/cookie"
	"github.com/dmitrymomot/flashkit/pkg/session"
	"github.com/dmitrymomot/flashkit/pkg/signer"
)

// SessionKey is the reserved session key the flash map is persisted under.
const SessionKey = "_flash"

// Manager resolves the flash state at the start of a request and decides
// its fate when the response is finalized.
type Manager struct {
	signer  *signer.Signer
	cookies *cookie.Manager
	config  Config
	log     *slog.Logger
}

// New creates a flash manager. The token signing key is derived from the
// secret key base and the flash salt, so flash tokens never verify under a
// key minted for another purpose.
func New(secretKeyBase string, opts ...Option) (*Manager, error) {
	m := &Manager{
		config: DefaultConfig(),
		log:    slog.Default(),
	}

	for _, opt := range opts {
		opt(m)
	}

	s, err := signer.New(secretKeyBase, m.config.SigningSalt, signer.WithMaxAge(m.config.CookieMaxAge))
	if err != nil {
		return nil, err
	}
	m.signer = s

	if m.cookies == nil {
		m.cookies = cookie.New()
	}

	return m, nil
}

// Fetch resolves the flash state for the request. A session-backed value
// wins over the cookie token; when neither source yields data the flash
// starts empty. The reserved key is removed from the session's write-back
// candidate here and re-added at send time only if still warranted.
//
// sess may be nil for stateless requests that carry no session container.
// A non-nil sess must already be fetched or the session guard fires.
func (m *Manager) Fetch(r *http.Request, sess *session.Session) *Flash {
	f := &Flash{
		messages: make(map[string]string),
		fetched:  true,
	}

	if sess != nil {
		if value, ok := sess.Get(SessionKey); ok {
			f.messages = toMessages(value)
			// Removing the entry dirties the container, so a stale flash is
			// purged by the session write-back even when nothing re-adds it.
			sess.Delete(SessionKey)
			return f
		}
	}

	raw, err := m.cookies.Get(r, m.config.CookieName)
	if err != nil {
		return f
	}

	msgs, err := m.verifyToken(raw)
	if err != nil {
		// Forged or stale tokens degrade to an empty flash, never an error.
		m.log.DebugContext(r.Context(), "flash cookie rejected",
			slog.String("cookie", m.config.CookieName),
			slog.Any("error", err))
		return f
	}

	f.messages = msgs
	f.fromCookie = true
	return f
}

// SignToken mints a self-contained signed token carrying the given
// messages. Stateless live-update connections use it to hand a flash to
// the next HTTP request without a session container.
func (m *Manager) SignToken(messages map[string]string) (string, error) {
	return m.signer.Sign(messages)
}

// VerifyToken recovers the messages from a signed flash token. Anything
// after the first ";" in the raw value is ignored, since client-side
// writers append cookie attributes inside the value itself. The boolean is
// false for tampered, malformed or expired tokens.
func (m *Manager) VerifyToken(token string) (map[string]string, bool) {
	msgs, err := m.verifyToken(token)
	if err != nil {
		return nil, false
	}
	return msgs, true
}

func (m *Manager) verifyToken(raw string) (map[string]string, error) {
	token, _, _ := strings.Cut(raw, ";")

	var msgs map[string]string
	if err := m.signer.Verify(strings.TrimSpace(token), &msgs); err != nil {
		return nil, err
	}
	if msgs == nil {
		msgs = make(map[string]string)
	}
	return msgs, nil
}

// finalize runs the persistence decision once the final status is known.
//
// With a session container the flash rides the session: a redirecting
// response re-adds the reserved key, everything else leaves it removed.
// The fetch-time removal already dirtied the container when an entry
// existed, so a stale flash is purged by the session's own write-back
// without an extra write here; an untouched empty container stays clean
// and produces no cookie at all.
//
// Without a session the flash rides its own signed cookie: minted fresh on
// a redirecting response, expired once consumed.
func (m *Manager) finalize(w http.ResponseWriter, sess *session.Session, f *Flash, status int) {
	redirect := status >= 300 && status <= 308

	if sess != nil {
		if redirect && len(f.messages) > 0 {
			sess.Put(SessionKey, f.messages)
		}
		if f.fromCookie {
			m.cookies.Delete(w, m.config.CookieName)
		}
		return
	}

	if redirect && len(f.messages) > 0 {
		token, err := m.SignToken(f.messages)
		if err != nil {
			m.log.Error("flash token signing failed", slog.Any("error", err))
			return
		}

		opts := []cookie.Option{
			cookie.WithMaxAge(int(m.config.CookieMaxAge.Seconds())),
		}
		if m.config.SecureCookies {
			opts = append(opts, cookie.WithSecure(true))
		}
		m.cookies.Set(w, m.config.CookieName, token, opts...)
		return
	}

	if f.fromCookie {
		m.cookies.Delete(w, m.config.CookieName)
	}
}
