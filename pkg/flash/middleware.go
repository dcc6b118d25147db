package flash

import (
	"net/http"

	"github.com/dmitrymomot/flashkit/pkg/session"
)

// Middleware fetches the flash state, installs it in the request context
// and runs the persistence hook exactly once, right before the response
// headers are sent.
//
// When the session middleware is mounted outside this one the flash rides
// the session container; without it the middleware falls back to the
// self-contained signed cookie. Either way the hook needs the final status
// code, so mount this inside any middleware that rewrites it.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, _ := session.FromContext(r.Context())
		f := m.Fetch(r, sess)

		hw := &hookWriter{ResponseWriter: w, manager: m, session: sess, flash: f}
		next.ServeHTTP(hw, r.WithContext(WithFlash(r.Context(), f)))

		// A handler that never writes still sends an implicit 200.
		if !hw.ran {
			m.finalize(w, sess, f, http.StatusOK)
		}
	})
}

// hookWriter triggers the persistence decision on the first header write,
// when the final status code is known but headers are still open.
type hookWriter struct {
	http.ResponseWriter
	manager *Manager
	session *session.Session
	flash   *Flash
	ran     bool
}

func (w *hookWriter) WriteHeader(code int) {
	if !w.ran {
		w.manager.finalize(w.ResponseWriter, w.session, w.flash, code)
		w.ran = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *hookWriter) Write(b []byte) (int, error) {
	if !w.ran {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

func (w *hookWriter) Flush() {
	if !w.ran {
		w.WriteHeader(http.StatusOK)
	}
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap supports http.ResponseController.
func (w *hookWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
