package session

import (
	"log/slog"
	"net/http"
)

// Middleware fetches the session container, installs it in the request
// context and flushes it back into the cookie right before the response
// headers are sent. Mount it outside any middleware that mutates the
// session during send, such as the flash persistence hook.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := m.Fetch(r)

		sw := &sendWriter{ResponseWriter: w, manager: m, session: sess}
		next.ServeHTTP(sw, r.WithContext(WithSession(r.Context(), sess)))

		// Handlers that never write a body still get their session flushed.
		if !sw.wroteHeader {
			sw.writeBack()
		}
	})
}

// sendWriter delays the session write-back until the response is finalized,
// when the container's final contents are known.
type sendWriter struct {
	http.ResponseWriter
	manager     *Manager
	session     *Session
	wroteHeader bool
}

func (w *sendWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.writeBack()
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *sendWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

func (w *sendWriter) Flush() {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap supports http.ResponseController.
func (w *sendWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func (w *sendWriter) writeBack() {
	if err := w.manager.Write(w.ResponseWriter, w.session); err != nil {
		w.manager.log.Error("session write-back failed", slog.Any("error", err))
	}
}
