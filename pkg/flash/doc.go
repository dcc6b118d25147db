// Package flash implements per-request ephemeral messages that survive
// exactly one redirect hop and then disappear.
//
// A handler puts short-lived messages ("saved successfully") into the
// request's flash; whichever handler renders the next response after the
// redirect reads them, with no explicit wiring between the two. The hard
// part is the persistence decision, taken only once the final status code
// is known:
//
//   - discard the flash entirely,
//   - carry it forward through the session container, or
//   - carry it through a freshly minted signed cookie token when no
//     session is available (stateless live-update connections),
//
// and never write a cookie unless one is actually needed — an empty flash
// on a request with no prior session produces no Set-Cookie header at all.
//
// # Architecture
//
// The Manager's fetch pipeline resolves the flash from two sources: the
// reserved session key (removed from the session's write-back candidate at
// fetch, re-added at send only if still warranted) or, failing that, a
// self-contained token signed under a flash-specific salt. The middleware
// wraps the ResponseWriter and runs the persistence hook exactly once, on
// the first header write:
//
//   - status in [300, 308] with a non-empty flash persists it (session
//     entry or fresh cookie token);
//   - a flash that existed in the session before the request is purged by
//     the session's own dirty-tracking, since the fetch-time removal made
//     the container non-default;
//   - anything else is dropped, and a consumed cookie token is expired.
//
// # Usage
//
//	sessions, _ := session.New(secretKeyBase)
//	flashes, _ := flash.New(secretKeyBase)
//
//	r := chi.NewRouter()
//	r.Use(sessions.Middleware) // outermost: flushes the container on send
//	r.Use(flashes.Middleware)
//
//	r.Post("/save", func(w http.ResponseWriter, r *http.Request) {
//	    f := flash.MustFromContext(r.Context())
//	    f.Put("notice", "saved successfully")
//	    http.Redirect(w, r, "/", http.StatusSeeOther)
//	})
//
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//	    f := flash.MustFromContext(r.Context())
//	    if msg, ok := f.Get(":notice"); ok { // ":notice" and "notice" are the same entry
//	        _, _ = io.WriteString(w, msg)
//	    }
//	})
//
// Without the session middleware the flash rides its own signed cookie;
// SignToken and VerifyToken expose the same codec for connections that
// redirect outside the HTTP request cycle.
//
// # Error handling
//
// Accessing the flash before fetch panics with a *PreconditionError — a
// contract violation, surfaced loudly. A forged, stale or malformed flash
// token is the opposite: it silently degrades to an empty flash and is
// logged at debug level.
package flash
