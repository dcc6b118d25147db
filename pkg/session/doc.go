// Package session implements a cookie-persisted session container: a
// key-value store whose contents travel to the client inside a single
// signed cookie and come back on the next request.
//
// # Architecture
//
// A Manager owns the codec side: it derives a purpose-bound signing key
// from the application secret key base plus a session salt, decodes the
// container out of the request cookie on Fetch, and serializes it back into
// a Set-Cookie header on Write. The Session value itself is a plain
// in-memory map scoped to one request, with dirty tracking deciding whether
// Write emits a cookie at all — a request that never mutates the container
// hands back no Set-Cookie header.
//
// Tampered, expired or malformed session cookies are not errors: Fetch
// degrades to a fresh empty container and logs the rejection at debug
// level.
//
// # Usage
//
//	manager, err := session.New(secretKeyBase)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	r := chi.NewRouter()
//	r.Use(manager.Middleware)
//
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//	    sess := session.MustFromContext(r.Context())
//	    sess.Put("user_id", "42")
//	})
//
// The middleware flushes the container right before the response headers go
// out, so mutations made by inner middleware during send (the flash
// persistence hook in particular) still make it into the cookie. Mount it
// outermost.
//
// # Preconditions
//
// Session values are only obtainable through Manager.Fetch or the
// middleware. Operating on a zero-value Session panics with a
// *PreconditionError; this is a fetch-before-use contract violation, not a
// recoverable condition.
package session
