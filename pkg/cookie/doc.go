// Package cookie provides a thin manager over net/http cookies with
// reusable default attributes.
//
// The Manager is deliberately free of cryptography: it reads the raw string
// value of a named request cookie and writes Set-Cookie headers with the
// configured Path, Domain, MaxAge, Secure, HttpOnly and SameSite attributes.
// Integrity-protected values are produced by callers (see the signer and
// session packages) before they reach this layer.
//
// # Usage
//
//	man := cookie.New(cookie.WithSecure(true))
//
//	http.HandleFunc("/set", func(w http.ResponseWriter, r *http.Request) {
//	    man.Set(w, "theme", "dark", cookie.WithMaxAge(3600))
//	})
//
//	http.HandleFunc("/get", func(w http.ResponseWriter, r *http.Request) {
//	    v, err := man.Get(r, "theme")
//	    _, _ = v, err
//	})
//
// # Configuration
//
// The Config struct allows the manager to be constructed from environment
// variables via github.com/caarlos0/env. Only non-zero fields are applied.
//
//	cfg := cookie.DefaultConfig()
//	_ = env.Parse(&cfg)
//	man := cookie.NewFromConfig(cfg)
package cookie
