// Package signer provides compact, purpose-bound signed tokens for
// embedding JSON payloads in cookies.
//
// The signing key is derived with HKDF-SHA256 from an application-wide
// secret key base and a purpose-specific salt, so a token minted for one
// purpose (say the flash cookie) never verifies under another purpose's
// salt even though both share the same secret key base. Payloads are JSON
// encoded into an envelope carrying the signing time, authenticated with a
// full HMAC-SHA256 tag and rendered as:
//
//	base64url(envelope) + "." + base64url(tag)
//
// Verification fails closed: a tampered, malformed or stale token yields a
// sentinel error and never partial data. The tag comparison is constant
// time.
//
// # Usage
//
//	s, err := signer.New(secretKeyBase, "flash", signer.WithMaxAge(time.Minute))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tok, _ := s.Sign(map[string]string{"notice": "saved"})
//
//	var msgs map[string]string
//	if err := s.Verify(tok, &msgs); err != nil {
//	    // errors.Is against ErrInvalidToken, ErrInvalidSignature, ErrTokenExpired
//	}
//
// All operations are synchronous, bounded-time and safe for concurrent use;
// the derived key is read-only after New.
package signer
