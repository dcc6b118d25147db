package signer

import "time"

// Option configures a Signer.
type Option func(*Signer)

// WithMaxAge sets the maximum accepted token age. Zero disables the check.
func WithMaxAge(maxAge time.Duration) Option {
	return func(s *Signer) {
		s.maxAge = maxAge
	}
}

// WithNow overrides the time source. Intended for tests.
func WithNow(now func() time.Time) Option {
	return func(s *Signer) {
		if now != nil {
			s.now = now
		}
	}
}
