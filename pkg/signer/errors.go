package signer

import "errors"

var (
	// ErrNoSecret indicates an empty secret key base
	ErrNoSecret = errors.New("signer.no_secret")

	// ErrSecretTooShort indicates the secret key base is below the minimum length
	ErrSecretTooShort = errors.New("signer.secret_too_short")

	// ErrNoSalt indicates an empty purpose salt
	ErrNoSalt = errors.New("signer.no_salt")

	// ErrKeyDerivation indicates HKDF key derivation failed
	ErrKeyDerivation = errors.New("signer.key_derivation_failed")

	// ErrInvalidToken indicates a malformed or undecodable token
	ErrInvalidToken = errors.New("signer.invalid_token")

	// ErrInvalidSignature indicates the authentication tag did not match
	ErrInvalidSignature = errors.New("signer.invalid_signature")

	// ErrTokenExpired indicates the token is older than the configured max age
	ErrTokenExpired = errors.New("signer.token_expired")
)
