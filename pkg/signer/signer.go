package signer

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/crypto/hkdf"
)

const (
	// keySize is the length of the derived signing key.
	keySize = 32

	// minSecretLength is the minimum accepted secret key base length.
	minSecretLength = 32

	// keyInfo provides domain separation for HKDF key derivation.
	keyInfo = "flashkit.signer.v1"
)

// Signer produces and verifies purpose-bound signed tokens. The signing key
// is derived from a secret key base and a salt, so tokens signed under one
// salt never verify under another.
type Signer struct {
	key    []byte
	maxAge time.Duration
	now    func() time.Time
}

// envelope wraps the caller payload with the time it was signed so that
// verification can enforce a max age.
type envelope struct {
	Data     json.RawMessage `json:"d"`
	IssuedAt int64           `json:"iat"`
}

// New derives a purpose-bound signer from the secret key base and salt.
func New(secretKeyBase, salt string, opts ...Option) (*Signer, error) {
	if secretKeyBase == "" {
		return nil, ErrNoSecret
	}
	if len(secretKeyBase) < minSecretLength {
		return nil, fmt.Errorf("%w: got %d chars, need at least %d", ErrSecretTooShort, len(secretKeyBase), minSecretLength)
	}
	if salt == "" {
		return nil, ErrNoSalt
	}

	kdf := hkdf.New(sha256.New, []byte(secretKeyBase), []byte(salt), []byte(keyInfo))
	key := make([]byte, keySize)
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, errors.Join(ErrKeyDerivation, err)
	}

	s := &Signer{
		key: key,
		now: time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Sign serializes the payload and returns base64url(envelope).base64url(tag).
func (s *Signer) Sign(payload any) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	raw, err := json.Marshal(envelope{Data: data, IssuedAt: s.now().Unix()})
	if err != nil {
		return "", err
	}

	mac := hmac.New(sha256.New, s.key)
	mac.Write(raw)
	sig := mac.Sum(nil)

	return base64.RawURLEncoding.EncodeToString(raw) + "." + base64.RawURLEncoding.EncodeToString(sig), nil
}

// Verify checks the token signature and age, then decodes the payload into
// dest. Tampered, malformed and stale tokens are rejected with sentinel
// errors; dest is never partially populated on failure.
func (s *Signer) Verify(token string, dest any) error {
	parts := strings.Split(token, ".")
	if len(parts) != 2 {
		return ErrInvalidToken
	}

	raw, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return ErrInvalidToken
	}

	sig, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return ErrInvalidToken
	}

	mac := hmac.New(sha256.New, s.key)
	mac.Write(raw)
	expected := mac.Sum(nil)

	// Constant-time comparison prevents timing side channels on the tag.
	if subtle.ConstantTimeCompare(sig, expected) != 1 {
		return ErrInvalidSignature
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return ErrInvalidToken
	}

	if s.maxAge > 0 {
		issuedAt := time.Unix(env.IssuedAt, 0)
		if s.now().After(issuedAt.Add(s.maxAge)) {
			return ErrTokenExpired
		}
	}

	if err := json.Unmarshal(env.Data, dest); err != nil {
		return ErrInvalidToken
	}

	return nil
}
