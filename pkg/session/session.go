package session

import (
	"github.com/google/uuid"
)

// Session is a per-request view of the cookie-persisted session container.
// It is exclusively owned by the request that fetched it: values are read
// and written in memory and flushed back into the signed cookie on send,
// but only when the container was actually mutated.
//
// A Session is only usable after Manager.Fetch has populated it; any
// operation on an unfetched container panics with a PreconditionError.
type Session struct {
	id      uuid.UUID
	data    map[string]any
	fetched bool
	dirty   bool
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID {
	s.guard("ID")
	return s.id
}

// Get retrieves a value from the session.
func (s *Session) Get(key string) (any, bool) {
	s.guard("Get")
	val, ok := s.data[key]
	return val, ok
}

// GetString retrieves a string value from the session.
func (s *Session) GetString(key string) (string, bool) {
	val, ok := s.Get(key)
	if !ok {
		return "", false
	}
	str, ok := val.(string)
	return str, ok
}

// Put stores a value and marks the container dirty.
func (s *Session) Put(key string, value any) {
	s.guard("Put")
	s.data[key] = value
	s.dirty = true
}

// Delete removes a key. Deleting a key that is not present leaves the
// container clean, so an untouched session never triggers a cookie write.
func (s *Session) Delete(key string) {
	s.guard("Delete")
	if _, ok := s.data[key]; !ok {
		return
	}
	delete(s.data, key)
	s.dirty = true
}

// Clear removes all values and marks the container dirty.
func (s *Session) Clear() {
	s.guard("Clear")
	s.data = make(map[string]any)
	s.dirty = true
}

// Renew assigns a fresh session identifier while keeping the data. Call it
// after privilege changes such as login.
func (s *Session) Renew() {
	s.guard("Renew")
	s.id = uuid.New()
	s.dirty = true
}

// IsDirty reports whether the container was mutated since fetch.
func (s *Session) IsDirty() bool {
	s.guard("IsDirty")
	return s.dirty
}

// guard enforces the fetch-before-use contract. Violations are programmer
// errors, not recoverable runtime conditions.
func (s *Session) guard(op string) {
	if s == nil || !s.fetched {
		panic(&PreconditionError{Op: op})
	}
}
