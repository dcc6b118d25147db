package session_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/flashkit/pkg/session"
)

const testSecret = "this-is-a-very-long-secret-key-base-for-tests"

func fetchFresh(t *testing.T) *session.Session {
	t.Helper()
	manager, err := session.New(testSecret)
	require.NoError(t, err)
	return manager.Fetch(httptest.NewRequest("GET", "/", nil))
}

func TestSession_GuardBeforeFetch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		op   func(s *session.Session)
	}{
		{"Get", func(s *session.Session) { s.Get("key") }},
		{"Put", func(s *session.Session) { s.Put("key", "value") }},
		{"Delete", func(s *session.Session) { s.Delete("key") }},
		{"Clear", func(s *session.Session) { s.Clear() }},
		{"Renew", func(s *session.Session) { s.Renew() }},
		{"IsDirty", func(s *session.Session) { s.IsDirty() }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			defer func() {
				r := recover()
				require.NotNil(t, r, "expected panic")
				_, ok := r.(*session.PreconditionError)
				assert.True(t, ok, "panic value should be *session.PreconditionError, got %T", r)
			}()
			tt.op(&session.Session{})
		})
	}
}

func TestSession_GuardNil(t *testing.T) {
	t.Parallel()
	var s *session.Session
	assert.Panics(t, func() { s.Get("key") })
}

func TestSession_PutGet(t *testing.T) {
	t.Parallel()
	sess := fetchFresh(t)

	assert.False(t, sess.IsDirty())

	sess.Put("user_id", "42")
	assert.True(t, sess.IsDirty())

	val, ok := sess.Get("user_id")
	assert.True(t, ok)
	assert.Equal(t, "42", val)

	str, ok := sess.GetString("user_id")
	assert.True(t, ok)
	assert.Equal(t, "42", str)
}

func TestSession_DeleteAbsentStaysClean(t *testing.T) {
	t.Parallel()
	sess := fetchFresh(t)

	sess.Delete("never_set")
	assert.False(t, sess.IsDirty(), "deleting an absent key must not dirty the container")
}

func TestSession_DeletePresentDirties(t *testing.T) {
	t.Parallel()
	sess := fetchFresh(t)

	sess.Put("key", "value")
	sess.Delete("key")

	_, ok := sess.Get("key")
	assert.False(t, ok)
	assert.True(t, sess.IsDirty())
}

func TestSession_Clear(t *testing.T) {
	t.Parallel()
	sess := fetchFresh(t)

	sess.Clear()
	assert.True(t, sess.IsDirty(), "clear marks even an empty container dirty")
}

func TestSession_Renew(t *testing.T) {
	t.Parallel()
	sess := fetchFresh(t)

	sess.Put("user_id", "42")
	before := sess.ID()

	sess.Renew()
	assert.NotEqual(t, before, sess.ID())

	val, ok := sess.GetString("user_id")
	assert.True(t, ok)
	assert.Equal(t, "42", val)
}
