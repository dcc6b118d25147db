package flash_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/flashkit/pkg/flash"
	"github.com/dmitrymomot/flashkit/pkg/session"
)

func TestNew_RequiresSecret(t *testing.T) {
	t.Parallel()
	_, err := flash.New("")
	assert.Error(t, err)
}

func TestManager_SignVerifyToken(t *testing.T) {
	t.Parallel()
	manager, err := flash.New(testSecret)
	require.NoError(t, err)

	token, err := manager.SignToken(map[string]string{"notice": "hi"})
	require.NoError(t, err)

	msgs, ok := manager.VerifyToken(token)
	require.True(t, ok)
	assert.Equal(t, map[string]string{"notice": "hi"}, msgs)
}

func TestManager_VerifyTokenIgnoresCookieAttributes(t *testing.T) {
	t.Parallel()
	manager, err := flash.New(testSecret)
	require.NoError(t, err)

	token, err := manager.SignToken(map[string]string{"notice": "hi"})
	require.NoError(t, err)

	// Client-side writers append cookie attributes inside the value; only
	// the part before the first ";" belongs to the codec.
	msgs, ok := manager.VerifyToken(token + "; max-age=60; path=/")
	require.True(t, ok)
	assert.Equal(t, map[string]string{"notice": "hi"}, msgs)
}

func TestManager_VerifyTokenSaltSeparation(t *testing.T) {
	t.Parallel()
	one, err := flash.New(testSecret, flash.WithSigningSalt("salt one"))
	require.NoError(t, err)
	two, err := flash.New(testSecret, flash.WithSigningSalt("salt two"))
	require.NoError(t, err)

	token, err := one.SignToken(map[string]string{"notice": "hi"})
	require.NoError(t, err)

	_, ok := two.VerifyToken(token)
	assert.False(t, ok, "a token signed under one salt must never verify under another")
}

func TestManager_VerifyTokenRejectsGarbage(t *testing.T) {
	t.Parallel()
	manager, err := flash.New(testSecret)
	require.NoError(t, err)

	for _, token := range []string{"", "garbage", "a.b", "a.b; path=/"} {
		_, ok := manager.VerifyToken(token)
		assert.False(t, ok, "token %q should be rejected", token)
	}
}

func TestManager_FetchFromSessionEntry(t *testing.T) {
	t.Parallel()
	manager, err := flash.New(testSecret)
	require.NoError(t, err)

	sessions, err := session.New(testSecret)
	require.NoError(t, err)

	sess := sessions.Fetch(httptest.NewRequest("GET", "/", nil))
	sess.Put(flash.SessionKey, map[string]string{"notice": "hi"})

	f := manager.Fetch(httptest.NewRequest("GET", "/", nil), sess)

	got, ok := f.Get("notice")
	assert.True(t, ok)
	assert.Equal(t, "hi", got)

	// The reserved key is consumed at fetch: removed from the write-back
	// candidate and re-added only if still warranted at send.
	_, ok = sess.Get(flash.SessionKey)
	assert.False(t, ok)
	assert.True(t, sess.IsDirty())
}

func TestManager_FetchDecodedSessionEntry(t *testing.T) {
	t.Parallel()
	manager, err := flash.New(testSecret)
	require.NoError(t, err)

	sessions, err := session.New(testSecret)
	require.NoError(t, err)

	// Round-trip the session through its cookie so the flash entry arrives
	// in its JSON-decoded form.
	sess := sessions.Fetch(httptest.NewRequest("GET", "/", nil))
	sess.Put(flash.SessionKey, map[string]string{"notice": "hi"})

	w := httptest.NewRecorder()
	require.NoError(t, sessions.Write(w, sess))

	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(w.Result().Cookies()[0])
	recycled := sessions.Fetch(r)

	f := manager.Fetch(r, recycled)

	got, ok := f.Get(":notice")
	assert.True(t, ok)
	assert.Equal(t, "hi", got)
}

func TestManager_FetchFromCookieToken(t *testing.T) {
	t.Parallel()
	manager, err := flash.New(testSecret)
	require.NoError(t, err)

	token, err := manager.SignToken(map[string]string{"notice": "hi"})
	require.NoError(t, err)

	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(&http.Cookie{Name: "__flash__", Value: token})

	f := manager.Fetch(r, nil)

	got, ok := f.Get(":notice")
	assert.True(t, ok)
	assert.Equal(t, "hi", got)
}

func TestManager_FetchInvalidCookieDegradesToEmpty(t *testing.T) {
	t.Parallel()
	manager, err := flash.New(testSecret)
	require.NoError(t, err)

	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(&http.Cookie{Name: "__flash__", Value: "forged.token"})

	f := manager.Fetch(r, nil)
	assert.Equal(t, 0, f.Len())
	assert.NotNil(t, f.All())
}

func TestManager_FetchSessionWinsOverCookie(t *testing.T) {
	t.Parallel()
	manager, err := flash.New(testSecret)
	require.NoError(t, err)

	sessions, err := session.New(testSecret)
	require.NoError(t, err)

	token, err := manager.SignToken(map[string]string{"notice": "from cookie"})
	require.NoError(t, err)

	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(&http.Cookie{Name: "__flash__", Value: token})

	sess := sessions.Fetch(httptest.NewRequest("GET", "/", nil))
	sess.Put(flash.SessionKey, map[string]string{"notice": "from session"})

	f := manager.Fetch(r, sess)
	got, _ := f.Get("notice")
	assert.Equal(t, "from session", got)
}

func TestManager_FetchPanicsOnUnfetchedSession(t *testing.T) {
	t.Parallel()
	manager, err := flash.New(testSecret)
	require.NoError(t, err)

	assert.Panics(t, func() {
		manager.Fetch(httptest.NewRequest("GET", "/", nil), &session.Session{})
	})
}
