package flash

import (
	"maps"
	"strings"
)

// Flash holds the ephemeral messages of one request. It is created by the
// fetch pipeline, mutated by handler code and consumed read-only by the
// persistence hook when the response is finalized.
//
// Any operation before fetch panics with a PreconditionError.
type Flash struct {
	messages map[string]string
	changed  bool
	fetched  bool

	// fromCookie records that the messages were recovered from the signed
	// flash cookie rather than the session container; the persistence hook
	// expires a consumed token cookie.
	fromCookie bool
}

// Get returns the message stored under key. The atom-like form (":notice")
// and the plain form ("notice") address the same entry.
func (f *Flash) Get(key string) (string, bool) {
	f.guard("Get")
	val, ok := f.messages[normalizeKey(key)]
	return val, ok
}

// All returns a copy of the current messages. The map is never nil.
func (f *Flash) All() map[string]string {
	f.guard("All")
	out := make(map[string]string, len(f.messages))
	maps.Copy(out, f.messages)
	return out
}

// Len returns the number of messages.
func (f *Flash) Len() int {
	f.guard("Len")
	return len(f.messages)
}

// Put stores a message under the normalized key.
func (f *Flash) Put(key, value string) {
	f.guard("Put")
	f.messages[normalizeKey(key)] = value
	f.changed = true
}

// Merge stores every message from msgs.
func (f *Flash) Merge(msgs map[string]string) {
	f.guard("Merge")
	for key, value := range msgs {
		f.messages[normalizeKey(key)] = value
	}
	f.changed = true
}

// Delete removes the message stored under key.
func (f *Flash) Delete(key string) {
	f.guard("Delete")
	delete(f.messages, normalizeKey(key))
	f.changed = true
}

// Clear removes all messages. Clearing an already-empty flash is a no-op
// for the contents but still marks the state as explicitly touched.
func (f *Flash) Clear() {
	f.guard("Clear")
	f.messages = make(map[string]string)
	f.changed = true
}

// Changed reports whether the flash was mutated since fetch.
func (f *Flash) Changed() bool {
	f.guard("Changed")
	return f.changed
}

// guard enforces the fetch-before-use contract.
func (f *Flash) guard(op string) {
	if f == nil || !f.fetched {
		panic(&PreconditionError{Op: op})
	}
}

// normalizeKey collapses the atom-like form (":notice") and the plain form
// ("notice") of a key into one canonical string representation. It is
// applied at every read and write boundary so both forms always address a
// single entry.
func normalizeKey(key string) string {
	return strings.TrimPrefix(strings.TrimSpace(key), ":")
}

// toMessages converts a value recovered from the session container into the
// canonical string-to-string form. Session data goes through JSON, so a map
// written as map[string]string comes back as map[string]any.
func toMessages(value any) map[string]string {
	out := make(map[string]string)

	switch val := value.(type) {
	case map[string]string:
		maps.Copy(out, val)
	case map[string]any:
		for key, item := range val {
			if str, ok := item.(string); ok {
				out[key] = str
			}
		}
	}

	return out
}
