// Package request keeps the newest result per logical field.
//
// A caller starts a unit of work with [Tracker.Begin] and, once the result is
// ready, asks [Tracker.Current] whether it may still be applied. A later Begin
// for the same key supersedes every earlier token, so a slow first request
// that finishes after a fast second one is dropped instead of overwriting the
// newer result.
package request

import "sync"

// Token identifies one unit of work for a key.
type Token struct {
	Key string
	Seq uint64
}

// Tracker hands out tokens per key. It is safe for concurrent use.
type Tracker struct {
	mu     sync.Mutex
	seq    uint64
	latest map[string]uint64
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{latest: make(map[string]uint64)}
}

// Begin starts a new unit of work for key and supersedes older ones.
func (t *Tracker) Begin(key string) Token {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.seq++
	t.latest[key] = t.seq
	return Token{Key: key, Seq: t.seq}
}

// Current reports whether tok is still the newest token for its key.
func (t *Tracker) Current(tok Token) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.latest[tok.Key] == tok.Seq
}

// Finish runs apply if tok is still current and reports whether it ran.
// The check and apply happen under the tracker lock, so apply must not call
// back into the Tracker.
func (t *Tracker) Finish(tok Token, apply func()) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.latest[tok.Key] != tok.Seq {
		return false
	}
	if apply != nil {
		apply()
	}
	return true
}

// Release drops the state for tok's key if tok is still current and
// reports whether it did. A newer token for the key is left in place.
func (t *Tracker) Release(tok Token) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.latest[tok.Key] != tok.Seq {
		return false
	}
	delete(t.latest, tok.Key)
	return true
}

// Forget drops the state for key. Tokens issued before Forget are never
// current again, since sequence numbers are not reused.
func (t *Tracker) Forget(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.latest, key)
}
