package client

import "sync"

// Tracker hands out monotonically increasing request tokens so that callers
// can discard responses from superseded submissions. Disabling the submit
// control closes most of the overlap window; the token closes the rest: only
// the response holding the latest token is accepted.
type Tracker struct {
	mu     sync.Mutex
	latest uint64
}

// NewTracker returns a Tracker with no outstanding requests.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Begin registers a new submission and returns its token. Any previously
// issued token becomes stale.
func (t *Tracker) Begin() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.latest++
	return t.latest
}

// Accept reports whether a settling request still holds the latest token.
// Responses for stale tokens must be discarded by the caller.
func (t *Tracker) Accept(token uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return token == t.latest
}
