package service

import (
	"sync"
	"time"
)

// ActivityTracker records the instant of the last successful server
// round-trip. The inactivity worker compares it against the configured idle
// timeout. The clock is injected so tests can drive time explicitly.
type ActivityTracker struct {
	mu   sync.Mutex
	now  func() time.Time
	last time.Time
}

// NewActivityTracker constructs a tracker using the given clock. A nil
// clock defaults to [time.Now]. The tracker starts "just touched" so a
// freshly started client is not logged out before its first request.
func NewActivityTracker(now func() time.Time) *ActivityTracker {
	if now == nil {
		now = time.Now
	}
	return &ActivityTracker{now: now, last: now()}
}

// Touch records the current instant as the latest activity.
func (t *ActivityTracker) Touch() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.last = t.now()
}

// IdleFor returns how long ago the last activity was recorded.
func (t *ActivityTracker) IdleFor() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.now().Sub(t.last)
}
