package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pwdman/pwdman-client/internal/logger"
)

type stubAuth struct {
	mu        sync.Mutex
	loggedIn  bool
	logoutCnt int
}

func (s *stubAuth) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loggedIn
}

func (s *stubAuth) Logout(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loggedIn = false
	s.logoutCnt++
	return nil
}

func (s *stubAuth) logouts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logoutCnt
}

type stubIdle struct {
	mu   sync.Mutex
	idle time.Duration
}

func (s *stubIdle) IdleFor() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.idle
}

func (s *stubIdle) set(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.idle = d
}

func TestInactivityWorker_LogsOutAfterTimeout(t *testing.T) {
	auth := &stubAuth{loggedIn: true}
	idle := &stubIdle{idle: 15 * time.Minute}

	w := NewInactivityWorker(auth, idle, 10*time.Minute, logger.Nop())
	w.check(context.Background())

	assert.Equal(t, 1, auth.logouts())
	assert.False(t, auth.IsLoggedIn())
}

func TestInactivityWorker_NoopBelowTimeout(t *testing.T) {
	auth := &stubAuth{loggedIn: true}
	idle := &stubIdle{idle: 9 * time.Minute}

	w := NewInactivityWorker(auth, idle, 10*time.Minute, logger.Nop())
	w.check(context.Background())

	assert.Zero(t, auth.logouts())
	assert.True(t, auth.IsLoggedIn())
}

func TestInactivityWorker_NoopWhileUnauthenticated(t *testing.T) {
	auth := &stubAuth{loggedIn: false}
	idle := &stubIdle{idle: time.Hour}

	w := NewInactivityWorker(auth, idle, 10*time.Minute, logger.Nop())
	w.check(context.Background())

	assert.Zero(t, auth.logouts())
}

func TestInactivityWorker_RunAndStop(t *testing.T) {
	auth := &stubAuth{loggedIn: true}
	idle := &stubIdle{}

	w := NewInactivityWorker(auth, idle, 10*time.Minute, logger.Nop())
	w.interval = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w.Run(ctx)

	idle.set(11 * time.Minute)
	assert.Eventually(t, func() bool { return auth.logouts() == 1 }, time.Second, 5*time.Millisecond)

	// Stop is idempotent.
	w.Stop()
	w.Stop()
}

func TestWorkers_RunAndStopAll(t *testing.T) {
	auth := &stubAuth{}
	idle := &stubIdle{}
	w := NewInactivityWorker(auth, idle, time.Minute, logger.Nop())

	ws := NewWorkers(w)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ws.Run(ctx)
	ws.Stop()
}
