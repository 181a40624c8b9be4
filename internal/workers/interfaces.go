package workers

import (
	"context"
	"time"
)

// Worker is a background job with an explicit lifecycle.
type Worker interface {
	// Run starts the worker's loop in its own goroutine and returns.
	Run(ctx context.Context)
	// Stop terminates the loop. Safe to call more than once.
	Stop()
}

// authController is the slice of the auth state machine the inactivity
// worker needs.
type authController interface {
	IsLoggedIn() bool
	Logout(ctx context.Context) error
}

// idleSource reports how long the client has been without a successful
// server round-trip.
type idleSource interface {
	IdleFor() time.Duration
}
