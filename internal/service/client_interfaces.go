package service

import (
	"context"

	"github.com/pwdman/pwdman-client/models"
)

// State is the position of the client in the login ceremony.
type State int

const (
	// StateUnauthenticated means no usable credential is held.
	StateUnauthenticated State = iota
	// StateRequiresPass2 means the password was accepted but a
	// second-factor code is still required.
	StateRequiresPass2
	// StateRequiresPin means a returning device must submit its PIN.
	StateRequiresPin
	// StateAuthenticated means a primary token is held and no further step
	// is pending.
	StateAuthenticated
)

// String implements [fmt.Stringer] for log output.
func (s State) String() string {
	switch s {
	case StateRequiresPass2:
		return "requires-pass2"
	case StateRequiresPin:
		return "requires-pin"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// AuthService is the authentication state machine. It orchestrates the
// login ceremony, decides the next required step, and is the only component
// allowed to mutate the credential state.
type AuthService interface {
	// Bootstrap derives the cold-start state from cached credentials. If a
	// usable long-lived token exists and no primary token does, it
	// attempts silent re-authentication; that path never returns an error
	// and purges the token on any failure.
	Bootstrap(ctx context.Context) State

	// SubmitPassword performs the primary login. staySignedIn controls
	// whether the returned long-lived token is persisted; when false, any
	// previously persisted one is purged.
	SubmitPassword(ctx context.Context, username, password string, staySignedIn bool) (State, error)

	// SubmitPass2 submits the second-factor code. Requires a primary
	// token; violating the precondition yields [ErrInvalidParameters]. A
	// server-side token rejection forces an implicit full logout before
	// [ErrInvalidToken] is returned.
	SubmitPass2(ctx context.Context, code string) (State, error)

	// SubmitPin submits the PIN of a returning device. Requires a pending
	// PIN step and a stored long-lived token; violating either yields
	// [ErrInvalidParameters]. Same implicit-logout rule as SubmitPass2.
	SubmitPin(ctx context.Context, pin string) (State, error)

	// Logout tears down the session: best-effort server call, then local
	// cleanup of the auth result, long-lived token, profile cache and the
	// session-scoped custody entry. The persistent wrapped passphrase is
	// left in place.
	Logout(ctx context.Context) error

	// State reports the current ceremony position.
	State() State

	// IsLoggedIn reports whether a fully authenticated session is held.
	IsLoggedIn() bool

	// Token returns the current primary token, or an empty string.
	Token() string

	// ClientIdentity returns this device install's identity.
	ClientIdentity() models.ClientIdentity

	// GetUserProfile fetches the account record lazily and caches it for
	// the session.
	GetUserProfile(ctx context.Context, details bool) (models.UserProfile, error)

	// ResetUserInfo invalidates the cached profile.
	ResetUserInfo()
}

// KeyCustodyService owns the rule for where the data-protection passphrase
// lives: plaintext in the session store, and an encrypted copy in the
// persistent store wrapped by the server-issued secKey.
type KeyCustodyService interface {
	// GetKey returns the cached passphrase for the user, falling back from
	// the session store to the persistent wrapped copy. Returns an empty
	// string when no key is available; fallback decrypt failures are
	// swallowed and logged, never surfaced.
	GetKey(user models.UserProfile) string

	// SetKey caches the passphrase. An empty key removes both entries.
	// Without a secKey the persistent copy is silently skipped.
	SetKey(user models.UserProfile, key string) error

	// EnsureKey returns the cached passphrase, generating and caching a
	// random one when none exists. Called by feature code once the state
	// machine reaches authenticated.
	EnsureKey(user models.UserProfile) (string, error)

	// ClearSession removes the session-scoped cache entry for the user.
	// The persistent wrapped copy is untouched.
	ClearSession(userID int64)
}

// UserSettingsService drives the account-settings endpoints relevant to the
// ceremony: PIN registration, long-lived-token opt-in and the second-factor
// lifecycle.
type UserSettingsService interface {
	// SetPin registers a PIN for the account.
	SetPin(ctx context.Context, pin string) error

	// SetLongLivedTokenOptIn opts the account in or out of long-lived
	// token issuance.
	SetLongLivedTokenOptIn(ctx context.Context, optIn bool) error

	// StartTwoFactorSetup begins second-factor enrolment.
	StartTwoFactorSetup(ctx context.Context) (models.TwoFactorSetup, error)

	// ConfirmTwoFactor completes enrolment; a rejected code yields
	// [ErrSecKeyInvalid].
	ConfirmTwoFactor(ctx context.Context, code string) (bool, error)

	// DisableTwoFactor turns the second factor off.
	DisableTwoFactor(ctx context.Context) error
}
