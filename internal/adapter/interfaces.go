package adapter

import (
	"context"

	"github.com/pwdman/pwdman-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the client's view of the pwdman backend. Implementations
// translate the REST surface into typed calls and map non-success responses
// onto the adapter sentinel errors. Tokens are passed explicitly per call;
// the adapter holds no credential state of its own.
type ServerAdapter interface {
	// Login performs the primary username/password login. locale is passed
	// through so server-issued messages match the user's language.
	Login(ctx context.Context, req models.LoginRequest, locale string) (models.AuthResult, error)

	// SubmitPass2 submits the second-factor code under the primary token.
	SubmitPass2(ctx context.Context, token, code string) (models.AuthResult, error)

	// SubmitPin submits the PIN under the long-lived token.
	SubmitPin(ctx context.Context, longLivedToken, pin string) (models.AuthResult, error)

	// LoginWithLongLivedToken silently re-authenticates a returning device
	// using the long-lived token and the device uuid.
	LoginWithLongLivedToken(ctx context.Context, longLivedToken, clientUUID string) (models.AuthResult, error)

	// Logout invalidates the primary token server-side.
	Logout(ctx context.Context, token string) error

	// GetUserProfile fetches the account record. details requests the
	// extended representation.
	GetUserProfile(ctx context.Context, token string, details bool) (models.UserProfile, error)

	// SetLongLivedTokenOptIn opts the account in or out of long-lived
	// token issuance.
	SetLongLivedTokenOptIn(ctx context.Context, token string, optIn bool) error

	// SetPin registers a PIN for this account.
	SetPin(ctx context.Context, token, pin string) error

	// StartTwoFactorSetup begins second-factor enrolment and returns the
	// authenticator secret.
	StartTwoFactorSetup(ctx context.Context, token string) (models.TwoFactorSetup, error)

	// ConfirmTwoFactor completes enrolment with a generated code. The
	// server answers true when the code verified and 2FA is now active.
	ConfirmTwoFactor(ctx context.Context, token, code string) (bool, error)

	// DisableTwoFactor turns the second factor off.
	DisableTwoFactor(ctx context.Context, token string) error
}
