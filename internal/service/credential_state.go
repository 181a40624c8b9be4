package service

import "github.com/pwdman/pwdman-client/models"

// credentialState is the in-memory record of the current authentication
// result, the device identity and the cached user profile. Only
// clientAuthService mutates it, always under the service mutex.
type credentialState struct {
	// authResult is the latest server-issued authentication result, nil
	// when logged out. Replaced wholesale on every successful auth call.
	authResult *models.AuthResult

	// identity is this device install's identity, loaded or created during
	// bootstrap and immutable afterwards.
	identity models.ClientIdentity

	// profile is the lazily fetched account record, nil until requested
	// and after ResetUserInfo.
	profile *models.UserProfile

	// custodyUserID is the account id of the last fetched profile, kept
	// across ResetUserInfo so logout can clear the session-scoped custody
	// entry even when the profile cache was invalidated. Zero until a
	// profile was fetched.
	custodyUserID int64

	// staySignedIn records the opt-in made at password time so a
	// long-lived token issued later in the ceremony (after pass2) is
	// persisted too.
	staySignedIn bool
}
