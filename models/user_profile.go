package models

// UserProfile is the server-side account record, fetched lazily after login
// and cached for the session.
type UserProfile struct {
	// ID is the unique identifier of the user account.
	ID int64 `json:"id"`

	// Name is the display name of the account.
	Name string `json:"name"`

	// Email is the account's contact address.
	Email string `json:"email"`

	// SecKey is a server-issued per-user secret (hex string) used solely to
	// wrap the data-protection passphrase for on-device caching. It is
	// unrelated to the passphrase itself and may be absent.
	SecKey string `json:"secKey"`

	// PasswordManagerSalt is the server-issued per-user salt fed into key
	// derivation for the password vault.
	PasswordManagerSalt string `json:"passwordManagerSalt"`
}
