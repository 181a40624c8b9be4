package store

import "fmt"

// Storage key layout. Session keys live in the session-scoped store,
// persistent keys in the device-persistent store. The literals are a wire
// contract with previously written installs and must not change.
const (
	// KeyAuthResult holds the serialized AuthResult of the current session.
	KeyAuthResult = "authresult"

	// KeyLongLivedToken holds the long-lived token, present only when the
	// user opted into staying signed in.
	KeyLongLivedToken = "pwdman-lltoken"

	// KeyClientIdentity holds the serialized ClientIdentity of this device
	// install.
	KeyClientIdentity = "clientinfo"
)

// EncryptKeyName returns the session-store key under which the plaintext
// data-protection passphrase of the given user is cached.
func EncryptKeyName(userID int64) string {
	return fmt.Sprintf("encryptkey-%d", userID)
}

// SecureEncryptKeyName returns the persistent-store key under which the
// secKey-wrapped copy of the data-protection passphrase is cached.
func SecureEncryptKeyName(userID int64) string {
	return EncryptKeyName(userID) + "-secure"
}
