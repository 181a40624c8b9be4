// Package app contains shared application-layer constants used across the
// pwdman client adapter and services.
//
// All Code* constants are symbolic error codes spoken by the pwdman server.
// The client must preserve them verbatim: the presentation layer uses them
// as localization lookup keys, so rewording one here would silently break
// every translated error message.
package app

const (
	// CodeInvalidParameters is raised when a request violates a local or
	// server-side precondition (e.g. submitting a second-factor code
	// without holding a primary token).
	CodeInvalidParameters = "ERROR_INVALID_PARAMETERS"

	// CodeInvalidToken is returned when the server rejects the token
	// presented with a request. On the client this forces an implicit full
	// logout before the error is surfaced.
	CodeInvalidToken = "ERROR_INVALID_TOKEN"

	// CodeWrongDataProtectionKey marks an authenticated-decryption failure
	// against real content. This is the only signal that the user supplied
	// a wrong data-protection passphrase; there is no separate
	// key-validation call.
	CodeWrongDataProtectionKey = "ERROR_WRONG_DATA_PROTECTION_KEY"

	// CodeSecKeyInvalid is returned when a second-factor code is rejected.
	CodeSecKeyInvalid = "ERROR_SECKEY_INVALID"

	// CodeUnexpected covers any non-success response that carries no
	// structured error code.
	CodeUnexpected = "ERROR_UNEXPECTED"
)
