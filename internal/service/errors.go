package service

import (
	"errors"

	"github.com/pwdman/pwdman-client/internal/app"
)

// Service-level error taxonomy. Each sentinel maps 1:1 onto a symbolic wire
// code (see [CodeOf]) that the presentation layer uses for localization.
var (
	// ErrInvalidParameters marks a violated precondition, e.g. submitting
	// a second-factor code without holding a primary token.
	ErrInvalidParameters = errors.New("invalid parameters")

	// ErrInvalidToken means the server rejected the current token. The
	// state machine performs an implicit full logout before returning it.
	ErrInvalidToken = errors.New("invalid token")

	// ErrWrongDataProtectionKey marks an authenticated-decryption failure
	// against real content, the only way a wrong passphrase is detected.
	ErrWrongDataProtectionKey = errors.New("wrong data protection key")

	// ErrSecKeyInvalid means a second-factor code was rejected.
	ErrSecKeyInvalid = errors.New("invalid second factor code")

	// ErrUnexpected covers non-success responses with no structured code.
	ErrUnexpected = errors.New("unexpected error")
)

// CodeOf returns the symbolic wire code for a service error, preserved
// verbatim for localization lookup. Unknown errors map to the generic code.
func CodeOf(err error) string {
	switch {
	case errors.Is(err, ErrInvalidParameters):
		return app.CodeInvalidParameters
	case errors.Is(err, ErrInvalidToken):
		return app.CodeInvalidToken
	case errors.Is(err, ErrWrongDataProtectionKey):
		return app.CodeWrongDataProtectionKey
	case errors.Is(err, ErrSecKeyInvalid):
		return app.CodeSecKeyInvalid
	default:
		return app.CodeUnexpected
	}
}
