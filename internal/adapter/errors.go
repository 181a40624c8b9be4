package adapter

import "errors"

// Transport-level sentinel errors. The service layer translates these into
// its own taxonomy; the original wire code stays available in the wrapped
// message.
var (
	// ErrInvalidToken means the server rejected the token sent with the
	// request.
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidParameters means the server rejected the request payload.
	ErrInvalidParameters = errors.New("invalid parameters")

	// ErrSecKeyInvalid means the server rejected a second-factor code.
	ErrSecKeyInvalid = errors.New("invalid second factor code")

	// ErrUnexpected covers any non-success response with no structured
	// error code.
	ErrUnexpected = errors.New("unexpected server error")
)
