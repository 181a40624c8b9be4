package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/pwdman/pwdman-client/internal/app"
)

// wireError is the structured error body the server may return. Older
// endpoints answer with the bare code string instead, so both shapes are
// accepted.
type wireError struct {
	Title string `json:"title"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	code := parseWireCode(resp.Body())

	switch code {
	case app.CodeInvalidToken:
		return fmt.Errorf("%w: %s", ErrInvalidToken, code)
	case app.CodeInvalidParameters:
		return fmt.Errorf("%w: %s", ErrInvalidParameters, code)
	case app.CodeSecKeyInvalid:
		return fmt.Errorf("%w: %s", ErrSecKeyInvalid, code)
	default:
		body := strings.TrimSpace(string(resp.Body()))
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("%w: http %d: %s", ErrUnexpected, resp.StatusCode(), body)
	}
}

// parseWireCode extracts the symbolic ERROR_* code from a non-success
// response body. Returns an empty string when the body carries none.
func parseWireCode(body []byte) string {
	trimmed := strings.Trim(strings.TrimSpace(string(body)), `"`)
	if strings.HasPrefix(trimmed, "ERROR_") {
		return trimmed
	}

	var we wireError
	if err := json.Unmarshal(body, &we); err == nil && strings.HasPrefix(we.Title, "ERROR_") {
		return we.Title
	}

	return ""
}
