package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/pwdman/pwdman-client/internal/config"
	"github.com/pwdman/pwdman-client/internal/logger"
	"github.com/pwdman/pwdman-client/models"
)

type httpServerAdapter struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.ServerURL and configures the underlying client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.ServerURL is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.Adapter, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: log}, nil
}

// jsonBody marshals scalar request bodies (the second-factor code, the PIN,
// the opt-in flag) explicitly. The underlying client sends plain strings
// as-is, and these endpoints expect JSON values.
func jsonBody(v any) ([]byte, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}
	return payload, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /auth?locale= and decodes the returned [models.AuthResult].
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest, locale string) (models.AuthResult, error) {
	var result models.AuthResult

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("locale", locale).
		SetBody(req).
		SetResult(&result).
		Post("/auth")
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResult{}, err
	}

	return result, nil
}

// SubmitPass2 implements [ServerAdapter]. It POSTs the second-factor code
// (a JSON string body) to POST /auth2 under the primary token.
func (h *httpServerAdapter) SubmitPass2(ctx context.Context, token, code string) (models.AuthResult, error) {
	var result models.AuthResult

	body, err := jsonBody(code)
	if err != nil {
		return models.AuthResult{}, err
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("token", token).
		SetBody(body).
		SetResult(&result).
		Post("/auth2")
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("pass2 request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResult{}, err
	}

	return result, nil
}

// SubmitPin implements [ServerAdapter]. It POSTs the PIN (a JSON string
// body) to POST /auth/pin; the token header carries the long-lived token.
func (h *httpServerAdapter) SubmitPin(ctx context.Context, longLivedToken, pin string) (models.AuthResult, error) {
	var result models.AuthResult

	body, err := jsonBody(pin)
	if err != nil {
		return models.AuthResult{}, err
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("token", longLivedToken).
		SetBody(body).
		SetResult(&result).
		Post("/auth/pin")
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("pin request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResult{}, err
	}

	return result, nil
}

// LoginWithLongLivedToken implements [ServerAdapter]. It GETs
// GET /auth/lltoken with the long-lived token and the device uuid in custom
// headers.
func (h *httpServerAdapter) LoginWithLongLivedToken(ctx context.Context, longLivedToken, clientUUID string) (models.AuthResult, error) {
	var result models.AuthResult

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("token", longLivedToken).
		SetHeader("uuid", clientUUID).
		SetResult(&result).
		Get("/auth/lltoken")
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("lltoken request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResult{}, err
	}

	return result, nil
}

// Logout implements [ServerAdapter]. It GETs /logout under the primary
// token. Callers treat failures as best-effort.
func (h *httpServerAdapter) Logout(ctx context.Context, token string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("token", token).
		Get("/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetUserProfile implements [ServerAdapter]. It GETs /user?details= under
// the primary token and decodes the [models.UserProfile].
func (h *httpServerAdapter) GetUserProfile(ctx context.Context, token string, details bool) (models.UserProfile, error) {
	var profile models.UserProfile

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("token", token).
		SetQueryParam("details", strconv.FormatBool(details)).
		SetResult(&profile).
		Get("/user")
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("user profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserProfile{}, err
	}

	return profile, nil
}

// SetLongLivedTokenOptIn implements [ServerAdapter]. It PUTs a JSON bool to
// PUT /user/lltoken.
func (h *httpServerAdapter) SetLongLivedTokenOptIn(ctx context.Context, token string, optIn bool) error {
	body, err := jsonBody(optIn)
	if err != nil {
		return err
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("token", token).
		SetBody(body).
		Put("/user/lltoken")
	if err != nil {
		return fmt.Errorf("lltoken opt-in request: %w", err)
	}

	return mapHTTPError(resp)
}

// SetPin implements [ServerAdapter]. It PUTs the PIN (a JSON string body)
// to PUT /user/pin.
func (h *httpServerAdapter) SetPin(ctx context.Context, token, pin string) error {
	body, err := jsonBody(pin)
	if err != nil {
		return err
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("token", token).
		SetBody(body).
		Put("/user/pin")
	if err != nil {
		return fmt.Errorf("set pin request: %w", err)
	}

	return mapHTTPError(resp)
}

// StartTwoFactorSetup implements [ServerAdapter]. It PUTs /user/2fa and
// decodes the returned [models.TwoFactorSetup].
func (h *httpServerAdapter) StartTwoFactorSetup(ctx context.Context, token string) (models.TwoFactorSetup, error) {
	var setup models.TwoFactorSetup

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("token", token).
		SetResult(&setup).
		Put("/user/2fa")
	if err != nil {
		return models.TwoFactorSetup{}, fmt.Errorf("2fa setup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TwoFactorSetup{}, err
	}

	return setup, nil
}

// ConfirmTwoFactor implements [ServerAdapter]. It POSTs the confirmation
// code to POST /user/2fa and decodes the JSON bool answer.
func (h *httpServerAdapter) ConfirmTwoFactor(ctx context.Context, token, code string) (bool, error) {
	body, err := jsonBody(code)
	if err != nil {
		return false, err
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("token", token).
		SetBody(body).
		Post("/user/2fa")
	if err != nil {
		return false, fmt.Errorf("2fa confirm request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	var confirmed bool
	if err = json.Unmarshal(resp.Body(), &confirmed); err != nil {
		return false, fmt.Errorf("decode 2fa confirm response: %w", err)
	}

	return confirmed, nil
}

// DisableTwoFactor implements [ServerAdapter]. It DELETEs /user/2fa.
func (h *httpServerAdapter) DisableTwoFactor(ctx context.Context, token string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("token", token).
		Delete("/user/2fa")
	if err != nil {
		return fmt.Errorf("2fa disable request: %w", err)
	}

	return mapHTTPError(resp)
}
