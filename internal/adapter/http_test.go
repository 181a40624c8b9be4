package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pwdman/pwdman-client/internal/config"
	"github.com/pwdman/pwdman-client/internal/logger"
	"github.com/pwdman/pwdman-client/models"
)

func newTestAdapter(t *testing.T, handler http.Handler) ServerAdapter {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := NewHTTPServerAdapter(config.Adapter{
		ServerURL:      srv.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return a
}

func TestJSONBody(t *testing.T) {
	body, err := jsonBody("123456")
	require.NoError(t, err)
	assert.Equal(t, `"123456"`, string(body))

	body, err = jsonBody(true)
	require.NoError(t, err)
	assert.Equal(t, "true", string(body))

	_, err = jsonBody(make(chan int))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encode request body")
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "full url", in: "http://localhost:8080", want: "http://localhost:8080"},
		{name: "trailing slash trimmed", in: "http://localhost:8080/", want: "http://localhost:8080"},
		{name: "scheme added", in: "localhost:8080", want: "http://localhost:8080"},
		{name: "https kept", in: "https://pwdman.example.com", want: "https://pwdman.example.com"},
		{name: "empty", in: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHTTPServerAdapter_Login(t *testing.T) {
	var gotReq models.LoginRequest
	var gotLocale string

	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth", r.URL.Path)
		gotLocale = r.URL.Query().Get("locale")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		_ = json.NewEncoder(w).Encode(models.AuthResult{Token: "primary", Username: "alice", RequiresPass2: true})
	}))

	req := models.LoginRequest{Username: "alice", Password: "pw", ClientUUID: "u-1", ClientName: "host (linux/amd64)"}
	result, err := a.Login(context.Background(), req, "de")
	require.NoError(t, err)

	assert.Equal(t, "de", gotLocale)
	assert.Equal(t, req, gotReq)
	assert.Equal(t, "primary", result.Token)
	assert.True(t, result.RequiresPass2)
}

func TestHTTPServerAdapter_Login_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "bare code", status: http.StatusBadRequest, body: `ERROR_INVALID_PARAMETERS`, wantErr: ErrInvalidParameters},
		{name: "quoted code", status: http.StatusUnauthorized, body: `"ERROR_INVALID_TOKEN"`, wantErr: ErrInvalidToken},
		{name: "structured body", status: http.StatusUnauthorized, body: `{"title":"ERROR_INVALID_TOKEN","detail":"expired"}`, wantErr: ErrInvalidToken},
		{name: "seckey code", status: http.StatusBadRequest, body: `ERROR_SECKEY_INVALID`, wantErr: ErrSecKeyInvalid},
		{name: "unknown code", status: http.StatusBadRequest, body: `ERROR_SOMETHING_NEW`, wantErr: ErrUnexpected},
		{name: "empty body", status: http.StatusInternalServerError, body: ``, wantErr: ErrUnexpected},
		{name: "html error page", status: http.StatusBadGateway, body: `<html>bad gateway</html>`, wantErr: ErrUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))

			_, err := a.Login(context.Background(), models.LoginRequest{}, "en")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestHTTPServerAdapter_SubmitPass2(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth2", r.URL.Path)
		assert.Equal(t, "interim", r.Header.Get("token"))

		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, `"123456"`, string(body))

		_ = json.NewEncoder(w).Encode(models.AuthResult{Token: "primary", LongLivedToken: "ll"})
	}))

	result, err := a.SubmitPass2(context.Background(), "interim", "123456")
	require.NoError(t, err)
	assert.Equal(t, "primary", result.Token)
	assert.Equal(t, "ll", result.LongLivedToken)
}

func TestHTTPServerAdapter_SubmitPin(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/pin", r.URL.Path)

		// The token header carries the long-lived token here, not a primary one.
		assert.Equal(t, "lltoken", r.Header.Get("token"))

		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, `"4321"`, string(body))

		_ = json.NewEncoder(w).Encode(models.AuthResult{Token: "primary"})
	}))

	result, err := a.SubmitPin(context.Background(), "lltoken", "4321")
	require.NoError(t, err)
	assert.Equal(t, "primary", result.Token)
}

func TestHTTPServerAdapter_LoginWithLongLivedToken(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/auth/lltoken", r.URL.Path)
		assert.Equal(t, "lltoken", r.Header.Get("token"))
		assert.Equal(t, "device-uuid", r.Header.Get("uuid"))

		_ = json.NewEncoder(w).Encode(models.AuthResult{Token: "primary", LongLivedToken: "rotated"})
	}))

	result, err := a.LoginWithLongLivedToken(context.Background(), "lltoken", "device-uuid")
	require.NoError(t, err)
	assert.Equal(t, "rotated", result.LongLivedToken)
}

func TestHTTPServerAdapter_Logout(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/logout", r.URL.Path)
		assert.Equal(t, "primary", r.Header.Get("token"))
		w.WriteHeader(http.StatusOK)
	}))

	require.NoError(t, a.Logout(context.Background(), "primary"))
}

func TestHTTPServerAdapter_GetUserProfile(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/user", r.URL.Path)
		assert.Equal(t, "primary", r.Header.Get("token"))
		assert.Equal(t, "true", r.URL.Query().Get("details"))

		_ = json.NewEncoder(w).Encode(models.UserProfile{
			ID:                  7,
			Name:                "Alice",
			Email:               "alice@example.com",
			SecKey:              "aabbcc",
			PasswordManagerSalt: "salt",
		})
	}))

	profile, err := a.GetUserProfile(context.Background(), "primary", true)
	require.NoError(t, err)
	assert.Equal(t, int64(7), profile.ID)
	assert.Equal(t, "aabbcc", profile.SecKey)
	assert.Equal(t, "salt", profile.PasswordManagerSalt)
}

func TestHTTPServerAdapter_SettingsEndpoints(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "primary", r.Header.Get("token"))

		switch r.Method + " " + r.URL.Path {
		case "PUT /user/lltoken":
			body, _ := io.ReadAll(r.Body)
			assert.Equal(t, "true", string(body))
		case "PUT /user/pin":
			body, _ := io.ReadAll(r.Body)
			assert.Equal(t, `"4321"`, string(body))
		case "PUT /user/2fa":
			_ = json.NewEncoder(w).Encode(models.TwoFactorSetup{SecretKey: "JBSWY3DP", Issuer: "pwdman"})
			return
		case "POST /user/2fa":
			_, _ = w.Write([]byte("true"))
			return
		case "DELETE /user/2fa":
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))

	ctx := context.Background()
	require.NoError(t, a.SetLongLivedTokenOptIn(ctx, "primary", true))
	require.NoError(t, a.SetPin(ctx, "primary", "4321"))

	setup, err := a.StartTwoFactorSetup(ctx, "primary")
	require.NoError(t, err)
	assert.Equal(t, "JBSWY3DP", setup.SecretKey)

	confirmed, err := a.ConfirmTwoFactor(ctx, "primary", "123456")
	require.NoError(t, err)
	assert.True(t, confirmed)

	require.NoError(t, a.DisableTwoFactor(ctx, "primary"))
}

func TestNewHTTPServerAdapter_InvalidURL(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.Adapter{ServerURL: ""}, logger.Nop())
	require.Error(t, err)
}
