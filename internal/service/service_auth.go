package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/google/uuid"

	"github.com/pwdman/pwdman-client/internal/adapter"
	"github.com/pwdman/pwdman-client/internal/logger"
	"github.com/pwdman/pwdman-client/internal/store"
	"github.com/pwdman/pwdman-client/models"
)

type clientAuthService struct {
	// mu serializes the whole ceremony: overlapping submissions from
	// independent UI triggers queue instead of interleaving token writes.
	mu sync.Mutex

	state   credentialState
	stores  *store.ClientStorages
	adapter adapter.ServerAdapter
	custody KeyCustodyService

	activity *ActivityTracker
	locale   string
	logger   *logger.Logger
}

// NewClientAuthService constructs the [AuthService] state machine. locale
// is forwarded to the primary login endpoint.
func NewClientAuthService(
	stores *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	custody KeyCustodyService,
	activity *ActivityTracker,
	locale string,
	log *logger.Logger,
) AuthService {
	return &clientAuthService{
		stores:   stores,
		adapter:  serverAdapter,
		custody:  custody,
		activity: activity,
		locale:   locale,
		logger:   log,
	}
}

// Bootstrap implements [AuthService]. It loads the device identity and any
// cached auth result, then attempts the silent long-lived-token login when
// no primary token is present. The silent path swallows every failure and
// purges the stored token so the caller can render a login prompt.
func (s *clientAuthService) Bootstrap(ctx context.Context) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadClientIdentityLocked()
	s.loadAuthResultLocked()

	if ar := s.state.authResult; ar == nil || ar.Token == "" {
		s.silentLoginLocked(ctx)
	}

	st := s.stateLocked()
	s.logger.Info().Stringer("state", st).Msg("bootstrap complete")
	return st
}

func (s *clientAuthService) silentLoginLocked(ctx context.Context) {
	longLivedToken, err := s.stores.Persistent.Get(store.KeyLongLivedToken)
	if err != nil || longLivedToken == "" {
		return
	}

	result, err := s.adapter.LoginWithLongLivedToken(ctx, longLivedToken, s.state.identity.UUID)
	if err != nil {
		s.logger.Debug().Err(err).Msg("silent login failed, purging long-lived token")
		if rerr := s.stores.Persistent.Remove(store.KeyLongLivedToken); rerr != nil {
			s.logger.Error().Err(rerr).Msg("purge long-lived token")
		}
		return
	}

	s.replaceAuthResultLocked(result)
	if result.LongLivedToken != "" {
		s.storeLongLivedTokenLocked(result.LongLivedToken)
	}
	s.activity.Touch()
}

// SubmitPassword implements [AuthService]. The server response fully
// replaces the held auth result; the opt-in decision is recorded for the
// rest of the ceremony.
func (s *clientAuthService) SubmitPassword(ctx context.Context, username, password string, staySignedIn bool) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req := models.LoginRequest{
		Username:   username,
		Password:   password,
		ClientUUID: s.state.identity.UUID,
		ClientName: s.state.identity.Name,
	}

	result, err := s.adapter.Login(ctx, req, s.locale)
	if err != nil {
		return s.stateLocked(), mapAdapterError(err)
	}

	s.replaceAuthResultLocked(result)
	s.state.profile = nil
	s.state.staySignedIn = staySignedIn

	if staySignedIn {
		if result.LongLivedToken != "" {
			s.storeLongLivedTokenLocked(result.LongLivedToken)
		}
	} else if err := s.stores.Persistent.Remove(store.KeyLongLivedToken); err != nil {
		s.logger.Error().Err(err).Msg("purge long-lived token")
	}

	s.activity.Touch()
	return s.stateLocked(), nil
}

// SubmitPass2 implements [AuthService].
func (s *clientAuthService) SubmitPass2(ctx context.Context, code string) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ar := s.state.authResult
	if ar == nil || ar.Token == "" {
		return s.stateLocked(), fmt.Errorf("%w: no primary token for pass2", ErrInvalidParameters)
	}

	result, err := s.adapter.SubmitPass2(ctx, ar.Token, code)
	if err != nil {
		if errors.Is(err, adapter.ErrInvalidToken) {
			// A rejected token means the session is dead; tear it down so
			// the UI is not stuck half-authenticated.
			s.logoutLocked(ctx)
		}
		return s.stateLocked(), mapAdapterError(err)
	}

	// The server response is trusted but the flag is cleared defensively.
	result.RequiresPass2 = false
	s.replaceAuthResultLocked(result)

	if s.state.staySignedIn && result.LongLivedToken != "" {
		s.storeLongLivedTokenLocked(result.LongLivedToken)
	}

	s.activity.Touch()
	return s.stateLocked(), nil
}

// SubmitPin implements [AuthService].
func (s *clientAuthService) SubmitPin(ctx context.Context, pin string) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ar := s.state.authResult
	longLivedToken, lerr := s.stores.Persistent.Get(store.KeyLongLivedToken)
	if ar == nil || !ar.RequiresPin || lerr != nil || longLivedToken == "" {
		return s.stateLocked(), fmt.Errorf("%w: no pending pin step", ErrInvalidParameters)
	}

	result, err := s.adapter.SubmitPin(ctx, longLivedToken, pin)
	if err != nil {
		if errors.Is(err, adapter.ErrInvalidToken) {
			s.logoutLocked(ctx)
		}
		return s.stateLocked(), mapAdapterError(err)
	}

	result.RequiresPin = false
	s.replaceAuthResultLocked(result)

	// The server may rotate the long-lived token on PIN login.
	if result.LongLivedToken != "" {
		s.storeLongLivedTokenLocked(result.LongLivedToken)
	}

	s.activity.Touch()
	return s.stateLocked(), nil
}

// Logout implements [AuthService]. The server call is best-effort; local
// teardown always completes.
func (s *clientAuthService) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logoutLocked(ctx)
	return nil
}

func (s *clientAuthService) logoutLocked(ctx context.Context) {
	if ar := s.state.authResult; ar != nil && ar.Token != "" {
		if err := s.adapter.Logout(ctx, ar.Token); err != nil {
			s.logger.Debug().Err(err).Msg("server logout failed, proceeding with local teardown")
		}
	}

	s.state.authResult = nil
	s.state.staySignedIn = false

	if err := s.stores.Session.Remove(store.KeyAuthResult); err != nil {
		s.logger.Error().Err(err).Msg("remove cached auth result")
	}
	if err := s.stores.Persistent.Remove(store.KeyLongLivedToken); err != nil {
		s.logger.Error().Err(err).Msg("remove long-lived token")
	}

	if id := s.state.custodyUserID; id != 0 {
		s.custody.ClearSession(id)
	}
	s.state.custodyUserID = 0
	s.state.profile = nil
}

// State implements [AuthService].
func (s *clientAuthService) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

// IsLoggedIn implements [AuthService].
func (s *clientAuthService) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	ar := s.state.authResult
	return ar != nil && ar.LoggedIn()
}

// Token implements [AuthService].
func (s *clientAuthService) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ar := s.state.authResult; ar != nil {
		return ar.Token
	}
	return ""
}

// ClientIdentity implements [AuthService].
func (s *clientAuthService) ClientIdentity() models.ClientIdentity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.identity
}

// GetUserProfile implements [AuthService]. The profile is fetched once and
// cached for the session; ResetUserInfo invalidates the cache.
func (s *clientAuthService) GetUserProfile(ctx context.Context, details bool) (models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.profile != nil {
		return *s.state.profile, nil
	}

	ar := s.state.authResult
	if ar == nil || ar.Token == "" {
		return models.UserProfile{}, fmt.Errorf("%w: no primary token for profile fetch", ErrInvalidParameters)
	}

	profile, err := s.adapter.GetUserProfile(ctx, ar.Token, details)
	if err != nil {
		return models.UserProfile{}, mapAdapterError(err)
	}

	s.state.profile = &profile
	s.state.custodyUserID = profile.ID
	s.activity.Touch()
	return profile, nil
}

// ResetUserInfo implements [AuthService].
func (s *clientAuthService) ResetUserInfo() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.profile = nil
}

// stateLocked derives the ceremony position from the held auth result. The
// PIN gate is checked before the second factor, matching the server's own
// ordering.
func (s *clientAuthService) stateLocked() State {
	ar := s.state.authResult
	if ar == nil {
		return StateUnauthenticated
	}

	switch {
	case ar.RequiresPin:
		return StateRequiresPin
	case ar.RequiresPass2:
		return StateRequiresPass2
	case ar.Token != "":
		return StateAuthenticated
	default:
		return StateUnauthenticated
	}
}

func (s *clientAuthService) replaceAuthResultLocked(result models.AuthResult) {
	s.state.authResult = &result

	payload, err := json.Marshal(result)
	if err != nil {
		s.logger.Error().Err(err).Msg("marshal auth result")
		return
	}
	if err := s.stores.Session.Set(store.KeyAuthResult, string(payload)); err != nil {
		s.logger.Error().Err(err).Msg("cache auth result")
	}
}

func (s *clientAuthService) storeLongLivedTokenLocked(token string) {
	if err := s.stores.Persistent.Set(store.KeyLongLivedToken, token); err != nil {
		s.logger.Error().Err(err).Msg("store long-lived token")
	}
}

func (s *clientAuthService) loadAuthResultLocked() {
	payload, err := s.stores.Session.Get(store.KeyAuthResult)
	if err != nil {
		return
	}

	var result models.AuthResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		s.logger.Warn().Err(err).Msg("corrupt cached auth result, discarding")
		if rerr := s.stores.Session.Remove(store.KeyAuthResult); rerr != nil {
			s.logger.Error().Err(rerr).Msg("remove corrupt auth result")
		}
		return
	}

	s.state.authResult = &result
}

func (s *clientAuthService) loadClientIdentityLocked() {
	payload, err := s.stores.Persistent.Get(store.KeyClientIdentity)
	if err == nil {
		var identity models.ClientIdentity
		if jerr := json.Unmarshal([]byte(payload), &identity); jerr == nil && identity.UUID != "" {
			s.state.identity = identity
			return
		}
		s.logger.Warn().Msg("corrupt client identity, recreating")
	}

	s.state.identity = newClientIdentity()

	payloadBytes, err := json.Marshal(s.state.identity)
	if err != nil {
		s.logger.Error().Err(err).Msg("marshal client identity")
		return
	}
	if err := s.stores.Persistent.Set(store.KeyClientIdentity, string(payloadBytes)); err != nil {
		s.logger.Error().Err(err).Msg("persist client identity")
	}
}

// newClientIdentity creates the once-per-install device identity. A browser
// would derive the name from the user agent; a terminal client uses the
// host name and platform.
func newClientIdentity() models.ClientIdentity {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		hostname = "pwdman-client"
	}

	return models.ClientIdentity{
		UUID: uuid.NewString(),
		Name: fmt.Sprintf("%s (%s/%s)", hostname, runtime.GOOS, runtime.GOARCH),
	}
}
