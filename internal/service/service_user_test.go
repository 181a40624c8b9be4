package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pwdman/pwdman-client/internal/adapter"
	"github.com/pwdman/pwdman-client/internal/crypto"
	"github.com/pwdman/pwdman-client/internal/logger"
	"github.com/pwdman/pwdman-client/internal/mock"
	"github.com/pwdman/pwdman-client/internal/store"
	"github.com/pwdman/pwdman-client/models"
)

type stubAuthSession struct {
	token  string
	resets int
}

func (s *stubAuthSession) Token() string { return s.token }

func (s *stubAuthSession) ResetUserInfo() { s.resets++ }

func newTestSettings(t *testing.T, token string) (UserSettingsService, *mock.MockServerAdapter, *stubAuthSession) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	session := &stubAuthSession{token: token}
	svc := NewUserSettingsService(session, mockAdapter, NewActivityTracker(nil), logger.Nop())
	return svc, mockAdapter, session
}

func TestUserSettingsService_SetPin(t *testing.T) {
	svc, mockAdapter, session := newTestSettings(t, "primary")

	mockAdapter.EXPECT().SetPin(gomock.Any(), "primary", "4321").Return(nil)
	require.NoError(t, svc.SetPin(context.Background(), "4321"))
	assert.Equal(t, 1, session.resets, "mutation must drop the cached profile")
}

func TestUserSettingsService_SetLongLivedTokenOptIn(t *testing.T) {
	svc, mockAdapter, session := newTestSettings(t, "primary")

	mockAdapter.EXPECT().SetLongLivedTokenOptIn(gomock.Any(), "primary", true).Return(nil)
	require.NoError(t, svc.SetLongLivedTokenOptIn(context.Background(), true))
	assert.Equal(t, 1, session.resets)
}

func TestUserSettingsService_TwoFactorLifecycle(t *testing.T) {
	svc, mockAdapter, session := newTestSettings(t, "primary")

	setup := models.TwoFactorSetup{SecretKey: "JBSWY3DP", Issuer: "pwdman"}
	gomock.InOrder(
		mockAdapter.EXPECT().StartTwoFactorSetup(gomock.Any(), "primary").Return(setup, nil),
		mockAdapter.EXPECT().ConfirmTwoFactor(gomock.Any(), "primary", "123456").Return(true, nil),
		mockAdapter.EXPECT().DisableTwoFactor(gomock.Any(), "primary").Return(nil),
	)

	got, err := svc.StartTwoFactorSetup(context.Background())
	require.NoError(t, err)
	assert.Equal(t, setup, got)

	confirmed, err := svc.ConfirmTwoFactor(context.Background(), "123456")
	require.NoError(t, err)
	assert.True(t, confirmed)

	require.NoError(t, svc.DisableTwoFactor(context.Background()))

	// Confirm and disable both changed the account.
	assert.Equal(t, 2, session.resets)
}

func TestUserSettingsService_ConfirmTwoFactor_WrongCode(t *testing.T) {
	svc, mockAdapter, session := newTestSettings(t, "primary")

	mockAdapter.EXPECT().
		ConfirmTwoFactor(gomock.Any(), "primary", "000000").
		Return(false, adapter.ErrSecKeyInvalid)

	_, err := svc.ConfirmTwoFactor(context.Background(), "000000")
	assert.ErrorIs(t, err, ErrSecKeyInvalid)
	assert.Zero(t, session.resets, "a failed call leaves the cache alone")
}

func TestUserSettingsService_ConfirmTwoFactor_NotAccepted(t *testing.T) {
	svc, mockAdapter, session := newTestSettings(t, "primary")

	mockAdapter.EXPECT().
		ConfirmTwoFactor(gomock.Any(), "primary", "111111").
		Return(false, nil)

	confirmed, err := svc.ConfirmTwoFactor(context.Background(), "111111")
	require.NoError(t, err)
	assert.False(t, confirmed)
	assert.Zero(t, session.resets, "nothing changed server-side")
}

func TestUserSettingsService_MutationForcesProfileRefetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)

	storages := &store.ClientStorages{
		Session:    store.NewMemoryStore(),
		Persistent: store.NewMemoryStore(),
	}
	custody := NewKeyCustodyService(storages, crypto.NewCipherService(), logger.Nop())
	activity := NewActivityTracker(nil)
	auth := NewClientAuthService(storages, mockAdapter, custody, activity, "en", logger.Nop()).(*clientAuthService)
	auth.state.authResult = &models.AuthResult{Token: "primary"}
	settings := NewUserSettingsService(auth, mockAdapter, activity, logger.Nop())
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().
			GetUserProfile(gomock.Any(), "primary", true).
			Return(models.UserProfile{ID: 7, SecKey: "aabb"}, nil),
		mockAdapter.EXPECT().SetPin(gomock.Any(), "primary", "4321").Return(nil),
		mockAdapter.EXPECT().
			GetUserProfile(gomock.Any(), "primary", true).
			Return(models.UserProfile{ID: 7, SecKey: "ccdd"}, nil),
	)

	before, err := auth.GetUserProfile(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, "aabb", before.SecKey)

	require.NoError(t, settings.SetPin(ctx, "4321"))

	// The server may have rotated account material; the cache must not
	// serve the pre-mutation record.
	after, err := auth.GetUserProfile(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, "ccdd", after.SecKey)
}

func TestUserSettingsService_RequiresToken(t *testing.T) {
	svc, _, _ := newTestSettings(t, "")
	ctx := context.Background()

	assert.ErrorIs(t, svc.SetPin(ctx, "4321"), ErrInvalidParameters)
	assert.ErrorIs(t, svc.SetLongLivedTokenOptIn(ctx, true), ErrInvalidParameters)
	_, err := svc.StartTwoFactorSetup(ctx)
	assert.ErrorIs(t, err, ErrInvalidParameters)
	_, err = svc.ConfirmTwoFactor(ctx, "123456")
	assert.ErrorIs(t, err, ErrInvalidParameters)
	assert.ErrorIs(t, svc.DisableTwoFactor(ctx), ErrInvalidParameters)
}
