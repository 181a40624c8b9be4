package service

import (
	"context"
	"fmt"

	"github.com/pwdman/pwdman-client/internal/adapter"
	"github.com/pwdman/pwdman-client/internal/logger"
	"github.com/pwdman/pwdman-client/models"
)

// authSession is the slice of the auth state machine the settings service
// needs: the current primary token, and profile-cache invalidation after a
// successful mutation. The settings service never caches tokens itself.
type authSession interface {
	Token() string
	ResetUserInfo()
}

type userSettingsService struct {
	session  authSession
	adapter  adapter.ServerAdapter
	activity *ActivityTracker
	logger   *logger.Logger
}

// NewUserSettingsService constructs the [UserSettingsService] on top of the
// auth state machine's session.
func NewUserSettingsService(session authSession, serverAdapter adapter.ServerAdapter, activity *ActivityTracker, log *logger.Logger) UserSettingsService {
	return &userSettingsService{session: session, adapter: serverAdapter, activity: activity, logger: log}
}

// SetPin implements [UserSettingsService].
func (u *userSettingsService) SetPin(ctx context.Context, pin string) error {
	token, err := u.requireToken()
	if err != nil {
		return err
	}

	if err := u.adapter.SetPin(ctx, token, pin); err != nil {
		return mapAdapterError(err)
	}

	u.mutated()
	return nil
}

// SetLongLivedTokenOptIn implements [UserSettingsService].
func (u *userSettingsService) SetLongLivedTokenOptIn(ctx context.Context, optIn bool) error {
	token, err := u.requireToken()
	if err != nil {
		return err
	}

	if err := u.adapter.SetLongLivedTokenOptIn(ctx, token, optIn); err != nil {
		return mapAdapterError(err)
	}

	u.mutated()
	return nil
}

// StartTwoFactorSetup implements [UserSettingsService].
func (u *userSettingsService) StartTwoFactorSetup(ctx context.Context) (models.TwoFactorSetup, error) {
	token, err := u.requireToken()
	if err != nil {
		return models.TwoFactorSetup{}, err
	}

	setup, err := u.adapter.StartTwoFactorSetup(ctx, token)
	if err != nil {
		return models.TwoFactorSetup{}, mapAdapterError(err)
	}

	u.activity.Touch()
	return setup, nil
}

// ConfirmTwoFactor implements [UserSettingsService]. A rejected code maps
// to [ErrSecKeyInvalid].
func (u *userSettingsService) ConfirmTwoFactor(ctx context.Context, code string) (bool, error) {
	token, err := u.requireToken()
	if err != nil {
		return false, err
	}

	confirmed, err := u.adapter.ConfirmTwoFactor(ctx, token, code)
	if err != nil {
		return false, mapAdapterError(err)
	}

	if confirmed {
		u.mutated()
	} else {
		u.activity.Touch()
	}
	return confirmed, nil
}

// DisableTwoFactor implements [UserSettingsService].
func (u *userSettingsService) DisableTwoFactor(ctx context.Context) error {
	token, err := u.requireToken()
	if err != nil {
		return err
	}

	if err := u.adapter.DisableTwoFactor(ctx, token); err != nil {
		return mapAdapterError(err)
	}

	u.mutated()
	return nil
}

func (u *userSettingsService) requireToken() (string, error) {
	token := u.session.Token()
	if token == "" {
		return "", fmt.Errorf("%w: not logged in", ErrInvalidParameters)
	}
	return token, nil
}

// mutated records the activity and drops the cached profile: the server may
// have changed account material (secKey included), so the next read must
// refetch it.
func (u *userSettingsService) mutated() {
	u.activity.Touch()
	u.session.ResetUserInfo()
}
