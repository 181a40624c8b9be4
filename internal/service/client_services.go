package service

import (
	"github.com/pwdman/pwdman-client/internal/adapter"
	"github.com/pwdman/pwdman-client/internal/config"
	"github.com/pwdman/pwdman-client/internal/crypto"
	"github.com/pwdman/pwdman-client/internal/logger"
	"github.com/pwdman/pwdman-client/internal/store"
)

// ClientServices groups the client service layer into a single value that
// can be passed to the UI and the background workers.
type ClientServices struct {
	// Cipher is the stateless cryptography service.
	Cipher crypto.CipherService
	// Custody owns the data-protection passphrase caches.
	Custody KeyCustodyService
	// Auth is the authentication state machine.
	Auth AuthService
	// Settings drives the account-settings endpoints.
	Settings UserSettingsService
	// Activity is the shared last-activity tracker fed by the services and
	// read by the inactivity worker.
	Activity *ActivityTracker
}

// NewClientServices wires the service layer: cipher → custody → auth →
// settings, sharing one activity tracker.
func NewClientServices(stores *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg config.Adapter, log *logger.Logger) *ClientServices {
	cipherSvc := crypto.NewCipherService()
	activity := NewActivityTracker(nil)
	custody := NewKeyCustodyService(stores, cipherSvc, log)
	auth := NewClientAuthService(stores, serverAdapter, custody, activity, cfg.Locale, log)
	settings := NewUserSettingsService(auth, serverAdapter, activity, log)

	return &ClientServices{
		Cipher:   cipherSvc,
		Custody:  custody,
		Auth:     auth,
		Settings: settings,
		Activity: activity,
	}
}
