package service

import (
	"encoding/hex"
	"fmt"

	"github.com/pwdman/pwdman-client/internal/crypto"
	"github.com/pwdman/pwdman-client/internal/logger"
	"github.com/pwdman/pwdman-client/internal/store"
	"github.com/pwdman/pwdman-client/models"
)

type keyCustodyService struct {
	stores *store.ClientStorages
	cipher crypto.CipherService
	logger *logger.Logger
}

// NewKeyCustodyService constructs the [KeyCustodyService]. The passphrase
// lives plaintext in the session store and, when the user has a secKey,
// wrapped in the persistent store. secKey and passphrase are independent
// secrets: compromising one does not compromise the other without also
// compromising both storage locations.
func NewKeyCustodyService(stores *store.ClientStorages, cipherSvc crypto.CipherService, log *logger.Logger) KeyCustodyService {
	return &keyCustodyService{stores: stores, cipher: cipherSvc, logger: log}
}

// GetKey implements [KeyCustodyService]. Session store first; on a miss it
// tries to unwrap the persistent copy with secKey and back-fills the
// session store. Every failure on the fallback path degrades to "no key":
// the caller learns about a wrong key only when it decrypts real content.
func (k *keyCustodyService) GetKey(user models.UserProfile) string {
	if key, err := k.stores.Session.Get(store.EncryptKeyName(user.ID)); err == nil {
		return key
	}

	if user.SecKey == "" {
		return ""
	}

	wrapKey, err := k.secKeyBytes(user)
	if err != nil {
		k.logger.Warn().Err(err).Int64("user", user.ID).Msg("unusable secKey")
		return ""
	}

	envelope, err := k.stores.Persistent.Get(store.SecureEncryptKeyName(user.ID))
	if err != nil {
		return ""
	}

	key, err := k.cipher.Decode(wrapKey, envelope)
	if err != nil {
		k.logger.Debug().Err(err).Int64("user", user.ID).Msg("stale wrapped passphrase, ignoring")
		return ""
	}

	if err := k.stores.Session.Set(store.EncryptKeyName(user.ID), key); err != nil {
		k.logger.Error().Err(err).Msg("back-fill session key cache")
	}
	return key
}

// SetKey implements [KeyCustodyService]. An empty key removes both cache
// entries; an empty-string placeholder is never stored. Without a secKey
// the persistent copy is skipped silently, degrading to session-only
// caching.
func (k *keyCustodyService) SetKey(user models.UserProfile, key string) error {
	if key == "" {
		if err := k.stores.Session.Remove(store.EncryptKeyName(user.ID)); err != nil {
			return fmt.Errorf("remove session key: %w", err)
		}
		if err := k.stores.Persistent.Remove(store.SecureEncryptKeyName(user.ID)); err != nil {
			return fmt.Errorf("remove wrapped key: %w", err)
		}
		return nil
	}

	if err := k.stores.Session.Set(store.EncryptKeyName(user.ID), key); err != nil {
		return fmt.Errorf("cache session key: %w", err)
	}

	if user.SecKey == "" {
		return nil
	}

	wrapKey, err := k.secKeyBytes(user)
	if err != nil {
		k.logger.Warn().Err(err).Int64("user", user.ID).Msg("unusable secKey, keeping session-only cache")
		return nil
	}

	envelope, err := k.cipher.Encode(wrapKey, key)
	if err != nil {
		k.logger.Warn().Err(err).Int64("user", user.ID).Msg("wrap passphrase failed, keeping session-only cache")
		return nil
	}

	if err := k.stores.Persistent.Set(store.SecureEncryptKeyName(user.ID), envelope); err != nil {
		return fmt.Errorf("store wrapped key: %w", err)
	}
	return nil
}

// EnsureKey implements [KeyCustodyService].
func (k *keyCustodyService) EnsureKey(user models.UserProfile) (string, error) {
	if key := k.GetKey(user); key != "" {
		return key, nil
	}

	key, err := k.cipher.GeneratePassphrase()
	if err != nil {
		return "", fmt.Errorf("generate passphrase: %w", err)
	}

	if err := k.SetKey(user, key); err != nil {
		return "", err
	}

	k.logger.Info().Int64("user", user.ID).Msg("generated new data-protection passphrase")
	return key, nil
}

// ClearSession implements [KeyCustodyService]. Called on logout; the
// persistent wrapped copy stays so a returning login can restore the key.
func (k *keyCustodyService) ClearSession(userID int64) {
	if err := k.stores.Session.Remove(store.EncryptKeyName(userID)); err != nil {
		k.logger.Error().Err(err).Msg("clear session key cache")
	}
}

func (k *keyCustodyService) secKeyBytes(user models.UserProfile) ([]byte, error) {
	raw, err := hex.DecodeString(user.SecKey)
	if err != nil {
		return nil, fmt.Errorf("decode secKey: %w", err)
	}
	return raw, nil
}
