package service

import (
	"errors"

	"github.com/pwdman/pwdman-client/internal/adapter"
	"github.com/pwdman/pwdman-client/internal/crypto"
)

// mapAdapterError translates the adapter's transport error into the
// service-level taxonomy. Unknown transport failures become ErrUnexpected
// with the original error preserved in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrInvalidToken):
		return errors.Join(ErrInvalidToken, err)
	case errors.Is(err, adapter.ErrInvalidParameters):
		return errors.Join(ErrInvalidParameters, err)
	case errors.Is(err, adapter.ErrSecKeyInvalid):
		return errors.Join(ErrSecKeyInvalid, err)
	default:
		return errors.Join(ErrUnexpected, err)
	}
}

// mapCryptoError translates a cipher failure raised while decrypting real
// content. Tag mismatches surface as the wrong-passphrase error; everything
// else is unexpected.
func mapCryptoError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, crypto.ErrDecryptionFailed) {
		return errors.Join(ErrWrongDataProtectionKey, err)
	}
	return errors.Join(ErrUnexpected, err)
}
