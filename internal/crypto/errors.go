package crypto

import "errors"

// ErrDecryptionFailed is returned when an envelope cannot be opened because
// the GCM authentication tag does not verify. A wrong key and a tampered
// ciphertext are indistinguishable at this layer.
var ErrDecryptionFailed = errors.New("decryption failed")
