package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// ivSize is the GCM nonce length in bytes. The envelope prefix is
	// therefore ivSize*2 = 24 hex characters, a fixed offset relied upon by
	// previously stored ciphertext.
	ivSize = 12

	// ivHexSize is the envelope prefix length in hex characters.
	ivHexSize = ivSize * 2

	// kdfIterations is the PBKDF2 iteration count. Fixed: changing it would
	// derive different keys for the same passphrase and lock users out of
	// their existing data.
	kdfIterations = 1000

	// keySize is the derived key length in bytes (AES-256).
	keySize = 32

	// passphraseSize is the entropy, in bytes, of a generated
	// data-protection passphrase.
	passphraseSize = 32
)

// cipherService is the private implementation of [CipherService].
type cipherService struct{}

// NewCipherService constructs a [CipherService] using PBKDF2-SHA256 with
// 1000 iterations for key derivation and AES-256-GCM for authenticated
// encryption.
func NewCipherService() CipherService {
	return &cipherService{}
}

// DeriveKey implements [CipherService]. It runs PBKDF2-SHA256 over the
// passphrase and salt and returns 32 bytes of key material. The result
// exists only in client memory and is never transmitted to the server.
func (c *cipherService) DeriveKey(passphrase, salt string) []byte {
	return pbkdf2.Key([]byte(passphrase), []byte(salt), kdfIterations, keySize, sha256.New)
}

// Encode implements [CipherService]. It seals plaintext under key with a
// fresh random 12-byte IV and returns hex(IV) ‖ hex(ciphertext‖tag).
// Returns an error if cipher construction or the random IV read fails.
func (c *cipherService) Encode(key []byte, plaintext string) (string, error) {
	return sealBytes(key, []byte(plaintext))
}

// Decode implements [CipherService]. It splits the first 24 hex characters
// of envelope as the IV, the remainder as ciphertext‖tag, and opens the
// envelope under key. Returns [ErrDecryptionFailed] (wrapped) when the tag
// check fails.
func (c *cipherService) Decode(key []byte, envelope string) (string, error) {
	plain, err := openEnvelope(key, envelope)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

// EncodeStream implements [CipherService]. GCM authenticates the whole
// message at once, so src is buffered in memory before sealing; the hex
// envelope is then written to dst.
func (c *cipherService) EncodeStream(key []byte, src io.Reader, dst io.Writer) error {
	data, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("read plaintext stream: %w", err)
	}

	envelope, err := sealBytes(key, data)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(dst, envelope); err != nil {
		return fmt.Errorf("write envelope: %w", err)
	}
	return nil
}

// DecodeStream implements [CipherService]. It reads the whole hex envelope
// from src, opens it under key and writes the plaintext bytes to dst.
// Returns [ErrDecryptionFailed] on tag mismatch.
func (c *cipherService) DecodeStream(key []byte, src io.Reader, dst io.Writer) error {
	envelope, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("read envelope stream: %w", err)
	}

	plain, err := openEnvelope(key, string(envelope))
	if err != nil {
		return err
	}

	if _, err := dst.Write(plain); err != nil {
		return fmt.Errorf("write plaintext: %w", err)
	}
	return nil
}

// GeneratePassphrase implements [CipherService]. It reads 32 random bytes
// from the OS CSPRNG and returns them hex-encoded. Returns an error if the
// random read fails.
func (c *cipherService) GeneratePassphrase() (string, error) {
	buf := make([]byte, passphraseSize)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCMWithNonceSize(block, ivSize)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}

func sealBytes(key, plaintext []byte) (string, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	iv := make([]byte, ivSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}

	ciphertext := gcm.Seal(nil, iv, plaintext, nil)
	return hex.EncodeToString(iv) + hex.EncodeToString(ciphertext), nil
}

func openEnvelope(key []byte, envelope string) ([]byte, error) {
	if len(envelope) < ivHexSize {
		return nil, fmt.Errorf("%w: envelope too short", ErrDecryptionFailed)
	}

	iv, err := hex.DecodeString(envelope[:ivHexSize])
	if err != nil {
		return nil, fmt.Errorf("%w: malformed iv: %v", ErrDecryptionFailed, err)
	}

	ciphertext, err := hex.DecodeString(envelope[ivHexSize:])
	if err != nil {
		return nil, fmt.Errorf("%w: malformed ciphertext: %v", ErrDecryptionFailed, err)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	// Open verifies the auth tag. An error here almost always means the
	// envelope was sealed under a different key.
	plain, err := gcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}

	return plain, nil
}
