package crypto

import "io"

// CipherService owns all client-side cryptography of the zero-knowledge
// scheme. It knows nothing about the network, storage or users; its only
// job is deriving keys and sealing/opening envelopes.
//
// Envelope layout (stable storage contract, must never change):
//
//	hex(12-byte IV) ‖ hex(ciphertext ‖ GCM tag)
//
// There is no delimiter: the IV is always exactly the first 24 hex
// characters of the envelope.
type CipherService interface {
	// DeriveKey derives a 256-bit symmetric key from a passphrase and a
	// per-user salt. Deterministic: identical inputs always yield
	// byte-identical key material.
	DeriveKey(passphrase, salt string) []byte

	// Encode seals plaintext with key using authenticated encryption and a
	// fresh random IV, returning the hex envelope.
	Encode(key []byte, plaintext string) (string, error)

	// Decode opens an envelope produced by Encode. It returns
	// [ErrDecryptionFailed] whenever the authentication tag check fails;
	// this is the only signal available that the key was wrong.
	Decode(key []byte, envelope string) (string, error)

	// EncodeStream seals everything read from src and writes the hex
	// envelope to dst. Same layout as Encode, applied to arbitrary bytes
	// (document attachments).
	EncodeStream(key []byte, src io.Reader, dst io.Writer) error

	// DecodeStream opens an envelope read from src and writes the
	// plaintext bytes to dst. Returns [ErrDecryptionFailed] on tag
	// mismatch.
	DecodeStream(key []byte, src io.Reader, dst io.Writer) error

	// GeneratePassphrase returns a fresh random data-protection passphrase
	// from the OS CSPRNG. Used when a user logs in for the first time and
	// has not chosen one.
	GeneratePassphrase() (string, error)
}
