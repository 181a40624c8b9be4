package crypto

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCipherService_DeriveKey_Deterministic(t *testing.T) {
	svc := NewCipherService()

	first := svc.DeriveKey("secret", "salt1")
	second := svc.DeriveKey("secret", "salt1")
	other := svc.DeriveKey("secret", "salt2")

	require.Len(t, first, 32)
	assert.Equal(t, first, second, "same passphrase and salt must derive the same key")
	assert.NotEqual(t, first, other, "different salts must derive different keys")
}

func TestCipherService_EncodeDecode_RoundTrip(t *testing.T) {
	svc := NewCipherService()
	key := svc.DeriveKey("secret", "salt")

	tests := []struct {
		name      string
		plaintext string
	}{
		{name: "regular", plaintext: "my data protection passphrase"},
		{name: "empty", plaintext: ""},
		{name: "unicode", plaintext: "пароль-от-всего-🔐"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			envelope, err := svc.Encode(key, tt.plaintext)
			require.NoError(t, err)

			got, err := svc.Decode(key, envelope)
			require.NoError(t, err)
			assert.Equal(t, tt.plaintext, got)
		})
	}
}

func TestCipherService_Encode_EnvelopeLayout(t *testing.T) {
	svc := NewCipherService()
	key := svc.DeriveKey("secret", "salt")

	envelope, err := svc.Encode(key, "payload")
	require.NoError(t, err)

	// 24 hex chars of IV, then hex ciphertext with the 16-byte GCM tag.
	require.Greater(t, len(envelope), ivHexSize)
	iv, err := hex.DecodeString(envelope[:ivHexSize])
	require.NoError(t, err)
	assert.Len(t, iv, ivSize)

	ciphertext, err := hex.DecodeString(envelope[ivHexSize:])
	require.NoError(t, err)
	assert.Len(t, ciphertext, len("payload")+16)
}

func TestCipherService_Encode_FreshIVPerCall(t *testing.T) {
	svc := NewCipherService()
	key := svc.DeriveKey("secret", "salt")

	first, err := svc.Encode(key, "payload")
	require.NoError(t, err)
	second, err := svc.Encode(key, "payload")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestCipherService_Decode_WrongKey(t *testing.T) {
	svc := NewCipherService()
	key := svc.DeriveKey("secret", "salt")
	wrongKey := svc.DeriveKey("not-the-secret", "salt")

	envelope, err := svc.Encode(key, "payload")
	require.NoError(t, err)

	_, err = svc.Decode(wrongKey, envelope)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestCipherService_Decode_TamperedCiphertext(t *testing.T) {
	svc := NewCipherService()
	key := svc.DeriveKey("secret", "salt")

	envelope, err := svc.Encode(key, "payload")
	require.NoError(t, err)

	tampered := []byte(envelope)
	last := len(tampered) - 1
	if tampered[last] == 'f' {
		tampered[last] = '0'
	} else {
		tampered[last] = 'f'
	}

	_, err = svc.Decode(key, string(tampered))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestCipherService_Decode_MalformedEnvelope(t *testing.T) {
	svc := NewCipherService()
	key := svc.DeriveKey("secret", "salt")

	tests := []struct {
		name     string
		envelope string
	}{
		{name: "too short", envelope: "abcdef"},
		{name: "non-hex iv", envelope: strings.Repeat("z", 64)},
		{name: "non-hex ciphertext", envelope: strings.Repeat("a", ivHexSize) + "not-hex!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Decode(key, tt.envelope)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDecryptionFailed)
		})
	}
}

func TestCipherService_Streams_RoundTrip(t *testing.T) {
	svc := NewCipherService()
	key := svc.DeriveKey("secret", "salt")
	payload := strings.Repeat("binary-ish payload ", 100)

	var envelope bytes.Buffer
	require.NoError(t, svc.EncodeStream(key, strings.NewReader(payload), &envelope))

	var plain bytes.Buffer
	require.NoError(t, svc.DecodeStream(key, &envelope, &plain))
	assert.Equal(t, payload, plain.String())
}

func TestCipherService_DecodeStream_WrongKey(t *testing.T) {
	svc := NewCipherService()
	key := svc.DeriveKey("secret", "salt")
	wrongKey := svc.DeriveKey("other", "salt")

	var envelope bytes.Buffer
	require.NoError(t, svc.EncodeStream(key, strings.NewReader("payload"), &envelope))

	var plain bytes.Buffer
	err := svc.DecodeStream(wrongKey, &envelope, &plain)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestCipherService_GeneratePassphrase(t *testing.T) {
	svc := NewCipherService()

	first, err := svc.GeneratePassphrase()
	require.NoError(t, err)
	second, err := svc.GeneratePassphrase()
	require.NoError(t, err)

	assert.Len(t, first, passphraseSize*2)
	raw, err := hex.DecodeString(first)
	require.NoError(t, err)
	assert.Len(t, raw, passphraseSize)
	assert.NotEqual(t, first, second)
}
