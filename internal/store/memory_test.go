package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetGetRemove(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Get("missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, s.Set("authresult", `{"token":"abc"}`))
	got, err := s.Get("authresult")
	require.NoError(t, err)
	assert.Equal(t, `{"token":"abc"}`, got)

	require.NoError(t, s.Set("authresult", `{"token":"def"}`))
	got, err = s.Get("authresult")
	require.NoError(t, err)
	assert.Equal(t, `{"token":"def"}`, got)

	require.NoError(t, s.Remove("authresult"))
	_, err = s.Get("authresult")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// Removing an absent key is not an error.
	require.NoError(t, s.Remove("authresult"))
}

func TestEncryptKeyNames(t *testing.T) {
	assert.Equal(t, "encryptkey-42", EncryptKeyName(42))
	assert.Equal(t, "encryptkey-42-secure", SecureEncryptKeyName(42))
}
