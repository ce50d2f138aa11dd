package keystore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "keystore.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSetGetRoundtrip(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Set("userToken", []byte("abc123")))
	value, err := s.Get("userToken")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc123"), value)

	// Overwrite replaces the previous value.
	require.NoError(t, s.Set("userToken", []byte("def456")))
	value, err = s.Get("userToken")
	require.NoError(t, err)
	assert.Equal(t, []byte("def456"), value)
}

func TestGet_MissingKey(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Get("never-set")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Set("cart", []byte("[]")))
	require.NoError(t, s.Delete("cart"))
	_, err := s.Get("cart")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// Deleting a missing key is fine.
	assert.NoError(t, s.Delete("cart"))
}
