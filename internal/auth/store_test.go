package auth

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogadmin/pkg/errors"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore("")
	_, err := s.Token()
	assert.True(t, errors.Is(err, errors.CodeAuthenticationRequired))

	require.NoError(t, s.Set("opaque-token"))
	token, err := s.Token()
	require.NoError(t, err)
	assert.Equal(t, "opaque-token", token)

	require.NoError(t, s.Clear())
	_, err = s.Token()
	assert.True(t, errors.Is(err, errors.CodeAuthenticationRequired))
}

func TestMemoryStoreExpiredJWT(t *testing.T) {
	s := NewMemoryStore(signedToken(t, time.Now().Add(-time.Hour)))
	_, err := s.Token()
	assert.True(t, errors.Is(err, errors.CodeAuthenticationRequired))
}

func TestMemoryStoreLiveJWT(t *testing.T) {
	live := signedToken(t, time.Now().Add(time.Hour))
	s := NewMemoryStore(live)
	token, err := s.Token()
	require.NoError(t, err)
	assert.Equal(t, live, token)
}

func TestFileStorePersistsToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	s := NewFileStore(path)

	_, err := s.Token()
	assert.True(t, errors.Is(err, errors.CodeAuthenticationRequired))

	live := signedToken(t, time.Now().Add(time.Hour))
	require.NoError(t, s.Set(live))

	// A fresh store against the same path sees the token.
	token, err := NewFileStore(path).Token()
	require.NoError(t, err)
	assert.Equal(t, live, token)

	require.NoError(t, s.Clear())
	_, err = s.Token()
	assert.True(t, errors.Is(err, errors.CodeAuthenticationRequired))
}

func TestFileStoreClearMissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "absent.json"))
	assert.NoError(t, s.Clear())
}

func TestFileStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	s := NewFileStore(path)
	require.NoError(t, s.Set("tok"))

	// Corrupt the document behind the store's back.
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	_, err := s.Token()
	assert.True(t, errors.Is(err, errors.CodeAuthenticationRequired))
}
