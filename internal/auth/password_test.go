package auth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/GehirnInc/crypt/sha512_crypt"
	"github.com/stretchr/testify/require"

	"github.com/hnrobert/privmgr/internal/hostfs"
)

func shadowFixture(t *testing.T, lines string) {
	t.Helper()
	dir := t.TempDir()
	etc := filepath.Join(dir, "etc")
	require.NoError(t, os.MkdirAll(etc, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(etc, "shadow"), []byte(lines), 0600))
	hostfs.SetRoot(dir)
	t.Cleanup(func() { hostfs.SetRoot("/") })
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := sha512_crypt.New().Generate([]byte(password), nil)
	require.NoError(t, err)
	return h
}

func TestVerifyPassword(t *testing.T) {
	hash := hashOf(t, "s3cret")
	shadowFixture(t, "alice:"+hash+":19000:0:99999:7:::\n")

	require.NoError(t, VerifyPassword("alice", "s3cret"))
	require.ErrorIs(t, VerifyPassword("alice", "wrong"), ErrInvalidCredentials)
}

func TestVerifyPasswordUnknownUser(t *testing.T) {
	shadowFixture(t, "alice:"+hashOf(t, "pw")+":19000:0:99999:7:::\n")

	require.ErrorIs(t, VerifyPassword("bob", "pw"), ErrInvalidCredentials)
}

func TestVerifyPasswordLocked(t *testing.T) {
	shadowFixture(t, "alice:!:19000:0:99999:7:::\nbob:*:19000:0:99999:7:::\ncarol::19000:0:99999:7:::\n")

	require.ErrorIs(t, VerifyPassword("alice", "anything"), ErrUserLocked)
	require.ErrorIs(t, VerifyPassword("bob", "anything"), ErrUserLocked)
	require.ErrorIs(t, VerifyPassword("carol", "anything"), ErrUserLocked)
}

func TestVerifyCrypt(t *testing.T) {
	hash := hashOf(t, "pw")

	ok, err := verifyCrypt(hash, "pw")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = verifyCrypt(hash, "nope")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestVerifyCryptUnsupported(t *testing.T) {
	_, err := verifyCrypt("$y$j9T$salt$hash", "pw")
	require.ErrorIs(t, err, ErrUnsupportedHash)

	_, err = verifyCrypt("$2a$10$abcdefghijklmnopqrstuv", "pw")
	require.ErrorIs(t, err, ErrUnsupportedHash)
}

func TestLocked(t *testing.T) {
	require.True(t, locked(""))
	require.True(t, locked("!"))
	require.True(t, locked("!$6$x$y"))
	require.True(t, locked("*"))
	require.False(t, locked("$6$x$y"))
}
