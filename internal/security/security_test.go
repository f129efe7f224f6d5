package security

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorf(t *testing.T) {
	err := Errorf("getpwnam", "unknown user %q", "alice")
	require.EqualError(t, err, `getpwnam: unknown user "alice"`)
	require.True(t, Is(err))
}

func TestWrapUnwraps(t *testing.T) {
	cause := errors.New("read /etc/passwd: permission denied")
	err := Wrap("getpwuid", cause, "read user database")
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "getpwuid")
	require.Contains(t, err.Error(), cause.Error())
}

func TestIsThroughWrapping(t *testing.T) {
	err := fmt.Errorf("outer: %w", Errorf("getgrgid", "unknown gid %d", 9))
	require.True(t, Is(err))
	require.False(t, Is(errors.New("plain")))
	require.False(t, Is(nil))
}

// Keys of any length land in the message intact; nothing truncates.
func TestLongKeyUntruncated(t *testing.T) {
	key := strings.Repeat("a", 64*1024)
	err := Errorf("getpwnam", "unknown user %q", key)
	require.Contains(t, err.Error(), key)
}
