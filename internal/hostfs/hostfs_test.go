package hostfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPathUnderDefaultRoot(t *testing.T) {
	p, err := Path(EtcPasswdRel)
	require.NoError(t, err)
	require.Equal(t, "/etc/passwd", p)

	// Leading slash is tolerated.
	p, err = Path("/etc/group")
	require.NoError(t, err)
	require.Equal(t, "/etc/group", p)
}

func TestPathRejectsEscapes(t *testing.T) {
	for _, bad := range []string{"", ".", "..", "../etc/passwd", "a/../../b"} {
		_, err := Path(bad)
		require.ErrorIs(t, err, ErrInvalidPath, "path %q", bad)
	}
}

func TestSetRoot(t *testing.T) {
	dir := t.TempDir()
	SetRoot(dir)
	t.Cleanup(func() { SetRoot("/") })

	p, err := Path(EtcGroupRel)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "etc/group"), p)

	// Empty root falls back to /.
	SetRoot("")
	require.Equal(t, "/", Root())
}

func TestWriteFileAtomicRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data")
	want := []byte("soft=1024 hard=4096\n")

	require.NoError(t, WriteFileAtomic(path, want, 0644))

	got, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, want, got)

	st, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0644), st.Mode().Perm())
}

func TestWriteFileAtomicOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data")
	require.NoError(t, WriteFileAtomic(path, []byte("old"), 0644))
	require.NoError(t, WriteFileAtomic(path, []byte("new"), 0644))

	got, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte("new"), got)
}
