package procfs

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

const fixtureStatus = `Name:	privctl
Umask:	0022
State:	R (running)
Uid:	1000	1000	1000	1000
Gid:	1000	1000	1000	1000
Groups:	27 50 1000
Threads:	7
`

const fixtureLimits = `Limit                     Soft Limit           Hard Limit           Units
Max cpu time              unlimited            unlimited            seconds
Max open files            1024                 4096                 files
Max locked memory         65536                65536                bytes
`

func fixtureReader(t *testing.T, status, limits string) *Reader {
	t.Helper()
	dir := t.TempDir()
	self := filepath.Join(dir, "self")
	require.NoError(t, os.MkdirAll(self, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(self, "status"), []byte(status), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(self, "limits"), []byte(limits), 0644))
	return New(dir)
}

func TestSelfStatus(t *testing.T) {
	r := fixtureReader(t, fixtureStatus, fixtureLimits)

	st, err := r.SelfStatus()
	require.NoError(t, err)
	require.Equal(t, 0o022, st.Umask)
	require.Equal(t, [4]int{1000, 1000, 1000, 1000}, st.Uid)
	require.Equal(t, [4]int{1000, 1000, 1000, 1000}, st.Gid)
	require.Equal(t, []int{27, 50, 1000}, st.Groups)
}

func TestMaxOpenFiles(t *testing.T) {
	r := fixtureReader(t, fixtureStatus, fixtureLimits)

	soft, hard, err := r.MaxOpenFiles()
	require.NoError(t, err)
	require.EqualValues(t, 1024, soft)
	require.EqualValues(t, 4096, hard)
}

func TestMaxOpenFilesUnlimited(t *testing.T) {
	limits := "Max open files            unlimited            unlimited            files\n"
	r := fixtureReader(t, fixtureStatus, limits)

	soft, hard, err := r.MaxOpenFiles()
	require.NoError(t, err)
	require.Equal(t, ^uint64(0), soft)
	require.Equal(t, ^uint64(0), hard)
}

func TestMaxOpenFilesMissingRow(t *testing.T) {
	r := fixtureReader(t, fixtureStatus, "Limit  Soft  Hard  Units\n")

	_, _, err := r.MaxOpenFiles()
	require.Error(t, err)
}

func TestSelfStatusLive(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("needs /proc")
	}
	st, err := New("").SelfStatus()
	require.NoError(t, err)
	require.Equal(t, os.Getuid(), st.Uid[0])
	require.Equal(t, os.Getgid(), st.Gid[0])
}
