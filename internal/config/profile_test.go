package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hnrobert/privmgr/internal/hostfs"
	"github.com/hnrobert/privmgr/internal/security"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadProfile(t *testing.T) {
	path := writeProfile(t, `user: alice
group: staff
groups: [staff, sudo]
umask: "027"
nofile:
  soft: 1024
  hard: 4096
`)
	p, err := LoadProfile(path)
	require.NoError(t, err)
	require.Equal(t, "alice", p.User)
	require.Equal(t, "staff", p.Group)
	require.Equal(t, []string{"staff", "sudo"}, p.Groups)
	require.Equal(t, "027", p.Umask)
	require.NotNil(t, p.Nofile)
	require.EqualValues(t, 1024, p.Nofile.Soft)
	require.EqualValues(t, 4096, p.Nofile.Hard)
}

// Unknown fields must error out: a typo in a security-relevant file
// silently doing nothing is worse than a refusal to start.
func TestLoadProfileUnknownFields(t *testing.T) {
	path := writeProfile(t, `user: alice
umsak: "022"
`)
	_, err := LoadProfile(path)
	require.Error(t, err)
}

func TestLoadProfileNoUser(t *testing.T) {
	path := writeProfile(t, `umask: "022"`)
	_, err := LoadProfile(path)
	require.ErrorIs(t, err, ErrNoUser)
}

func TestLoadProfileBadNames(t *testing.T) {
	_, err := LoadProfile(writeProfile(t, `user: "Not Valid"`))
	require.Error(t, err)

	_, err = LoadProfile(writeProfile(t, "user: alice\ngroup: \"BAD\"\n"))
	require.Error(t, err)
}

func TestLoadProfileBadUmask(t *testing.T) {
	_, err := LoadProfile(writeProfile(t, "user: alice\numask: \"99\"\n"))
	require.Error(t, err)

	_, err = LoadProfile(writeProfile(t, "user: alice\numask: \"02222\"\n"))
	require.Error(t, err)
}

func TestLoadProfileSoftAboveHard(t *testing.T) {
	path := writeProfile(t, `user: alice
nofile:
  soft: 4096
  hard: 1024
`)
	_, err := LoadProfile(path)
	require.Error(t, err)
}

func TestSaveProfileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yml")
	in := &Profile{
		User:   "alice",
		Umask:  "022",
		Nofile: &NofileLimit{Soft: 256, Hard: 512},
	}
	require.NoError(t, SaveProfile(path, in))

	out, err := LoadProfile(path)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	etc := filepath.Join(dir, "etc")
	require.NoError(t, os.MkdirAll(etc, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(etc, "passwd"),
		[]byte("alice:x:1000:1000::/home/alice:/bin/sh\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(etc, "group"),
		[]byte("staff:x:50:alice\nalice:x:1000:\n"), 0644))
	hostfs.SetRoot(dir)
	t.Cleanup(func() { hostfs.SetRoot("/") })

	p := &Profile{
		User:   "alice",
		Umask:  "022",
		Nofile: &NofileLimit{Soft: 128, Hard: 256},
	}
	spec, err := p.Resolve()
	require.NoError(t, err)
	require.Equal(t, 1000, spec.UID)
	require.Equal(t, 1000, spec.GID)
	require.Equal(t, []int{50, 1000}, spec.Groups)
	require.Equal(t, 0o022, spec.Umask)
	require.NotNil(t, spec.Nofile)
	require.EqualValues(t, 128, spec.Nofile.Cur)
	require.EqualValues(t, 256, spec.Nofile.Max)
}

func TestResolveUnknownUser(t *testing.T) {
	dir := t.TempDir()
	etc := filepath.Join(dir, "etc")
	require.NoError(t, os.MkdirAll(etc, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(etc, "passwd"), []byte(""), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(etc, "group"), []byte(""), 0644))
	hostfs.SetRoot(dir)
	t.Cleanup(func() { hostfs.SetRoot("/") })

	p := &Profile{User: "ghost"}
	_, err := p.Resolve()
	require.True(t, security.Is(err))
}

func TestParseUmask(t *testing.T) {
	n, err := parseUmask("022")
	require.NoError(t, err)
	require.Equal(t, 0o022, n)

	n, err = parseUmask("0")
	require.NoError(t, err)
	require.Equal(t, 0, n)

	_, err = parseUmask("abc")
	require.Error(t, err)
}
