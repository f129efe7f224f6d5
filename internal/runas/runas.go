//go:build unix

package runas

// Package runas executes one command under another account's
// credentials. Unlike priv.Drop, which changes this process, runas
// drops only the child: the parent keeps its identity and can run
// further commands.

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"github.com/creack/pty"

	"github.com/hnrobert/privmgr/internal/identity"
)

type Runner struct {
	Timeout time.Duration
	// Interactive attaches the child to a PTY and proxies it to the
	// runner's stdio. Required for programs that refuse to prompt
	// without a terminal.
	Interactive bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func New() *Runner {
	return &Runner{
		Timeout: 10 * time.Second,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Run executes name with args as user. The user's primary group and
// database group memberships apply to the child.
func (r *Runner) Run(ctx context.Context, user, name string, args ...string) error {
	u, err := identity.LookupUser(user)
	if err != nil {
		return err
	}
	gids, err := identity.SupplementaryGIDs(u.Name, u.GID)
	if err != nil {
		return err
	}

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(),
		"HOME="+u.Home,
		"USER="+u.Name,
		"LOGNAME="+u.Name,
	)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Credential: &syscall.Credential{
			Uid:    uint32(u.UID),
			Gid:    uint32(u.GID),
			Groups: toUint32(gids),
		},
	}

	if r.Interactive {
		return r.runPty(cmd)
	}
	return r.runPlain(cmd, name, args)
}

func (r *Runner) runPlain(cmd *exec.Cmd, name string, args []string) error {
	var stderr bytes.Buffer
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = io.MultiWriter(r.Stderr, &stderr)
	if err := cmd.Run(); err != nil {
		s := strings.TrimSpace(stderr.String())
		if s == "" {
			return err
		}
		return fmt.Errorf("%s %v: %s", name, args, s)
	}
	return nil
}

func (r *Runner) runPty(cmd *exec.Cmd) error {
	f, err := pty.Start(cmd)
	if err != nil {
		return fmt.Errorf("start pty: %w", err)
	}
	defer func() { _ = f.Close() }()

	go func() { _, _ = io.Copy(f, r.Stdin) }()
	_, _ = io.Copy(r.Stdout, f)
	return cmd.Wait()
}

func toUint32(gids []int) []uint32 {
	out := make([]uint32, len(gids))
	for i, g := range gids {
		out[i] = uint32(g)
	}
	return out
}
