//go:build unix

package rlimit

// Package rlimit reads and writes per-process kernel resource limits.
//
// A limit pair is applied with a single setrlimit(2) call; soft and
// hard never change independently through this package. No soft<=hard
// validation happens here: the kernel enforces the constraint and the
// violation comes back as EINVAL (or EPERM when raising the hard limit
// without privilege).

import (
	"golang.org/x/sys/unix"

	"github.com/hnrobert/privmgr/internal/security"
)

// Resource classes exercised by this repository.
const (
	Nofile = unix.RLIMIT_NOFILE
	Nproc  = unix.RLIMIT_NPROC
	Core   = unix.RLIMIT_CORE
	CPU    = unix.RLIMIT_CPU
	AS     = unix.RLIMIT_AS
)

// Limit is one soft/hard pair. Cur is the enforced soft limit, Max the
// ceiling the process may raise Cur to without privilege.
type Limit struct {
	Cur uint64
	Max uint64
}

// Get reads the current pair for a resource class. A read failure is a
// security error: limits are always readable for the calling process,
// so a failure means the call itself is broken.
func Get(resource int) (Limit, error) {
	var rl unix.Rlimit
	if err := unix.Getrlimit(resource, &rl); err != nil {
		return Limit{}, security.Wrap("getrlimit", err, "read resource limit")
	}
	return Limit{Cur: rl.Cur, Max: rl.Max}, nil
}

// Set applies a pair atomically. The raw errno comes back unwrapped so
// callers can distinguish EINVAL from EPERM.
func Set(resource int, l Limit) error {
	rl := unix.Rlimit{Cur: l.Cur, Max: l.Max}
	return unix.Setrlimit(resource, &rl)
}
