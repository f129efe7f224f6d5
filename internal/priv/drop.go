//go:build unix

package priv

import (
	"errors"
	"fmt"

	"github.com/hnrobert/privmgr/internal/logger"
	"github.com/hnrobert/privmgr/internal/rlimit"
)

// DropSpec describes one privilege drop. Umask of -1 leaves the mask
// untouched; a nil Nofile leaves the open-file limit untouched.
type DropSpec struct {
	UID    int
	GID    int
	Groups []int
	Umask  int
	Nofile *rlimit.Limit
}

var ErrStillPrivileged = errors.New("process retained root privilege after drop")

// Drop applies spec. Order matters: resource limits while the hard
// limit may still be raised, then groups, then gid, then uid last
// (after setuid nothing else is permitted). A drop from root to
// non-root is verified by checking that setuid(0) no longer succeeds.
func Drop(spec DropSpec) error {
	if (spec.UID <= 0) != (spec.GID <= 0) {
		return errors.New("either both or neither of uid and gid must be positive")
	}

	if spec.Nofile != nil {
		if err := rlimit.Set(rlimit.Nofile, *spec.Nofile); err != nil {
			return fmt.Errorf("setrlimit nofile: %w", err)
		}
	}

	wasRoot := Geteuid() == 0

	if spec.UID > 0 {
		gids := spec.Groups
		if gids == nil {
			gids = []int{spec.GID}
		}
		if err := Setgroups(gids); err != nil {
			return fmt.Errorf("setgroups: %w", err)
		}
		if err := Setgid(spec.GID); err != nil {
			return fmt.Errorf("setgid %d: %w", spec.GID, err)
		}
		if err := Setuid(spec.UID); err != nil {
			return fmt.Errorf("setuid %d: %w", spec.UID, err)
		}
		logger.Info("dropped privileges to uid=%d gid=%d groups=%v", spec.UID, spec.GID, gids)
	}

	if spec.Umask >= 0 {
		old := Umask(spec.Umask)
		logger.Info("umask %04o (was %04o)", spec.Umask, old)
	}

	if wasRoot && spec.UID > 0 {
		if err := ensureNoPrivs(); err != nil {
			return err
		}
	}
	return nil
}

// ensureNoPrivs proves the drop took: regaining uid 0 must fail.
func ensureNoPrivs() error {
	if Getuid() == 0 || Geteuid() == 0 {
		return ErrStillPrivileged
	}
	if err := Setuid(0); err == nil {
		return ErrStillPrivileged
	}
	return nil
}
