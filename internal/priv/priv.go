//go:build unix

package priv

import (
	"golang.org/x/sys/unix"
)

// Historical note: before Go 1.16 a raw setuid(2) on Linux changed the
// calling thread only, and libc-style all-thread dispatch needed cgo.
// The runtime now forwards these calls to every thread, so the x/sys
// wrappers behave like glibc's.

// Setuid sets the process's user id.
func Setuid(uid int) error {
	return unix.Setuid(uid)
}

// Setgid sets the process's group id.
func Setgid(gid int) error {
	return unix.Setgid(gid)
}

// Setgroups replaces the supplementary group list.
func Setgroups(gids []int) error {
	return unix.Setgroups(gids)
}

// Umask sets the file-creation mask and returns the previous one.
// umask(2) cannot fail.
func Umask(mask int) (old int) {
	return unix.Umask(mask)
}

// Getuid/Geteuid/Getgid report the current process identity. They are
// thin pass-throughs kept here so callers of this package never need
// to import unix directly.
func Getuid() int  { return unix.Getuid() }
func Geteuid() int { return unix.Geteuid() }
func Getgid() int  { return unix.Getgid() }
