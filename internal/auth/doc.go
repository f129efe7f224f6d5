package auth

// Package auth verifies passwords against the host shadow database.
//
// Verification never touches PAM: the hash from /etc/shadow is checked
// directly with the common crypt(3) schemes, and hosts using a scheme
// this package cannot compute (yescrypt) fall back to su(1) behind a
// PTY.
