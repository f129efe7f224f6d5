package priv

// Package priv changes the calling process's identity, file-creation
// mask and supplementary groups.
//
// Every call here mutates process-wide kernel state. The change is
// visible to all goroutines and threads at once and, once privilege is
// dropped, cannot be undone for the lifetime of the process. Callers
// must not assume per-goroutine isolation.
//
// Arguments are passed to the kernel unvalidated. An out-of-range or
// unauthorized value is rejected by the kernel itself and surfaces as
// the raw errno (EPERM, EINVAL); no security-class error is raised on
// this path.
