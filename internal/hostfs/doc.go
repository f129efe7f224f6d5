package hostfs

// Package hostfs provides access helpers for the identity database
// files.
//
// All paths resolve under a process-wide root, normally /:
//   /etc/passwd
//   /etc/group
//   /etc/shadow
//
// Tests call SetRoot to aim the resolvers at a fixture tree instead.
// Reads and writes of one file are serialized with a per-path mutex;
// writes go through an atomic temp-file rename.
