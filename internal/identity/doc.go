package identity

// Package identity resolves users and groups against the operating
// system's identity database.
//
// Lookups parse the database files directly (/etc/passwd, /etc/group,
// /etc/shadow), the same approach Go's pure-Go os/user build uses.
// Every lookup re-reads the file; nothing is cached, so a record
// always reflects the database at call time.
//
// A lookup that finds no entry, or that cannot read the database at
// all, returns a *security.Error naming the queried key. A found
// record is always fully populated; partial records are never
// returned.
