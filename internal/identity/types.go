package identity

// User is one passwd(5) record.
type User struct {
	Name   string
	Passwd string
	UID    int
	GID    int
	Gecos  string
	Home   string
	Shell  string
}

// Group is one group(5) record. Members is nil for a group with no
// listed members, never an allocated empty list.
type Group struct {
	Name    string
	Passwd  string
	GID     int
	Members []string
}

// ShadowEntry is one shadow(5) record. Only the hash is interpreted
// by this repository; the aging fields are carried as-is.
type ShadowEntry struct {
	Name       string
	Hash       string
	LastChange string
	Min        string
	Max        string
	Warn       string
	Inactive   string
	Expire     string
	Reserved   string
}
