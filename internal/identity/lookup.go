package identity

import (
	"github.com/hnrobert/privmgr/internal/hostfs"
	"github.com/hnrobert/privmgr/internal/security"
)

// Operation names mirror the libc calls each lookup stands in for, so
// error text reads the way an operator expects.
const (
	opGetpwnam = "getpwnam"
	opGetpwuid = "getpwuid"
	opGetgrnam = "getgrnam"
	opGetgrgid = "getgrgid"
	opGetpwent = "getpwent"
	opGetgrent = "getgrent"
)

func loadPasswd(op string) (*PasswdFile, error) {
	path, err := hostfs.Path(hostfs.EtcPasswdRel)
	if err != nil {
		return nil, security.Wrap(op, err, "resolve user database")
	}
	f, err := LoadPasswd(path)
	if err != nil {
		return nil, security.Wrap(op, err, "read user database")
	}
	return f, nil
}

func loadGroup(op string) (*GroupFile, error) {
	path, err := hostfs.Path(hostfs.EtcGroupRel)
	if err != nil {
		return nil, security.Wrap(op, err, "resolve group database")
	}
	f, err := LoadGroup(path)
	if err != nil {
		return nil, security.Wrap(op, err, "read group database")
	}
	return f, nil
}

// LookupUser resolves a user by login name. A copy of the record is
// returned; the database is not cached.
func LookupUser(name string) (*User, error) {
	f, err := loadPasswd(opGetpwnam)
	if err != nil {
		return nil, err
	}
	u := f.Find(name)
	if u == nil {
		return nil, security.Errorf(opGetpwnam, "unknown user %q", name)
	}
	out := *u
	return &out, nil
}

// LookupUserID resolves a user by numeric id.
func LookupUserID(uid int) (*User, error) {
	f, err := loadPasswd(opGetpwuid)
	if err != nil {
		return nil, err
	}
	u := f.FindByUID(uid)
	if u == nil {
		return nil, security.Errorf(opGetpwuid, "unknown uid %d", uid)
	}
	out := *u
	return &out, nil
}

// LookupGroup resolves a group by name.
func LookupGroup(name string) (*Group, error) {
	f, err := loadGroup(opGetgrnam)
	if err != nil {
		return nil, err
	}
	g := f.Find(name)
	if g == nil {
		return nil, security.Errorf(opGetgrnam, "unknown group %q", name)
	}
	return copyGroup(g), nil
}

// LookupGroupID resolves a group by numeric id.
func LookupGroupID(gid int) (*Group, error) {
	f, err := loadGroup(opGetgrgid)
	if err != nil {
		return nil, err
	}
	g := f.FindByGID(gid)
	if g == nil {
		return nil, security.Errorf(opGetgrgid, "unknown gid %d", gid)
	}
	return copyGroup(g), nil
}

// Users enumerates every user record in database order.
func Users() ([]User, error) {
	f, err := loadPasswd(opGetpwent)
	if err != nil {
		return nil, err
	}
	return f.List(), nil
}

// Groups enumerates every group record in database order.
func Groups() ([]Group, error) {
	f, err := loadGroup(opGetgrent)
	if err != nil {
		return nil, err
	}
	return f.List(), nil
}

// SupplementaryGIDs resolves the numeric ids of every group that lists
// user as a member. The primary gid is appended if the database does
// not list it.
func SupplementaryGIDs(user string, primary int) ([]int, error) {
	f, err := loadGroup(opGetgrnam)
	if err != nil {
		return nil, err
	}
	gids := []int{}
	seenPrimary := false
	for _, g := range f.List() {
		for _, m := range g.Members {
			if m == user {
				gids = append(gids, g.GID)
				if g.GID == primary {
					seenPrimary = true
				}
				break
			}
		}
	}
	if !seenPrimary {
		gids = append(gids, primary)
	}
	return gids, nil
}

func copyGroup(g *Group) *Group {
	out := *g
	if g.Members != nil {
		out.Members = make([]string, len(g.Members))
		copy(out.Members, g.Members)
	}
	return &out
}
