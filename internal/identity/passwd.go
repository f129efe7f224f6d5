package identity

import (
	"bytes"

	"github.com/hnrobert/privmgr/internal/hostfs"
)

// PasswdFile holds the parsed entries of one passwd(5) database.
type PasswdFile struct {
	users []User
}

func LoadPasswd(path string) (*PasswdFile, error) {
	b, err := hostfs.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lines, err := readLines(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}

	var f PasswdFile
	for _, line := range lines {
		if skippable(line) {
			continue
		}
		parts := parseColonLine(line)
		if len(parts) < 7 {
			// Tolerate unknown line shapes, like NSS does.
			continue
		}
		uid, err := atoi(parts[2], "passwd.uid")
		if err != nil {
			return nil, err
		}
		gid, err := atoi(parts[3], "passwd.gid")
		if err != nil {
			return nil, err
		}
		f.users = append(f.users, User{
			Name:   parts[0],
			Passwd: parts[1],
			UID:    uid,
			GID:    gid,
			Gecos:  parts[4],
			Home:   parts[5],
			Shell:  parts[6],
		})
	}
	return &f, nil
}

func (f *PasswdFile) Find(name string) *User {
	for i := range f.users {
		if f.users[i].Name == name {
			return &f.users[i]
		}
	}
	return nil
}

func (f *PasswdFile) FindByUID(uid int) *User {
	for i := range f.users {
		if f.users[i].UID == uid {
			return &f.users[i]
		}
	}
	return nil
}

func (f *PasswdFile) List() []User {
	out := make([]User, len(f.users))
	copy(out, f.users)
	return out
}
