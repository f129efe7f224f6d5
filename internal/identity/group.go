package identity

import (
	"bytes"
	"strings"

	"github.com/hnrobert/privmgr/internal/hostfs"
)

// GroupFile holds the parsed entries of one group(5) database.
type GroupFile struct {
	groups []Group
}

func LoadGroup(path string) (*GroupFile, error) {
	b, err := hostfs.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lines, err := readLines(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}

	var f GroupFile
	for _, line := range lines {
		if skippable(line) {
			continue
		}
		parts := parseColonLine(line)
		if len(parts) < 4 {
			continue
		}
		gid, err := atoi(parts[2], "group.gid")
		if err != nil {
			return nil, err
		}
		// An empty member field stays nil; callers rely on the zero
		// value to tell "no members" from "one empty name".
		var members []string
		if parts[3] != "" {
			members = strings.Split(parts[3], ",")
		}
		f.groups = append(f.groups, Group{
			Name:    parts[0],
			Passwd:  parts[1],
			GID:     gid,
			Members: members,
		})
	}
	return &f, nil
}

func (f *GroupFile) Find(name string) *Group {
	for i := range f.groups {
		if f.groups[i].Name == name {
			return &f.groups[i]
		}
	}
	return nil
}

func (f *GroupFile) FindByGID(gid int) *Group {
	for i := range f.groups {
		if f.groups[i].GID == gid {
			return &f.groups[i]
		}
	}
	return nil
}

func (f *GroupFile) List() []Group {
	out := make([]Group, len(f.groups))
	copy(out, f.groups)
	return out
}
