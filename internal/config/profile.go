package config

// A drop profile is the on-disk description of one privilege drop:
// which account to become, what file-creation mask to install and what
// open-file limit to apply. Profiles are plain YAML files, typically
// kept next to the service definition that uses them.

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/hnrobert/privmgr/internal/hostfs"
	"github.com/hnrobert/privmgr/internal/identity"
	"github.com/hnrobert/privmgr/internal/priv"
	"github.com/hnrobert/privmgr/internal/rlimit"
)

type NofileLimit struct {
	Soft uint64 `yaml:"soft"`
	Hard uint64 `yaml:"hard"`
}

type Profile struct {
	User   string   `yaml:"user"`
	Group  string   `yaml:"group,omitempty"`
	Groups []string `yaml:"groups,omitempty"`
	// Umask is an octal string ("022"); empty leaves the mask alone.
	Umask  string       `yaml:"umask,omitempty"`
	Nofile *NofileLimit `yaml:"nofile,omitempty"`
}

var ErrNoUser = errors.New("profile sets no user")

func LoadProfile(path string) (*Profile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p Profile
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	return &p, nil
}

// SaveProfile writes a profile atomically so a concurrent reader never
// sees a torn file.
func SaveProfile(path string, p *Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	b, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	if err := hostfs.EnsureDir(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return hostfs.WriteFileAtomic(path, b, 0644)
}

func (p *Profile) Validate() error {
	if p.User == "" {
		return ErrNoUser
	}
	if !identity.ValidName(p.User) {
		return fmt.Errorf("invalid user name %q", p.User)
	}
	if p.Group != "" && !identity.ValidName(p.Group) {
		return fmt.Errorf("invalid group name %q", p.Group)
	}
	for _, g := range p.Groups {
		if !identity.ValidName(g) {
			return fmt.Errorf("invalid group name %q", g)
		}
	}
	if p.Umask != "" {
		if _, err := parseUmask(p.Umask); err != nil {
			return err
		}
	}
	if p.Nofile != nil && p.Nofile.Soft > p.Nofile.Hard {
		return fmt.Errorf("nofile soft %d exceeds hard %d", p.Nofile.Soft, p.Nofile.Hard)
	}
	return nil
}

// Resolve turns the profile into a concrete DropSpec by querying the
// identity database. The group defaults to the user's primary group;
// supplementary groups default to the user's database memberships.
func (p *Profile) Resolve() (priv.DropSpec, error) {
	spec := priv.DropSpec{Umask: -1}

	u, err := identity.LookupUser(p.User)
	if err != nil {
		return spec, err
	}
	spec.UID = u.UID
	spec.GID = u.GID

	if p.Group != "" {
		g, err := identity.LookupGroup(p.Group)
		if err != nil {
			return spec, err
		}
		spec.GID = g.GID
	}

	if len(p.Groups) > 0 {
		for _, name := range p.Groups {
			g, err := identity.LookupGroup(name)
			if err != nil {
				return spec, err
			}
			spec.Groups = append(spec.Groups, g.GID)
		}
		spec.Groups = append(spec.Groups, spec.GID)
	} else {
		gids, err := identity.SupplementaryGIDs(u.Name, spec.GID)
		if err != nil {
			return spec, err
		}
		spec.Groups = gids
	}

	if p.Umask != "" {
		mask, err := parseUmask(p.Umask)
		if err != nil {
			return spec, err
		}
		spec.Umask = mask
	}

	if p.Nofile != nil {
		spec.Nofile = &rlimit.Limit{Cur: p.Nofile.Soft, Max: p.Nofile.Hard}
	}
	return spec, nil
}

func parseUmask(s string) (int, error) {
	n, err := strconv.ParseInt(s, 8, 32)
	if err != nil || n < 0 || n > 0o777 {
		return 0, fmt.Errorf("invalid umask %q (want octal like 022)", s)
	}
	return int(n), nil
}
