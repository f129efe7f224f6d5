package procfs

// Package procfs reads the process's own identity and limits back out
// of /proc. It is the independent witness for priv and rlimit: after a
// drop, what the kernel reports here is the truth, whatever the
// syscall return codes claimed.

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Reader struct {
	procRoot string
}

func New(procRoot string) *Reader {
	if strings.TrimSpace(procRoot) == "" {
		procRoot = "/proc"
	}
	return &Reader{procRoot: procRoot}
}

// SelfStatus is the subset of /proc/self/status this repository cares
// about. Uid/Gid hold real, effective, saved and filesystem ids in
// kernel order.
type SelfStatus struct {
	Umask  int
	Uid    [4]int
	Gid    [4]int
	Groups []int
}

func (r *Reader) SelfStatus() (*SelfStatus, error) {
	f, err := os.Open(filepath.Join(r.procRoot, "self", "status"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	st := &SelfStatus{Umask: -1}
	s := bufio.NewScanner(f)
	for s.Scan() {
		line := s.Text()
		key, rest, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		fields := strings.Fields(rest)
		switch key {
		case "Umask":
			if len(fields) == 1 {
				n, err := strconv.ParseInt(fields[0], 8, 32)
				if err != nil {
					return nil, fmt.Errorf("parse Umask %q: %w", fields[0], err)
				}
				st.Umask = int(n)
			}
		case "Uid":
			if err := parseIDQuad(fields, &st.Uid); err != nil {
				return nil, err
			}
		case "Gid":
			if err := parseIDQuad(fields, &st.Gid); err != nil {
				return nil, err
			}
		case "Groups":
			for _, fstr := range fields {
				n, err := strconv.Atoi(fstr)
				if err != nil {
					return nil, fmt.Errorf("parse Groups %q: %w", fstr, err)
				}
				st.Groups = append(st.Groups, n)
			}
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return st, nil
}

// MaxOpenFiles reads the "Max open files" row of /proc/self/limits.
func (r *Reader) MaxOpenFiles() (soft, hard uint64, err error) {
	f, err := os.Open(filepath.Join(r.procRoot, "self", "limits"))
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	s := bufio.NewScanner(f)
	for s.Scan() {
		line := s.Text()
		if !strings.HasPrefix(line, "Max open files") {
			continue
		}
		fields := strings.Fields(strings.TrimPrefix(line, "Max open files"))
		if len(fields) < 2 {
			return 0, 0, fmt.Errorf("malformed limits row: %q", line)
		}
		soft, err = parseLimitField(fields[0])
		if err != nil {
			return 0, 0, err
		}
		hard, err = parseLimitField(fields[1])
		if err != nil {
			return 0, 0, err
		}
		return soft, hard, nil
	}
	if err := s.Err(); err != nil {
		return 0, 0, err
	}
	return 0, 0, fmt.Errorf("no Max open files row in %s", filepath.Join(r.procRoot, "self", "limits"))
}

func parseIDQuad(fields []string, out *[4]int) error {
	if len(fields) < 4 {
		return fmt.Errorf("short id row: %v", fields)
	}
	for i := 0; i < 4; i++ {
		n, err := strconv.Atoi(fields[i])
		if err != nil {
			return fmt.Errorf("parse id %q: %w", fields[i], err)
		}
		out[i] = n
	}
	return nil
}

func parseLimitField(s string) (uint64, error) {
	if s == "unlimited" {
		return ^uint64(0), nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse limit %q: %w", s, err)
	}
	return n, nil
}
