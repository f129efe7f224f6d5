package hostfs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var ErrInvalidPath = errors.New("invalid database path")

var (
	rootMu sync.RWMutex
	root   = "/"
)

// SetRoot redirects all database paths under dir. The main use is
// pointing lookups at fixture trees in tests; production code leaves
// the root at /.
func SetRoot(dir string) {
	rootMu.Lock()
	defer rootMu.Unlock()
	if dir == "" {
		dir = "/"
	}
	root = dir
}

// Root returns the current database root.
func Root() string {
	rootMu.RLock()
	defer rootMu.RUnlock()
	return root
}

// Path joins the database root with a relative path (no leading slash).
// Example: Path("etc/passwd") -> /etc/passwd
func Path(rel string) (string, error) {
	rel = strings.TrimPrefix(rel, "/")
	clean := filepath.Clean(rel)
	if clean == "." || clean == "" {
		return "", ErrInvalidPath
	}
	if strings.HasPrefix(clean, "..") {
		return "", ErrInvalidPath
	}
	return filepath.Join(Root(), clean), nil
}

var globalMu sync.Mutex
var fileMu = map[string]*sync.Mutex{}

func muFor(path string) *sync.Mutex {
	globalMu.Lock()
	defer globalMu.Unlock()
	if m := fileMu[path]; m != nil {
		return m
	}
	m := &sync.Mutex{}
	fileMu[path] = m
	return m
}

func ReadFile(path string) ([]byte, error) {
	m := muFor(path)
	m.Lock()
	defer m.Unlock()
	return os.ReadFile(path)
}
