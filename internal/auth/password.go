package auth

import (
	"errors"
	"strings"

	"github.com/GehirnInc/crypt"
	"github.com/GehirnInc/crypt/md5_crypt"
	"github.com/GehirnInc/crypt/sha256_crypt"
	"github.com/GehirnInc/crypt/sha512_crypt"

	"github.com/hnrobert/privmgr/internal/hostfs"
	"github.com/hnrobert/privmgr/internal/identity"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserLocked         = errors.New("user is locked")
	ErrUnsupportedHash    = errors.New("unsupported password hash")
)

func VerifyPassword(username, password string) error {
	path, err := hostfs.Path(hostfs.EtcShadowRel)
	if err != nil {
		return err
	}
	sh, err := identity.LoadShadow(path)
	if err != nil {
		return err
	}
	se := sh.Find(username)
	if se == nil {
		return ErrInvalidCredentials
	}
	if locked(se.Hash) {
		return ErrUserLocked
	}
	ok, err := verifyCrypt(se.Hash, password)
	if err != nil {
		if errors.Is(err, ErrUnsupportedHash) {
			ok2, err2 := verifyWithSu(username, password)
			if err2 != nil {
				return err2
			}
			if !ok2 {
				return ErrInvalidCredentials
			}
			return nil
		}
		return err
	}
	if !ok {
		return ErrInvalidCredentials
	}
	return nil
}

func locked(hash string) bool {
	return hash == "" || strings.HasPrefix(hash, "!") || strings.HasPrefix(hash, "*")
}

func verifyCrypt(hash, password string) (bool, error) {
	// Supported crypt formats:
	// $1$ (md5-crypt), $5$ (sha256-crypt), $6$ (sha512-crypt).
	crypters := []crypt.Crypter{
		sha512_crypt.New(),
		sha256_crypt.New(),
		md5_crypt.New(),
	}

	// Verify returns nil on success.
	for _, c := range crypters {
		if err := c.Verify(hash, []byte(password)); err == nil {
			return true, nil
		}
	}

	// Detect an obviously unsupported hash prefix.
	// Ubuntu commonly uses yescrypt ($y$).
	if strings.HasPrefix(hash, "$y$") || strings.HasPrefix(hash, "$7$") || strings.HasPrefix(hash, "$2") {
		return false, ErrUnsupportedHash
	}
	return false, nil
}
