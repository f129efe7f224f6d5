package identity

import "regexp"

var usernameRe = regexp.MustCompile(`^[a-z_][a-z0-9_-]{0,31}$`)

// ValidName enforces Ubuntu-style user/group name requirements:
// lowercase letters/digits/underscore/dash, starting with a letter or
// underscore.
func ValidName(u string) bool {
	return usernameRe.MatchString(u)
}
