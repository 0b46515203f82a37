package validators

import "strings"

const (
	usernameMinLen = 3
	usernameMaxLen = 32
)

// IsUsernameValid accepts letters, digits, '.', '_' and '-'. The check is
// charset-only; uniqueness is the credential store's job.
func IsUsernameValid(username string) bool {
	if len(username) < usernameMinLen || len(username) > usernameMaxLen {
		return false
	}

	for _, r := range username {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case strings.ContainsRune("._-", r):
		default:
			return false
		}
	}
	return true
}
