package crypto

import (
	"crypto/subtle"
)

// SecureCompare compares two secrets in constant time, so the comparison
// itself leaks no information about the expected value.
func SecureCompare(got, expected string) bool {
	return subtle.ConstantTimeCompare([]byte(got), []byte(expected)) == 1
}
