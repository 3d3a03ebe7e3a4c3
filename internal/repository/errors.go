package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// IsDuplicateKeyError reports whether err was caused by a violated unique
// constraint. The uniqueness constraints on submissions and user rewards are
// the concurrency fence of the whole engine, so racing inserts must be
// distinguishable from other failures. Both the mysql driver used in
// production and the sqlite driver used in tests are covered.
func IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
