package sqlite

import (
	"strings"

	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for SQLite error checking
func isUniqueConstraintViolation(err error) bool {
	// GORM's error translation covers the common path.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// Fall back to the driver error for statements that bypass translation.
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isNotNullConstraintViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintNotNull
	}

	return strings.Contains(err.Error(), "NOT NULL constraint failed")
}
