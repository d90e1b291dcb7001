package postgres

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	// GORM translates the driver error when TranslateError is enabled.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return false
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return false
}