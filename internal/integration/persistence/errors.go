package persistence

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	domainerror "github.com/inventory-tracker/backend/internal/domain/error"
)

// translateError maps driver errors onto domain errors.
// notFound is returned for gorm.ErrRecordNotFound.
func translateError(op string, err error, notFound error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	if isUniqueViolation(err) {
		return domainerror.ErrDuplicateName
	}
	return fmt.Errorf("%s: %w", op, err)
}

// isUniqueViolation reports whether err was raised by a UNIQUE constraint.
// Drivers without error translation are matched on their message:
// sqlite says "UNIQUE constraint failed", postgres "violates unique constraint".
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}
