package postgres

import (
	"strings"

	domainerrors "alertradar/internal/domain/errors"
	"alertradar/internal/errors"

	"gorm.io/gorm"
)

// translateWriteError maps constraint violations on alert writes to domain errors.
// Other failures keep the driver error as the cause of a database error.
func translateWriteError(err error, details string) error {
	switch {
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return domainerrors.ErrInvalidCoordinates.WithCause(err)
	case isNotNullViolation(err):
		return domainerrors.ErrValidationFailed.WithDetails(details).WithCause(err)
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

// isNotNullViolation matches SQLSTATE 23502, which GORM does not translate
func isNotNullViolation(err error) bool {
	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "23502") || strings.Contains(msg, "violates not-null constraint")
}
