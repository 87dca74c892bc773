package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"alertradar/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithCauseMatchesSentinelAndCause(t *testing.T) {
	cause := stderrors.New("rpc error: code = Unavailable")

	err := ErrWriteFailure.WithCause(cause)

	assert.ErrorIs(t, err, ErrWriteFailure)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrQueryFailure)
	assert.Contains(t, err.Error(), "Failed to store alert")
	assert.Contains(t, err.Error(), "Unavailable")

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusServiceUnavailable, appErr.HTTPCode())
	assert.Equal(t, "WRITE_FAILURE", appErr.ErrorCode())
	assert.Equal(t, cause.Error(), appErr.Details())
}

func TestBaseError_WithCauseNil(t *testing.T) {
	assert.Same(t, ErrQueryFailure, ErrQueryFailure.WithCause(nil))
}

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	err := ErrValidationFailed.WithDetails("radius_miles must be positive")

	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Equal(t, "radius_miles must be positive", err.Details())
	assert.Empty(t, ErrValidationFailed.Details())
}

func TestBaseError_WrappedStillMatches(t *testing.T) {
	err := errors.Wrap(ErrLocationUnavailable.WithCause(stderrors.New("no fix")), "submit alert")

	assert.ErrorIs(t, err, ErrLocationUnavailable)
}
