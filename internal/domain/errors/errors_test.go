package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	t.Parallel()

	err := ErrInvalidDate.WithDetails(`got "2026/03/02"`)

	assert.True(t, errors.Is(err, ErrInvalidDate))
	assert.False(t, errors.Is(err, ErrInvalidMode))
	assert.Equal(t, "INVALID_DATE", err.ErrorCode())
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Contains(t, err.Error(), `got "2026/03/02"`)
	assert.Empty(t, ErrInvalidDate.Details())
}

func TestBaseError_WrapMessage(t *testing.T) {
	t.Parallel()

	err := ErrProfileNotFound.WrapMessage("load profile")

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "PROFILE_NOT_FOUND", appErr.ErrorCode())
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.True(t, errors.Is(err, ErrProfileNotFound))
}

func TestDatabaseExecuteError(t *testing.T) {
	t.Parallel()

	cause := errors.New("disk I/O error")
	err := NewDatabaseExecuteError(cause, "save meal plan")

	assert.Equal(t, "DATABASE_EXECUTE_ERROR", err.ErrorCode())
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "save meal plan", err.Details())
	assert.Contains(t, err.Error(), "disk I/O error")
	assert.True(t, errors.Is(err, cause))
}
