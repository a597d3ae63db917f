package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{CodeBadRequest, http.StatusBadRequest},
		{CodeValidationFailed, http.StatusBadRequest},
		{CodeUnsupportedType, http.StatusBadRequest},
		{CodeInputTooLarge, http.StatusRequestEntityTooLarge},
		{CodeNotFound, http.StatusNotFound},
		{CodeExtractionNotFound, http.StatusNotFound},
		{CodeNotSaveable, http.StatusUnprocessableEntity},
		{CodeServiceUnavailable, http.StatusServiceUnavailable},
		{CodeDatabaseError, http.StatusInternalServerError},
		{CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		err := NewAppError(tt.code, "message", "")
		assert.Equal(t, tt.want, err.StatusCode(), string(tt.code))
	}
}

func TestErrorString(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST: nope", NewBadRequestError("nope").Error())
	assert.Equal(t, "VALIDATION_FAILED: Validation failed (field missing)",
		NewValidationError("field missing").Error())
}

func TestWrap(t *testing.T) {
	// nil stays nil.
	assert.Nil(t, Wrap(nil, "ignored"))

	// AppErrors pass through untouched.
	original := NewBadRequestError("nope")
	assert.Same(t, original, Wrap(original, "ignored"))

	// Anything else becomes an internal error with the cause preserved.
	cause := stderrors.New("disk full")
	wrapped := Wrap(cause, "something broke")
	require.NotNil(t, wrapped)
	assert.Equal(t, CodeInternal, wrapped.Code)
	assert.Equal(t, cause, wrapped.Unwrap())
	assert.True(t, stderrors.Is(wrapped, cause))
}

func TestIsAndGetCode(t *testing.T) {
	err := NewInputTooLargeError(100, 10)

	assert.True(t, Is(err, CodeInputTooLarge))
	assert.False(t, Is(err, CodeBadRequest))
	assert.False(t, Is(stderrors.New("plain"), CodeInternal))

	assert.Equal(t, CodeInputTooLarge, GetCode(err))
	assert.Equal(t, CodeInternal, GetCode(stderrors.New("plain")))
}

func TestInputTooLargeMetadata(t *testing.T) {
	err := NewInputTooLargeError(2048, 1024)

	assert.Equal(t, 2048, err.Metadata["size"])
	assert.Equal(t, 1024, err.Metadata["limit"])
	assert.Contains(t, err.Details, "2048")
	assert.Contains(t, err.Details, "1024")
}

func TestNotSaveableJoinsReasons(t *testing.T) {
	err := NewNotSaveableError([]string{"no title", "no ingredients"})

	assert.Equal(t, CodeNotSaveable, err.Code)
	assert.Equal(t, "no title; no ingredients", err.Details)
}
