package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorFormatting(t *testing.T) {
	plain := NewAppError("SOME_CODE", "it broke", nil)
	assert.Equal(t, "SOME_CODE: it broke", plain.Error())

	cause := errors.New("disk on fire")
	wrapped := NewAppError("SOME_CODE", "it broke", cause)
	assert.Equal(t, "SOME_CODE: it broke: disk on fire", wrapped.Error())
	assert.ErrorIs(t, wrapped, cause)
}

func TestConfigErrorIsConfiguration(t *testing.T) {
	err := ConfigError("rules schema", errors.New("missing field"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfiguration)

	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CONFIG_ERROR", appErr.Code)
}

func TestExtractionErrorIsExtraction(t *testing.T) {
	cause := errors.New("not a zip")
	err := ExtractionError("/case/bozuk.zip", cause)
	assert.ErrorIs(t, err, ErrExtraction)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "/case/bozuk.zip")
}

func TestWrapError(t *testing.T) {
	assert.NoError(t, WrapError(nil, "context"))

	cause := errors.New("inner")
	err := WrapError(cause, "outer")
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "outer: inner", err.Error())
}
