package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantCode int
	}{
		{name: "validation", err: NewValidationError("bad input"), wantType: ErrorTypeValidation, wantCode: http.StatusBadRequest},
		{name: "not found", err: NewNotFoundError("missing"), wantType: ErrorTypeNotFound, wantCode: http.StatusNotFound},
		{name: "bad request", err: NewBadRequestError("bad body"), wantType: ErrorTypeBadRequest, wantCode: http.StatusBadRequest},
		{name: "extraction", err: NewExtractionError("model failed"), wantType: ErrorTypeExtraction, wantCode: http.StatusBadGateway},
		{name: "internal", err: NewInternalError("boom"), wantType: ErrorTypeInternal, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantCode, tt.err.Code)
		})
	}
}

func TestAppError_ErrorString(t *testing.T) {
	assert.Equal(t, "validation_error: bad input", NewValidationError("bad input").Error())
	assert.Equal(t, "validation_error: bad input (name is empty)", NewValidationError("bad input", "name is empty").Error())
}

func TestGetAppError(t *testing.T) {
	appErr := NewNotFoundError("missing")

	got := GetAppError(appErr)
	require.NotNil(t, got)
	assert.Equal(t, ErrorTypeNotFound, got.Type)

	wrapped := fmt.Errorf("handler: %w", appErr)
	got = GetAppError(wrapped)
	require.NotNil(t, got)
	assert.Equal(t, ErrorTypeNotFound, got.Type)

	assert.Nil(t, GetAppError(fmt.Errorf("plain error")))
}

func TestErrorPredicates(t *testing.T) {
	assert.True(t, IsNotFoundError(NewNotFoundError("missing")))
	assert.False(t, IsNotFoundError(NewValidationError("bad")))
	assert.True(t, IsValidationError(NewValidationError("bad")))
	assert.False(t, IsValidationError(fmt.Errorf("plain error")))
}
