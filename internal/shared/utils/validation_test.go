package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flyadmin/internal/shared/errors"
)

type validationFixture struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
}

func TestValidateStruct_Valid(t *testing.T) {
	assert.NoError(t, ValidateStruct(validationFixture{Name: "Rahim", Email: "rahim@example.com"}))
	assert.NoError(t, ValidateStruct(validationFixture{Name: "Rahim"}))
}

func TestValidateStruct_Invalid(t *testing.T) {
	err := ValidateStruct(validationFixture{Email: "not-an-email"})
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	assert.Contains(t, appErr.Details, "name is required")
	assert.Contains(t, appErr.Details, "email must be a valid email address")
}
