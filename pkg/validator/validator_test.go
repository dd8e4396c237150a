package validator

import (
	"testing"

	"go-library-management/internal/delivery/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRegisterRequest(t *testing.T) {
	cv := NewValidator()

	valid := dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "supersecret",
	}
	assert.NoError(t, cv.Validate(&valid))

	invalid := dto.RegisterRequest{
		Username: "al",
		Email:    "not-an-email",
		Password: "short",
	}
	err := cv.Validate(&invalid)
	require.Error(t, err)

	fieldErrors := cv.FormatValidationErrors(err)
	assert.Contains(t, fieldErrors, "Username")
	assert.Contains(t, fieldErrors, "Email")
	assert.Contains(t, fieldErrors, "Password")
}

func TestValidateCreateBookRequest(t *testing.T) {
	cv := NewValidator()

	valid := dto.CreateBookRequest{
		Name:      "Clean Code",
		Publisher: "Prentice Hall",
		Inventory: 3,
		AuthorIDs: []int{1},
	}
	assert.NoError(t, cv.Validate(&valid))

	noAuthors := valid
	noAuthors.AuthorIDs = nil
	assert.Error(t, cv.Validate(&noAuthors))

	negativeInventory := valid
	negativeInventory.Inventory = -1
	assert.Error(t, cv.Validate(&negativeInventory))
}

func TestValidateResetPasswordRequest(t *testing.T) {
	cv := NewValidator()

	valid := dto.ResetPasswordRequest{
		Email:    "alice@example.com",
		OTP:      "123456",
		Password: "supersecret",
	}
	assert.NoError(t, cv.Validate(&valid))

	shortOTP := valid
	shortOTP.OTP = "123"
	assert.Error(t, cv.Validate(&shortOTP))
}
