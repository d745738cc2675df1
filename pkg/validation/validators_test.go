package validation_test

import (
	"testing"

	"skill-extraction-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type registerForm struct {
	Username string `validate:"required,min=3,max=50,valid_username"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

func newValidate() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func TestValidUsername(t *testing.T) {
	v := newValidate()

	valid := []string{"johndoe", "john.doe", "john_doe-99", "J0hn"}
	for _, name := range valid {
		err := v.Struct(registerForm{Username: name, Email: "a@b.com", Password: "secret123"})
		assert.NoError(t, err, name)
	}

	invalid := []string{"john doe", "john@doe", "jöhn", "a/b"}
	for _, name := range invalid {
		err := v.Struct(registerForm{Username: name, Email: "a@b.com", Password: "secret123"})
		assert.Error(t, err, name)
	}
}

func TestFormatValidationErrors(t *testing.T) {
	v := newValidate()

	err := v.Struct(registerForm{Username: "ab", Email: "not-an-email", Password: ""})
	assert.Error(t, err)

	messages := validation.FormatValidationErrors(err)
	assert.Len(t, messages, 3)
	assert.Contains(t, messages, "Username must be at least 3 characters")
	assert.Contains(t, messages, "Email is not a valid email address")
	assert.Contains(t, messages, "Password is required")
}
