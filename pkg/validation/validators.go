package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Usernames are login identifiers: letters, digits, and . _ - only, so they
// never collide with the email fallback lookup or need escaping anywhere.
var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_username", ValidUsername)
}

// ValidUsername validates that a string is a well-formed login name
func ValidUsername(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return usernameRegex.MatchString(val)
}
