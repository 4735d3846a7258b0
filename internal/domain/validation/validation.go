// Package validation holds the request field rules shared by the HTTP layer
// and the use cases.
package validation

import (
	"strings"
	"unicode"

	domainerrors "yelocar/internal/domain/errors"
	"yelocar/internal/errors"

	"github.com/go-playground/validator/v10"
)

const (
	minPasswordLength = 6
	phoneDigits       = 10
)

// New returns a validator with the phone10 and strongpassword rules registered.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		return IsPhone10(fl.Field().String())
	})
	_ = v.RegisterValidation("strongpassword", func(fl validator.FieldLevel) bool {
		return IsStrongPassword(fl.Field().String())
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return v
}

// NormalizePhone removes all whitespace.
func NormalizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, phone)
}

// IsPhone10 reports whether phone has exactly ten digits once whitespace is removed.
func IsPhone10(phone string) bool {
	normalized := NormalizePhone(phone)
	if len(normalized) != phoneDigits {
		return false
	}
	for _, r := range normalized {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// IsStrongPassword requires six characters with an upper-case letter, a
// lower-case letter and a digit.
func IsStrongPassword(password string) bool {
	if len(password) < minPasswordLength {
		return false
	}
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}

	return upper && lower && digit
}

// messages are the user-facing texts per field and rule.
var messages = map[string]string{
	"FullName.required":        "Full name is required.",
	"FullName.notblank":        "Full name is required.",
	"FullName.min":             "Full name must be at least 2 characters.",
	"FullName.max":             "Full name must be at most 100 characters.",
	"PhoneNumber.required":     "Phone number is required.",
	"PhoneNumber.phone10":      "Please enter a valid 10-digit phone number.",
	"Phone.required":           "Phone number is required.",
	"Phone.phone10":            "Please enter a valid 10-digit phone number.",
	"Email.required":           "Email is required.",
	"Email.email":              "Please enter a valid email address.",
	"Password.required":        "Password is required.",
	"Password.strongpassword":  "Password must be at least 6 characters and contain uppercase, lowercase, and number.",
	"ConfirmPassword.required": "Please confirm your password.",
	"ConfirmPassword.eqfield":  "Passwords do not match.",
	"Name.required":            "Name is required.",
	"Name.notblank":            "Name is required.",
	"Name.max":                 "Name must be at most 100 characters.",
	"Message.max":              "Message must be at most 2000 characters.",
	"Tag.required":             "Tag is required.",
}

// Struct validates s and converts the first failure into a
// *domainerrors.ValidationError with a user-facing message.
func Struct(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errors.WithStack(err)
	}

	first := fieldErrs[0]
	msg, ok := messages[first.Field()+"."+first.Tag()]
	if !ok {
		msg = first.Field() + " is invalid."
	}

	return domainerrors.NewValidationError(lowerFirst(first.Field()), msg)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}

	return strings.ToLower(s[:1]) + s[1:]
}
