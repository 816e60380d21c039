package validation

import (
	"unicode"
	"unicode/utf8"

	"github.com/quizdeck/accounts-service/internal/core/domain"
)

const minPasswordLength = 8

// PasswordStrength enforces the registration password policy. Rules run in
// a fixed order and only the first failing rule is reported: length, then
// uppercase, lowercase, digit, special character.
type PasswordStrength struct{}

func NewPasswordStrength() *PasswordStrength {
	return &PasswordStrength{}
}

func (*PasswordStrength) Validate(password string) error {
	// Length is counted in characters, not bytes.
	if utf8.RuneCountInString(password) < minPasswordLength {
		return domain.InvalidField("password", "minimum 8 characters")
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
		// Anything outside printable ASCII counts as a special character.
		if r > unicode.MaxASCII {
			hasSpecial = true
		}
	}

	switch {
	case !hasUpper:
		return domain.InvalidField("password", "must contain an uppercase letter")
	case !hasLower:
		return domain.InvalidField("password", "must contain a lowercase letter")
	case !hasDigit:
		return domain.InvalidField("password", "must contain a digit")
	case !hasSpecial:
		return domain.InvalidField("password", "must contain a special character")
	}
	return nil
}
