// Package sanitize normalizes raw account input before validation. Every
// function is pure and idempotent; none of them manufactures a value for an
// empty field.
package sanitize

import (
	"strings"

	"github.com/quizdeck/accounts-service/internal/core/domain"
)

// Name trims surrounding whitespace. Internal whitespace is preserved.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Email trims surrounding whitespace and lower-cases the whole address.
// Comparison and storage of emails always go through this form.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Phone keeps only decimal digits, dropping separators, parentheses, and
// any other formatting characters.
func Phone(s string) string {
	return strings.Map(func(r rune) rune {
		if r < '0' || r > '9' {
			return -1
		}
		return r
	}, s)
}

// Password trims surrounding whitespace only. Case and special characters
// are preserved; a security-sensitive field must not be silently altered
// beyond that.
func Password(s string) string {
	return strings.TrimSpace(s)
}

// Registration normalizes every string field of a registration input.
// The birthdate passes through unchanged.
func Registration(in domain.RegistrationInput) domain.RegistrationInput {
	in.Name = Name(in.Name)
	in.Email = Email(in.Email)
	in.Phone = Phone(in.Phone)
	in.Password = Password(in.Password)
	return in
}

// Credentials normalizes a login attempt.
func Credentials(in domain.Credentials) domain.Credentials {
	in.Email = Email(in.Email)
	in.Password = Password(in.Password)
	return in
}

// Profile normalizes a profile update.
func Profile(in domain.ProfileUpdate) domain.ProfileUpdate {
	in.Name = Name(in.Name)
	in.Email = Email(in.Email)
	in.Phone = Phone(in.Phone)
	return in
}
