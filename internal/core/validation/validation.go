// Package validation holds the field validators that gate account creation
// and profile mutation, and the composite that runs them in a fixed order.
//
// Each validator sits behind its own interface so a stub can replace the
// real implementation in tests without touching the composite.
package validation

import (
	"context"
	"time"
)

// EmailValidator checks email address syntax.
type EmailValidator interface {
	Validate(email string) error
}

// PhoneValidator checks a normalized (digits-only) phone number.
type PhoneValidator interface {
	Validate(phone string) error
}

// BirthdateValidator checks that a birthdate is a real date and that the
// holder has reached the age of majority.
type BirthdateValidator interface {
	Validate(birthdate time.Time) error
}

// PasswordValidator checks password strength.
type PasswordValidator interface {
	Validate(password string) error
}

// UniqueEmailValidator checks that no other account already uses an email.
// excludeID names a record to ignore, so a profile update does not collide
// with itself; pass "" for registration.
type UniqueEmailValidator interface {
	Validate(ctx context.Context, email, excludeID string) error
}
