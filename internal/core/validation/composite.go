package validation

import (
	"context"

	"github.com/quizdeck/accounts-service/internal/core/domain"
	"github.com/quizdeck/accounts-service/internal/core/ports"
)

// Rules is the ordered validation composite for registration and profile
// updates. Checks run in a fixed order and stop at the first failure:
// presence, email format, email uniqueness, phone, birthdate, password.
// Cheap local checks come before the store round-trip; the multi-rule
// password check runs last.
type Rules struct {
	Email     EmailValidator
	Unique    UniqueEmailValidator
	Phone     PhoneValidator
	Birthdate BirthdateValidator
	Password  PasswordValidator
}

// NewRules wires the real validators against the given store.
func NewRules(store ports.UserStore) *Rules {
	return &Rules{
		Email:     NewEmailFormat(),
		Unique:    NewStoredEmail(store),
		Phone:     NewPhonePattern(),
		Birthdate: NewAgeOfMajority(),
		Password:  NewPasswordStrength(),
	}
}

// Validate runs the full registration pipeline over a sanitized input.
func (r *Rules) Validate(ctx context.Context, in domain.RegistrationInput) error {
	switch {
	case in.Name == "":
		return domain.MissingField("name")
	case in.Email == "":
		return domain.MissingField("email")
	case in.Phone == "":
		return domain.MissingField("phone")
	case in.Birthdate.IsZero():
		return domain.MissingField("birthdate")
	case in.Password == "":
		return domain.MissingField("password")
	}

	if err := r.Email.Validate(in.Email); err != nil {
		return err
	}
	if err := r.Unique.Validate(ctx, in.Email, ""); err != nil {
		return err
	}
	if err := r.Phone.Validate(in.Phone); err != nil {
		return err
	}
	if err := r.Birthdate.Validate(in.Birthdate); err != nil {
		return err
	}
	return r.Password.Validate(in.Password)
}

// ValidateUpdate runs the same pipeline over a profile update, minus the
// password step, with the record under update excluded from the uniqueness
// check so it does not collide with itself.
func (r *Rules) ValidateUpdate(ctx context.Context, selfID string, in domain.ProfileUpdate) error {
	switch {
	case in.Name == "":
		return domain.MissingField("name")
	case in.Email == "":
		return domain.MissingField("email")
	case in.Phone == "":
		return domain.MissingField("phone")
	case in.Birthdate.IsZero():
		return domain.MissingField("birthdate")
	}

	if err := r.Email.Validate(in.Email); err != nil {
		return err
	}
	if err := r.Unique.Validate(ctx, in.Email, selfID); err != nil {
		return err
	}
	if err := r.Phone.Validate(in.Phone); err != nil {
		return err
	}
	return r.Birthdate.Validate(in.Birthdate)
}
