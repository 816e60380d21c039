package validation

import (
	playground "github.com/go-playground/validator/v10"

	"github.com/quizdeck/accounts-service/internal/core/domain"
)

// EmailFormat validates email syntax using go-playground's "email" rule.
type EmailFormat struct {
	v *playground.Validate
}

func NewEmailFormat() *EmailFormat {
	return &EmailFormat{v: playground.New()}
}

func (e *EmailFormat) Validate(email string) error {
	if err := e.v.Var(email, "required,email"); err != nil {
		return domain.InvalidField("email", "")
	}
	return nil
}
