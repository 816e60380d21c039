package validation

import (
	"regexp"

	"github.com/quizdeck/accounts-service/internal/core/domain"
)

// phonePattern matches a digits-only phone number: 10 or 11 digits for a
// national number (area code + subscriber), up to 15 with a country code
// prefix (E.164 upper bound). Leading zero is not a valid area code.
var phonePattern = regexp.MustCompile(`^[1-9][0-9]{9,14}$`)

// PhonePattern validates the normalized digit string of a phone number.
type PhonePattern struct{}

func NewPhonePattern() *PhonePattern {
	return &PhonePattern{}
}

func (*PhonePattern) Validate(phone string) error {
	if !phonePattern.MatchString(phone) {
		return domain.InvalidField("phone", "")
	}
	return nil
}
