package validation

import (
	"time"

	"github.com/quizdeck/accounts-service/internal/core/domain"
)

const majorityAge = 18

// AgeOfMajority validates that a birthdate is a real date and that the
// holder is at least 18 years old at validation time. The comparison is
// exact to the day: turning 18 today passes, one day short fails.
type AgeOfMajority struct {
	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

func NewAgeOfMajority() *AgeOfMajority {
	return &AgeOfMajority{Now: time.Now}
}

func (a *AgeOfMajority) Validate(birthdate time.Time) error {
	if birthdate.IsZero() {
		return domain.InvalidField("birthdate", "")
	}

	now := a.Now().UTC()
	birthdate = birthdate.UTC()
	if birthdate.After(now) {
		return domain.InvalidField("birthdate", "")
	}

	age := now.Year() - birthdate.Year()
	if now.Month() < birthdate.Month() ||
		(now.Month() == birthdate.Month() && now.Day() < birthdate.Day()) {
		age--
	}
	if age < majorityAge {
		return domain.InvalidField("birthdate", "must be at least 18 years old")
	}
	return nil
}
