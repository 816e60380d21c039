package validation

import (
	"testing"
	"time"
)

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestAgeOfMajority_ExactBoundary(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	v := &AgeOfMajority{Now: fixedNow(now)}

	// Turning 18 today is accepted.
	eighteen := time.Date(2008, 8, 29, 0, 0, 0, 0, time.UTC)
	if err := v.Validate(eighteen); err != nil {
		t.Fatalf("18th birthday today should pass: %v", err)
	}

	// One day short of 18 is rejected.
	shy := time.Date(2008, 8, 30, 0, 0, 0, 0, time.UTC)
	if err := v.Validate(shy); err == nil {
		t.Fatalf("one day short of 18 should fail")
	}
}

func TestAgeOfMajority_MonthRollover(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	v := &AgeOfMajority{Now: fixedNow(now)}

	// Born later in the year: the birthday has not happened yet.
	if err := v.Validate(time.Date(2008, 6, 15, 0, 0, 0, 0, time.UTC)); err == nil {
		t.Fatalf("birthday still ahead this year, should fail")
	}
	// Born earlier in the year: already 18.
	if err := v.Validate(time.Date(2008, 1, 15, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("already 18, should pass: %v", err)
	}
}

func TestAgeOfMajority_InvalidDates(t *testing.T) {
	now := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	v := &AgeOfMajority{Now: fixedNow(now)}

	if err := v.Validate(time.Time{}); err == nil {
		t.Fatalf("zero birthdate should fail")
	}
	if err := v.Validate(now.AddDate(1, 0, 0)); err == nil {
		t.Fatalf("future birthdate should fail")
	}
}

func TestAgeOfMajority_Adult(t *testing.T) {
	v := NewAgeOfMajority()
	thirty := time.Now().UTC().AddDate(-30, 0, 0)
	if err := v.Validate(thirty); err != nil {
		t.Fatalf("30 years old should pass: %v", err)
	}
}
