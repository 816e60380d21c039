package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/quizdeck/accounts-service/internal/core/domain"
)

func reason(t *testing.T, err error) string {
	t.Helper()
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if ve.Kind != domain.KindInvalidField || ve.Field != "password" {
		t.Fatalf("expected InvalidField(password), got %+v", ve)
	}
	return ve.Reason
}

func TestPasswordStrength_LengthFirst(t *testing.T) {
	v := NewPasswordStrength()

	// Regardless of character content, anything under 8 chars fails on
	// length with the length-specific reason.
	// "Aa1#ßßß" is 7 characters but 10 bytes; length must be counted in
	// characters.
	for _, p := range []string{"", "a", "Ab1#", "AB1#ab", "1234567", "Aa1#ßßß"} {
		err := v.Validate(p)
		if err == nil {
			t.Fatalf("expected error for %q", p)
		}
		if got := reason(t, err); got != "minimum 8 characters" {
			t.Fatalf("password %q: reason = %q", p, got)
		}
	}
}

func TestPasswordStrength_RuleOrder(t *testing.T) {
	v := NewPasswordStrength()

	cases := []struct {
		password string
		reason   string
	}{
		{"abcd1#efg", "must contain an uppercase letter"},
		{"ABCD1#EFG", "must contain a lowercase letter"},
		{"Abcd#efgh", "must contain a digit"},
		{"Abcd1efgh", "must contain a special character"},
	}
	for _, c := range cases {
		err := v.Validate(c.password)
		if err == nil {
			t.Fatalf("expected error for %q", c.password)
		}
		if got := reason(t, err); got != c.reason {
			t.Fatalf("password %q: reason = %q, want %q", c.password, got, c.reason)
		}
	}
}

func TestPasswordStrength_Valid(t *testing.T) {
	v := NewPasswordStrength()

	valid := []string{
		"Ab1#defg",
		"P@ssw0rd",
		"Senha123!",
		"Abcdefg1ç", // non-ASCII counts as the special character
		strings.Repeat("Ab1#", 16),
	}
	for _, p := range valid {
		if err := v.Validate(p); err != nil {
			t.Fatalf("expected %q to pass, got %v", p, err)
		}
	}
}
