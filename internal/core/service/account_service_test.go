package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/quizdeck/accounts-service/internal/core/domain"
	"github.com/quizdeck/accounts-service/internal/core/validation"
	"github.com/quizdeck/accounts-service/internal/infrastructure/security"
)

func newAccountService(store *memStore) *AccountService {
	return NewAccountService(store, security.NewBcryptHasher(4), validation.NewRules(store), zerolog.Nop())
}

func registration() domain.RegistrationInput {
	return domain.RegistrationInput{
		Name:      "Ana",
		Email:     "ANA@mail.com",
		Phone:     "(11) 98888-7777",
		Birthdate: time.Now().UTC().AddDate(-30, 0, 0),
		Password:  "Ab1#defg",
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	store := newMemStore()
	svc := newAccountService(store)

	id, err := svc.Register(context.Background(), registration())
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if id == "" {
		t.Fatalf("expected an id")
	}

	stored, err := store.FindByID(context.Background(), id)
	if err != nil {
		t.Fatalf("stored user not found: %v", err)
	}
	if stored.Email != "ana@mail.com" {
		t.Fatalf("email not normalized: %q", stored.Email)
	}
	if stored.Phone != "11988887777" {
		t.Fatalf("phone not digits-only: %q", stored.Phone)
	}
	if stored.Role != domain.RoleCustomer {
		t.Fatalf("unexpected role: %s", stored.Role)
	}
	if stored.PasswordHash == "Ab1#defg" || stored.PasswordHash == "" {
		t.Fatalf("password must be stored hashed")
	}
	if !security.NewBcryptHasher(4).Verify("Ab1#defg", stored.PasswordHash) {
		t.Fatalf("stored hash does not verify against the password")
	}
}

func TestAccountService_Register_Duplicate(t *testing.T) {
	store := newMemStore()
	svc := newAccountService(store)
	ctx := context.Background()

	first, err := svc.Register(ctx, registration())
	if err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	// Same address, different case and whitespace.
	second := registration()
	second.Email = "  ana@MAIL.com "
	if _, err := svc.Register(ctx, second); !errors.Is(err, domain.DuplicateField("email")) {
		t.Fatalf("expected DuplicateField(email), got %v", err)
	}

	// First registration untouched.
	if _, err := store.FindByID(ctx, first); err != nil {
		t.Fatalf("first account disappeared: %v", err)
	}
	if store.creates != 1 {
		t.Fatalf("expected exactly one create, got %d", store.creates)
	}
}

func TestAccountService_Register_NoWriteOnValidationFailure(t *testing.T) {
	store := newMemStore()
	svc := newAccountService(store)

	in := registration()
	in.Password = "weak"
	if _, err := svc.Register(context.Background(), in); err == nil {
		t.Fatalf("expected validation failure")
	}
	if store.creates != 0 {
		t.Fatalf("validation failure must not reach the store, got %d creates", store.creates)
	}
}

func TestAccountService_UpdateProfile(t *testing.T) {
	store := newMemStore()
	svc := newAccountService(store)
	ctx := context.Background()

	id, err := svc.Register(ctx, registration())
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	update := domain.ProfileUpdate{
		Name:      " Ana Maria ",
		Email:     "ANA@mail.com", // unchanged, must not collide with itself
		Phone:     "(21) 97777-6666",
		Birthdate: time.Now().UTC().AddDate(-31, 0, 0),
	}
	if err := svc.UpdateProfile(ctx, id, update); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	stored, _ := store.FindByID(ctx, id)
	if stored.Name != "Ana Maria" || stored.Phone != "21977776666" {
		t.Fatalf("profile not sanitized/persisted: %+v", stored)
	}
}

func TestAccountService_UpdateProfile_UnknownID(t *testing.T) {
	store := newMemStore()
	svc := newAccountService(store)

	update := domain.ProfileUpdate{
		Name:      "Ana",
		Email:     "ana@mail.com",
		Phone:     "11988887777",
		Birthdate: time.Now().UTC().AddDate(-30, 0, 0),
	}
	err := svc.UpdateProfile(context.Background(), "missing", update)
	if !errors.Is(err, domain.NotFound("user")) {
		t.Fatalf("expected NotFound(user), got %v", err)
	}
}

func TestAccountService_ChangePassword(t *testing.T) {
	store := newMemStore()
	svc := newAccountService(store)
	ctx := context.Background()

	id, err := svc.Register(ctx, registration())
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// Wrong current password.
	err = svc.ChangePassword(ctx, id, "not-the-one", "Xy2#wxyz")
	if !errors.Is(err, domain.WrongValue("password")) {
		t.Fatalf("expected WrongValue(password), got %v", err)
	}

	// Weak replacement.
	err = svc.ChangePassword(ctx, id, "Ab1#defg", "weak")
	if !errors.Is(err, domain.InvalidField("password", "")) {
		t.Fatalf("expected InvalidField(password), got %v", err)
	}

	// Valid change.
	if err := svc.ChangePassword(ctx, id, "Ab1#defg", "Xy2#wxyz"); err != nil {
		t.Fatalf("change failed: %v", err)
	}
	stored, _ := store.FindByID(ctx, id)
	if !security.NewBcryptHasher(4).Verify("Xy2#wxyz", stored.PasswordHash) {
		t.Fatalf("new password does not verify")
	}

	// Unknown account.
	err = svc.ChangePassword(ctx, "missing", "Ab1#defg", "Xy2#wxyz")
	if !errors.Is(err, domain.NotFound("user")) {
		t.Fatalf("expected NotFound(user), got %v", err)
	}
}
