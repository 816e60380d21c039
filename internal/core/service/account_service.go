package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/quizdeck/accounts-service/internal/core/domain"
	"github.com/quizdeck/accounts-service/internal/core/ports"
	"github.com/quizdeck/accounts-service/internal/core/sanitize"
	"github.com/quizdeck/accounts-service/internal/core/validation"
)

// AccountService implements registration, profile updates, and password
// changes: sanitize, then the ordered validation pipeline, then exactly one
// store write on success.
type AccountService struct {
	store     ports.UserStore
	hasher    ports.PasswordHasher
	rules     *validation.Rules
	passwords validation.PasswordValidator
	log       zerolog.Logger
}

func NewAccountService(store ports.UserStore, hasher ports.PasswordHasher, rules *validation.Rules, log zerolog.Logger) *AccountService {
	return &AccountService{
		store:     store,
		hasher:    hasher,
		rules:     rules,
		passwords: rules.Password,
		log:       log,
	}
}

// Register creates a new customer account and returns its id. Any
// validation failure leaves the store untouched.
func (s *AccountService) Register(ctx context.Context, in domain.RegistrationInput) (string, error) {
	in = sanitize.Registration(in)

	if err := s.rules.Validate(ctx, in); err != nil {
		return "", err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		Birthdate:    in.Birthdate,
		Role:         domain.DefaultRole,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	id, err := s.store.Create(ctx, user)
	if err != nil {
		return "", err
	}

	s.log.Info().Str("user_id", id).Str("email", in.Email).Msg("account registered")
	return id, nil
}

// UpdateProfile replaces the profile fields of an account after running the
// registration pipeline with the account itself excluded from the
// uniqueness check.
func (s *AccountService) UpdateProfile(ctx context.Context, id string, in domain.ProfileUpdate) error {
	in = sanitize.Profile(in)

	if err := s.rules.ValidateUpdate(ctx, id, in); err != nil {
		return err
	}

	if err := s.store.UpdateProfile(ctx, id, in); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.NotFound("user")
		}
		return err
	}

	s.log.Info().Str("user_id", id).Msg("profile updated")
	return nil
}

// ChangePassword verifies the current password, validates the new one with
// the registration strength policy, and persists the new hash.
func (s *AccountService) ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error {
	currentPassword = sanitize.Password(currentPassword)
	newPassword = sanitize.Password(newPassword)

	user, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.NotFound("user")
		}
		return err
	}

	if !s.hasher.Verify(currentPassword, user.PasswordHash) {
		return domain.WrongValue("password")
	}

	if err := s.passwords.Validate(newPassword); err != nil {
		return err
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	if err := s.store.UpdatePassword(ctx, id, hash); err != nil {
		return err
	}

	s.log.Info().Str("user_id", id).Msg("password changed")
	return nil
}

// GetByID fetches one account record.
func (s *AccountService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.NotFound("user")
		}
		return nil, err
	}
	return user, nil
}

// List returns every account record. Callers gate this behind admin access.
func (s *AccountService) List(ctx context.Context) ([]domain.User, error) {
	return s.store.List(ctx)
}
