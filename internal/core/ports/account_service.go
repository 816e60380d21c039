package ports

import (
	"context"

	"github.com/quizdeck/accounts-service/internal/core/domain"
)

// AccountService manages the account lifecycle: registration and the two
// mutation paths (profile, password).
type AccountService interface {
	Register(ctx context.Context, in domain.RegistrationInput) (string, error)
	UpdateProfile(ctx context.Context, id string, in domain.ProfileUpdate) error
	ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

// AuthService converts credentials into a signed session token.
type AuthService interface {
	Login(ctx context.Context, creds domain.Credentials) (string, *domain.User, error)
}
