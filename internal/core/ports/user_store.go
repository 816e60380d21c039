package ports

import (
	"context"

	"github.com/quizdeck/accounts-service/internal/core/domain"
)

// UserStore persists account records. Lookups that match nothing return
// domain.ErrUserNotFound; infrastructure failures come back wrapped in a
// *domain.StoreError. The store owns the authoritative uniqueness guarantee
// on email: Create and UpdateProfile surface a constraint violation as
// domain.DuplicateField("email").
type UserStore interface {
	Create(ctx context.Context, user *domain.User) (string, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	UpdateProfile(ctx context.Context, id string, fields domain.ProfileUpdate) error
	List(ctx context.Context) ([]domain.User, error)
}
