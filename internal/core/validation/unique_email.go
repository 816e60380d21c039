package validation

import (
	"context"
	"errors"

	"github.com/quizdeck/accounts-service/internal/core/domain"
	"github.com/quizdeck/accounts-service/internal/core/ports"
	"github.com/quizdeck/accounts-service/internal/core/sanitize"
)

// StoredEmail checks an email against the user store. This is a fast-path
// read check only: the authoritative guarantee is the store's own unique
// constraint, which surfaces the same DuplicateField error on a racing
// create.
type StoredEmail struct {
	store ports.UserStore
}

func NewStoredEmail(store ports.UserStore) *StoredEmail {
	return &StoredEmail{store: store}
}

func (s *StoredEmail) Validate(ctx context.Context, email, excludeID string) error {
	existing, err := s.store.FindByEmail(ctx, sanitize.Email(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil
		}
		return err
	}
	if excludeID != "" && existing.ID == excludeID {
		return nil
	}
	return domain.DuplicateField("email")
}
