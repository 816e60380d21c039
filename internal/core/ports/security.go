package ports

import (
	"time"

	"github.com/quizdeck/accounts-service/internal/core/domain"
)

// PasswordHasher is a one-way, salted password hashing capability.
// Verify(p, Hash(p)) always holds; two Hash calls on the same plaintext are
// not required to produce identical output. Verify never panics or errors
// on a malformed hash, it just reports false.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// TokenSigner issues and checks signed, time-limited session tokens.
// Verify must fail once the ttl given at signing time has elapsed.
type TokenSigner interface {
	Sign(claims domain.SessionClaims, subject string, ttl time.Duration) (string, error)
	Verify(token string) (domain.SessionClaims, error)
}
