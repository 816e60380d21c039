package service

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/quizdeck/accounts-service/internal/core/domain"
	"github.com/quizdeck/accounts-service/internal/core/ports"
	"github.com/quizdeck/accounts-service/internal/core/sanitize"
	"github.com/quizdeck/accounts-service/internal/core/validation"
)

const defaultTokenTTL = 24 * time.Hour

// AuthService converts credentials into a signed session token. The login
// pipeline runs strictly in order: field presence, email syntax, password
// length, throttle, store lookup, hash verification, token issuance.
// Unknown email and wrong password fail with the same error value so the
// caller cannot tell accounts apart.
type AuthService struct {
	store    ports.UserStore
	hasher   ports.PasswordHasher
	signer   ports.TokenSigner
	emails   validation.EmailValidator
	throttle ports.LoginThrottle // optional, nil disables throttling
	tokenTTL time.Duration
	log      zerolog.Logger
}

func NewAuthService(store ports.UserStore, hasher ports.PasswordHasher, signer ports.TokenSigner, throttle ports.LoginThrottle, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthService{
		store:    store,
		hasher:   hasher,
		signer:   signer,
		emails:   validation.NewEmailFormat(),
		throttle: throttle,
		tokenTTL: tokenTTL,
		log:      log,
	}
}

// Login authenticates the credentials and returns a signed token plus the
// matching user record.
func (s *AuthService) Login(ctx context.Context, creds domain.Credentials) (string, *domain.User, error) {
	creds = sanitize.Credentials(creds)

	if creds.Email == "" {
		return "", nil, domain.MissingField("email")
	}
	if creds.Password == "" {
		return "", nil, domain.MissingField("password")
	}
	if err := s.emails.Validate(creds.Email); err != nil {
		return "", nil, err
	}
	// Format-only length check; the full strength policy applies at
	// registration, not here.
	if utf8.RuneCountInString(creds.Password) < 8 {
		return "", nil, domain.InvalidField("password", "")
	}

	if blocked, err := s.blocked(ctx, creds.Email); err == nil && blocked {
		return "", nil, domain.ErrTooManyAttempts
	}

	user, err := s.store.FindByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, creds.Email)
			return "", nil, domain.ErrUnauthorized
		}
		return "", nil, err
	}

	if !s.hasher.Verify(creds.Password, user.PasswordHash) {
		s.recordFailure(ctx, creds.Email)
		return "", nil, domain.ErrUnauthorized
	}

	s.resetThrottle(ctx, creds.Email)

	token, err := s.signer.Sign(user.Claims(), user.ID, s.tokenTTL)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("login succeeded")
	return token, user, nil
}

func (s *AuthService) blocked(ctx context.Context, email string) (bool, error) {
	if s.throttle == nil {
		return false, nil
	}
	blocked, err := s.throttle.Blocked(ctx, email)
	if err != nil {
		s.log.Warn().Err(err).Msg("throttle check failed, processing anyway")
		return false, err
	}
	return blocked, nil
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("failed to record login failure")
	}
}

func (s *AuthService) resetThrottle(ctx context.Context, email string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.Reset(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("failed to reset login throttle")
	}
}
