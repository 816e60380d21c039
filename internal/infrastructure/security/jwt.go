package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/quizdeck/accounts-service/internal/core/domain"
)

const issuer = "accounts-service"

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// sessionTokenClaims is the wire shape of an issued session token.
type sessionTokenClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// JWTSigner issues and verifies HS256 session tokens. The secret comes from
// configuration; there is no embedded default.
type JWTSigner struct {
	secret []byte
}

func NewJWTSigner(secret string) *JWTSigner {
	return &JWTSigner{secret: []byte(secret)}
}

// Sign issues a token for the given claims, expiring after ttl.
func (s *JWTSigner) Sign(claims domain.SessionClaims, subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	tc := sessionTokenClaims{
		Name:  claims.Name,
		Email: claims.Email,
		Role:  string(claims.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, tc)
	return t.SignedString(s.secret)
}

// Verify checks the signature, algorithm, issuer, and expiry, and returns
// the embedded session claims.
func (s *JWTSigner) Verify(token string) (domain.SessionClaims, error) {
	tc := &sessionTokenClaims{}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(issuer),
	)

	parsed, err := parser.ParseWithClaims(token, tc, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.SessionClaims{}, ErrExpiredToken
		}
		return domain.SessionClaims{}, ErrInvalidToken
	}
	if !parsed.Valid {
		return domain.SessionClaims{}, ErrInvalidToken
	}

	return domain.SessionClaims{
		ID:    tc.Subject,
		Name:  tc.Name,
		Email: tc.Email,
		Role:  domain.Role(tc.Role),
	}, nil
}
