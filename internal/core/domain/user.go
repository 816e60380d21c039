package domain

import "time"

// Role classifies what an account is allowed to do on the platform.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleStaff    Role = "staff"
	RoleCustomer Role = "customer"
)

// DefaultRole is assigned to every self-registered account.
const DefaultRole = RoleCustomer

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleCustomer:
		return true
	}
	return false
}

// User is the persisted account record. It is owned by the UserStore; the
// core never mutates it in place, only through store operations.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Birthdate    time.Time `json:"birthdate"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SessionClaims is the non-secret subset of a User embedded in an issued
// token. Password material never appears here.
type SessionClaims struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Claims builds the session claims for an authenticated user.
func (u *User) Claims() SessionClaims {
	return SessionClaims{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

// RegistrationInput carries the raw fields of one registration call. It is
// ephemeral: sanitized, validated, and discarded.
type RegistrationInput struct {
	Name      string
	Email     string
	Phone     string
	Birthdate time.Time
	Password  string
}

// Credentials carries one login attempt.
type Credentials struct {
	Email    string
	Password string
}

// ProfileUpdate carries the mutable profile fields of an account. Password
// changes go through their own operation.
type ProfileUpdate struct {
	Name      string
	Email     string
	Phone     string
	Birthdate time.Time
}
