// Package auth holds the rules for a login attempt. Strength rules are not
// applied here: a short password simply fails to match.
package auth

import (
	"errors"

	"roadside-marketplace/internal/domain/user"
	"roadside-marketplace/internal/pkg/password"
)

var ErrMissingPassword = errors.New("password is required")

type Credentials struct {
	email  user.Email
	secret string
}

func NewCredentials(email, secret string) (Credentials, error) {
	addr, err := user.NewEmail(email)
	if err != nil {
		return Credentials{}, err
	}
	if secret == "" {
		return Credentials{}, ErrMissingPassword
	}
	if len(secret) > password.MaxLength {
		return Credentials{}, password.ErrTooLong
	}
	return Credentials{email: addr, secret: secret}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

// Matches reports whether the secret hashes to the stored bcrypt value.
func (c Credentials) Matches(hash string) bool {
	return password.ComparePassword(hash, c.secret) == nil
}
