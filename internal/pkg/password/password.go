// Package password stores and checks account passwords with bcrypt.
package password

import (
	"roadside-marketplace/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

const (
	Cost = bcrypt.DefaultCost
	// bcrypt rejects input longer than this.
	MaxLength = 72
)

var (
	ErrEmpty    = errs.New("password is empty")
	ErrTooLong  = errs.New("password exceeds 72 bytes")
	ErrMismatch = errs.New("password does not match")
)

func HashPassword(plain string) (string, error) {
	if err := check(plain); err != nil {
		return "", err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", errs.Wrap(err, "hash password")
	}
	return string(hashed), nil
}

func ComparePassword(hash, plain string) error {
	if hash == "" {
		return errs.WithStack(ErrEmpty)
	}
	if err := check(plain); err != nil {
		return err
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	switch {
	case err == nil:
		return nil
	case errs.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return errs.WithStack(ErrMismatch)
	default:
		return errs.Wrap(err, "compare password")
	}
}

func check(plain string) error {
	if plain == "" {
		return errs.WithStack(ErrEmpty)
	}
	if len(plain) > MaxLength {
		return errs.WithStack(ErrTooLong)
	}
	return nil
}
