package usecase

import (
	"roadside-marketplace/internal/domain/user"
	"roadside-marketplace/internal/pkg/errs"
	"roadside-marketplace/internal/pkg/jwt"
	"roadside-marketplace/internal/usecase/shared"
)

// TokenValidator resolves an access token to the caller it was issued for.
type TokenValidator interface {
	Authenticate(token string) (shared.Actor, error)
}

type jwtTokenValidator struct {
	jwt *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &jwtTokenValidator{jwt: jwtService}
}

func (v *jwtTokenValidator) Authenticate(token string) (shared.Actor, error) {
	claims, err := v.jwt.ValidateToken(token)
	if err != nil {
		return shared.Actor{}, err
	}
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return shared.Actor{}, errs.Wrap(jwt.ErrInvalidToken, err.Error())
	}
	return shared.Actor{ID: claims.UserID, Role: role}, nil
}
