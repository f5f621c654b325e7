package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"roadside-marketplace/internal/domain/auth"
	"roadside-marketplace/internal/domain/user"
	"roadside-marketplace/internal/pkg/clock"
	"roadside-marketplace/internal/pkg/errs"
	"roadside-marketplace/internal/pkg/jwt"
	"roadside-marketplace/internal/usecase/queries"
	"roadside-marketplace/internal/usecase/shared"
)

var (
	ErrInvalidCredentials = errs.Define(errs.KindUnauthorized, "INVALID_CREDENTIALS", "invalid email or password")
	ErrUserInactive       = errs.Define(errs.KindUnauthorized, "USER_INACTIVE", "user account is inactive")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginResult struct {
	UserID      uuid.UUID
	Role        user.Role
	AccessToken string
}

type AuthCommands interface {
	Login(ctx context.Context, email, pass string) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, pass string) (*LoginResult, error) {
	credentials, err := auth.NewCredentials(email, pass)
	if err != nil {
		return nil, errs.Wrap(ErrInvalidCredentials, err.Error())
	}

	view, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Wrap(err, "stored role is invalid")
	}

	token, err := a.jwtService.GenerateToken(view.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, view.ID, a.clock.Now())
	})
	if err != nil {
		// Login was successful, only the last_login update failed
		slog.Warn("failed to update last login", "user_id", view.ID, "error", err.Error())
	}

	return &LoginResult{UserID: view.ID, Role: role, AccessToken: token}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials auth.Credentials) (*queries.AuthorizedUserView, error) {
	view, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil || view == nil {
		// Same error as password mismatch to prevent user enumeration
		return nil, errs.WithStack(ErrInvalidCredentials)
	}

	if !credentials.Matches(hashedPassword) {
		return nil, errs.WithStack(ErrInvalidCredentials)
	}

	if !view.IsActive {
		return nil, errs.WithStack(ErrUserInactive)
	}

	return view, nil
}
