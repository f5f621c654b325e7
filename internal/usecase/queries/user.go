package queries

import (
	"context"

	"github.com/google/uuid"

	"roadside-marketplace/internal/infra"
	"roadside-marketplace/internal/pkg/errs"
)

var (
	ErrUserNotFound = errs.Define(errs.KindNotFound, "USER_NOT_FOUND", "user not found")
	ErrUserInactive = errs.Define(errs.KindUnauthorized, "USER_INACTIVE", "user inactive")
)

// UserQueries serves the signed-in caller's own profile.
type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	// FindByEmail also returns the password hash for credential checks.
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
}

type userQueries struct {
	store UserReadStore
}

func NewUserQueries(store UserReadStore) UserQueries {
	return userQueries{store: store}
}

// GetCurrentUser refuses deactivated accounts even while their token is
// still valid.
func (q userQueries) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	view, err := q.store.FindByID(ctx, userID)
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return nil, errs.WithStack(ErrUserNotFound)
	case err != nil:
		return nil, errs.Wrap(err, "load user")
	case !view.IsActive:
		return nil, errs.WithStack(ErrUserInactive)
	}
	return view, nil
}
