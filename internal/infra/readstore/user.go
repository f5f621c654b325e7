package readstore

import (
	"context"

	"github.com/google/uuid"

	"roadside-marketplace/internal/infra"
	"roadside-marketplace/internal/infra/db"
	"roadside-marketplace/internal/infra/repository/converter"
	"roadside-marketplace/internal/pkg/pgconv"
	"roadside-marketplace/internal/usecase/queries"
)

const (
	userByIDSQL    = `SELECT ` + converter.UserColumns + ` FROM users WHERE id = $1`
	userByEmailSQL = `SELECT ` + converter.UserColumns + ` FROM users WHERE lower(email) = lower($1)`
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	u, err := converter.ScanUser(r.db.QueryRow(ctx, userByIDSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return queries.NewAuthorizedUserView(u), nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	u, err := converter.ScanUser(r.db.QueryRow(ctx, userByEmailSQL, email))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return queries.NewAuthorizedUserView(u), u.PasswordHash(), nil
}
