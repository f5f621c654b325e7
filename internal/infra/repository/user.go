package repository

import (
	"context"
	"time"

	"roadside-marketplace/internal/domain/user"
	"roadside-marketplace/internal/infra/db"
	"roadside-marketplace/internal/infra/repository/converter"

	"github.com/google/uuid"
)

const (
	findUserSQL        = `SELECT ` + converter.UserColumns + ` FROM users WHERE id = $1`
	lockUserAreasSQL   = `SELECT service_areas FROM users WHERE id = $1 FOR UPDATE`
	updateUserAreasSQL = `UPDATE users SET service_areas = $2, updated_at = now() WHERE id = $1`
	updateLastLoginSQL = `UPDATE users SET last_login = $2 WHERE id = $1`
	insertUserSQL      = `INSERT INTO users (` + converter.UserColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	u, err := converter.ScanUser(r.db.QueryRow(ctx, findUserSQL, id))
	if err != nil {
		return nil, wrapErr("failed to find user", err)
	}
	return u, nil
}

// AddServiceAreas unions areas into the partner's list and returns the result.
func (r *UserRepository) AddServiceAreas(ctx context.Context, partnerID uuid.UUID, areas []string) ([]string, error) {
	var current []string
	if err := r.db.QueryRow(ctx, lockUserAreasSQL, partnerID).Scan(&current); err != nil {
		return nil, wrapErr("failed to lock user service areas", err)
	}
	merged := user.MergeServiceAreas(current, areas)
	if _, err := r.db.Exec(ctx, updateUserAreasSQL, partnerID, merged); err != nil {
		return nil, wrapErr("failed to update user service areas", err)
	}
	return merged, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error {
	if _, err := r.db.Exec(ctx, updateLastLoginSQL, userID, at); err != nil {
		return wrapErr("failed to update user last login", err)
	}
	return nil
}

// Create is used by seeding and tests; sign-up is out of scope.
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	if _, err := r.db.Exec(ctx, insertUserSQL, converter.UserArgs(u)...); err != nil {
		return wrapErr("failed to create user", err)
	}
	return nil
}
