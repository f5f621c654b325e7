package converter

import (
	"time"

	"roadside-marketplace/internal/domain/user"
	"roadside-marketplace/internal/pkg/errs"
	"roadside-marketplace/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const UserColumns = `id, email, password_hash, role, name, phone, service_areas, last_login,
	is_active, created_at, updated_at`

func ScanUser(row pgx.Row) (*user.User, error) {
	var (
		id                             uuid.UUID
		email, hash, role, name, phone string
		areas                          []string
		lastLogin                      pgtype.Timestamptz
		isActive                       bool
		createdAt, updatedAt           time.Time
	)
	if err := row.Scan(&id, &email, &hash, &role, &name, &phone, &areas, &lastLogin, &isActive, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	e, err := user.NewEmail(email)
	if err != nil {
		return nil, errs.Wrapf(err, "stored user %s", id)
	}
	r, err := user.NewRole(role)
	if err != nil {
		return nil, errs.Wrapf(err, "stored user %s", id)
	}
	return user.ReconstructUser(id, e, hash, r, name, phone, areas, pgconv.TimePtrFromPgtype(lastLogin), isActive, createdAt, updatedAt), nil
}

func UserArgs(u *user.User) []any {
	areas := u.ServiceAreas()
	if areas == nil {
		areas = []string{}
	}
	return []any{
		u.ID(), u.Email().Value(), u.PasswordHash(), u.Role().String(), u.Name(), u.Phone(),
		areas, pgconv.TimePtrToPgtype(u.LastLogin()), u.IsActive(), u.CreatedAt(), u.UpdatedAt(),
	}
}
