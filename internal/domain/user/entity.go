package user

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is an account known to the marketplace. Partners additionally
// carry the set of service areas they operate in.
type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	name         string
	phone        string
	serviceAreas []string
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, passwordHash string, role Role, name, phone string) (*User, error) {
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		name:         name,
		phone:        strings.TrimSpace(phone),
		isActive:     true,
	}, nil
}

func ReconstructUser(id uuid.UUID, email Email, passwordHash string, role Role, name, phone string, serviceAreas []string, lastLogin *time.Time, isActive bool, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		name:         name,
		phone:        phone,
		serviceAreas: serviceAreas,
		lastLogin:    lastLogin,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uuid.UUID          { return u.id }
func (u *User) Email() Email           { return u.email }
func (u *User) PasswordHash() string   { return u.passwordHash }
func (u *User) Role() Role             { return u.role }
func (u *User) Name() string           { return u.name }
func (u *User) Phone() string          { return u.phone }
func (u *User) ServiceAreas() []string { return slices.Clone(u.serviceAreas) }
func (u *User) LastLogin() *time.Time  { return u.lastLogin }
func (u *User) IsActive() bool         { return u.isActive }
func (u *User) CreatedAt() time.Time   { return u.createdAt }
func (u *User) UpdatedAt() time.Time   { return u.updatedAt }

// MergeServiceAreas returns the union of current and added areas,
// keeping the original order and appending new ones as given.
func MergeServiceAreas(current, added []string) []string {
	out := slices.Clone(current)
	for _, a := range added {
		if !slices.Contains(out, a) {
			out = append(out, a)
		}
	}
	return out
}
