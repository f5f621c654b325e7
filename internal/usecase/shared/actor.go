package shared

import (
	"roadside-marketplace/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the authenticated caller as resolved by the identity layer.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

func (a Actor) IsAdmin() bool   { return a.Role == user.RoleAdmin }
func (a Actor) IsPartner() bool { return a.Role == user.RolePartner }

func (a Actor) IsCustomer() bool { return a.Role == user.RoleCustomer }

// Is reports whether the actor is the given user.
func (a Actor) Is(id uuid.UUID) bool {
	return a.ID != uuid.Nil && a.ID == id
}
