package user

import "slices"

// Role decides which routes a user may call. It is fixed at registration.
type Role string

const (
	RoleCustomer Role = "customer"
	RolePartner  Role = "partner"
	RoleAdmin    Role = "admin"
)

var knownRoles = []Role{RoleCustomer, RolePartner, RoleAdmin}

func NewRole(s string) (Role, error) {
	if r := Role(s); r.IsValid() {
		return r, nil
	}
	return "", ErrInvalidRole
}

func (r Role) IsValid() bool {
	return slices.Contains(knownRoles, r)
}

// In reports whether r is one of set.
func (r Role) In(set ...Role) bool {
	return slices.Contains(set, r)
}

func (r Role) String() string {
	return string(r)
}
