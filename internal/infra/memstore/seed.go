package memstore

import (
	"fmt"

	"roadside-marketplace/internal/domain/user"
	"roadside-marketplace/internal/pkg/password"
)

var demoUsers = []struct {
	email string
	role  user.Role
	name  string
	phone string
}{
	{"admin@example.com", user.RoleAdmin, "Demo Admin", ""},
	{"partner@example.com", user.RolePartner, "Demo Tow Co", "+10000000001"},
	{"customer@example.com", user.RoleCustomer, "Demo Customer", "+10000000002"},
}

// SeedDemoUsers adds one active user per role sharing pass.
func (s *Store) SeedDemoUsers(pass string) ([]*user.User, error) {
	hash, err := password.HashPassword(pass)
	if err != nil {
		return nil, err
	}

	seeded := make([]*user.User, 0, len(demoUsers))
	for _, d := range demoUsers {
		email, err := user.NewEmail(d.email)
		if err != nil {
			return nil, fmt.Errorf("demo user %s: %w", d.email, err)
		}
		u, err := user.NewUser(email, hash, d.role, d.name, d.phone)
		if err != nil {
			return nil, fmt.Errorf("demo user %s: %w", d.email, err)
		}
		s.SeedUser(u)
		seeded = append(seeded, u)
	}
	return seeded, nil
}
