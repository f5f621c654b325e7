//go:build unit || e2e

package builder

import (
	"time"

	"roadside-marketplace/internal/domain/user"
	reqdto "roadside-marketplace/internal/handler/dto/request"
	"roadside-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	Email        string
	PasswordHash string
	Role         string
	Name         string
	Phone        string
	ServiceAreas []string
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Role:         "customer",
		Name:         "Test User",
		Phone:        "+10000000000",
		IsActive:     true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	created, err := user.NewUser(email, u.PasswordHash, role, u.Name, u.Phone)
	if err != nil {
		return nil, err
	}
	if u.IsActive && len(u.ServiceAreas) == 0 {
		return created, nil
	}

	now := time.Now().UTC()
	return user.ReconstructUser(created.ID(), email, u.PasswordHash, role, created.Name(), created.Phone(),
		u.ServiceAreas, nil, u.IsActive, now, now), nil
}

// MustBuildDomain is for fixtures whose fields are known to be valid.
func (u *UserBuilder) MustBuildDomain() *user.User {
	built, err := u.BuildDomain()
	if err != nil {
		panic(err)
	}
	return built
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	areas := u.ServiceAreas
	if areas == nil {
		areas = []string{}
	}
	return &queries.AuthorizedUserView{
		ID:           uuid.New(),
		Email:        u.Email,
		Role:         u.Role,
		Name:         u.Name,
		Phone:        u.Phone,
		ServiceAreas: areas,
		IsActive:     u.IsActive,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) WithServiceAreas(areas ...string) *UserBuilder {
	u.ServiceAreas = areas
	return u
}

func (u *UserBuilder) AsPartner() *UserBuilder {
	return u.WithRole("partner")
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	return u.WithRole("admin")
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}

// LoginDTO is the login body for this user with the given plain password.
func (u *UserBuilder) LoginDTO(password string) reqdto.LoginRequest {
	return reqdto.LoginRequest{Email: u.Email, Password: password}
}
