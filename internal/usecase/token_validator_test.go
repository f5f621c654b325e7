//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"roadside-marketplace/internal/domain/user"
	"roadside-marketplace/internal/pkg/errs"
	"roadside-marketplace/internal/pkg/jwt"
	"roadside-marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)
	validator := usecase.NewTokenValidator(svc)

	t.Run("resolves the actor", func(t *testing.T) {
		id := uuid.New()
		token, err := svc.GenerateToken(id, user.RolePartner)
		require.NoError(t, err)

		actor, err := validator.Authenticate(token)

		require.NoError(t, err)
		assert.Equal(t, id, actor.ID)
		assert.Equal(t, user.RolePartner, actor.Role)
	})

	t.Run("unknown role in claims", func(t *testing.T) {
		token, err := svc.GenerateToken(uuid.New(), user.Role("operator"))
		require.NoError(t, err)

		_, err = validator.Authenticate(token)

		assert.True(t, errs.Is(err, jwt.ErrInvalidToken))
	})
}
