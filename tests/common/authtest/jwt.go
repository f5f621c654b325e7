//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"roadside-marketplace/internal/domain/user"
	"roadside-marketplace/internal/pkg/config"
	"roadside-marketplace/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Token signs a token with the app's secret, bypassing login.
func Token(t *testing.T, cfg config.JWTConfig, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return sign(t, cfg.Secret, cfg.Duration, userID, role)
}

// ExpiredToken signs a token whose expiry is already in the past.
func ExpiredToken(t *testing.T, cfg config.JWTConfig, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return sign(t, cfg.Secret, -time.Minute, userID, role)
}

func sign(t *testing.T, secret string, ttl time.Duration, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := jwt.NewService(secret, ttl).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}
