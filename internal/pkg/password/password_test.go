//go:build unit

package password_test

import (
	"strings"
	"testing"

	"roadside-marketplace/internal/pkg/errs"
	"roadside-marketplace/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := password.HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.NoError(t, password.ComparePassword(hash, "password123"))

	err = password.ComparePassword(hash, "password124")
	assert.True(t, errs.Is(err, password.ErrMismatch))
}

func TestRejectsUnusableInput(t *testing.T) {
	tests := []struct {
		name  string
		plain string
		want  error
	}{
		{name: "empty", plain: "", want: password.ErrEmpty},
		{name: "longer than bcrypt accepts", plain: strings.Repeat("a", password.MaxLength+1), want: password.ErrTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := password.HashPassword(tt.plain)
			assert.True(t, errs.Is(err, tt.want), "got %v", err)
		})
	}

	err := password.ComparePassword("", "password123")
	assert.True(t, errs.Is(err, password.ErrEmpty))
}
