//go:build unit

package readstore

import (
	"context"
	"errors"
	"testing"

	"roadside-marketplace/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

func TestUserReadStore_Lookups(t *testing.T) {
	id := uuid.New()
	email := "partner@example.com"

	tests := []struct {
		name     string
		err      error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "missing user is not found", err: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", err: errors.New("connection reset"), wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name+" by id", func(t *testing.T) {
			dbtx := new(MockDBTX)
			dbtx.On("QueryRow", mock.Anything, userByIDSQL, []any{id}).Return(errRow{tt.err})

			view, err := NewUserReadStore(dbtx).FindByID(context.Background(), id)

			assert.Nil(t, view)
			assert.True(t, infra.IsKind(err, tt.wantKind))
			dbtx.AssertExpectations(t)
		})

		t.Run(tt.name+" by email", func(t *testing.T) {
			dbtx := new(MockDBTX)
			dbtx.On("QueryRow", mock.Anything, userByEmailSQL, []any{email}).Return(errRow{tt.err})

			view, hash, err := NewUserReadStore(dbtx).FindByEmail(context.Background(), email)

			assert.Nil(t, view)
			assert.Empty(t, hash)
			assert.True(t, infra.IsKind(err, tt.wantKind))
			dbtx.AssertExpectations(t)
		})
	}
}
