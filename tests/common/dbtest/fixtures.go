//go:build unit || e2e

// Package dbtest seeds and resets the e2e database directly, bypassing the
// HTTP surface.
package dbtest

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TestPassword is the plain password of every user CreateTestUser inserts.
const TestPassword = "password123"

// bcrypt hash of TestPassword
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

// CreateTestUser inserts an active user, or returns the id of the existing
// user with that email.
func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	name, _, _ := strings.Cut(email, "@")
	var id uuid.UUID
	err := db.QueryRow(t.Context(), `
		INSERT INTO users (id, email, password_hash, role, name, phone, is_active)
		VALUES ($1, $2, $3, $4, $5, '+15550000000', true)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING id`,
		uuid.New(), strings.ToLower(email), testPasswordHash, role, name,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func Deactivate(t *testing.T, db DBLike, id uuid.UUID) {
	t.Helper()

	tag, err := db.Exec(t.Context(), "UPDATE users SET is_active = false WHERE id = $1", id)
	require.NoError(t, err)
	require.EqualValues(t, 1, tag.RowsAffected())
}

var truncateStmts sync.Map // *pgxpool.Pool -> string

// ResetDB empties every application table. Migration bookkeeping, ours and
// river's, is kept.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stmt, err := truncateStatement(ctx, pool)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, stmt)
	return err
}

func truncateStatement(ctx context.Context, pool *pgxpool.Pool) (string, error) {
	if s, ok := truncateStmts.Load(pool); ok {
		return s.(string), nil
	}

	rows, err := pool.Query(ctx, `
		SELECT format('%I.%I', schemaname, tablename)
		FROM pg_tables
		WHERE schemaname = 'public'
		  AND tablename NOT IN ('schema_migrations', 'river_migration')
		ORDER BY tablename`)
	if err != nil {
		return "", err
	}
	tables, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return "", err
	}

	stmt := "SELECT 1"
	if len(tables) > 0 {
		stmt = "TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE"
	}
	truncateStmts.Store(pool, stmt)
	return stmt, nil
}
