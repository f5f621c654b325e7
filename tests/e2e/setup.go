//go:build e2e

// Package e2e runs the full fx graph against a throwaway Postgres started
// with testcontainers. Each test process gets its own database.
package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"roadside-marketplace/cmd/bootstrap"
	"roadside-marketplace/cmd/bootstrap/components"
	"roadside-marketplace/internal/infra/db"
	"roadside-marketplace/internal/pkg/config"
	"roadside-marketplace/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
	pgPort     = nat.Port("5432/tcp")
)

// Containers are reaped by testcontainers when the process exits.
var postgresServer = sync.OnceValues(func() (config.DBConfig, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		Started: true,
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{string(pgPort)},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
			// durability is irrelevant for a scratch server
			Cmd: []string{"postgres", "-c", "fsync=off", "-c", "synchronous_commit=off", "-c", "full_page_writes=off", "-c", "max_connections=200"},
			WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
				return adminConfig(host, port.Port()).BuildDSN()
			}).WithStartupTimeout(time.Minute),
			Labels: map[string]string{"purpose": "roadside-marketplace-e2e"},
		},
	})
	if err != nil {
		return config.DBConfig{}, fmt.Errorf("start postgres: %w", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		return config.DBConfig{}, err
	}
	port, err := c.MappedPort(ctx, pgPort)
	if err != nil {
		return config.DBConfig{}, err
	}
	return adminConfig(host, port.Port()), nil
})

func adminConfig(host, port string) config.DBConfig {
	return config.DBConfig{
		Host:        host,
		Port:        port,
		User:        pgUser,
		Password:    pgPassword,
		DBName:      "postgres",
		SSLMode:     "disable",
		TimeZone:    "UTC",
		MaxConns:    20,
		AutoMigrate: true,
	}
}

// createDatabase makes a fresh database on the shared server and drops it
// when the test finishes.
func createDatabase(t *testing.T, admin config.DBConfig) config.DBConfig {
	t.Helper()
	name := "e2e_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	pool, err := pgxpool.New(ctx, admin.BuildDSN())
	require.NoError(t, err)
	defer pool.Close()

	// CREATE DATABASE fails while template1 is in use by a concurrent create.
	for attempt := 1; ; attempt++ {
		_, err = pool.Exec(ctx, "CREATE DATABASE "+name)
		if err == nil || attempt == 5 {
			break
		}
		slog.Warn("retrying CREATE DATABASE", "attempt", attempt, "error", err)
		time.Sleep(time.Duration(attempt) * 500 * time.Millisecond)
	}
	require.NoError(t, err, "create test database")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		pool, err := pgxpool.New(ctx, admin.BuildDSN())
		if err != nil {
			return
		}
		defer pool.Close()
		if _, err := pool.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("drop test database", "database", name, "error", err)
		}
	})

	cfg := admin
	cfg.DBName = name
	return cfg
}

// startApp runs the production module graph, minus env loading and the
// HTTP listener, against dbCfg.
func startApp(t *testing.T, dbCfg config.DBConfig) (*gin.Engine, config.Config) {
	t.Helper()

	cfg := config.NewTestConfig()
	cfg.Store.Driver = config.StoreDriverPostgres
	cfg.DB = dbCfg

	var router *gin.Engine
	app := fx.New(
		fx.Supply(cfg),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	require.NoError(t, app.Start(ctx), "start application")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("stop application", "error", err)
		}
	})
	return router, cfg
}

// SharedSuite gives each e2e suite a router backed by its own migrated
// database and a pool for fixtures. Sub-tests start from empty tables.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	admin, err := postgresServer()
	require.NoError(t, err)

	dbCfg := createDatabase(t, admin)
	// the app migrates on start, so it must come up before the fixture pool is used
	s.Router, s.Config = startApp(t, dbCfg)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	pool, closePool, err := db.Connect(ctx, dbCfg)
	require.NoError(t, err)
	t.Cleanup(closePool)
	s.DB = pool
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "reset database")
}
