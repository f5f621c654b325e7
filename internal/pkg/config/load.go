package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func LoadConfig() (Config, error) {
	// real deployments inject variables directly
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks cross-field rules envconfig tags cannot express. The
// commission rate is checked where it is parsed.
func (c Config) Validate() error {
	var problems []error
	switch c.Store.Driver {
	case StoreDriverPostgres:
		if c.DB.User == "" || c.DB.DBName == "" {
			problems = append(problems, errors.New("DB_USER and DB_NAME are required for the postgres store driver"))
		}
	case StoreDriverMemory:
	default:
		problems = append(problems, fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver))
	}
	if c.JWT.Secret == "" {
		problems = append(problems, errors.New("JWT_SECRET must not be empty"))
	}
	if c.JWT.Duration <= 0 {
		problems = append(problems, fmt.Errorf("JWT_DURATION must be positive, got %s", c.JWT.Duration))
	}
	if c.Marketplace.LeadCreditCost != 1 {
		problems = append(problems, fmt.Errorf("LEAD_CREDIT_COST must be 1, got %d", c.Marketplace.LeadCreditCost))
	}
	if c.Events.MaxWorkers < 1 {
		problems = append(problems, fmt.Errorf("EVENTS_MAX_WORKERS must be at least 1, got %d", c.Events.MaxWorkers))
	}
	return errors.Join(problems...)
}

// NewTestConfig is a valid in-memory configuration for unit tests. E2E
// setup swaps in a postgres store and a container DB.
func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{Port: "8889", RequestTimeout: 5 * time.Second},
		Store:  StoreConfig{Driver: StoreDriverMemory},
		DB: DBConfig{
			Host:        "localhost",
			Port:        "15433",
			User:        "test",
			Password:    "test",
			DBName:      "test_db",
			SSLMode:     "disable",
			TimeZone:    "UTC",
			MaxConns:    10,
			AutoMigrate: true,
		},
		Log:         LogConfig{Level: "error", TimeZone: "UTC", TimeFormat: time.RFC3339},
		JWT:         JWTConfig{Secret: "test-secret", Duration: time.Hour},
		Cookie:      CookieConfig{SameSite: "Lax"},
		Marketplace: MarketplaceConfig{CommissionPercent: "15", LeadCreditCost: 1},
		Events:      EventsConfig{MaxWorkers: 2},
	}
}
