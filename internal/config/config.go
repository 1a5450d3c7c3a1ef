package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type Config struct {
	Environment string `env:"GO_ENV" envDefault:"development"`
	Server      ServerConfig
	Database    DatabaseConfig
	Store       StoreConfig
	Log         LogConfig
	RateLimit   RateLimitConfig
	Validation  ValidationConfig
}

type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"3000"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
	BodyLimit       int           `env:"SERVER_BODY_LIMIT" envDefault:"1048576"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

type DatabaseConfig struct {
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            string        `env:"DB_PORT" envDefault:"5432"`
	User            string        `env:"DB_USER" envDefault:"postgres"`
	Password        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName          string        `env:"DB_NAME" envDefault:"sakila"`
	SSLMode         string        `env:"DB_SSLMODE" envDefault:"disable"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	QueryTimeout    time.Duration `env:"DB_QUERY_TIMEOUT" envDefault:"10s"`
	Migrate         bool          `env:"DB_MIGRATE" envDefault:"true"`
}

type StoreConfig struct {
	Driver string `env:"STORE_DRIVER" envDefault:"postgres"`
}

type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:""`
	File  string `env:"LOG_FILE" envDefault:""`
}

type RateLimitConfig struct {
	Enabled bool    `env:"RATE_LIMIT_ENABLED" envDefault:"false"`
	RPS     float64 `env:"RATE_LIMIT_RPS" envDefault:"20"`
	Burst   int     `env:"RATE_LIMIT_BURST" envDefault:"40"`
}

// ValidationConfig bounds actor first/last name length in characters.
type ValidationConfig struct {
	ActorNameMin int `env:"ACTOR_NAME_MIN" envDefault:"10"`
	ActorNameMax int `env:"ACTOR_NAME_MAX" envDefault:"45"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}
	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC connect_timeout=10",
		d.Host, d.User, d.Password, d.DBName, d.Port, d.SSLMode,
	)
}

// URL returns the same connection as a postgres:// URL, the form the migration runner needs.
func (d DatabaseConfig) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     d.Host + ":" + d.Port,
		Path:     "/" + d.DBName,
		RawQuery: url.Values{"sslmode": []string{d.SSLMode}}.Encode(),
	}
	return u.String()
}

func (c *Config) IsDevelopment() bool {
	env := strings.ToLower(c.Environment)
	return env == "dev" || env == "development"
}

func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreDriverPostgres:
		if strings.TrimSpace(c.Database.Host) == "" {
			return fmt.Errorf("DB_HOST is required when STORE_DRIVER is %s", StoreDriverPostgres)
		}
		if strings.TrimSpace(c.Database.DBName) == "" {
			return fmt.Errorf("DB_NAME is required when STORE_DRIVER is %s", StoreDriverPostgres)
		}
	case StoreDriverMemory:
	default:
		return fmt.Errorf("STORE_DRIVER must be %s or %s, got %q", StoreDriverPostgres, StoreDriverMemory, c.Store.Driver)
	}

	if c.Validation.ActorNameMin < 0 || c.Validation.ActorNameMin > c.Validation.ActorNameMax {
		return fmt.Errorf("ACTOR_NAME_MIN (%d) must be between 0 and ACTOR_NAME_MAX (%d)",
			c.Validation.ActorNameMin, c.Validation.ActorNameMax)
	}
	if c.Validation.ActorNameMax > 45 {
		return fmt.Errorf("ACTOR_NAME_MAX (%d) exceeds the 45 character column", c.Validation.ActorNameMax)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst < 1) {
		return fmt.Errorf("RATE_LIMIT_RPS must be positive and RATE_LIMIT_BURST at least 1 when rate limiting is enabled")
	}
	return nil
}
