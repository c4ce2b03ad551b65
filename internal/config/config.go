// Package config resolves the development environment configuration from
// environment variables. All settings have working defaults so a bare
// `devstack dbstart` brings up a usable database; a .env file in the working
// directory is honored because the entry point loads it before parsing.
package config

import (
	"fmt"
	"strings"
	"time"

	"devstack/cli/internal/dsn"

	"github.com/caarlos0/env/v11"
)

// ContainerName is the fixed name of the local database container.
const ContainerName = "devstack-postgres"

// PostgresImage is the database image pulled and launched by dbstart. The
// alpine variant runs as UID 70, which the certificate provisioner must match
// on Linux hosts.
const PostgresImage = "postgres:16-alpine"

// PostgresUID is the runtime UID of the postgres process inside PostgresImage.
const PostgresUID = 70

// Config holds the environment-derived settings for the local database and
// the server project's own tunables exported by `devstack init`.
type Config struct {
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"devstack"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"devstack"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"require"`
	DBName     string `env:"DB_NAME" envDefault:"devstack"`

	ConfigRefreshDuration time.Duration `env:"CONFIG_REFRESH_DURATION" envDefault:"30s"`
	TargetRefreshDuration time.Duration `env:"TARGET_REFRESH_DURATION" envDefault:"10s"`
	ExportFileMaxRecords  int           `env:"EXPORT_FILE_MAX_RECORDS" envDefault:"10000"`

	// DatabaseURL, when set, overrides the individual DB_* variables as a
	// single connection string (the common shape handed out by hosted
	// Postgres providers).
	DatabaseURL string `env:"DATABASE_URL"`
}

// Read parses the configuration from the process environment. A DATABASE_URL
// override is validated and decomposed into the individual parameters, so
// URL(), Exports() and the container launch all stay consistent with it.
func Read() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return cfg, err
	}
	if raw := strings.TrimSpace(cfg.DatabaseURL); raw != "" {
		info, err := dsn.Parse(raw)
		if err != nil {
			return cfg, err
		}
		cfg.DBUser = info.User
		cfg.DBPassword = info.Password
		cfg.DBHost = info.Host
		cfg.DBPort = info.Port
		cfg.DBName = info.Database
		if mode, ok := info.Params["sslmode"]; ok {
			cfg.DBSSLMode = mode
		}
	}
	return cfg, nil
}

// URL composes the database connection URL from the individual parameters.
// Every consumer of the connection string (dburl, dbmigrate, dbping, dbseed)
// goes through this method so the URL always stays consistent with the
// parameters used to start the container.
func (c Config) URL() string {
	return dsn.Compose(dsn.Info{
		User:     c.DBUser,
		Password: c.DBPassword,
		Host:     c.DBHost,
		Port:     c.DBPort,
		Database: c.DBName,
		Params:   map[string]string{"sslmode": c.DBSSLMode},
	})
}

// Exports returns the configuration as ordered KEY=value pairs, exactly the
// set of variables `devstack init` emits for shell consumption.
func (c Config) Exports() [][2]string {
	return [][2]string{
		{"DB_HOST", c.DBHost},
		{"DB_PORT", c.DBPort},
		{"DB_USER", c.DBUser},
		{"DB_PASSWORD", c.DBPassword},
		{"DB_SSLMODE", c.DBSSLMode},
		{"DB_NAME", c.DBName},
		{"CONFIG_REFRESH_DURATION", c.ConfigRefreshDuration.String()},
		{"TARGET_REFRESH_DURATION", c.TargetRefreshDuration.String()},
		{"EXPORT_FILE_MAX_RECORDS", fmt.Sprintf("%d", c.ExportFileMaxRecords)},
	}
}
