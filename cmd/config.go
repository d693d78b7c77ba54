package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"workmarket/internal/pkg/errs"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort   string `env:"HTTP_PORT"   envDefault:"8080"`
	DBHost     string `env:"DB_HOST"`
	DBPort     string `env:"DB_PORT"     envDefault:"5432"`
	DBUser     string `env:"DB_USER"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME"`
	DBSslMode  string `env:"DB_SSLMODE"  envDefault:"disable"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	AppEnv   string `env:"APP_ENV"   envDefault:"production"`

	// CatalogURL switches category checks from the categories table to the catalog service.
	CatalogURL     string        `env:"CATALOG_URL"`
	CatalogTimeout time.Duration `env:"CATALOG_TIMEOUT" envDefault:"3s"`

	OrderExpirySchedule string        `env:"ORDER_EXPIRY_SCHEDULE"  envDefault:"0 */5 * * * *"`
	DefaultWorkRadiusKm float64       `env:"DEFAULT_WORK_RADIUS_KM" envDefault:"10"`
	ShutdownTimeout     time.Duration `env:"SHUTDOWN_TIMEOUT"       envDefault:"15s"`
}

// LoadConfig reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errList []error
	for _, required := range []struct{ name, value string }{
		{"HTTP_PORT", c.HTTPPort},
		{"DB_HOST", c.DBHost},
		{"DB_PORT", c.DBPort},
		{"DB_USER", c.DBUser},
		{"DB_NAME", c.DBName},
	} {
		if required.value == "" {
			errList = append(errList, errs.NewValueIsRequiredError(required.name))
		}
	}
	if c.DefaultWorkRadiusKm <= 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("DEFAULT_WORK_RADIUS_KM", c.DefaultWorkRadiusKm, 0, "unbounded"))
	}
	if c.ShutdownTimeout <= 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("SHUTDOWN_TIMEOUT", c.ShutdownTimeout, 0, "unbounded"))
	}
	return errors.Join(errList...)
}

// DSN is the PostgreSQL connection string in key=value form.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
