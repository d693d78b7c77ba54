package cmd

import (
	"testing"
	"time"

	"workmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Run("should apply defaults", func(t *testing.T) {
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("DB_USER", "market")
		t.Setenv("DB_NAME", "market")

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.HTTPPort)
		assert.Equal(t, "5432", cfg.DBPort)
		assert.Equal(t, "disable", cfg.DBSslMode)
		assert.Equal(t, 3*time.Second, cfg.CatalogTimeout)
		assert.Equal(t, "0 */5 * * * *", cfg.OrderExpirySchedule)
		assert.InDelta(t, 10.0, cfg.DefaultWorkRadiusKm, 1e-9)
		assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
		assert.Empty(t, cfg.CatalogURL)
	})

	t.Run("should read overrides", func(t *testing.T) {
		t.Setenv("DB_HOST", "db")
		t.Setenv("DB_USER", "market")
		t.Setenv("DB_NAME", "market")
		t.Setenv("CATALOG_URL", "http://catalog:8080")
		t.Setenv("CATALOG_TIMEOUT", "500ms")
		t.Setenv("DEFAULT_WORK_RADIUS_KM", "25.5")

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "http://catalog:8080", cfg.CatalogURL)
		assert.Equal(t, 500*time.Millisecond, cfg.CatalogTimeout)
		assert.InDelta(t, 25.5, cfg.DefaultWorkRadiusKm, 1e-9)
	})

	t.Run("should reject missing database settings", func(t *testing.T) {
		t.Setenv("DB_HOST", "")
		t.Setenv("DB_NAME", "")

		_, err := LoadConfig()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "DB_HOST")
		assert.Contains(t, err.Error(), "DB_NAME")
	})

	t.Run("should reject a malformed duration", func(t *testing.T) {
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("DB_USER", "market")
		t.Setenv("DB_NAME", "market")
		t.Setenv("SHUTDOWN_TIMEOUT", "soon")

		_, err := LoadConfig()

		assert.Error(t, err)
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		HTTPPort:            "8080",
		DBHost:              "localhost",
		DBPort:              "5432",
		DBUser:              "market",
		DBName:              "market",
		DefaultWorkRadiusKm: 10,
		ShutdownTimeout:     time.Second,
	}
	require.NoError(t, valid.Validate())

	invalid := valid
	invalid.DefaultWorkRadiusKm = 0
	assert.ErrorIs(t, invalid.Validate(), errs.ErrValueIsOutOfRange)
}

func TestConfig_DSN(t *testing.T) {
	cfg := Config{DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "market", DBSslMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=market sslmode=disable", cfg.DSN())
}
