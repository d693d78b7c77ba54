// Package pgtest starts a throwaway PostgreSQL container with the marketplace
// schema for integration tests.
package pgtest

import (
	"context"
	"fmt"
	"time"

	adapter "workmarket/internal/adapters/out/postgres"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Start runs postgres:15-alpine, connects to it and applies the migrations.
// The caller terminates the returned container.
func Start(ctx context.Context) (*postgres.PostgresContainer, *gorm.DB, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return container, nil, err
	}

	db, err := adapter.Open(dsn)
	if err != nil {
		return container, nil, err
	}

	if err = adapter.Migrate(ctx, db, zap.NewNop()); err != nil {
		return container, nil, err
	}
	return container, db, nil
}

// Truncate empties every marketplace table.
func Truncate(db *gorm.DB) error {
	return db.Exec("TRUNCATE TABLE applications, orders, executor_profiles, categories").Error
}
