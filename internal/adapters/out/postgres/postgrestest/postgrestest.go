// Package postgrestest starts a migrated PostgreSQL container for integration tests.
package postgrestest

import (
	"context"
	"fmt"

	"dispatch/internal/adapters/out/postgres/migrations"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database is a running container together with a gorm connection to it.
type Database struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
}

// Start runs postgres:15-alpine, connects gorm and applies the embedded migrations.
func Start(ctx context.Context) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	if err != nil {
		return nil, fmt.Errorf("could not start container: %w", err)
	}

	database := &Database{Container: container}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = database.Terminate(ctx)
		return nil, fmt.Errorf("could not get connection string: %w", err)
	}

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		_ = database.Terminate(ctx)
		return nil, fmt.Errorf("could not connect: %w", err)
	}
	database.DB = db

	sqlDB, err := db.DB()
	if err != nil {
		_ = database.Terminate(ctx)
		return nil, err
	}
	if err := migrations.Up(ctx, sqlDB); err != nil {
		_ = database.Terminate(ctx)
		return nil, err
	}

	return database, nil
}

// Truncate empties every table so each test starts from a clean state.
func (d *Database) Truncate() error {
	return d.DB.Exec("TRUNCATE TABLE orders, couriers").Error
}

// Terminate closes the connection and stops the container.
func (d *Database) Terminate(ctx context.Context) error {
	if d.DB != nil {
		if sqlDB, err := d.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return d.Container.Terminate(ctx)
}
