package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"riftview/pkg/config"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Both binaries run migrations on startup, so the schema upgrade is
// serialized through a session-level advisory lock.
const migrationLockKey = "riftview_migrations_lock"

// RunMigrations applies all pending migrations to the database.
// When another process holds the migration lock the call is a no-op.
func RunMigrations(cfg *config.Config, db *sql.DB) error {
	acquired, err := tryAdvisoryLock(db)
	if err != nil {
		return fmt.Errorf("could not acquire the migration lock: %w", err)
	}

	if !acquired {
		log.Println("Another process is already running migrations, skipping...")
		return nil
	}
	defer releaseAdvisoryLock(db)

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", cfg.Database.MigrationsPath),
		cfg.Database.Name,
		driver,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func tryAdvisoryLock(db *sql.DB) (bool, error) {
	var acquired bool
	err := db.QueryRow("SELECT pg_try_advisory_lock(hashtext($1))", migrationLockKey).Scan(&acquired)
	return acquired, err
}

func releaseAdvisoryLock(db *sql.DB) {
	var released bool
	err := db.QueryRow("SELECT pg_advisory_unlock(hashtext($1))", migrationLockKey).Scan(&released)
	if err != nil || !released {
		log.Println("Couldn't release the migration lock, it expires with the session.")
	}
}
