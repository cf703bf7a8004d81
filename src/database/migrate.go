package database

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// versionTable keeps goose's bookkeeping next to the application tables.
var versionTable = Schema + ".goose_db_version"

func setupGoose() error {
	goose.SetBaseFS(migrationsFS)
	goose.SetTableName(versionTable)
	return goose.SetDialect("postgres")
}

// Migrate applies every pending goose migration. The schema is created first
// since goose writes its version table into it before any migration runs.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec("CREATE SCHEMA IF NOT EXISTS " + pgx.Identifier{Schema}.Sanitize()); err != nil {
		return fmt.Errorf("failed to create schema %s: %w", Schema, err)
	}
	if err := setupGoose(); err != nil {
		return err
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// MigrationStatus logs the applied state of every migration.
func MigrationStatus(db *sql.DB) error {
	if err := setupGoose(); err != nil {
		return err
	}
	return goose.Status(db, "migrations")
}
