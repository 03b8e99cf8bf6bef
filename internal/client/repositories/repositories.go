// Package repositories opens the local cache database, applies migrations,
// and hands out the repository set.
package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/mindwell/mindwell/internal/client/migrations"
	"github.com/mindwell/mindwell/internal/client/repositories/challenges"
)

// Set groups the client's local repositories over one database handle.
// The auth service builds its own metadata repository, transactionally, so
// only the challenge cache is handed out here.
type Set struct {
	Challenges challenges.Repository
	DB         *sql.DB
}

// RunMigrations applies the embedded goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (or creates) the SQLite cache at dsn, migrates it, and
// returns the repository set. The caller owns Set.DB and closes it on exit.
func InitDatabase(ctx context.Context, dsn string) (*Set, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &Set{
		Challenges: challenges.NewSQLiteRepository(db),
		DB:         db,
	}, nil
}
