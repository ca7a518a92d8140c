package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/haeun-dev/maumdiary/internal/storage/migrations"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

const installIDKey = "installId"

// Open opens (creating if necessary) the sqlite database at path and runs
// the embedded migrations.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// The CLI is the single writer; one connection avoids lock contention.
	db.SetMaxOpenConns(1)

	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return db, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

// InstallID returns this installation's stable identifier, generating and
// persisting a fresh uuid on first use. The id goes into log attributes so
// reports from different devices can be told apart.
func InstallID(ctx context.Context, kv KV) (string, error) {
	raw, err := kv.Get(ctx, installIDKey)
	if err != nil {
		return "", err
	}
	if raw != nil {
		return string(raw), nil
	}

	id := uuid.NewString()
	if err := kv.Set(ctx, installIDKey, []byte(id)); err != nil {
		return "", err
	}
	return id, nil
}
