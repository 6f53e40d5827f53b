// Package state provides the dashboard's local persistence: the durable
// session copy and the operator activity log. It is gateway-local only;
// nothing here is ever sent to the REST backend.
package state

import (
	"context"
	"embed"
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"github.com/ilmnur/admin-dashboard/internal/crypto"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store is the SQLite-backed local state store.
type Store struct {
	db     *gorm.DB
	sealer *crypto.Sealer
}

// Open opens (and migrates) the state store at path. secret derives the key
// that seals persisted tokens at rest.
func Open(ctx context.Context, path, secret string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("state path is required")
	}

	db, err := gorm.Open(sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        path,
	}, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open state db: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migrate state db: %w", err)
	}

	return &Store{db: db, sealer: crypto.NewSealer(secret)}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func runMigrations(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	goose.SetBaseFS(migrationsFS)
	return goose.UpContext(ctx, sqlDB, "migrations")
}
