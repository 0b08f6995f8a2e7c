package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping reports whether the database is reachable.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Reset drops every table by running all down migrations, then recreates the
// schema. All rows are lost, subscribers included.
func (s *PostgresStore) Reset(ctx context.Context) error {
	// Migrations run over database/sql, backed by the same pgx driver and
	// connection settings as the pool.
	db := stdlib.OpenDB(*s.pool.Config().ConnConfig)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("pinging migration connection: %w", err)
	}

	m, err := newMigrator(db)
	if err != nil {
		_ = db.Close()
		return err
	}
	// Closing the migrator closes db as well.
	defer func() { _, _ = m.Close() }()

	err = m.Down()
	var dirty migrate.ErrDirty
	if errors.As(err, &dirty) {
		// A previous run died mid-migration. The schema is about to be
		// dropped anyway, so accept the recorded version and retry.
		if ferr := m.Force(dirty.Version); ferr != nil {
			return fmt.Errorf("clearing dirty migration %d: %w", dirty.Version, ferr)
		}
		err = m.Down()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("dropping schema: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("creating schema: %w", err)
	}

	return nil
}

// ResetAndSeed wipes the database and loads the reference catalog.
func (s *PostgresStore) ResetAndSeed(ctx context.Context) error {
	if err := s.Reset(ctx); err != nil {
		return err
	}
	return s.Seed(ctx)
}

func newMigrator(db *sql.DB) (*migrate.Migrate, error) {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("creating migration source: %w", err)
	}

	driver, err := migratepgx.WithInstance(db, &migratepgx.Config{})
	if err != nil {
		return nil, fmt.Errorf("creating migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "pgx5", driver)
	if err != nil {
		return nil, fmt.Errorf("creating migrator: %w", err)
	}
	return m, nil
}
