// Package database wraps a pgx connection pool with the typed queries the
// handlers use.
package database

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schema string

type Pool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type Database struct {
	Querier

	Pool Pool
}

func NewDatabase(pool *pgxpool.Pool) *Database {
	return &Database{
		Querier: New(pool),
		Pool:    pool,
	}
}

// EnsureSchema applies the schema to the database if it is not detected.
func EnsureSchema(ctx context.Context, db *Database, pool *pgxpool.Pool) error {
	exists, err := db.CheckUsersTableExists(ctx)
	if err != nil {
		return fmt.Errorf("ensuring schema exists: %w", err)
	}

	if exists {
		return nil
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("applying database schema: %w", err)
	}

	return nil
}
