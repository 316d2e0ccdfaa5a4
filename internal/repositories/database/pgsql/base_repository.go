package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// DBTX is the part of *pgxpool.Pool the repositories use.
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool DBTX
}

// rowScanner is satisfied by both pgx.Row and pgx.CollectableRow.
type rowScanner interface {
	Scan(dest ...any) error
}
