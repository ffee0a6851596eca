package pgsql

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Ping checks that the pool can still reach the database
func (r *BaseRepository) Ping(ctx context.Context) error {
	if err := r.Pool.Ping(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to reach database", err)
	}
	return nil
}

// Close releases every pooled connection
func (r *BaseRepository) Close() error {
	if r.Pool != nil {
		r.Pool.Close()
	}
	return nil
}
