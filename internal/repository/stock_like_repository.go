package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"stockchecker/internal/domain"
)

// PgxPool is the subset of *pgxpool.Pool used by the repositories
type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// StockLikeRepositoryImpl implements the LikeLedger interface on PostgreSQL
type StockLikeRepositoryImpl struct {
	db PgxPool
}

// NewStockLikeRepository creates a new Postgres-backed LikeLedger
func NewStockLikeRepository(db PgxPool) domain.LikeLedger {
	return &StockLikeRepositoryImpl{db: db}
}

// RecordAndCount upserts the stock row and returns the liker count.
// ON CONFLICT DO UPDATE locks the row, so concurrent likes on the same
// symbol serialize without application-level locking.
func (r *StockLikeRepositoryImpl) RecordAndCount(ctx context.Context, symbol string, likerID string) (int, error) {
	query := `
		INSERT INTO stocks (symbol, liked_by)
		VALUES (
			$1,
			CASE WHEN $2::text = '' THEN ARRAY[]::text[] ELSE ARRAY[$2::text] END
		)
		ON CONFLICT (symbol) DO UPDATE SET
			liked_by = CASE
				WHEN stocks.liked_by @> EXCLUDED.liked_by THEN stocks.liked_by
				ELSE stocks.liked_by || EXCLUDED.liked_by
			END,
			updated_at = CURRENT_TIMESTAMP
		RETURNING cardinality(liked_by)
	`

	var count int32
	if err := r.db.QueryRow(ctx, query, symbol, likerID).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: failed to upsert likes for %s: %v", domain.ErrPersistence, symbol, err)
	}

	return int(count), nil
}

// Stats returns the number of stocks and the total likes across them
func (r *StockLikeRepositoryImpl) Stats(ctx context.Context) (domain.LedgerStats, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(cardinality(liked_by)), 0)
		FROM stocks
	`

	var stats domain.LedgerStats
	if err := r.db.QueryRow(ctx, query).Scan(&stats.Stocks, &stats.Likes); err != nil {
		return domain.LedgerStats{}, fmt.Errorf("%w: failed to get ledger stats: %v", domain.ErrPersistence, err)
	}

	return stats, nil
}

// Ping checks database connectivity
func (r *StockLikeRepositoryImpl) Ping(ctx context.Context) error {
	if err := r.db.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return nil
}
