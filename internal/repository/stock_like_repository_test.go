package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"stockchecker/internal/domain"
	"stockchecker/internal/repository"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func TestStockLikeRepository_RecordAndCount_WithLiker(t *testing.T) {
	mock := newMockPool(t)
	repo := repository.NewStockLikeRepository(mock)

	mock.ExpectQuery(`INSERT INTO stocks`).
		WithArgs("GOOG", "203.0.113.7").
		WillReturnRows(pgxmock.NewRows([]string{"cardinality"}).AddRow(int32(1)))

	count, err := repo.RecordAndCount(context.Background(), "GOOG", "203.0.113.7")
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestStockLikeRepository_RecordAndCount_WithoutLiker(t *testing.T) {
	mock := newMockPool(t)
	repo := repository.NewStockLikeRepository(mock)

	// An empty liker still upserts the row so the symbol becomes known
	mock.ExpectQuery(`ON CONFLICT \(symbol\) DO UPDATE`).
		WithArgs("MSFT", "").
		WillReturnRows(pgxmock.NewRows([]string{"cardinality"}).AddRow(int32(0)))

	count, err := repo.RecordAndCount(context.Background(), "MSFT", "")
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestStockLikeRepository_RecordAndCount_Error(t *testing.T) {
	mock := newMockPool(t)
	repo := repository.NewStockLikeRepository(mock)

	mock.ExpectQuery(`INSERT INTO stocks`).
		WithArgs("GOOG", "").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.RecordAndCount(context.Background(), "GOOG", "")
	require.ErrorIs(t, err, domain.ErrPersistence)
	require.Contains(t, err.Error(), "connection reset")
}

func TestStockLikeRepository_Stats(t *testing.T) {
	mock := newMockPool(t)
	repo := repository.NewStockLikeRepository(mock)

	mock.ExpectQuery(`SELECT COUNT\(\*\), COALESCE\(SUM\(cardinality\(liked_by\)\), 0\)`).
		WillReturnRows(pgxmock.NewRows([]string{"count", "coalesce"}).AddRow(int64(3), int64(7)))

	stats, err := repo.Stats(context.Background())
	require.NoError(t, err)
	require.Equal(t, domain.LedgerStats{Stocks: 3, Likes: 7}, stats)
}

func TestStockLikeRepository_Ping(t *testing.T) {
	mock := newMockPool(t) // pgxmock v3 always monitors pings
	repo := repository.NewStockLikeRepository(mock)

	mock.ExpectPing()
	require.NoError(t, repo.Ping(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("down"))
	require.ErrorIs(t, repo.Ping(context.Background()), domain.ErrPersistence)
}
