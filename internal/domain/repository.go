package domain

import "context"

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

// LikeLedger defines the interface for the per-stock like ledger
type LikeLedger interface {
	// RecordAndCount upserts the record for symbol, adds likerID to its
	// liker set when likerID is non-empty, and returns the distinct liker count
	RecordAndCount(ctx context.Context, symbol string, likerID string) (int, error)

	// Stats returns the number of tracked stocks and the total number of likes
	Stats(ctx context.Context) (LedgerStats, error)

	// Ping checks that the backing store is reachable
	Ping(ctx context.Context) error
}
