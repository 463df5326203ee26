package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"stockchecker/internal/domain"
)

const (
	likesKeyPrefix = "stock:likes:"
	knownStocksKey = "stock:known"
)

// Compile-time check to ensure RedisLikeRepository implements LikeLedger
var _ domain.LikeLedger = (*RedisLikeRepository)(nil)

// RedisLikeRepository keeps one Redis set of liker ids per symbol
type RedisLikeRepository struct {
	client *redis.Client
}

// NewRedisLikeRepository creates a new Redis-backed LikeLedger
func NewRedisLikeRepository(client *redis.Client) *RedisLikeRepository {
	return &RedisLikeRepository{client: client}
}

func likesKey(symbol string) string {
	return likesKeyPrefix + symbol
}

// RecordAndCount registers the symbol, adds the liker if given and returns SCARD,
// all inside one MULTI/EXEC
func (r *RedisLikeRepository) RecordAndCount(ctx context.Context, symbol string, likerID string) (int, error) {
	var card *redis.IntCmd

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SAdd(ctx, knownStocksKey, symbol)
		if likerID != "" {
			pipe.SAdd(ctx, likesKey(symbol), likerID)
		}
		card = pipe.SCard(ctx, likesKey(symbol))
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: failed to upsert likes for %s: %v", domain.ErrPersistence, symbol, err)
	}

	return int(card.Val()), nil
}

// Stats counts known symbols and sums their liker sets
func (r *RedisLikeRepository) Stats(ctx context.Context) (domain.LedgerStats, error) {
	symbols, err := r.client.SMembers(ctx, knownStocksKey).Result()
	if err != nil {
		return domain.LedgerStats{}, fmt.Errorf("%w: failed to list stocks: %v", domain.ErrPersistence, err)
	}

	stats := domain.LedgerStats{Stocks: int64(len(symbols))}
	if len(symbols) == 0 {
		return stats, nil
	}

	cmds, err := r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, sym := range symbols {
			pipe.SCard(ctx, likesKey(sym))
		}
		return nil
	})
	if err != nil {
		return domain.LedgerStats{}, fmt.Errorf("%w: failed to count likes: %v", domain.ErrPersistence, err)
	}

	for _, cmd := range cmds {
		if c, ok := cmd.(*redis.IntCmd); ok {
			stats.Likes += c.Val()
		}
	}

	return stats, nil
}

// Ping checks Redis connectivity
func (r *RedisLikeRepository) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return nil
}
