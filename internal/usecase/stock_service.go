package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"stockchecker/internal/domain"
)

// Compile-time check to ensure StockService implements StockPriceService
var _ domain.StockPriceService = (*StockService)(nil)

// StockService handles stock price lookups and like bookkeeping
type StockService struct {
	quotes domain.QuoteFetcher
	ledger domain.LikeLedger
}

// NewStockService creates a new StockService
func NewStockService(quotes domain.QuoteFetcher, ledger domain.LikeLedger) *StockService {
	return &StockService{
		quotes: quotes,
		ledger: ledger,
	}
}

// ParseSymbols flattens repeated and comma-separated stock values into
// upper-cased symbols, dropping empty tokens. Request order is preserved.
func ParseSymbols(values []string) []string {
	var symbols []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if s := strings.ToUpper(strings.TrimSpace(part)); s != "" {
				symbols = append(symbols, s)
			}
		}
	}
	return symbols
}

// GetStockPrices fetches quotes for one or two symbols, records the like
// (when likerID is set) and computes relative likes for pairs.
// Any failure aborts the whole batch; no partial results are returned.
func (s *StockService) GetStockPrices(ctx context.Context, symbols []string, likerID string) ([]domain.StockResult, error) {
	if len(symbols) == 0 {
		return nil, fmt.Errorf("%w: stock symbol is required", domain.ErrValidation)
	}
	if len(symbols) > domain.MaxSymbolsPerRequest {
		return nil, fmt.Errorf("%w: at most %d stocks can be compared, got %d",
			domain.ErrValidation, domain.MaxSymbolsPerRequest, len(symbols))
	}

	start := time.Now()

	// Step 1: fetch all quotes concurrently; the first failure cancels the rest
	quotes := make([]*domain.StockQuote, len(symbols))
	g, gctx := errgroup.WithContext(ctx)
	for i, symbol := range symbols {
		i, symbol := i, symbol
		g.Go(func() error {
			quote, err := s.quotes.FetchQuote(gctx, symbol)
			if err != nil {
				return err
			}
			quotes[i] = quote
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Step 2: upsert each canonical symbol; records are disjoint so order does not matter
	results := make([]domain.StockResult, len(quotes))
	g, gctx = errgroup.WithContext(ctx)
	for i, quote := range quotes {
		i, quote := i, quote
		g.Go(func() error {
			likes, err := s.ledger.RecordAndCount(gctx, quote.Symbol, likerID)
			if err != nil {
				return err
			}
			results[i] = domain.StockResult{
				Symbol: quote.Symbol,
				Price:  quote.Price,
				Likes:  likes,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Step 3: relative likes for pairs
	if len(results) == 2 {
		results[0].RelLikes = results[0].Likes - results[1].Likes
		results[1].RelLikes = results[1].Likes - results[0].Likes
	}

	log.Debug().
		Strs("symbols", symbols).
		Bool("liked", likerID != "").
		Dur("elapsed", time.Since(start)).
		Msg("Stock prices resolved")

	return results, nil
}
