package domain

import "context"

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// QuoteFetcher defines the interface for fetching stock quotes
type QuoteFetcher interface {
	// FetchQuote returns the canonical symbol and latest price for symbol
	FetchQuote(ctx context.Context, symbol string) (*StockQuote, error)
}

// StockPriceService defines the stock price lookup use case
type StockPriceService interface {
	// GetStockPrices fetches quotes for one or two symbols and records a like
	// from likerID on each of them when likerID is non-empty
	GetStockPrices(ctx context.Context, symbols []string, likerID string) ([]StockResult, error)
}
