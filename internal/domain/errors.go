package domain

import "errors"

// Error taxonomy for stock lookups. Callers wrap these with %w and the
// HTTP layer maps them to status codes with errors.Is.
var (
	// ErrValidation indicates missing or malformed request input
	ErrValidation = errors.New("validation error")

	// ErrFetchFailure indicates the upstream quote call did not succeed
	ErrFetchFailure = errors.New("quote fetch failed")

	// ErrMalformedQuote indicates the upstream payload lacked symbol or latestPrice
	ErrMalformedQuote = errors.New("malformed quote")

	// ErrPersistence indicates the like ledger could not be read or written
	ErrPersistence = errors.New("persistence error")
)
