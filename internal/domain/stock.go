package domain

// StockQuote is a validated quote returned by the upstream price API
type StockQuote struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"latestPrice"`
}

// StockResult is one row of a stock price lookup.
// RelLikes is only meaningful when two stocks were requested together.
type StockResult struct {
	Symbol   string
	Price    float64
	Likes    int
	RelLikes int
}

// LedgerStats summarizes the like ledger
type LedgerStats struct {
	Stocks int64 `json:"stocks"`
	Likes  int64 `json:"likes"`
}

// MaxSymbolsPerRequest caps how many stocks a single lookup may compare
const MaxSymbolsPerRequest = 2
