package dto

// HealthOutput represents the health check response
type HealthOutput struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Ledger    string `json:"ledger"`
	Timestamp string `json:"timestamp"`
}

// LedgerStatsOutput represents ledger totals
type LedgerStatsOutput struct {
	Stocks int64 `json:"stocks"`
	Likes  int64 `json:"likes"`
}
