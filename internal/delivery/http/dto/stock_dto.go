package dto

// StockDataOutput is the single-stock payload
type StockDataOutput struct {
	Stock string  `json:"stock"`
	Price float64 `json:"price"`
	Likes int     `json:"likes"`
}

// RelativeStockDataOutput is one side of a two-stock comparison
type RelativeStockDataOutput struct {
	Stock    string  `json:"stock"`
	Price    float64 `json:"price"`
	RelLikes int     `json:"rel_likes"`
}

// StockPriceResponse wraps either a StockDataOutput or a pair of RelativeStockDataOutput
type StockPriceResponse struct {
	StockData interface{} `json:"stockData"`
}

// ErrorOutput is the error body returned by every JSON error response
type ErrorOutput struct {
	Error string `json:"error"`
}
