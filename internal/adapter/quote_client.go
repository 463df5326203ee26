package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"stockchecker/internal/domain"
)

// DefaultQuoteBaseURL is the freeCodeCamp IEX proxy used when no base URL is configured
const DefaultQuoteBaseURL = "https://stock-price-checker-proxy.freecodecamp.rocks"

// maxQuoteBodySize bounds how much of an upstream response is read
const maxQuoteBodySize = 1 << 20

// QuoteClient implements QuoteFetcher against the stock price proxy
type QuoteClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewQuoteClient creates a new quote client.
// timeout bounds each upstream call; zero falls back to 10 seconds.
func NewQuoteClient(baseURL string, timeout time.Duration) domain.QuoteFetcher {
	if baseURL == "" {
		baseURL = DefaultQuoteBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &QuoteClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchQuote fetches the latest quote for a single symbol
// GET {baseURL}/v1/stock/{symbol}/quote
func (qc *QuoteClient) FetchQuote(ctx context.Context, symbol string) (*domain.StockQuote, error) {
	endpoint := fmt.Sprintf("%s/v1/stock/%s/quote", qc.baseURL, url.PathEscape(symbol))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request for %s: %v", domain.ErrFetchFailure, symbol, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := qc.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch stock data for %s: %v", domain.ErrFetchFailure, symbol, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxQuoteBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response for %s: %v", domain.ErrFetchFailure, symbol, err)
	}

	log.Debug().
		Str("symbol", symbol).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("Quote API responded")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: quote API error for %s: status=%d, body=%s",
			domain.ErrFetchFailure, symbol, resp.StatusCode, truncate(string(body), 200))
	}

	return parseQuote(symbol, body)
}

// parseQuote validates the upstream payload shape.
// The proxy answers unknown tickers with a bare JSON string, which is rejected here too.
func parseQuote(symbol string, body []byte) (*domain.StockQuote, error) {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil || payload == nil {
		return nil, fmt.Errorf("%w: invalid stock data for %s", domain.ErrMalformedQuote, symbol)
	}

	canonical, ok := payload["symbol"].(string)
	if !ok || canonical == "" {
		return nil, fmt.Errorf("%w: invalid stock data for %s: missing symbol", domain.ErrMalformedQuote, symbol)
	}

	price, ok := payload["latestPrice"].(float64)
	if !ok {
		return nil, fmt.Errorf("%w: invalid stock data for %s: missing latestPrice", domain.ErrMalformedQuote, symbol)
	}

	return &domain.StockQuote{
		Symbol: canonical,
		Price:  price,
	}, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
