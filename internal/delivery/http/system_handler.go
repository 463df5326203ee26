package http

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"stockchecker/internal/delivery/http/dto"
	"stockchecker/internal/domain"
)

// ServiceName identifies this service in health responses
const ServiceName = "stock-price-checker"

// SystemHandler serves health and ledger statistics
type SystemHandler struct {
	ledger domain.LikeLedger
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(ledger domain.LikeLedger) *SystemHandler {
	return &SystemHandler{ledger: ledger}
}

// Root describes the service
// GET /
func (h *SystemHandler) Root(c echo.Context) error {
	return SuccessResponse(c, map[string]interface{}{
		"message": "Welcome to the Stock Price Checker",
		"endpoints": map[string]string{
			"stock_prices": "GET /api/stock-prices?stock=GOOG[&stock=MSFT][&like=true]",
			"stats":        "GET /api/stats",
			"health":       "GET /health",
		},
	})
}

// Health reports service and ledger health
// GET /health
func (h *SystemHandler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	ledgerStatus := "healthy"
	if err := h.ledger.Ping(ctx); err != nil {
		log.Warn().Err(err).Msg("Ledger health check failed")
		ledgerStatus = MsgLedgerUnhealthy
	}

	return SuccessResponse(c, dto.HealthOutput{
		Status:    "healthy",
		Service:   ServiceName,
		Ledger:    ledgerStatus,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Stats returns ledger totals
// GET /api/stats
func (h *SystemHandler) Stats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	stats, err := h.ledger.Stats(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to get ledger stats")
		return InternalServerErrorResponse(c, MsgProcessFailed)
	}

	return SuccessResponse(c, dto.LedgerStatsOutput{
		Stocks: stats.Stocks,
		Likes:  stats.Likes,
	})
}
