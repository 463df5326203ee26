package http

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"stockchecker/internal/delivery/http/dto"
	"stockchecker/internal/domain"
	"stockchecker/internal/service"
	"stockchecker/internal/usecase"
)

// StockHandler handles stock price requests
type StockHandler struct {
	stockService domain.StockPriceService
	likers       *service.LikerIdentifier
}

// NewStockHandler creates a new StockHandler
func NewStockHandler(stockService domain.StockPriceService, likers *service.LikerIdentifier) *StockHandler {
	return &StockHandler{
		stockService: stockService,
		likers:       likers,
	}
}

// GetStockPrices returns the price and likes of one stock, or the prices
// and relative likes of two stocks
// GET /api/stock-prices?stock=GOOG[&stock=MSFT][&like=true]
func (h *StockHandler) GetStockPrices(c echo.Context) error {
	symbols := usecase.ParseSymbols(c.QueryParams()["stock"])
	if len(symbols) == 0 {
		return BadRequestResponse(c, MsgStockRequired)
	}

	likerID := ""
	if c.QueryParam("like") == "true" {
		likerID = h.likers.Identify(c.RealIP())
	}

	results, err := h.stockService.GetStockPrices(c.Request().Context(), symbols, likerID)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return BadRequestResponse(c, MsgTooManyStocks)
		}
		log.Error().Err(err).Strs("symbols", symbols).Msg("Error processing request")
		return InternalServerErrorResponse(c, MsgProcessFailed)
	}

	if len(results) == 2 {
		pair := make([]dto.RelativeStockDataOutput, 0, len(results))
		for _, r := range results {
			pair = append(pair, dto.RelativeStockDataOutput{
				Stock:    r.Symbol,
				Price:    r.Price,
				RelLikes: r.RelLikes,
			})
		}
		return SuccessResponse(c, dto.StockPriceResponse{StockData: pair})
	}

	return SuccessResponse(c, dto.StockPriceResponse{StockData: dto.StockDataOutput{
		Stock: results[0].Symbol,
		Price: results[0].Price,
		Likes: results[0].Likes,
	}})
}
