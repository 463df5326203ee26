package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"stockchecker/internal/delivery/http/dto"
)

// Response messages shared with clients
const (
	MsgStockRequired   = "Stock symbol is required"
	MsgProcessFailed   = "Failed to process request"
	MsgInternalError   = "Internal Server Error"
	MsgNotFound        = "Not Found"
	MsgTooManyStocks   = "At most two stock symbols can be compared"
	MsgLedgerUnhealthy = "unhealthy"
)

// SuccessResponse sends a 200 response with data as the body
func SuccessResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// ErrorResponse sends an error response
func ErrorResponse(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, dto.ErrorOutput{Error: message})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, message string) error {
	return ErrorResponse(c, http.StatusBadRequest, message)
}

// NotFoundResponse sends a plain-text 404 Not Found response
func NotFoundResponse(c echo.Context) error {
	return c.String(http.StatusNotFound, MsgNotFound)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, message string) error {
	return ErrorResponse(c, http.StatusInternalServerError, message)
}
