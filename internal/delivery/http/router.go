package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
)

// contentSecurityPolicy allows only same-origin resources plus the jQuery CDN build
const contentSecurityPolicy = "default-src 'self'; " +
	"script-src 'self' https://code.jquery.com/jquery-3.7.1.min.js; " +
	"style-src 'self'"

// RouterConfig holds all dependencies for routing
type RouterConfig struct {
	StockHandler  *StockHandler
	SystemHandler *SystemHandler

	// IPExtractor resolves client addresses; nil means the socket address only
	IPExtractor echo.IPExtractor
}

// SetupRoutes configures middleware, routes and error handling
func SetupRoutes(e *echo.Echo, config *RouterConfig) {
	e.HTTPErrorHandler = ErrorHandler
	e.IPExtractor = config.IPExtractor
	if e.IPExtractor == nil {
		e.IPExtractor = echo.ExtractIPDirect()
	}

	// Middleware
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			// Skip logging for health probes to reduce noise
			return c.Request().URL.Path == "/health"
		},
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				evt = log.Error().Err(v.Error)
			}
			evt.
				Str("id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Str("remote_ip", v.RemoteIP).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
	}))
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:         "0",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "SAMEORIGIN",
		ReferrerPolicy:        "no-referrer",
		ContentSecurityPolicy: contentSecurityPolicy,
	}))

	// Routes
	e.GET("/", config.SystemHandler.Root)
	e.GET("/health", config.SystemHandler.Health)

	api := e.Group("/api")
	{
		api.GET("/stock-prices", config.StockHandler.GetStockPrices)
		api.GET("/stats", config.SystemHandler.Stats)
	}
}

// ErrorHandler renders unmatched routes as plain-text 404s and every other
// unhandled error as a JSON 500
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		switch {
		case he.Code == http.StatusNotFound || he.Code == http.StatusMethodNotAllowed:
			err = NotFoundResponse(c)
		case he.Code < http.StatusInternalServerError:
			err = ErrorResponse(c, he.Code, fmt.Sprint(he.Message))
		default:
			log.Error().Err(he).Str("uri", c.Request().RequestURI).Msg("Unhandled error")
			err = InternalServerErrorResponse(c, MsgInternalError)
		}
	} else {
		log.Error().Err(err).Str("uri", c.Request().RequestURI).Msg("Unhandled error")
		err = InternalServerErrorResponse(c, MsgInternalError)
	}

	if err != nil {
		log.Error().Err(err).Msg("Failed to write error response")
	}
}
