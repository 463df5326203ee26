package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"stockchecker/configs"
	"stockchecker/internal/adapter"
	"stockchecker/internal/database"
	deliveryhttp "stockchecker/internal/delivery/http"
	"stockchecker/internal/domain"
	"stockchecker/internal/infra"
	"stockchecker/internal/logging"
	"stockchecker/internal/repository"
	"stockchecker/internal/service"
	"stockchecker/internal/usecase"
)

func main() {
	// Load environment variables
	envErr := godotenv.Load()

	// Load configuration
	cfg := configs.Load()
	logging.Init(cfg.Log.Level, !cfg.IsProduction())

	if envErr != nil {
		log.Warn().Msg(".env file not found, using environment variables")
	}

	ctx := context.Background()

	// Initialize like ledger
	ledger, closeLedger, err := newLedger(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Ledger.Backend).Msg("Failed to initialize like ledger")
	}
	defer closeLedger()

	// Initialize services
	likers, err := service.NewLikerIdentifier(cfg.Liker.Salt)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid liker configuration")
	}
	quotes := adapter.NewQuoteClient(cfg.Quote.URL, cfg.Quote.Timeout)
	stockService := usecase.NewStockService(quotes, ledger)

	// Initialize ledger stats scheduler
	scheduler := infra.NewScheduler(ledger, cfg.Ledger.StatsSchedule)
	if err := scheduler.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start scheduler")
	}
	defer scheduler.Stop()

	ipExtractor, err := deliveryhttp.NewIPExtractor(cfg.Server.TrustedProxies)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid TRUSTED_PROXIES")
	}

	// Initialize HTTP router
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	deliveryhttp.SetupRoutes(e, &deliveryhttp.RouterConfig{
		StockHandler:  deliveryhttp.NewStockHandler(stockService, likers),
		SystemHandler: deliveryhttp.NewSystemHandler(ledger),
		IPExtractor:   ipExtractor,
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info().
		Str("addr", addr).
		Str("env", cfg.Server.Env).
		Str("ledger", cfg.Ledger.Backend).
		Str("quote_api", cfg.Quote.URL).
		Msg("Stock Price Checker starting")

	// Create HTTP server; the write timeout must outlast the upstream quote timeout
	srv := &http.Server{
		Addr:         addr,
		Handler:      e,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Quote.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Run server in goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
		return
	}

	log.Info().Msg("[OK] Server exited gracefully")
}

// newLedger connects the configured ledger backend and returns it with its teardown
func newLedger(ctx context.Context, cfg *configs.Config) (domain.LikeLedger, func(), error) {
	switch cfg.Ledger.Backend {
	case configs.LedgerPostgres:
		db, err := infra.NewDatabase(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		if err := database.RunMigrations(ctx, db); err != nil {
			db.Close()
			return nil, nil, err
		}
		return repository.NewStockLikeRepository(db), db.Close, nil

	case configs.LedgerRedis:
		client, err := infra.NewRedis(ctx, cfg.Redis.URL)
		if err != nil {
			return nil, nil, err
		}
		closeClient := func() {
			if err := client.Close(); err != nil {
				log.Error().Err(err).Msg("Failed to close redis client")
			}
		}
		return repository.NewRedisLikeRepository(client), closeClient, nil

	default:
		return nil, nil, fmt.Errorf("unknown LEDGER_BACKEND %q (want %q or %q)",
			cfg.Ledger.Backend, configs.LedgerPostgres, configs.LedgerRedis)
	}
}
