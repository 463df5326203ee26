package infra

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"stockchecker/internal/domain"
)

// Scheduler periodically reports like ledger totals
type Scheduler struct {
	cron     *cron.Cron
	ledger   domain.LikeLedger
	schedule string
}

// NewScheduler creates a new scheduler.
// schedule is a cron spec such as "@every 1h"; empty disables the job.
func NewScheduler(ledger domain.LikeLedger, schedule string) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		ledger:   ledger,
		schedule: schedule,
	}
}

// Start registers the stats job and starts the cron scheduler
func (s *Scheduler) Start() error {
	if s.schedule == "" {
		log.Info().Msg("Ledger stats job disabled")
		return nil
	}

	if _, err := s.cron.AddFunc(s.schedule, s.RunNow); err != nil {
		return err
	}

	s.cron.Start()
	log.Info().Str("schedule", s.schedule).Msg("[OK] Scheduler started successfully")
	return nil
}

// RunNow logs the current ledger stats once
func (s *Scheduler) RunNow() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stats, err := s.ledger.Stats(ctx)
	if err != nil {
		log.Error().Err(err).Msg("[CRON] Ledger stats failed")
		return
	}

	log.Info().
		Int64("stocks", stats.Stocks).
		Int64("likes", stats.Likes).
		Msg("[CRON] Ledger stats")
}

// Stop stops the scheduler and waits for a running job to finish
func (s *Scheduler) Stop() {
	log.Info().Msg("Stopping scheduler...")
	<-s.cron.Stop().Done()
	log.Info().Msg("[OK] Scheduler stopped")
}
