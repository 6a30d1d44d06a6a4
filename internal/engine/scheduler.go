package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/donaldgifford/steam-price-tracker/internal/metrics"
)

// Scheduler triggers the check cycle on a fixed interval. Cycles never
// overlap: a tick that fires while a cycle is still running is skipped.
type Scheduler struct {
	cron         *cron.Cron
	engine       *Engine
	log          *slog.Logger
	checkEntryID cron.EntryID

	wg sync.WaitGroup
}

// NewScheduler creates a Scheduler running eng every interval.
func NewScheduler(eng *Engine, interval time.Duration, log *slog.Logger) (*Scheduler, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("check interval must be positive, got %s", interval)
	}

	c := cron.New(cron.WithChain(
		cron.Recover(cronLogger{log}),
		cron.SkipIfStillRunning(cronLogger{log}),
	))

	s := &Scheduler{
		cron:   c,
		engine: eng,
		log:    log,
	}

	id, err := c.AddFunc("@every "+interval.String(), s.runCheck)
	if err != nil {
		return nil, fmt.Errorf("registering check job: %w", err)
	}
	s.checkEntryID = id

	return s, nil
}

// Start begins running scheduled checks. With runNow set, one cycle also
// starts immediately instead of waiting for the first tick.
func (s *Scheduler) Start(runNow bool) {
	s.log.Info("scheduler started")
	s.cron.Start()
	s.SyncNextRunTimestamp()

	if runNow {
		s.wg.Go(s.runCheck)
	}
}

// Stop halts the schedule and returns a context that is done once every
// running cycle has finished.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	cronCtx := s.cron.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-cronCtx.Done()
		s.wg.Wait()
		cancel()
	}()
	return ctx
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// SyncNextRunTimestamp publishes the next scheduled run to metrics.
func (s *Scheduler) SyncNextRunTimestamp() {
	entry := s.cron.Entry(s.checkEntryID)
	if entry.Next.IsZero() {
		return
	}
	metrics.NextCheckTimestamp.Set(float64(entry.Next.Unix()))
}

func (s *Scheduler) runCheck() {
	defer s.SyncNextRunTimestamp()

	s.log.Info("scheduled check starting")
	_, err := s.engine.RunCheck(context.Background())
	switch {
	case errors.Is(err, ErrCheckInProgress):
		s.log.Info("scheduled check skipped, another check is running")
	case err != nil:
		s.log.Error("scheduled check failed", "error", err)
	}
}

// cronLogger adapts slog to the cron.Logger interface.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error("cron: "+msg, append([]any{"error", err}, keysAndValues...)...)
}
