package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/example/lunchbook/internal/domain/booking"
)

// ErrWindowClosed is returned when the window ends without a successful attempt.
var ErrWindowClosed = errors.New("attempt window closed")

type Attempter interface {
	Execute(ctx context.Context) (booking.Report, error)
}

// Runner re-invokes an attempt on a ticker until one succeeds, the window
// closes or the context is cancelled. Attempts never overlap.
type Runner struct {
	Attempt  Attempter
	Interval time.Duration
	// Until closes the window; zero means no end.
	Until time.Time
	// MaxAttempts caps the number of attempts; zero means no cap.
	MaxAttempts int
	Log         *slog.Logger

	now func() time.Time
}

// Run returns the last report. The error is nil only when an attempt
// succeeded.
func (r *Runner) Run(ctx context.Context) (booking.Report, error) {
	log := r.Log
	if log == nil {
		log = slog.Default()
	}
	log = log.With("component", "scheduler")
	now := r.now
	if now == nil {
		now = time.Now
	}
	interval := r.Interval
	if interval <= 0 {
		interval = time.Minute
	}

	t := time.NewTicker(interval)
	defer t.Stop()

	var last booking.Report
	attempts := 0
	for {
		if !r.Until.IsZero() && !now().Before(r.Until) {
			log.Info("window closed", "attempts", attempts)
			return last, ErrWindowClosed
		}

		rep, err := r.Attempt.Execute(ctx)
		attempts++
		last = rep
		switch {
		case err != nil && ctx.Err() != nil:
			return last, ctx.Err()
		case err != nil:
			log.Warn("attempt failed, will retry", "attempt", rep.ID, "err", err)
		case rep.Result == booking.ResultSuccess:
			log.Info("booked", "attempt", rep.ID, "attempts", attempts, "confirmed", rep.Confirmed)
			return last, nil
		default:
			log.Info("attempt did not book", "attempt", rep.ID, "result", rep.Result)
		}

		if r.MaxAttempts > 0 && attempts >= r.MaxAttempts {
			log.Info("attempt limit reached", "attempts", attempts)
			return last, ErrWindowClosed
		}

		select {
		case <-ctx.Done():
			return last, ctx.Err()
		case <-t.C:
		}
	}
}
