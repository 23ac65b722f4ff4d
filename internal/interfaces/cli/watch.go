package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/lunchbook/internal/application/scheduler"
)

func NewWatchCmd() *cobra.Command {
	var (
		interval    time.Duration
		until       string
		timezone    string
		maxAttempts int
		install     bool
	)

	c := &cobra.Command{
		Use:   "watch",
		Short: "Repeat booking attempts on an interval until one succeeds",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			loc, err := time.LoadLocation(timezone)
			if err != nil {
				return fmt.Errorf("invalid --timezone: %w", err)
			}
			end, err := parseUntil(until, time.Now().In(loc))
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(runContext(cmd), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			journal, err := e.openJournal(ctx)
			if err != nil {
				e.log.Warn("attempt journal disabled", "err", err)
				journal = nil
			}

			b, err := e.startBrowser(install)
			if err != nil {
				return err
			}
			defer b.Stop()

			r := &scheduler.Runner{
				Attempt:     e.bookLunch(b, journal),
				Interval:    interval,
				Until:       end,
				MaxAttempts: maxAttempts,
				Log:         e.log,
			}
			rep, err := r.Run(ctx)
			if rep.ID != "" {
				printReport(cmd, rep)
			}
			return err
		},
	}

	c.Flags().DurationVar(&interval, "interval", 5*time.Minute, "delay between attempts")
	c.Flags().StringVar(&until, "until", "", "stop after this local time (HH:MM or RFC3339); empty runs until success")
	c.Flags().StringVar(&timezone, "timezone", "Asia/Taipei", "timezone for --until HH:MM")
	c.Flags().IntVar(&maxAttempts, "max-attempts", 0, "stop after N attempts (0 = no limit)")
	c.Flags().BoolVar(&install, "install-browser", true, "download the Playwright driver and Chromium if missing")
	return c
}

// parseUntil accepts RFC3339 or HH:MM. HH:MM already past today means
// tomorrow.
func parseUntil(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	hm, err := time.ParseInLocation("15:04", s, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --until %q (want HH:MM or RFC3339)", s)
	}
	t := time.Date(now.Year(), now.Month(), now.Day(), hm.Hour(), hm.Minute(), 0, 0, now.Location())
	if !t.After(now) {
		t = t.AddDate(0, 0, 1)
	}
	return t, nil
}
