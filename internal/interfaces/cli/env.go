package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/example/lunchbook/internal/application/usecases"
	"github.com/example/lunchbook/internal/domain/booking"
	"github.com/example/lunchbook/internal/infrastructure/browser"
	"github.com/example/lunchbook/internal/infrastructure/config"
	"github.com/example/lunchbook/internal/infrastructure/postgres"
	"github.com/example/lunchbook/internal/infrastructure/profile"
	"github.com/example/lunchbook/internal/logging"
)

// env holds what every command needs, built from the process environment.
type env struct {
	cfg     config.Config
	log     *slog.Logger
	profile booking.SiteProfile

	db *postgres.DB
}

func loadEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	if p, _ := cmd.Flags().GetString("profile"); p != "" {
		cfg.ProfilePath = p
	}
	prof, err := profile.Load(cfg.ProfilePath)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, log: logging.New(cfg.LogLevel), profile: prof}, nil
}

// openJournal connects the attempt journal when DATABASE_URL is set.
func (e *env) openJournal(ctx context.Context) (booking.AttemptJournal, error) {
	if e.cfg.DatabaseURL == "" {
		return nil, nil
	}
	d, err := postgres.Open(ctx, e.cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := d.Ping(ctx); err != nil {
		d.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}
	if err := postgres.Migrate(ctx, d); err != nil {
		d.Close()
		return nil, err
	}
	e.db = d
	return postgres.NewAttemptRepo(d), nil
}

func (e *env) startBrowser(install bool) (*browser.Browser, error) {
	return browser.Start(browser.Options{
		Headless:      config.Headless,
		ActionTimeout: config.ActionTimeout,
		Install:       install,
	})
}

func (e *env) bookLunch(b booking.SessionOpener, j booking.AttemptJournal) usecases.BookLunch {
	return usecases.BookLunch{
		Browser: b,
		Profile: e.profile,
		Contact: e.cfg.Contact,
		Horizon: config.Horizon,
		Timing: usecases.Timing{
			PageLoad:    config.PageLoadTimeout,
			Settle:      config.SettleDelay,
			ConfirmWait: config.ConfirmWait,
		},
		Journal: j,
		Log:     e.log,
	}
}

func (e *env) Close() {
	if e.db != nil {
		e.db.Close()
	}
}

func printReport(cmd *cobra.Command, r booking.Report) {
	fmt.Fprintf(cmd.OutOrStdout(), "attempt=%s result=%s confirmed=%t guests_set=%t advances=%d\n",
		r.ID, r.Result, r.Confirmed, r.GuestsSet, r.Advances)
}
