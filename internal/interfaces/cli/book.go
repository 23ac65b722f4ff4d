package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/example/lunchbook/internal/domain/booking"
)

func NewBookCmd() *cobra.Command {
	var install bool

	c := &cobra.Command{
		Use:   "book",
		Short: "Run one booking attempt",
		Long: `Run one booking attempt: set two guests, search up to 30 days for a lunch slot,
fill the contact form from RES_NAME, RES_PHONE and RES_EMAIL, and submit.

Exits non-zero only when the booking page cannot be loaded.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

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

			e.log.Info("starting attempt", "party", 2, "slot", "lunch", "url", e.profile.URL)
			rep, err := e.bookLunch(b, journal).Execute(ctx)
			printReport(cmd, rep)
			if err != nil {
				return err
			}
			switch rep.Result {
			case booking.ResultSuccess:
				e.log.Info("done: form submitted, check SMS/LINE for verification")
			default:
				e.log.Info("done: no lunch slot booked", "result", rep.Result)
			}
			return nil
		},
	}
	c.Flags().BoolVar(&install, "install-browser", true, "download the Playwright driver and Chromium if missing")
	return c
}

// runContext is cmd.Context() or Background when executed outside Execute.
func runContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
