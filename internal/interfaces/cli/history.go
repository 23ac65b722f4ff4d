package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/lunchbook/internal/application/usecases"
)

func NewHistoryCmd() *cobra.Command {
	var limit int
	c := &cobra.Command{
		Use:   "history",
		Short: "List recorded attempts (requires DATABASE_URL)",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()
			if e.cfg.DatabaseURL == "" {
				return errors.New("DATABASE_URL is required")
			}

			journal, err := e.openJournal(runContext(cmd))
			if err != nil {
				return err
			}
			reports, err := usecases.ListAttempts{Journal: journal, Limit: limit}.Execute(runContext(cmd))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, r := range reports {
				fmt.Fprintf(out, "%s %s result=%s confirmed=%t advances=%d visited=%s",
					r.StartedAt.Local().Format(time.RFC3339), r.ID, r.Result, r.Confirmed, r.Advances, strings.Join(r.Visited, ","))
				if r.Error != "" {
					fmt.Fprintf(out, " error=%q", r.Error)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
	c.Flags().IntVar(&limit, "limit", usecases.DefaultHistoryLimit, "number of attempts to show")
	return c
}
