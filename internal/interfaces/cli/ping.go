package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/lunchbook/internal/application/usecases"
	"github.com/example/lunchbook/internal/infrastructure/config"
)

func NewPingCmd() *cobra.Command {
	var install bool
	c := &cobra.Command{
		Use:   "ping",
		Short: "Load the booking page once and report what the probe sees",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			b, err := e.startBrowser(install)
			if err != nil {
				return err
			}
			defer b.Stop()

			uc := usecases.PingPage{Browser: b, URL: e.profile.URL, Timeout: config.PageLoadTimeout}
			n, err := uc.Execute(runContext(cmd))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d buttons)\n", e.profile.Name, n)
			return nil
		},
	}
	c.Flags().BoolVar(&install, "install-browser", true, "download the Playwright driver and Chromium if missing")
	return c
}
