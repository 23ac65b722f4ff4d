package cli

import (
	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	CommitSHA = "none"
	BuildDate = "unknown"
)

func NewRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "lunchbook",
		Short:         "Best-effort lunch booking for two on an inline.app reservation page",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().String("profile", "", "site profile YAML (default: embedded inline.app profile, or $LUNCHBOOK_PROFILE)")

	cmd.AddCommand(NewBookCmd())
	cmd.AddCommand(NewWatchCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewPingCmd())
	cmd.AddCommand(NewProfileCmd())
	cmd.AddCommand(NewVersionCmd())
	return cmd
}
