package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/lunchbook/internal/infrastructure/profile"
)

func NewProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Print the effective site profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()
			b, err := profile.Marshal(e.profile)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}
