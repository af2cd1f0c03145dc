package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/table-reservations/internal/clock"
)

var (
	Version   = "dev"
	CommitSHA = "none"
	BuildDate = "unknown"
)

func NewRoot(clk clock.Clock) *cobra.Command {
	opts := &rootOptions{clock: clk}
	cmd := &cobra.Command{
		Use:           "tablebook",
		Short:         "Track table availability and bookings across restaurants",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "optional dotenv file read before the environment")
	cmd.PersistentFlags().StringVar(&opts.file, "file", "", "restaurants file, one \"name,tables\" per line (default $TABLEBOOK_RESTAURANTS_FILE)")

	cmd.AddCommand(NewDemoCmd())
	cmd.AddCommand(NewFreeCmd(opts))
	cmd.AddCommand(NewBookCmd(opts))
	cmd.AddCommand(NewSortCmd(opts))
	cmd.AddCommand(NewVersionCmd())
	return cmd
}
