package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewSortCmd(opts *rootOptions) *cobra.Command {
	var (
		date     string
		bookings []string
	)
	c := &cobra.Command{
		Use:   "sort",
		Short: "Print restaurants ordered by free tables, most first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			at, err := s.when(date)
			if err != nil {
				return err
			}
			if err := s.applyBookings(bookings, at); err != nil {
				return err
			}
			for _, a := range s.queries().Rank(at) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s free=%d tables=%d\n", a.Name, a.Free, a.Tables)
			}
			return nil
		},
	}
	c.Flags().StringVar(&date, "date", "", "date or time to rank by (default now)")
	c.Flags().StringArrayVar(&bookings, "book", nil, "book restaurant:table before ranking (repeatable)")
	return c
}
