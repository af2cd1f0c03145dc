package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewFreeCmd(opts *rootOptions) *cobra.Command {
	var (
		date     string
		bookings []string
		sortBy   bool
	)
	c := &cobra.Command{
		Use:   "free",
		Short: "List free tables across all restaurants",
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
			for _, label := range s.queries().Execute(at, sortBy) {
				fmt.Fprintln(cmd.OutOrStdout(), label)
			}
			return nil
		},
	}
	c.Flags().StringVar(&date, "date", "", "date or time to check (default now)")
	c.Flags().StringArrayVar(&bookings, "book", nil, "book restaurant:table before listing (repeatable)")
	c.Flags().BoolVar(&sortBy, "sort", false, "order restaurants by availability first")
	return c
}
