package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewBookCmd(opts *rootOptions) *cobra.Command {
	var (
		restaurant string
		table      int
		date       string
		bookings   []string
	)
	c := &cobra.Command{
		Use:   "book",
		Short: "Book a table and report whether it was free",
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
			ok, err := s.booker().Execute(restaurant, table-1, at)
			if err != nil {
				return err
			}
			free, err := s.manager.CountAvailableTables(restaurant, s.cfg.Granularity.Normalize(at, s.cfg.Location))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "booked=%t restaurant=%q table=%d free=%d\n", ok, restaurant, table, free)
			return nil
		},
	}
	c.Flags().StringVar(&restaurant, "restaurant", "", "restaurant name (case-insensitive)")
	c.Flags().IntVar(&table, "table", 0, "table number, starting at 1")
	c.Flags().StringVar(&date, "date", "", "date or time to book (default now)")
	c.Flags().StringArrayVar(&bookings, "book", nil, "existing booking restaurant:table to apply first (repeatable)")
	_ = c.MarkFlagRequired("restaurant")
	_ = c.MarkFlagRequired("table")
	return c
}
