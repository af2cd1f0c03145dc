package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/table-reservations/internal/domain/reservation"
)

func NewDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Add two sample restaurants and book the same table twice",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := reservation.NewManager()
			if err := m.AddRestaurant("A", 10); err != nil {
				return err
			}
			if err := m.AddRestaurant("B", 5); err != nil {
				return err
			}
			date := time.Date(2023, 12, 25, 0, 0, 0, 0, time.UTC)
			for i := 0; i < 2; i++ {
				ok, err := m.BookTable("A", 3, date)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ok)
			}
			return nil
		},
	}
}
