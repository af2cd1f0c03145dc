package usecases

import (
	"time"

	"github.com/example/table-reservations/internal/domain/reservation"
)

type FreeTables struct {
	Manager     *reservation.Manager
	Granularity reservation.Granularity
	Location    *time.Location
}

// Execute lists free table labels at the normalized instant. With sortFirst
// the manager's restaurant order is permanently reordered by availability.
func (u FreeTables) Execute(at time.Time, sortFirst bool) []string {
	key := u.Granularity.Normalize(at, u.Location)
	if sortFirst {
		u.Manager.SortRestaurantsByAvailability(key)
	}
	return u.Manager.FindAllFreeTables(key)
}

// Rank sorts restaurants by availability and returns the resulting order.
func (u FreeTables) Rank(at time.Time) []reservation.Availability {
	key := u.Granularity.Normalize(at, u.Location)
	u.Manager.SortRestaurantsByAvailability(key)
	return u.Manager.Availability(key)
}
