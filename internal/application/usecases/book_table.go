package usecases

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/example/table-reservations/internal/domain/reservation"
)

// BookTable normalizes the requested time to the configured granularity
// before booking, so "day" bookings at 12:00 and 19:00 collide.
type BookTable struct {
	Manager     *reservation.Manager
	Granularity reservation.Granularity
	Location    *time.Location
	Log         logrus.FieldLogger
}

func (u BookTable) Execute(restaurant string, tableIndex int, at time.Time) (bool, error) {
	if u.Manager == nil {
		return false, fmt.Errorf("manager is nil")
	}
	key := u.Granularity.Normalize(at, u.Location)
	ok, err := u.Manager.BookTable(restaurant, tableIndex, key)
	if err != nil {
		return false, fmt.Errorf("book %s table %d: %w", restaurant, tableIndex+1, err)
	}
	if u.Log != nil {
		u.Log.WithFields(logrus.Fields{
			"restaurant": restaurant,
			"table":      tableIndex + 1,
			"at":         key.Format(time.RFC3339),
			"booked":     ok,
		}).Debug("book table")
	}
	return ok, nil
}
