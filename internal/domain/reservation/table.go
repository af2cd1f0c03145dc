package reservation

import "time"

// instant is the map key for a booked time. Two times that are Equal map to
// the same key regardless of location or monotonic reading.
type instant struct {
	sec  int64
	nsec int
}

func keyOf(t time.Time) instant {
	return instant{sec: t.Unix(), nsec: t.Nanosecond()}
}

// Table holds the set of instants it is booked for.
type Table struct {
	booked map[instant]struct{}
}

func newTable() *Table {
	return &Table{booked: make(map[instant]struct{})}
}

func (t *Table) IsBooked(at time.Time) bool {
	_, ok := t.booked[keyOf(at)]
	return ok
}

// Book reserves the table for at. It returns false if the table is already
// booked for that exact instant.
func (t *Table) Book(at time.Time) bool {
	k := keyOf(at)
	if _, ok := t.booked[k]; ok {
		return false
	}
	t.booked[k] = struct{}{}
	return true
}

func (t *Table) BookedCount() int { return len(t.booked) }
