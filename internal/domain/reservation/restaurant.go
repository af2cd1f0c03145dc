package reservation

import (
	"fmt"
	"strings"
	"time"

	"github.com/example/table-reservations/internal/internaltypes"
)

// Restaurant owns a fixed number of tables addressed by 0-based index.
// A Restaurant is not safe for concurrent use; Manager serializes access.
type Restaurant struct {
	name   string
	key    string
	tables []*Table
}

func NewRestaurant(name string, tableCount int) (*Restaurant, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: restaurant name is required", internaltypes.ErrInvalidArgument)
	}
	if tableCount <= 0 {
		return nil, fmt.Errorf("%w: table count must be > 0 (got %d)", internaltypes.ErrInvalidArgument, tableCount)
	}
	tables := make([]*Table, tableCount)
	for i := range tables {
		tables[i] = newTable()
	}
	return &Restaurant{name: name, key: foldName(name), tables: tables}, nil
}

func (r *Restaurant) Name() string    { return r.name }
func (r *Restaurant) TableCount() int { return len(r.tables) }

// CountAvailableTables returns how many tables are free at the given instant.
func (r *Restaurant) CountAvailableTables(at time.Time) int {
	n := 0
	for _, t := range r.tables {
		if !t.IsBooked(at) {
			n++
		}
	}
	return n
}

func (r *Restaurant) IsTableBooked(tableIndex int, at time.Time) (bool, error) {
	t, err := r.table(tableIndex)
	if err != nil {
		return false, err
	}
	return t.IsBooked(at), nil
}

// BookTable books the table at tableIndex. The bool result is false when the
// table was already booked for at.
func (r *Restaurant) BookTable(tableIndex int, at time.Time) (bool, error) {
	t, err := r.table(tableIndex)
	if err != nil {
		return false, err
	}
	return t.Book(at), nil
}

func (r *Restaurant) table(i int) (*Table, error) {
	if i < 0 || i >= len(r.tables) {
		return nil, fmt.Errorf("%w: table %d not in [0,%d) for %q", internaltypes.ErrIndexOutOfRange, i, len(r.tables), r.name)
	}
	return r.tables[i], nil
}
