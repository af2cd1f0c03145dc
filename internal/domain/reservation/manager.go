package reservation

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"golang.org/x/text/cases"

	"github.com/example/table-reservations/internal/internaltypes"
)

// Manager keeps an ordered list of restaurants with case-insensitively unique
// names. It is safe for concurrent use: mutations are serialized and queries
// may run in parallel with each other.
type Manager struct {
	mu          sync.RWMutex
	restaurants []*Restaurant
}

func NewManager() *Manager {
	return &Manager{}
}

// foldName returns the identity key for a restaurant name.
func foldName(name string) string {
	return cases.Fold().String(name)
}

// AddRestaurant appends a new restaurant with tableCount free tables.
func (m *Manager) AddRestaurant(name string, tableCount int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.lookup(name); ok {
		return fmt.Errorf("%w: restaurant %q already exists", internaltypes.ErrDuplicateKey, name)
	}
	r, err := NewRestaurant(name, tableCount)
	if err != nil {
		return err
	}
	m.restaurants = append(m.restaurants, r)
	return nil
}

// BookTable books tableIndex (0-based) at the named restaurant for at.
func (m *Manager) BookTable(restaurantName string, tableIndex int, at time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.lookup(restaurantName)
	if !ok {
		return false, fmt.Errorf("%w: restaurant %q", internaltypes.ErrNotFound, restaurantName)
	}
	return r.BookTable(tableIndex, at)
}

// FindAllFreeTables lists "{name} - Table {n}" for every table free at the
// given instant, in restaurant order then table order. n is 1-based.
func (m *Manager) FindAllFreeTables(at time.Time) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var free []string
	for _, r := range m.restaurants {
		for i, t := range r.tables {
			if !t.IsBooked(at) {
				free = append(free, fmt.Sprintf("%s - Table %d", r.name, i+1))
			}
		}
	}
	return free
}

// SortRestaurantsByAvailability reorders restaurants by descending number of
// free tables at the given instant. Equal counts keep their relative order.
func (m *Manager) SortRestaurantsByAvailability(at time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	type ranked struct {
		r    *Restaurant
		free int
	}
	rs := make([]ranked, len(m.restaurants))
	for i, r := range m.restaurants {
		rs[i] = ranked{r: r, free: r.CountAvailableTables(at)}
	}
	slices.SortStableFunc(rs, func(a, b ranked) int {
		return b.free - a.free
	})
	for i := range rs {
		m.restaurants[i] = rs[i].r
	}
}

// CountAvailableTables returns the free table count for the named restaurant.
func (m *Manager) CountAvailableTables(restaurantName string, at time.Time) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.lookup(restaurantName)
	if !ok {
		return 0, fmt.Errorf("%w: restaurant %q", internaltypes.ErrNotFound, restaurantName)
	}
	return r.CountAvailableTables(at), nil
}

// Availability reports every restaurant in current order.
func (m *Manager) Availability(at time.Time) []Availability {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Availability, 0, len(m.restaurants))
	for _, r := range m.restaurants {
		out = append(out, Availability{
			Name:   r.name,
			Tables: len(r.tables),
			Free:   r.CountAvailableTables(at),
		})
	}
	return out
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.restaurants)
}

func (m *Manager) lookup(name string) (*Restaurant, bool) {
	k := foldName(name)
	for _, r := range m.restaurants {
		if r.key == k {
			return r, true
		}
	}
	return nil, false
}
