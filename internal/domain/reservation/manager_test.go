package reservation

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/table-reservations/internal/internaltypes"
)

var christmas = time.Date(2023, 12, 25, 0, 0, 0, 0, time.UTC)

func TestManager_AddRestaurant(t *testing.T) {
	t.Parallel()

	t.Run("rejects case-insensitive duplicates", func(t *testing.T) {
		m := NewManager()
		require.NoError(t, m.AddRestaurant("Cafe", 3))

		err := m.AddRestaurant("cafe", 4)
		assert.ErrorIs(t, err, internaltypes.ErrDuplicateKey)
		err = m.AddRestaurant("CAFE", 1)
		assert.ErrorIs(t, err, internaltypes.ErrDuplicateKey)
		assert.Equal(t, 1, m.Len())
	})

	t.Run("folds non-ascii names", func(t *testing.T) {
		m := NewManager()
		require.NoError(t, m.AddRestaurant("Café", 2))
		assert.ErrorIs(t, m.AddRestaurant("CAFÉ", 2), internaltypes.ErrDuplicateKey)
	})

	t.Run("propagates invalid arguments", func(t *testing.T) {
		m := NewManager()
		assert.ErrorIs(t, m.AddRestaurant(" ", 3), internaltypes.ErrInvalidArgument)
		assert.ErrorIs(t, m.AddRestaurant("A", 0), internaltypes.ErrInvalidArgument)
		assert.Equal(t, 0, m.Len())
	})

	t.Run("preserves insertion order", func(t *testing.T) {
		m := NewManager()
		for _, n := range []string{"C", "A", "B"} {
			require.NoError(t, m.AddRestaurant(n, 1))
		}
		assert.Equal(t, []string{"C", "A", "B"}, names(m.Availability(christmas)))
	})
}

func TestManager_BookTable(t *testing.T) {
	t.Parallel()

	m := NewManager()
	require.NoError(t, m.AddRestaurant("A", 10))
	other := christmas.AddDate(0, 0, 1)

	ok, err := m.BookTable("A", 3, christmas)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = m.BookTable("A", 3, christmas)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = m.BookTable("A", 9, christmas)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = m.BookTable("A", 3, other)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = m.BookTable("a", 4, christmas)
	require.NoError(t, err, "lookup is case-insensitive")
	assert.True(t, ok)

	_, err = m.BookTable("Z", 0, christmas)
	assert.ErrorIs(t, err, internaltypes.ErrNotFound)

	_, err = m.BookTable("A", 10, christmas)
	assert.ErrorIs(t, err, internaltypes.ErrIndexOutOfRange)

	n, err := m.CountAvailableTables("A", christmas)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	_, err = m.CountAvailableTables("Z", christmas)
	assert.ErrorIs(t, err, internaltypes.ErrNotFound)
}

func TestManager_FindAllFreeTables(t *testing.T) {
	t.Parallel()

	m := NewManager()
	require.NoError(t, m.AddRestaurant("A", 3))
	_, err := m.BookTable("A", 1, christmas)
	require.NoError(t, err)

	assert.Equal(t, []string{"A - Table 1", "A - Table 3"}, m.FindAllFreeTables(christmas))
	assert.Equal(t, []string{"A - Table 1", "A - Table 2", "A - Table 3"}, m.FindAllFreeTables(christmas.Add(time.Hour)))

	require.NoError(t, m.AddRestaurant("B", 2))
	_, err = m.BookTable("B", 0, christmas)
	require.NoError(t, err)
	assert.Equal(t, []string{"A - Table 1", "A - Table 3", "B - Table 2"}, m.FindAllFreeTables(christmas))

	assert.Empty(t, NewManager().FindAllFreeTables(christmas))
}

func TestManager_SortRestaurantsByAvailability(t *testing.T) {
	t.Parallel()

	m := NewManager()
	require.NoError(t, m.AddRestaurant("A", 4))
	require.NoError(t, m.AddRestaurant("B", 3))
	require.NoError(t, m.AddRestaurant("C", 5))
	for _, i := range []int{0, 1} {
		_, err := m.BookTable("A", i, christmas)
		require.NoError(t, err)
	}
	_, err := m.BookTable("B", 2, christmas)
	require.NoError(t, err)

	m.SortRestaurantsByAvailability(christmas)

	got := m.Availability(christmas)
	assert.Equal(t, []string{"C", "A", "B"}, names(got))
	assert.Equal(t, []int{5, 2, 2}, []int{got[0].Free, got[1].Free, got[2].Free})

	// order persists and the next sort starts from it
	m.SortRestaurantsByAvailability(christmas.AddDate(0, 0, 1))
	assert.Equal(t, []string{"C", "A", "B"}, names(m.Availability(christmas)))
	assert.Equal(t, []string{"C - Table 1"}, m.FindAllFreeTables(christmas)[:1])
}

func TestManager_ConcurrentBookingIsAtMostOnce(t *testing.T) {
	t.Parallel()

	m := NewManager()
	require.NoError(t, m.AddRestaurant("A", 1))

	const workers = 32
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := m.BookTable("A", 0, christmas)
			if err != nil {
				t.Error(err)
				return
			}
			_ = m.FindAllFreeTables(christmas)
			if ok {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, wins)
}

func names(as []Availability) []string {
	out := make([]string, len(as))
	for i, a := range as {
		out[i] = a.Name
	}
	return out
}
