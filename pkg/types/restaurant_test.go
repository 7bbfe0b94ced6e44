package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRestaurant(t *testing.T) {
	_, err := NewRestaurant("", 10)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewRestaurant("Bistro", 0)
	assert.ErrorIs(t, err, ErrValidation)

	r, err := NewRestaurant("Bistro", 10)
	require.NoError(t, err)
	assert.Equal(t, "Bistro", r.Name())
	assert.Equal(t, 10, r.MaxCapacity())
	assert.Zero(t, r.NumberOfTables())
}

func TestRestaurantAddTable(t *testing.T) {
	tests := []struct {
		name     string
		tables   [][2]int
		wantErr  error
		wantKept int
	}{
		{name: "fits", tables: [][2]int{{1, 4}, {2, 2}}, wantKept: 2},
		{name: "fills capacity exactly", tables: [][2]int{{1, 6}, {2, 4}}, wantKept: 2},
		{name: "duplicate number", tables: [][2]int{{1, 4}, {1, 2}}, wantErr: ErrDuplicateKey, wantKept: 1},
		{name: "seats beyond capacity", tables: [][2]int{{1, 8}, {2, 4}}, wantKept: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRestaurant("Bistro", 10)
			require.NoError(t, err)

			var last error
			for _, tbl := range tt.tables {
				last = r.AddTable(newTestTable(t, tbl[0], tbl[1]))
			}
			if tt.wantErr != nil {
				assert.ErrorIs(t, last, tt.wantErr)
			} else {
				assert.NoError(t, last)
			}
			assert.Equal(t, tt.wantKept, r.NumberOfTables())
		})
	}
}

func TestRestaurantRemoveTable(t *testing.T) {
	r, err := NewRestaurant("Bistro", 10)
	require.NoError(t, err)
	table := newTestTable(t, 1, 4)
	require.NoError(t, r.AddTable(table))

	assert.Same(t, table, r.Table(1))
	assert.True(t, r.RemoveTable(table))
	assert.False(t, r.RemoveTable(table))
	assert.Nil(t, r.Table(1))

	// The number is free again.
	require.NoError(t, r.AddTable(newTestTable(t, 1, 4)))
}

func TestRestaurantMenus(t *testing.T) {
	r, err := NewRestaurant("Bistro", 10)
	require.NoError(t, err)
	main, err := NewMenu("Main", "Dinner", []string{"EN"})
	require.NoError(t, err)
	again, err := NewMenu("Main", "Lunch", []string{"TR"})
	require.NoError(t, err)

	require.NoError(t, r.AddMenu(main))
	assert.ErrorIs(t, r.AddMenu(again), ErrDuplicateKey)
	assert.ErrorIs(t, r.AddMenu(nil), ErrPrecondition)
	assert.Equal(t, []*Menu{main}, r.Menus())
	assert.Same(t, main, r.Menu("Main"))

	assert.True(t, r.RemoveMenu(main))
	assert.False(t, r.RemoveMenu(main))
	assert.Empty(t, r.Menus())
}

func TestRestaurantSeatCount(t *testing.T) {
	r, err := NewRestaurant("Bistro", 6)
	require.NoError(t, err)
	require.NoError(t, r.AddTable(newTestTable(t, 1, 4)))
	require.NoError(t, r.AddTable(newTestTable(t, 2, 4)))

	assert.Equal(t, 8, r.SeatCount())
	assert.Greater(t, r.SeatCount(), r.MaxCapacity())
}
