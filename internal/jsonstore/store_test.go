package jsonstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/bistro/internal/record"
)

func sampleDocument() *record.Document {
	return &record.Document{
		Version: record.CurrentVersion,
		SavedAt: time.Date(2024, 5, 19, 12, 0, 0, 0, time.UTC),
		Restaurants: []record.Restaurant{{
			Name:        "BYT Bistro",
			MaxCapacity: 120,
			Tables: []record.Table{{
				Number: 1, Seats: 4, Type: "Standard",
				Reservations: []record.Reservation{{ID: "r-1", Date: "2024-05-20", PartySize: 2, Status: "confirmed", CustomerID: "c-1"}},
			}},
			Menus: []record.Menu{{
				Name: "Main Menu", Type: "Dinner", Languages: []string{"English", "Turkish"},
				Dishes: []record.Dish{{
					Name: "Grilled Steak", Cuisine: "American",
					Price: decimal.RequireFromString("28.00"), Ingredients: []string{"Beef", "Salt"},
				}},
			}},
		}},
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "extent.json")
	s := New()
	doc := sampleDocument()

	require.NoError(t, s.Save(path, doc))

	got, err := s.Load(path)
	require.NoError(t, err)
	assert.Equal(t, doc.Version, got.Version)
	assert.True(t, doc.SavedAt.Equal(got.SavedAt))
	require.Len(t, got.Restaurants, 1)
	assert.Equal(t, doc.Restaurants[0].Tables, got.Restaurants[0].Tables)
	dish := got.Restaurants[0].Menus[0].Dishes[0]
	assert.True(t, decimal.RequireFromString("28").Equal(dish.Price))
	assert.Equal(t, []string{"Beef", "Salt"}, dish.Ingredients)
}

func TestSaveWritesIndentedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extent.json")
	require.NoError(t, New().Save(path, sampleDocument()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"version\": 1,")
	assert.Contains(t, string(data), "\"date\": \"2024-05-20\"")

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "saved_at")
}

func TestSaveReplacesAndLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "extent.json")
	s := New()

	require.NoError(t, s.Save(path, sampleDocument()))
	empty := &record.Document{Version: record.CurrentVersion}
	require.NoError(t, s.Save(path, empty))

	got, err := s.Load(path)
	require.NoError(t, err)
	assert.Empty(t, got.Restaurants)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	s := New()

	tests := []struct {
		name    string
		content *string
	}{
		{name: "missing file"},
		{name: "empty file", content: ptr("  \n")},
		{name: "malformed json", content: ptr(`{"version": 1, "restaurants": [`)},
		{name: "wrong shape", content: ptr(`{"version": "one"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".json")
			if tt.content != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tt.content), 0o644))
			}
			doc, err := s.Load(path)
			assert.Error(t, err)
			assert.Nil(t, doc)
		})
	}
}

func TestLoadMissingFileIsNotExist(t *testing.T) {
	_, err := New().Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func ptr(s string) *string { return &s }
