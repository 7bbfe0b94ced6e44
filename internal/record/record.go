// Package record defines the persisted form of the restaurant extent. Both
// stores read and write these structures; pkg/extent converts them to and
// from domain values.
package record

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrentVersion is the document layout written by this build.
const CurrentVersion = 1

// Document is one saved extent.
type Document struct {
	Version     int          `json:"version"`
	SavedAt     time.Time    `json:"saved_at"`
	Restaurants []Restaurant `json:"restaurants"`
}

// Restaurant holds a restaurant with everything it owns.
type Restaurant struct {
	Name        string  `json:"name"`
	MaxCapacity int     `json:"max_capacity"`
	Tables      []Table `json:"tables"`
	Menus       []Menu  `json:"menus"`
}

// Table holds a table and the reservations booked on it.
type Table struct {
	Number       int           `json:"number"`
	Seats        int           `json:"seats"`
	Type         string        `json:"type"`
	Reservations []Reservation `json:"reservations"`
}

// Reservation is stored under its table. The customer is kept as an id.
type Reservation struct {
	ID         string `json:"id"`
	Date       string `json:"date"`
	PartySize  int    `json:"party_size"`
	Status     string `json:"status"`
	CustomerID string `json:"customer_id,omitempty"`
}

// Menu holds a menu and its dishes in menu order.
type Menu struct {
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Languages []string `json:"languages"`
	Dishes    []Dish   `json:"dishes"`
}

// Dish is a menu item.
type Dish struct {
	Name        string          `json:"name"`
	Cuisine     string          `json:"cuisine"`
	Vegetarian  bool            `json:"vegetarian"`
	Vegan       bool            `json:"vegan"`
	Price       decimal.Decimal `json:"price"`
	Ingredients []string        `json:"ingredients"`
}
