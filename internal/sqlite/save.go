package sqlite

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/mesh-intelligence/bistro/internal/record"
)

// saveDocument deletes every row and writes doc in one transaction. On any
// error the transaction rolls back and the previous contents remain.
func saveDocument(db *sql.DB, doc *record.Document) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning save transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range clearOrder {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	if err := insertMeta(tx, doc); err != nil {
		return err
	}
	for i, r := range doc.Restaurants {
		if err := insertRestaurant(tx, i, r); err != nil {
			return fmt.Errorf("saving restaurant %q: %w", r.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing save transaction: %w", err)
	}
	return nil
}

func insertMeta(tx *sql.Tx, doc *record.Document) error {
	const q = `INSERT INTO extent_meta (key, value) VALUES (?, ?)`
	if _, err := tx.Exec(q, metaVersion, strconv.Itoa(doc.Version)); err != nil {
		return fmt.Errorf("saving version: %w", err)
	}
	if _, err := tx.Exec(q, metaSavedAt, doc.SavedAt.UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("saving timestamp: %w", err)
	}
	return nil
}

func insertRestaurant(tx *sql.Tx, id int, r record.Restaurant) error {
	if _, err := tx.Exec(
		`INSERT INTO restaurants (restaurant_id, name, max_capacity) VALUES (?, ?, ?)`,
		id, r.Name, r.MaxCapacity,
	); err != nil {
		return err
	}
	for pos, t := range r.Tables {
		if err := insertTable(tx, id, pos, t); err != nil {
			return fmt.Errorf("table %d: %w", t.Number, err)
		}
	}
	for pos, m := range r.Menus {
		if err := insertMenu(tx, id, pos, m); err != nil {
			return fmt.Errorf("menu %q: %w", m.Name, err)
		}
	}
	return nil
}

func insertTable(tx *sql.Tx, restaurantID, pos int, t record.Table) error {
	if _, err := tx.Exec(
		`INSERT INTO restaurant_tables (restaurant_id, table_number, position, seats, table_type) VALUES (?, ?, ?, ?, ?)`,
		restaurantID, t.Number, pos, t.Seats, t.Type,
	); err != nil {
		return err
	}
	for rpos, res := range t.Reservations {
		if _, err := tx.Exec(
			`INSERT INTO reservations (reservation_id, restaurant_id, table_number, position, reserved_on, party_size, status, customer_id)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			res.ID, restaurantID, t.Number, rpos, res.Date, res.PartySize, res.Status, nullString(res.CustomerID),
		); err != nil {
			return fmt.Errorf("reservation %s: %w", res.ID, err)
		}
	}
	return nil
}

func insertMenu(tx *sql.Tx, restaurantID, pos int, m record.Menu) error {
	if _, err := tx.Exec(
		`INSERT INTO menus (restaurant_id, menu_name, position, menu_type) VALUES (?, ?, ?, ?)`,
		restaurantID, m.Name, pos, m.Type,
	); err != nil {
		return err
	}
	for lpos, lang := range m.Languages {
		if _, err := tx.Exec(
			`INSERT INTO menu_languages (restaurant_id, menu_name, position, language) VALUES (?, ?, ?, ?)`,
			restaurantID, m.Name, lpos, lang,
		); err != nil {
			return fmt.Errorf("language %q: %w", lang, err)
		}
	}
	for dpos, d := range m.Dishes {
		if err := insertDish(tx, restaurantID, m.Name, dpos, d); err != nil {
			return fmt.Errorf("dish %q: %w", d.Name, err)
		}
	}
	return nil
}

func insertDish(tx *sql.Tx, restaurantID int, menuName string, pos int, d record.Dish) error {
	if _, err := tx.Exec(
		`INSERT INTO dishes (restaurant_id, menu_name, dish_name, position, cuisine, vegetarian, vegan, price)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		restaurantID, menuName, d.Name, pos, d.Cuisine, boolInt(d.Vegetarian), boolInt(d.Vegan), d.Price.String(),
	); err != nil {
		return err
	}
	for ipos, ingredient := range d.Ingredients {
		if _, err := tx.Exec(
			`INSERT INTO dish_ingredients (restaurant_id, menu_name, dish_name, position, ingredient) VALUES (?, ?, ?, ?, ?)`,
			restaurantID, menuName, d.Name, ipos, ingredient,
		); err != nil {
			return fmt.Errorf("ingredient %q: %w", ingredient, err)
		}
	}
	return nil
}

// nullString stores an empty string as NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
