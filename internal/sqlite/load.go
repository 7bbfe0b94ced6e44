package sqlite

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mesh-intelligence/bistro/internal/record"
)

type tableKey struct {
	restaurant int
	number     int
}

type menuKey struct {
	restaurant int
	name       string
}

type dishKey struct {
	menuKey
	dish string
}

// loader rebuilds a document from rows. The index maps point into the
// slices of doc, which are complete before any child rows are read.
type loader struct {
	tx     *sql.Tx
	doc    *record.Document
	byID   map[int]int
	tables map[tableKey]int
	menus  map[menuKey]int
	dishes map[dishKey]int
}

// loadDocument reads every table in one transaction.
func loadDocument(db *sql.DB) (*record.Document, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	l := &loader{
		tx:     tx,
		doc:    &record.Document{},
		byID:   make(map[int]int),
		tables: make(map[tableKey]int),
		menus:  make(map[menuKey]int),
		dishes: make(map[dishKey]int),
	}
	steps := []struct {
		name string
		fn   func() error
	}{
		{"extent_meta", l.loadMeta},
		{"restaurants", l.loadRestaurants},
		{"restaurant_tables", l.loadTables},
		{"reservations", l.loadReservations},
		{"menus", l.loadMenus},
		{"menu_languages", l.loadLanguages},
		{"dishes", l.loadDishes},
		{"dish_ingredients", l.loadIngredients},
	}
	for _, step := range steps {
		if err := step.fn(); err != nil {
			return nil, fmt.Errorf("loading %s: %w", step.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing load transaction: %w", err)
	}
	return l.doc, nil
}

func (l *loader) loadMeta() error {
	meta := make(map[string]string)
	err := l.each(`SELECT key, value FROM extent_meta`, func(rows *sql.Rows) error {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return err
		}
		meta[k] = v
		return nil
	})
	if err != nil {
		return err
	}

	raw, ok := meta[metaVersion]
	if !ok {
		return fmt.Errorf("no %s entry", metaVersion)
	}
	version, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("parsing version %q: %w", raw, err)
	}
	l.doc.Version = version

	if raw, ok := meta[metaSavedAt]; ok {
		savedAt, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return fmt.Errorf("parsing saved_at %q: %w", raw, err)
		}
		l.doc.SavedAt = savedAt
	}
	return nil
}

func (l *loader) loadRestaurants() error {
	return l.each(`SELECT restaurant_id, name, max_capacity FROM restaurants ORDER BY restaurant_id`, func(rows *sql.Rows) error {
		var id int
		var r record.Restaurant
		if err := rows.Scan(&id, &r.Name, &r.MaxCapacity); err != nil {
			return err
		}
		l.byID[id] = len(l.doc.Restaurants)
		l.doc.Restaurants = append(l.doc.Restaurants, r)
		return nil
	})
}

func (l *loader) loadTables() error {
	return l.each(`SELECT restaurant_id, table_number, seats, table_type FROM restaurant_tables ORDER BY restaurant_id, position`, func(rows *sql.Rows) error {
		var rid int
		var t record.Table
		if err := rows.Scan(&rid, &t.Number, &t.Seats, &t.Type); err != nil {
			return err
		}
		r, err := l.restaurant(rid)
		if err != nil {
			return err
		}
		l.tables[tableKey{rid, t.Number}] = len(r.Tables)
		r.Tables = append(r.Tables, t)
		return nil
	})
}

func (l *loader) loadReservations() error {
	q := `SELECT restaurant_id, table_number, reservation_id, reserved_on, party_size, status, customer_id
	      FROM reservations ORDER BY restaurant_id, table_number, position`
	return l.each(q, func(rows *sql.Rows) error {
		var rid, number int
		var res record.Reservation
		var customerID sql.NullString
		if err := rows.Scan(&rid, &number, &res.ID, &res.Date, &res.PartySize, &res.Status, &customerID); err != nil {
			return err
		}
		res.CustomerID = customerID.String
		r, err := l.restaurant(rid)
		if err != nil {
			return err
		}
		i, ok := l.tables[tableKey{rid, number}]
		if !ok {
			return fmt.Errorf("reservation %s refers to missing table %d", res.ID, number)
		}
		r.Tables[i].Reservations = append(r.Tables[i].Reservations, res)
		return nil
	})
}

func (l *loader) loadMenus() error {
	return l.each(`SELECT restaurant_id, menu_name, menu_type FROM menus ORDER BY restaurant_id, position`, func(rows *sql.Rows) error {
		var rid int
		var m record.Menu
		if err := rows.Scan(&rid, &m.Name, &m.Type); err != nil {
			return err
		}
		r, err := l.restaurant(rid)
		if err != nil {
			return err
		}
		l.menus[menuKey{rid, m.Name}] = len(r.Menus)
		r.Menus = append(r.Menus, m)
		return nil
	})
}

func (l *loader) loadLanguages() error {
	q := `SELECT restaurant_id, menu_name, language FROM menu_languages ORDER BY restaurant_id, menu_name, position`
	return l.each(q, func(rows *sql.Rows) error {
		var key menuKey
		var lang string
		if err := rows.Scan(&key.restaurant, &key.name, &lang); err != nil {
			return err
		}
		m, err := l.menu(key)
		if err != nil {
			return err
		}
		m.Languages = append(m.Languages, lang)
		return nil
	})
}

func (l *loader) loadDishes() error {
	q := `SELECT restaurant_id, menu_name, dish_name, cuisine, vegetarian, vegan, price
	      FROM dishes ORDER BY restaurant_id, menu_name, position`
	return l.each(q, func(rows *sql.Rows) error {
		var key menuKey
		var d record.Dish
		var price string
		if err := rows.Scan(&key.restaurant, &key.name, &d.Name, &d.Cuisine, &d.Vegetarian, &d.Vegan, &price); err != nil {
			return err
		}
		p, err := decimal.NewFromString(price)
		if err != nil {
			return fmt.Errorf("dish %q price %q: %w", d.Name, price, err)
		}
		d.Price = p
		m, err := l.menu(key)
		if err != nil {
			return err
		}
		l.dishes[dishKey{key, d.Name}] = len(m.Dishes)
		m.Dishes = append(m.Dishes, d)
		return nil
	})
}

func (l *loader) loadIngredients() error {
	q := `SELECT restaurant_id, menu_name, dish_name, ingredient
	      FROM dish_ingredients ORDER BY restaurant_id, menu_name, dish_name, position`
	return l.each(q, func(rows *sql.Rows) error {
		var key dishKey
		var ingredient string
		if err := rows.Scan(&key.restaurant, &key.name, &key.dish, &ingredient); err != nil {
			return err
		}
		m, err := l.menu(key.menuKey)
		if err != nil {
			return err
		}
		i, ok := l.dishes[key]
		if !ok {
			return fmt.Errorf("ingredient refers to missing dish %q", key.dish)
		}
		m.Dishes[i].Ingredients = append(m.Dishes[i].Ingredients, ingredient)
		return nil
	})
}

func (l *loader) restaurant(id int) (*record.Restaurant, error) {
	i, ok := l.byID[id]
	if !ok {
		return nil, fmt.Errorf("row refers to missing restaurant %d", id)
	}
	return &l.doc.Restaurants[i], nil
}

func (l *loader) menu(key menuKey) (*record.Menu, error) {
	r, err := l.restaurant(key.restaurant)
	if err != nil {
		return nil, err
	}
	i, ok := l.menus[key]
	if !ok {
		return nil, fmt.Errorf("row refers to missing menu %q", key.name)
	}
	return &r.Menus[i], nil
}

// each runs query and calls fn for every row.
func (l *loader) each(query string, fn func(*sql.Rows) error) error {
	rows, err := l.tx.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		if err := fn(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}
