package extent

import (
	"fmt"
	"time"

	"github.com/mesh-intelligence/bistro/internal/record"
	"github.com/mesh-intelligence/bistro/pkg/types"
)

// Reservations are written under the table that holds them. The customer
// side of the link is written as the customer id only, so the document has
// no cycles.

func encodeDocument(restaurants []*types.Restaurant, savedAt time.Time) *record.Document {
	doc := &record.Document{
		Version:     record.CurrentVersion,
		SavedAt:     savedAt,
		Restaurants: make([]record.Restaurant, 0, len(restaurants)),
	}
	for _, r := range restaurants {
		doc.Restaurants = append(doc.Restaurants, encodeRestaurant(r))
	}
	return doc
}

func encodeRestaurant(r *types.Restaurant) record.Restaurant {
	out := record.Restaurant{
		Name:        r.Name(),
		MaxCapacity: r.MaxCapacity(),
		Tables:      []record.Table{},
		Menus:       []record.Menu{},
	}
	for _, t := range r.Tables() {
		out.Tables = append(out.Tables, encodeTable(t))
	}
	for _, m := range r.Menus() {
		out.Menus = append(out.Menus, encodeMenu(m))
	}
	return out
}

func encodeTable(t *types.Table) record.Table {
	out := record.Table{
		Number:       t.Number(),
		Seats:        t.Seats(),
		Type:         t.Type(),
		Reservations: []record.Reservation{},
	}
	for _, res := range t.Reservations() {
		out.Reservations = append(out.Reservations, record.Reservation{
			ID:         res.ID(),
			Date:       types.FormatDate(res.Date()),
			PartySize:  res.PartySize(),
			Status:     string(res.Status()),
			CustomerID: res.CustomerID(),
		})
	}
	return out
}

func encodeMenu(m *types.Menu) record.Menu {
	out := record.Menu{
		Name:      m.Name(),
		Type:      m.Type(),
		Languages: m.Languages(),
		Dishes:    []record.Dish{},
	}
	for _, d := range m.Dishes() {
		out.Dishes = append(out.Dishes, record.Dish{
			Name:        d.Name(),
			Cuisine:     d.Cuisine(),
			Vegetarian:  d.Vegetarian(),
			Vegan:       d.Vegan(),
			Price:       d.Price(),
			Ingredients: d.Ingredients(),
		})
	}
	return out
}

// decodeDocument rebuilds restaurants through the domain constructors, so a
// document that breaks any entity rule is rejected.
func decodeDocument(doc *record.Document) ([]*types.Restaurant, error) {
	out := make([]*types.Restaurant, 0, len(doc.Restaurants))
	for i, rec := range doc.Restaurants {
		r, err := decodeRestaurant(rec)
		if err != nil {
			return nil, fmt.Errorf("restaurant %d (%q): %w", i, rec.Name, err)
		}
		out = append(out, r)
	}
	return out, nil
}

func decodeRestaurant(rec record.Restaurant) (*types.Restaurant, error) {
	r, err := types.NewRestaurant(rec.Name, rec.MaxCapacity)
	if err != nil {
		return nil, err
	}
	for _, tr := range rec.Tables {
		t, err := decodeTable(tr)
		if err != nil {
			return nil, fmt.Errorf("table %d: %w", tr.Number, err)
		}
		if err := r.AddTable(t); err != nil {
			return nil, err
		}
	}
	for _, mr := range rec.Menus {
		m, err := decodeMenu(mr)
		if err != nil {
			return nil, fmt.Errorf("menu %q: %w", mr.Name, err)
		}
		if err := r.AddMenu(m); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func decodeTable(rec record.Table) (*types.Table, error) {
	t, err := types.NewTable(rec.Number, rec.Seats, rec.Type)
	if err != nil {
		return nil, err
	}
	for _, rr := range rec.Reservations {
		date, err := types.ParseDate(rr.Date)
		if err != nil {
			return nil, err
		}
		res, err := types.RestoreReservation(rr.ID, date, rr.PartySize, types.ReservationStatus(rr.Status), rr.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("reservation %s: %w", rr.ID, err)
		}
		ok, err := t.AttachReservation(res)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: reservation %s: date %s already booked", types.ErrDuplicateKey, rr.ID, rr.Date)
		}
	}
	return t, nil
}

func decodeMenu(rec record.Menu) (*types.Menu, error) {
	m, err := types.NewMenu(rec.Name, rec.Type, rec.Languages)
	if err != nil {
		return nil, err
	}
	for _, dr := range rec.Dishes {
		d, err := types.NewDish(dr.Name, dr.Cuisine, dr.Vegetarian, dr.Vegan, dr.Price, dr.Ingredients)
		if err != nil {
			return nil, fmt.Errorf("dish %q: %w", dr.Name, err)
		}
		ok, err := m.AddDish(d)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: dish %q listed twice", types.ErrDuplicateKey, dr.Name)
		}
	}
	return m, nil
}
