package types

// Restaurant owns its tables and menus. Table numbers and menu names are
// unique within a restaurant. MaxCapacity is recorded but not enforced
// against the seats of the tables; compare it with SeatCount.
type Restaurant struct {
	name        string
	maxCapacity int
	tables      []*Table
	menus       []*Menu
}

// NewRestaurant requires a name and a positive capacity. Use
// extent.Extent.NewRestaurant to also register it for persistence.
func NewRestaurant(name string, maxCapacity int) (*Restaurant, error) {
	if err := requireText("restaurant name", name); err != nil {
		return nil, err
	}
	if maxCapacity <= 0 {
		return nil, validationf("max capacity must be positive")
	}
	return &Restaurant{name: name, maxCapacity: maxCapacity}, nil
}

func (r *Restaurant) Name() string { return r.name }

// MaxCapacity is the guest limit the restaurant was created with.
func (r *Restaurant) MaxCapacity() int { return r.maxCapacity }

// Tables returns the tables in the order they were added.
func (r *Restaurant) Tables() []*Table {
	out := make([]*Table, len(r.tables))
	copy(out, r.tables)
	return out
}

// Menus returns the menus in the order they were added.
func (r *Restaurant) Menus() []*Menu {
	out := make([]*Menu, len(r.menus))
	copy(out, r.menus)
	return out
}

// NumberOfTables returns the table count.
func (r *Restaurant) NumberOfTables() int { return len(r.tables) }

// SeatCount sums the seats of all tables.
func (r *Restaurant) SeatCount() int {
	n := 0
	for _, t := range r.tables {
		n += t.seats
	}
	return n
}

// Table returns the table with number, or nil.
func (r *Restaurant) Table(number int) *Table {
	for _, t := range r.tables {
		if t.number == number {
			return t
		}
	}
	return nil
}

// Menu returns the menu called name, or nil.
func (r *Restaurant) Menu(name string) *Menu {
	for _, m := range r.menus {
		if m.name == name {
			return m
		}
	}
	return nil
}

// AddTable adds table. Returns ErrDuplicateKey when the number is taken.
func (r *Restaurant) AddTable(table *Table) error {
	if table == nil {
		return preconditionf("table is required")
	}
	if r.Table(table.number) != nil {
		return duplicatef("table %d already exists in %q", table.number, r.name)
	}
	r.tables = append(r.tables, table)
	return nil
}

// RemoveTable drops table and reports whether it was present.
func (r *Restaurant) RemoveTable(table *Table) bool {
	for i, t := range r.tables {
		if t == table {
			r.tables = append(r.tables[:i], r.tables[i+1:]...)
			return true
		}
	}
	return false
}

// AddMenu adds menu. Returns ErrDuplicateKey when the name is taken.
func (r *Restaurant) AddMenu(menu *Menu) error {
	if menu == nil {
		return preconditionf("menu is required")
	}
	if r.Menu(menu.name) != nil {
		return duplicatef("menu %q already exists in %q", menu.name, r.name)
	}
	r.menus = append(r.menus, menu)
	return nil
}

// RemoveMenu drops menu and reports whether it was present.
func (r *Restaurant) RemoveMenu(menu *Menu) bool {
	for i, m := range r.menus {
		if m == menu {
			r.menus = append(r.menus[:i], r.menus[i+1:]...)
			return true
		}
	}
	return false
}
