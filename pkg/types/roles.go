package types

// Staff capabilities. Roles advertise what they can do by implementing these.
type (
	// TableAssigner hands tables to waiters.
	TableAssigner interface {
		AssignTable(waiter *Waiter, table *Table) (bool, error)
	}

	// TableServer serves the tables assigned to it.
	TableServer interface {
		AssignedTables() []*Table
	}

	// MenuEditor maintains the dishes on a menu.
	MenuEditor interface {
		AddDish(menu *Menu, dish *Dish) (bool, error)
		UpdateMenu(menu *Menu, existing, replacement *Dish) error
		ViewMenu(menu *Menu) []*Dish
	}
)

// Manager supervises the floor.
type Manager struct {
	Employee
	Level int
}

// NewManager requires a positive management level.
func NewManager(e Employee, level int) (*Manager, error) {
	if level <= 0 {
		return nil, validationf("manager level must be positive")
	}
	return &Manager{Employee: e, Level: level}, nil
}

// AssignTable assigns table to waiter. It reports false when the waiter
// already has the table.
func (m *Manager) AssignTable(waiter *Waiter, table *Table) (bool, error) {
	if waiter == nil {
		return false, preconditionf("waiter is required")
	}
	return waiter.AssignTable(table)
}

// Chef cooks and edits menus.
type Chef struct {
	Employee
	Cuisine string
}

// NewChef requires a cuisine.
func NewChef(e Employee, cuisine string) (*Chef, error) {
	if err := requireText("cuisine", cuisine); err != nil {
		return nil, err
	}
	return &Chef{Employee: e, Cuisine: cuisine}, nil
}

// AddDish puts dish on menu.
func (c *Chef) AddDish(menu *Menu, dish *Dish) (bool, error) {
	if menu == nil {
		return false, preconditionf("menu is required")
	}
	return menu.AddDish(dish)
}

// UpdateMenu swaps existing for replacement on menu.
func (c *Chef) UpdateMenu(menu *Menu, existing, replacement *Dish) error {
	if menu == nil {
		return preconditionf("menu is required")
	}
	return menu.UpdateDish(existing, replacement)
}

// ViewMenu returns the dishes on menu.
func (c *Chef) ViewMenu(menu *Menu) []*Dish {
	if menu == nil {
		return nil
	}
	return menu.Dishes()
}

// HeadChef runs the kitchen.
type HeadChef struct {
	Chef
	KitchenYears int
}

// NewHeadChef requires non-negative kitchen experience.
func NewHeadChef(e Employee, cuisine string, kitchenYears int) (*HeadChef, error) {
	if kitchenYears < 0 {
		return nil, validationf("kitchen experience must not be negative")
	}
	c, err := NewChef(e, cuisine)
	if err != nil {
		return nil, err
	}
	return &HeadChef{Chef: *c, KitchenYears: kitchenYears}, nil
}

// SousChef supervises kitchen sections.
type SousChef struct {
	Chef
	DayShift bool
	Sections []string
}

// NewSousChef copies sections.
func NewSousChef(e Employee, cuisine string, dayShift bool, sections []string) (*SousChef, error) {
	c, err := NewChef(e, cuisine)
	if err != nil {
		return nil, err
	}
	return &SousChef{Chef: *c, DayShift: dayShift, Sections: cloneStrings(sections)}, nil
}

// LineChef works one station.
type LineChef struct {
	Chef
	Specialization string
	Tasks          []string
}

// NewLineChef requires a specialization and copies tasks.
func NewLineChef(e Employee, cuisine, specialization string, tasks []string) (*LineChef, error) {
	if err := requireText("specialization", specialization); err != nil {
		return nil, err
	}
	c, err := NewChef(e, cuisine)
	if err != nil {
		return nil, err
	}
	return &LineChef{Chef: *c, Specialization: specialization, Tasks: cloneStrings(tasks)}, nil
}

// Waiter serves assigned tables.
type Waiter struct {
	Employee
	tables []*Table
}

// NewWaiter returns a waiter with no tables.
func NewWaiter(e Employee) *Waiter {
	return &Waiter{Employee: e}
}

// AssignTable adds table to the waiter's set. It returns false without
// changing anything when the table is already assigned.
func (w *Waiter) AssignTable(table *Table) (bool, error) {
	if table == nil {
		return false, preconditionf("table is required")
	}
	for _, t := range w.tables {
		if t == table {
			return false, nil
		}
	}
	w.tables = append(w.tables, table)
	return true, nil
}

// AssignedTables returns the assigned tables in assignment order.
func (w *Waiter) AssignedTables() []*Table {
	out := make([]*Table, len(w.tables))
	copy(out, w.tables)
	return out
}

// Valet parks cars at a location.
type Valet struct {
	Employee
	Location string
}

// NewValet requires a location.
func NewValet(e Employee, location string) (*Valet, error) {
	if err := requireText("assigned location", location); err != nil {
		return nil, err
	}
	return &Valet{Employee: e, Location: location}, nil
}

var (
	_ TableAssigner = (*Manager)(nil)
	_ TableServer   = (*Waiter)(nil)
	_ MenuEditor    = (*Chef)(nil)
	_ MenuEditor    = (*HeadChef)(nil)
	_ MenuEditor    = (*SousChef)(nil)
	_ MenuEditor    = (*LineChef)(nil)
)
