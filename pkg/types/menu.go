package types

// Menu is an ordered list of dishes, unique by name.
type Menu struct {
	name      string
	menuType  string
	languages []string
	dishes    []*Dish
}

// NewMenu requires a name and at least one language.
func NewMenu(name, menuType string, languages []string) (*Menu, error) {
	if err := requireText("menu name", name); err != nil {
		return nil, err
	}
	if err := requireTextList("languages", languages); err != nil {
		return nil, err
	}
	return &Menu{name: name, menuType: menuType, languages: cloneStrings(languages)}, nil
}

func (m *Menu) Name() string { return m.name }

// Type is the free-form menu kind, such as "Dinner".
func (m *Menu) Type() string { return m.menuType }

// Languages returns the languages the menu is printed in.
func (m *Menu) Languages() []string { return cloneStrings(m.languages) }

// Dishes returns the dishes in menu order.
func (m *Menu) Dishes() []*Dish {
	out := make([]*Dish, len(m.dishes))
	copy(out, m.dishes)
	return out
}

// Dish returns the dish called name, or nil.
func (m *Menu) Dish(name string) *Dish {
	if i := m.indexByName(name); i >= 0 {
		return m.dishes[i]
	}
	return nil
}

// AddDish appends dish. It returns false and leaves the menu unchanged when
// a dish with the same name is already listed.
func (m *Menu) AddDish(dish *Dish) (bool, error) {
	if dish == nil {
		return false, preconditionf("dish is required")
	}
	if m.indexByName(dish.name) >= 0 {
		return false, nil
	}
	m.dishes = append(m.dishes, dish)
	return true, nil
}

// RemoveDish drops dish and reports whether it was listed.
func (m *Menu) RemoveDish(dish *Dish) bool {
	i := m.indexOf(dish)
	if i < 0 {
		return false
	}
	m.dishes = append(m.dishes[:i], m.dishes[i+1:]...)
	return true
}

// UpdateDish puts replacement in the position held by existing.
// Returns ErrNotFound when existing is not on the menu and ErrDuplicateKey
// when replacement's name belongs to another listed dish.
func (m *Menu) UpdateDish(existing, replacement *Dish) error {
	if existing == nil || replacement == nil {
		return preconditionf("existing and replacement dishes are required")
	}
	i := m.indexOf(existing)
	if i < 0 {
		return notFoundf("dish %q is not on menu %q", existing.name, m.name)
	}
	if j := m.indexByName(replacement.name); j >= 0 && j != i {
		return duplicatef("dish %q is already on menu %q", replacement.name, m.name)
	}
	m.dishes[i] = replacement
	return nil
}

// RenameDish renames a listed dish. Returns ErrNotFound when dish is not on
// the menu and ErrDuplicateKey when another listed dish already has name.
func (m *Menu) RenameDish(dish *Dish, name string) error {
	if dish == nil {
		return preconditionf("dish is required")
	}
	i := m.indexOf(dish)
	if i < 0 {
		return notFoundf("dish %q is not on menu %q", dish.name, m.name)
	}
	if j := m.indexByName(name); j >= 0 && j != i {
		return duplicatef("dish %q is already on menu %q", name, m.name)
	}
	return dish.ChangeDish(DishChange{Name: &name})
}

func (m *Menu) indexOf(dish *Dish) int {
	for i, d := range m.dishes {
		if d == dish {
			return i
		}
	}
	return -1
}

func (m *Menu) indexByName(name string) int {
	for i, d := range m.dishes {
		if d.name == name {
			return i
		}
	}
	return -1
}
