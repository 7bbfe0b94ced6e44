package types

import "github.com/shopspring/decimal"

// Dish is an item that can appear on menus and orders.
type Dish struct {
	name        string
	cuisine     string
	vegetarian  bool
	vegan       bool
	price       decimal.Decimal
	ingredients []string
}

// NewDish validates every field and copies ingredients.
func NewDish(name, cuisine string, vegetarian, vegan bool, price decimal.Decimal, ingredients []string) (*Dish, error) {
	if err := validateDishName(name); err != nil {
		return nil, err
	}
	if err := validateCuisine(cuisine); err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}
	if err := requireTextList("ingredients", ingredients); err != nil {
		return nil, err
	}
	return &Dish{
		name:        name,
		cuisine:     cuisine,
		vegetarian:  vegetarian,
		vegan:       vegan,
		price:       price,
		ingredients: cloneStrings(ingredients),
	}, nil
}

func validateDishName(name string) error { return requireText("dish name", name) }

func validateCuisine(cuisine string) error { return requireText("cuisine", cuisine) }

func validatePrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return validationf("price must be positive")
	}
	return nil
}

func (d *Dish) Name() string { return d.name }
func (d *Dish) Cuisine() string { return d.cuisine }
func (d *Dish) Vegetarian() bool { return d.vegetarian }
func (d *Dish) Vegan() bool { return d.vegan }

// Price is the price of one serving before tax.
func (d *Dish) Price() decimal.Decimal { return d.price }

// Ingredients returns a copy of the ingredient list.
func (d *Dish) Ingredients() []string { return cloneStrings(d.ingredients) }

// DishChange lists the fields ChangeDish assigns. Nil fields are left alone.
type DishChange struct {
	Name        *string
	Cuisine     *string
	Vegetarian  *bool
	Vegan       *bool
	Price       *decimal.Decimal
	Ingredients []string
}

// ChangeDish applies the supplied fields of change. Every supplied field is
// validated before any of them is assigned. ChangeDish does not know which menus list
// d; rename a listed dish with Menu.RenameDish so names stay unique.
func (d *Dish) ChangeDish(change DishChange) error {
	if change.Name != nil {
		if err := validateDishName(*change.Name); err != nil {
			return err
		}
	}
	if change.Cuisine != nil {
		if err := validateCuisine(*change.Cuisine); err != nil {
			return err
		}
	}
	if change.Price != nil {
		if err := validatePrice(*change.Price); err != nil {
			return err
		}
	}
	if change.Ingredients != nil {
		if err := requireTextList("ingredients", change.Ingredients); err != nil {
			return err
		}
	}

	if change.Name != nil {
		d.name = *change.Name
	}
	if change.Cuisine != nil {
		d.cuisine = *change.Cuisine
	}
	if change.Vegetarian != nil {
		d.vegetarian = *change.Vegetarian
	}
	if change.Vegan != nil {
		d.vegan = *change.Vegan
	}
	if change.Price != nil {
		d.price = *change.Price
	}
	if change.Ingredients != nil {
		d.ingredients = cloneStrings(change.Ingredients)
	}
	return nil
}

// WithUpdatedPrice returns a copy of d carrying price. d is unchanged.
func (d *Dish) WithUpdatedPrice(price decimal.Decimal) (*Dish, error) {
	return NewDish(d.name, d.cuisine, d.vegetarian, d.vegan, price, d.ingredients)
}
