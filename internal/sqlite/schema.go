// Package sqlite keeps the extent in a SQLite database file. Each save
// replaces every row in one transaction; each load reads every table in one
// transaction and rebuilds the document.
package sqlite

// Schema DDL for all tables. Position columns keep the order of tables,
// reservations, menus, dishes and list entries as they were saved.
const (
	createExtentMeta = `CREATE TABLE IF NOT EXISTS extent_meta (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);`

	createRestaurants = `CREATE TABLE IF NOT EXISTS restaurants (
    restaurant_id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    max_capacity INTEGER NOT NULL
);`

	createRestaurantTables = `CREATE TABLE IF NOT EXISTS restaurant_tables (
    restaurant_id INTEGER NOT NULL,
    table_number INTEGER NOT NULL,
    position INTEGER NOT NULL,
    seats INTEGER NOT NULL,
    table_type TEXT NOT NULL,
    PRIMARY KEY (restaurant_id, table_number),
    FOREIGN KEY (restaurant_id) REFERENCES restaurants(restaurant_id)
);`

	createReservations = `CREATE TABLE IF NOT EXISTS reservations (
    restaurant_id INTEGER NOT NULL,
    table_number INTEGER NOT NULL,
    position INTEGER NOT NULL,
    reservation_id TEXT NOT NULL,
    reserved_on TEXT NOT NULL,
    party_size INTEGER NOT NULL,
    status TEXT NOT NULL,
    customer_id TEXT,
    PRIMARY KEY (restaurant_id, table_number, position),
    UNIQUE (restaurant_id, table_number, reserved_on),
    FOREIGN KEY (restaurant_id, table_number) REFERENCES restaurant_tables(restaurant_id, table_number)
);`

	createMenus = `CREATE TABLE IF NOT EXISTS menus (
    restaurant_id INTEGER NOT NULL,
    menu_name TEXT NOT NULL,
    position INTEGER NOT NULL,
    menu_type TEXT NOT NULL,
    PRIMARY KEY (restaurant_id, menu_name),
    FOREIGN KEY (restaurant_id) REFERENCES restaurants(restaurant_id)
);`

	createMenuLanguages = `CREATE TABLE IF NOT EXISTS menu_languages (
    restaurant_id INTEGER NOT NULL,
    menu_name TEXT NOT NULL,
    position INTEGER NOT NULL,
    language TEXT NOT NULL,
    PRIMARY KEY (restaurant_id, menu_name, position),
    FOREIGN KEY (restaurant_id, menu_name) REFERENCES menus(restaurant_id, menu_name)
);`

	createDishes = `CREATE TABLE IF NOT EXISTS dishes (
    restaurant_id INTEGER NOT NULL,
    menu_name TEXT NOT NULL,
    dish_name TEXT NOT NULL,
    position INTEGER NOT NULL,
    cuisine TEXT NOT NULL,
    vegetarian INTEGER NOT NULL,
    vegan INTEGER NOT NULL,
    price TEXT NOT NULL,
    PRIMARY KEY (restaurant_id, menu_name, dish_name),
    FOREIGN KEY (restaurant_id, menu_name) REFERENCES menus(restaurant_id, menu_name)
);`

	createDishIngredients = `CREATE TABLE IF NOT EXISTS dish_ingredients (
    restaurant_id INTEGER NOT NULL,
    menu_name TEXT NOT NULL,
    dish_name TEXT NOT NULL,
    position INTEGER NOT NULL,
    ingredient TEXT NOT NULL,
    PRIMARY KEY (restaurant_id, menu_name, dish_name, position),
    FOREIGN KEY (restaurant_id, menu_name, dish_name) REFERENCES dishes(restaurant_id, menu_name, dish_name)
);`
)

// Index DDL for the ordered scans in load.
const (
	idxDishesMenu = `CREATE INDEX IF NOT EXISTS idx_dishes_menu ON dishes(restaurant_id, menu_name, position);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createExtentMeta,
	createRestaurants,
	createRestaurantTables,
	createReservations,
	createMenus,
	createMenuLanguages,
	createDishes,
	createDishIngredients,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxDishesMenu,
}

// clearOrder lists tables children first so deletes respect foreign keys.
var clearOrder = []string{
	"dish_ingredients",
	"dishes",
	"menu_languages",
	"menus",
	"reservations",
	"restaurant_tables",
	"restaurants",
	"extent_meta",
}

// Keys in extent_meta.
const (
	metaVersion = "version"
	metaSavedAt = "saved_at"
)
