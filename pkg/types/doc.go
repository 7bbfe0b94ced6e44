// Package types defines the restaurant domain model: parties, dishes, menus,
// tables, reservations, orders, payments and the Restaurant aggregate, along
// with the standard error types every operation reports.
//
// Entity methods validate before they mutate. A method that returns an error
// leaves its receiver unchanged.
package types
