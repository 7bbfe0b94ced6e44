package types

import "time"

// DefaultTableType is used by callers that do not care about table type.
const DefaultTableType = "standard"

// Table is a numbered table holding at most one reservation per date.
type Table struct {
	number       int
	seats        int
	tableType    string
	reservations []*Reservation
}

// NewTable requires a positive number and seat count and a table type.
func NewTable(number, seats int, tableType string) (*Table, error) {
	if number <= 0 {
		return nil, validationf("table number must be positive")
	}
	if seats <= 0 {
		return nil, validationf("seat count must be positive")
	}
	if err := requireText("table type", tableType); err != nil {
		return nil, err
	}
	return &Table{number: number, seats: seats, tableType: tableType}, nil
}

// Number identifies the table within its restaurant.
func (t *Table) Number() int { return t.number }

// Seats is the number of guests the table seats.
func (t *Table) Seats() int { return t.seats }

// Type is the free-form table kind, such as "Booth" or "Terrace".
func (t *Table) Type() string { return t.tableType }

// Reservations returns the table's reservations in booking order.
func (t *Table) Reservations() []*Reservation {
	out := make([]*Reservation, len(t.reservations))
	copy(out, t.reservations)
	return out
}

// ReservationOn returns the reservation for the calendar day of date, or nil.
func (t *Table) ReservationOn(date time.Time) *Reservation {
	for _, r := range t.reservations {
		if sameDay(r.date, date) {
			return r
		}
	}
	return nil
}

// Reserve books reservation on this table for customer. It returns false and
// changes nothing when the table already has a reservation on that date.
// Party size is not compared with Seats. On success the reservation is appended to both the table and the customer.
func (t *Table) Reserve(customer Customer, reservation *Reservation) (bool, error) {
	if isNilCustomer(customer) {
		return false, preconditionf("customer is required")
	}
	if reservation == nil {
		return false, preconditionf("reservation is required")
	}
	if t.ReservationOn(reservation.date) != nil {
		return false, nil
	}
	if reservation.tableNumber != 0 {
		return false, invalidStatef("reservation %s is already on table %d", reservation.id, reservation.tableNumber)
	}

	reservation.tableNumber = t.number
	reservation.customerID = customer.CustomerID()
	t.reservations = append(t.reservations, reservation)
	customer.addReservation(reservation)
	return true, nil
}

// AttachReservation puts a stored reservation back on the table without
// touching any customer. It returns false when the date is taken.
func (t *Table) AttachReservation(reservation *Reservation) (bool, error) {
	if reservation == nil {
		return false, preconditionf("reservation is required")
	}
	if reservation.tableNumber != 0 && reservation.tableNumber != t.number {
		return false, invalidStatef("reservation %s is already on table %d", reservation.id, reservation.tableNumber)
	}
	if t.ReservationOn(reservation.date) != nil {
		return false, nil
	}
	reservation.tableNumber = t.number
	t.reservations = append(t.reservations, reservation)
	return true, nil
}
