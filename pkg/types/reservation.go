package types

import (
	"strings"
	"time"
)

// ReservationStatus is the lifecycle state of a reservation.
type ReservationStatus string

// Reservation states. A reservation starts pending and ends confirmed or
// cancelled; the two end states do not lead to each other.
const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
)

// validReservationStatuses is the set of recognized reservation states.
var validReservationStatuses = map[ReservationStatus]bool{
	ReservationPending:   true,
	ReservationConfirmed: true,
	ReservationCancelled: true,
}

// Reservation books a table for a party on one date. The owning Table and
// Customer each hold the reservation; the reservation refers back to them by
// table number and customer id only.
type Reservation struct {
	id          string
	date        time.Time
	partySize   int
	status      ReservationStatus
	tableNumber int
	customerID  string
}

// NewReservation returns a pending reservation that is not yet on a table.
func NewReservation(id string, date time.Time, partySize int) (*Reservation, error) {
	if strings.TrimSpace(id) == "" {
		return nil, preconditionf("reservation id is required")
	}
	if date.IsZero() {
		return nil, validationf("reservation date must be set")
	}
	if partySize <= 0 {
		return nil, validationf("party size must be positive")
	}
	return &Reservation{id: id, date: DateOf(date), partySize: partySize, status: ReservationPending}, nil
}

// RestoreReservation rebuilds a stored reservation with its status and the
// customer id it was booked for. Table.AttachReservation sets the table side.
func RestoreReservation(id string, date time.Time, partySize int, status ReservationStatus, customerID string) (*Reservation, error) {
	r, err := NewReservation(id, date, partySize)
	if err != nil {
		return nil, err
	}
	if !validReservationStatuses[status] {
		return nil, validationf("unknown reservation status %q", status)
	}
	r.status = status
	r.customerID = customerID
	return r, nil
}

func (r *Reservation) ID() string { return r.id }

// Date is the reserved day at UTC midnight.
func (r *Reservation) Date() time.Time { return r.date }

// PartySize is the number of guests.
func (r *Reservation) PartySize() int { return r.partySize }
func (r *Reservation) Status() ReservationStatus { return r.status }

// TableNumber is the number of the table holding the reservation, or 0.
func (r *Reservation) TableNumber() int { return r.tableNumber }

// CustomerID is the id of the customer the reservation was made for.
func (r *Reservation) CustomerID() string { return r.customerID }

// Confirm marks the reservation confirmed. Confirming twice is allowed;
// confirming a cancelled reservation returns ErrInvalidState.
func (r *Reservation) Confirm() error {
	if r.status == ReservationCancelled {
		return invalidStatef("reservation %s is cancelled", r.id)
	}
	r.status = ReservationConfirmed
	return nil
}

// Cancel marks the reservation cancelled. Cancelling twice is allowed;
// cancelling a confirmed reservation returns ErrInvalidState.
func (r *Reservation) Cancel() error {
	if r.status == ReservationConfirmed {
		return invalidStatef("reservation %s is confirmed", r.id)
	}
	r.status = ReservationCancelled
	return nil
}
