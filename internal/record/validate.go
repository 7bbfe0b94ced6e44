package record

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/bistro/pkg/types"
)

// ErrVersion reports a document written in a layout this build cannot read.
var ErrVersion = errors.New("unsupported document version")

// Validate checks the structure of a loaded document: the version, required
// fields, date formats, table numbers and menu and dish names unique in
// their scope, and one booking per table per date. Value rules (positive prices,
// capacity limits) are left to the domain constructors.
func (d *Document) Validate() error {
	if d == nil {
		return errors.New("document is empty")
	}
	if d.Version != CurrentVersion {
		return fmt.Errorf("%w: got %d, want %d", ErrVersion, d.Version, CurrentVersion)
	}
	for i, r := range d.Restaurants {
		if err := r.validate(); err != nil {
			return fmt.Errorf("restaurants[%d]: %w", i, err)
		}
	}
	return nil
}

func (r Restaurant) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is missing")
	}
	numbers := make(map[int]bool, len(r.Tables))
	for i, t := range r.Tables {
		if numbers[t.Number] {
			return fmt.Errorf("%w: tables[%d]: number %d repeated", types.ErrDuplicateKey, i, t.Number)
		}
		numbers[t.Number] = true
		if err := t.validate(); err != nil {
			return fmt.Errorf("tables[%d]: %w", i, err)
		}
	}
	names := make(map[string]bool, len(r.Menus))
	for i, m := range r.Menus {
		if names[m.Name] {
			return fmt.Errorf("%w: menus[%d]: name %q repeated", types.ErrDuplicateKey, i, m.Name)
		}
		names[m.Name] = true
		if err := m.validate(); err != nil {
			return fmt.Errorf("menus[%d]: %w", i, err)
		}
	}
	return nil
}

// Reservation ids are not required to be unique; the domain accepts any
// non-blank id.
func (t Table) validate() error {
	dates := make(map[string]bool, len(t.Reservations))
	for i, r := range t.Reservations {
		if strings.TrimSpace(r.ID) == "" {
			return fmt.Errorf("reservations[%d]: id is missing", i)
		}
		if _, err := types.ParseDate(r.Date); err != nil {
			return fmt.Errorf("reservations[%d]: %w", i, err)
		}
		if dates[r.Date] {
			return fmt.Errorf("%w: reservations[%d]: table %d booked twice on %s", types.ErrDuplicateKey, i, t.Number, r.Date)
		}
		dates[r.Date] = true
	}
	return nil
}

func (m Menu) validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return errors.New("name is missing")
	}
	names := make(map[string]bool, len(m.Dishes))
	for i, d := range m.Dishes {
		if names[d.Name] {
			return fmt.Errorf("%w: dishes[%d]: name %q repeated", types.ErrDuplicateKey, i, d.Name)
		}
		names[d.Name] = true
	}
	return nil
}
