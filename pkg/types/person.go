package types

import "time"

// Person holds the identity shared by customers and employees.
type Person struct {
	FirstName string
	LastName  string
	BirthDate time.Time
	Phone     string
}

// NewPerson returns a validated Person. The birth date keeps only its
// calendar day.
func NewPerson(firstName, lastName string, birthDate time.Time, phone string) (Person, error) {
	p := Person{
		FirstName: firstName,
		LastName:  lastName,
		BirthDate: DateOf(birthDate),
		Phone:     phone,
	}
	if err := p.Validate(); err != nil {
		return Person{}, err
	}
	return p, nil
}

// Validate reports ErrValidation for a blank name or phone or a zero birth date.
func (p Person) Validate() error {
	if err := requireText("first name", p.FirstName); err != nil {
		return err
	}
	if err := requireText("last name", p.LastName); err != nil {
		return err
	}
	if p.BirthDate.IsZero() {
		return validationf("birth date must be set")
	}
	return requireText("phone", p.Phone)
}

// FullName joins first and last name with a single space.
func (p Person) FullName() string {
	return p.FirstName + " " + p.LastName
}
