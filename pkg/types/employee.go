package types

import "time"

// WorkDetails records where and when an employee works.
type WorkDetails struct {
	Department    string
	ShiftSchedule string
	HiredOn       time.Time
}

// NewWorkDetails validates department, shift and hire date.
func NewWorkDetails(department, shiftSchedule string, hiredOn time.Time) (WorkDetails, error) {
	if err := requireText("department", department); err != nil {
		return WorkDetails{}, err
	}
	if err := requireText("shift schedule", shiftSchedule); err != nil {
		return WorkDetails{}, err
	}
	if hiredOn.IsZero() {
		return WorkDetails{}, validationf("hire date must be set")
	}
	return WorkDetails{Department: department, ShiftSchedule: shiftSchedule, HiredOn: DateOf(hiredOn)}, nil
}

// Employee is the part of every staff role shared across roles. Roles embed it.
type Employee struct {
	Person
	work    WorkDetails
	profile ExperienceProfile
}

// NewEmployee combines identity, work details and an experience profile.
// work is checked with the rules of NewWorkDetails.
func NewEmployee(p Person, work WorkDetails, profile ExperienceProfile) (Employee, error) {
	if err := p.Validate(); err != nil {
		return Employee{}, err
	}
	work, err := NewWorkDetails(work.Department, work.ShiftSchedule, work.HiredOn)
	if err != nil {
		return Employee{}, err
	}
	if profile == nil {
		return Employee{}, preconditionf("experience profile is required")
	}
	return Employee{Person: p, work: work, profile: profile}, nil
}

// WorkDetails returns the employee's work details.
func (e *Employee) WorkDetails() WorkDetails { return e.work }

// ExperienceProfile returns the current profile.
func (e *Employee) ExperienceProfile() ExperienceProfile { return e.profile }

// UpdateExperienceProfile replaces the profile with any variant.
func (e *Employee) UpdateExperienceProfile(profile ExperienceProfile) error {
	if profile == nil {
		return preconditionf("experience profile is required")
	}
	e.profile = profile
	return nil
}
