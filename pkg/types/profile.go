package types

import "fmt"

// ExperienceProfile describes an employee's seniority. The set of profiles is
// closed: TraineeProfile, ExperiencedProfile and SpecialistProfile.
type ExperienceProfile interface {
	Description() string

	experienceProfile()
}

// TraineeProfile is an employee still in training.
type TraineeProfile struct {
	TrainingWeeks int
}

// NewTraineeProfile requires a positive training duration.
func NewTraineeProfile(trainingWeeks int) (TraineeProfile, error) {
	if trainingWeeks <= 0 {
		return TraineeProfile{}, validationf("training duration must be positive")
	}
	return TraineeProfile{TrainingWeeks: trainingWeeks}, nil
}

func (TraineeProfile) Description() string { return "Trainee" }

// HasCompletedTraining reports whether completedWeeks covers the training.
func (p TraineeProfile) HasCompletedTraining(completedWeeks int) bool {
	return completedWeeks >= p.TrainingWeeks
}

func (TraineeProfile) experienceProfile() {}

// ExperiencedProfile is a seasoned employee with a named mentor.
type ExperiencedProfile struct {
	Years  int
	Mentor string
}

// NewExperiencedProfile requires non-negative years and a mentor name.
func NewExperiencedProfile(years int, mentor string) (ExperiencedProfile, error) {
	if years < 0 {
		return ExperiencedProfile{}, validationf("years of experience must not be negative")
	}
	if err := requireText("mentor name", mentor); err != nil {
		return ExperiencedProfile{}, err
	}
	return ExperiencedProfile{Years: years, Mentor: mentor}, nil
}

func (ExperiencedProfile) Description() string { return "Experienced" }

func (ExperiencedProfile) experienceProfile() {}

// SpecialistProfile is an employee with a field of expertise.
type SpecialistProfile struct {
	Field string
}

// NewSpecialistProfile requires a field of expertise.
func NewSpecialistProfile(field string) (SpecialistProfile, error) {
	if err := requireText("field of expertise", field); err != nil {
		return SpecialistProfile{}, err
	}
	return SpecialistProfile{Field: field}, nil
}

func (SpecialistProfile) Description() string { return "Specialist" }

// DesignNewRecipe names a variation of baseDish.
func (p SpecialistProfile) DesignNewRecipe(baseDish, twist string) string {
	return fmt.Sprintf("%s with %s", baseDish, twist)
}

func (SpecialistProfile) experienceProfile() {}
