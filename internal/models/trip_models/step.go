package trip_models

import "cloud.google.com/go/civil"

// Step numbers the wizard boundaries a draft has to pass.
type Step int

const (
	StepDestination Step = 1
	StepTravelers   Step = 2
	StepServices    Step = 3
	StepReview      Step = 4
)

func (s Step) Valid() bool {
	return s >= StepDestination && s <= StepReview
}

// StepInput carries the fields a wizard step may set. Nil fields are left
// untouched on the draft.
type StepInput struct {
	// step 1
	Destination *string  `json:"destination,omitempty"`
	Categories  []string `json:"categories,omitempty"`
	Budget      *Budget  `json:"budget,omitempty"`

	// step 2
	Travelers *Travelers  `json:"travelers,omitempty"`
	Organizer *Contact    `json:"organizer,omitempty"`
	Assistant *Contact    `json:"assistant,omitempty"`
	StartDate *civil.Date `json:"startDate,omitempty"`
	EndDate   *civil.Date `json:"endDate,omitempty"`

	// step 3
	Services *Services `json:"services,omitempty"`
}
