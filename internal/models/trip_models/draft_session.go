package trip_models

import "time"

// DraftSession is a wizard in progress. Completed is the highest step whose
// boundary the draft has passed.
type DraftSession struct {
	ID        string          `json:"id"`
	OwnerID   string          `json:"ownerId"`
	Completed Step            `json:"completedStep"`
	Draft     TripDraft       `json:"draft"`
	Pricing   *PriceBreakdown `json:"pricing,omitempty"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func (s DraftSession) Clone() DraftSession {
	out := s
	out.Draft = s.Draft.Clone()
	if s.Pricing != nil {
		p := *s.Pricing
		out.Pricing = &p
	}
	return out
}
