package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	tm "tripwise/internal/models/trip_models"
	mem "tripwise/pkg/memcache"
	"tripwise/pkg/utils"
)

type DraftServiceInterface interface {
	CreateDraft(ctx context.Context, ownerID string) (*tm.DraftSession, error)
	GetDraft(ctx context.Context, ownerID, draftID string) (*tm.DraftSession, error)
	ApplyStep(ctx context.Context, ownerID, draftID string, step tm.Step, in tm.StepInput) (*tm.DraftSession, error)
	EditDay(ctx context.Context, ownerID, draftID string, day int, plan tm.DayPlan) (*tm.DraftSession, error)
	DiscardDraft(ctx context.Context, ownerID, draftID string) error
}

type DraftService struct {
	sessions  mem.Store[tm.DraftSession]
	itinerary ItineraryServiceInterface
	clock     utils.Clock
	loc       *time.Location
	ttl       time.Duration
}

func NewDraftService(
	sessions mem.Store[tm.DraftSession],
	itinerary ItineraryServiceInterface,
	clock utils.Clock,
	loc *time.Location,
	ttl time.Duration,
) DraftServiceInterface {
	return &DraftService{
		sessions:  sessions,
		itinerary: itinerary,
		clock:     clock,
		loc:       loc,
		ttl:       ttl,
	}
}

func (s *DraftService) CreateDraft(_ context.Context, ownerID string) (*tm.DraftSession, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, utils.ErrUnauthorized
	}
	session := tm.DraftSession{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		UpdatedAt: s.clock().UTC(),
	}
	s.save(session)
	return &session, nil
}

func (s *DraftService) GetDraft(_ context.Context, ownerID, draftID string) (*tm.DraftSession, error) {
	session, err := s.load(ownerID, draftID)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// ApplyStep runs the step input through Advance. Steps are taken in order: a
// step may be applied once every earlier step has passed. Passing the review
// step synthesizes a missing itinerary and quotes the price.
func (s *DraftService) ApplyStep(_ context.Context, ownerID, draftID string, step tm.Step, in tm.StepInput) (*tm.DraftSession, error) {
	if !step.Valid() {
		return nil, utils.ErrInvalidStep
	}
	session, err := s.load(ownerID, draftID)
	if err != nil {
		return nil, err
	}
	if step > session.Completed+1 {
		return nil, utils.ErrInvalidStep
	}

	today := utils.Today(s.clock(), s.loc)
	next, err := Advance(session.Draft, step, in, today)
	if err != nil {
		return nil, err
	}
	session.Draft = next
	session.Pricing = nil
	if step > session.Completed {
		session.Completed = step
	}

	if step == tm.StepReview {
		if err := ValidateForBooking(next, today); err != nil {
			return nil, err
		}
		duration, ok := next.Duration()
		if !ok {
			return nil, utils.ErrInvalidDuration
		}
		if len(session.Draft.Itinerary) != duration {
			days, err := s.itinerary.Synthesize(next.Destination, next.Categories, duration)
			if err != nil {
				return nil, err
			}
			session.Draft.Itinerary = days
		}
		pricing := PriceDraft(session.Draft, duration, today)
		session.Draft.TotalCost = pricing.Total
		session.Pricing = &pricing
	}

	session.UpdatedAt = s.clock().UTC()
	s.save(session)
	return &session, nil
}

// EditDay replaces the plan of one synthesized day. The day number is kept
// and blank activities are dropped.
func (s *DraftService) EditDay(_ context.Context, ownerID, draftID string, day int, plan tm.DayPlan) (*tm.DraftSession, error) {
	session, err := s.load(ownerID, draftID)
	if err != nil {
		return nil, err
	}
	if day < 1 || day > len(session.Draft.Itinerary) {
		return nil, utils.ErrInvalidDay
	}

	edited := session.Draft.Itinerary[day-1].Clone()
	if title := strings.TrimSpace(plan.Title); title != "" {
		edited.Title = title
	}
	if plan.Activities != nil {
		edited.Activities = compactStrings(plan.Activities)
	}
	if acc := strings.TrimSpace(plan.Accommodation); acc != "" {
		edited.Accommodation = acc
	}
	if plan.Meals != nil {
		edited.Meals = compactStrings(plan.Meals)
	}
	session.Draft.Itinerary[day-1] = edited

	session.UpdatedAt = s.clock().UTC()
	s.save(session)
	return &session, nil
}

func (s *DraftService) DiscardDraft(_ context.Context, ownerID, draftID string) error {
	if _, err := s.load(ownerID, draftID); err != nil {
		return err
	}
	// a concurrent discard of the same draft already took it
	if _, ok := s.sessions.Consume(draftID); !ok {
		return utils.ErrDraftNotFound
	}
	return nil
}

func (s *DraftService) load(ownerID, draftID string) (tm.DraftSession, error) {
	if strings.TrimSpace(ownerID) == "" {
		return tm.DraftSession{}, utils.ErrUnauthorized
	}
	session, ok := s.sessions.Get(draftID)
	// someone else's draft reads as missing
	if !ok || session.OwnerID != ownerID {
		return tm.DraftSession{}, utils.ErrDraftNotFound
	}
	return session.Clone(), nil
}

func (s *DraftService) save(session tm.DraftSession) {
	s.sessions.Set(session.ID, session.Clone(), s.ttl)
}

func compactStrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
