package trip_models

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) civil.Date {
	return civil.Date{Year: y, Month: m, Day: d}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		name   string
		start  civil.Date
		end    civil.Date
		want   int
		wantOK bool
	}{
		{"three nights", date(2026, 3, 10), date(2026, 3, 13), 3, true},
		{"one day", date(2026, 3, 10), date(2026, 3, 11), 1, true},
		{"across months", date(2026, 2, 27), date(2026, 3, 2), 3, true},
		{"same day", date(2026, 3, 10), date(2026, 3, 10), 0, false},
		{"reversed", date(2026, 3, 13), date(2026, 3, 10), 0, false},
		{"missing start", civil.Date{}, date(2026, 3, 10), 0, false},
		{"missing end", date(2026, 3, 10), civil.Date{}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TripDraft{StartDate: tt.start, EndDate: tt.end}.Duration()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestEffectiveStatus(t *testing.T) {
	today := date(2026, 3, 15)
	b := Booking{TripDraft: TripDraft{StartDate: date(2026, 3, 10), EndDate: date(2026, 3, 14)}, Status: StatusConfirmed}
	assert.Equal(t, StatusCompleted, b.EffectiveStatus(today))

	b.EndDate = today
	assert.Equal(t, StatusConfirmed, b.EffectiveStatus(today))

	b.EndDate = date(2026, 3, 1)
	b.Status = StatusCancelled
	assert.Equal(t, StatusCancelled, b.EffectiveStatus(today))
}

func TestAmountString(t *testing.T) {
	assert.Equal(t, "81000.00", Amount(8100000).String())
	assert.Equal(t, "0.05", Amount(5).String())
	assert.Equal(t, "0.00", Amount(0).String())
	assert.Equal(t, "-12.50", Amount(-1250).String())
}

func TestNormalizeCategories(t *testing.T) {
	got := NormalizeCategories([]string{" Beaches", "culinary", "", "BEACHES", "wildlife "})
	assert.Equal(t, []string{"beaches", "culinary", "wildlife"}, got)
	assert.Empty(t, NormalizeCategories(nil))
}

func TestCloneIsDeep(t *testing.T) {
	d := TripDraft{
		Categories: []string{"beaches"},
		Itinerary:  []DayPlan{{Day: 1, Activities: []string{"a"}, Meals: []string{"Breakfast"}}},
	}
	c := d.Clone()
	c.Categories[0] = "desert"
	c.Itinerary[0].Activities[0] = "b"
	c.Itinerary[0].Title = "changed"

	assert.Equal(t, "beaches", d.Categories[0])
	assert.Equal(t, "a", d.Itinerary[0].Activities[0])
	assert.Empty(t, d.Itinerary[0].Title)

	assert.Nil(t, TripDraft{}.Clone().Itinerary)
}

func TestDraftSessionClone(t *testing.T) {
	s := DraftSession{Pricing: &PriceBreakdown{Total: 100}, Draft: TripDraft{Categories: []string{"x"}}}
	c := s.Clone()
	c.Pricing.Total = 1
	c.Draft.Categories[0] = "y"
	assert.Equal(t, Amount(100), s.Pricing.Total)
	assert.Equal(t, "x", s.Draft.Categories[0])
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "user:o1", UserKey("o1"))
	assert.Equal(t, "trip:o1:b1", TripKey("o1", "b1"))
	assert.Equal(t, "trip:o1:", TripKeyPrefix("o1"))
	assert.True(t, StepReview.Valid())
	assert.False(t, Step(0).Valid())
	assert.False(t, Step(5).Valid())
}
