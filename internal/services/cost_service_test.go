package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	tm "tripwise/internal/models/trip_models"
)

func rupees(n int64) tm.Amount {
	return tm.Amount(n * minorPerMajor)
}

func TestPriceDraftWorkedExample(t *testing.T) {
	d := tm.TripDraft{
		Travelers: tm.Travelers{Adults: 2, Children: 1},
		Budget:    tm.Budget{Min: 20000, Max: 30000},
		Services:  tm.Services{Transportation: true},
		StartDate: testToday.AddDays(45),
		EndDate:   testToday.AddDays(50),
	}

	p := PriceDraft(d, 5, testToday)
	assert.Equal(t, rupees(75000), p.Base)
	assert.Equal(t, rupees(15000), p.ServicesCost)
	assert.Equal(t, rupees(90000), p.Subtotal)
	assert.Equal(t, rupees(9000), p.Discount)
	assert.Equal(t, rupees(81000), p.Total)
	assert.Equal(t, "INR", p.Currency)
}

func TestPriceDraftEarlyBirdBoundary(t *testing.T) {
	tests := []struct {
		daysAhead  int
		discounted bool
	}{
		{0, false},
		{30, false},
		{31, true},
		{90, true},
	}
	for _, tt := range tests {
		d := validDraft()
		d.StartDate = testToday.AddDays(tt.daysAhead)
		d.EndDate = d.StartDate.AddDays(3)

		p := PriceDraft(d, 3, testToday)
		if tt.discounted {
			assert.Equal(t, p.Subtotal/10, p.Discount, "days ahead %d", tt.daysAhead)
		} else {
			assert.Zero(t, p.Discount, "days ahead %d", tt.daysAhead)
		}
		assert.Equal(t, p.Subtotal-p.Discount, p.Total)
	}
}

func TestPriceDraftAllServices(t *testing.T) {
	d := validDraft() // 2 travelers
	d.Services = tm.Services{MedicalFacilities: true, Transportation: true, Accommodation: true}

	p := PriceDraft(d, 4, testToday)
	want := rupees(2000*2 + 5000*2 + 3000*2*4)
	assert.Equal(t, want, p.ServicesCost)
	assert.Equal(t, rupees(2*25000), p.Base)
}

func TestPriceDraftHalfBudgetIsExact(t *testing.T) {
	d := validDraft()
	d.Travelers = tm.Travelers{Adults: 1}
	d.Budget = tm.Budget{Min: 1, Max: 2}

	p := PriceDraft(d, 1, testToday)
	assert.Equal(t, tm.Amount(150), p.Base) // 1.50
}

func TestPercentHalfUp(t *testing.T) {
	assert.Equal(t, tm.Amount(3), percentHalfUp(25, 10))
	assert.Equal(t, tm.Amount(2), percentHalfUp(24, 10))
	assert.Equal(t, tm.Amount(0), percentHalfUp(4, 10))
	assert.Equal(t, tm.Amount(1), percentHalfUp(5, 10))
}

func TestPriceDraftNeverNegative(t *testing.T) {
	d := tm.TripDraft{Budget: tm.Budget{Min: -100, Max: -50}, Travelers: tm.Travelers{Adults: -3}}
	p := PriceDraft(d, -2, testToday)
	assert.GreaterOrEqual(t, int64(p.Total), int64(0))
	assert.GreaterOrEqual(t, int64(p.Base), int64(0))
}

func TestCostServiceUsesClockToday(t *testing.T) {
	svc := NewCostService(testClock, testLoc)
	d := validDraft()
	d.StartDate = testToday.AddDays(31)

	p := svc.Price(d, 3)
	assert.NotZero(t, p.Discount)

	late := NewCostService(func() time.Time { return testNow.AddDate(0, 0, 5) }, testLoc)
	assert.Zero(t, late.Price(d, 3).Discount)
}
