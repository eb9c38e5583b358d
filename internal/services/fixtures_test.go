package services

import (
	"time"

	"cloud.google.com/go/civil"
	tm "tripwise/internal/models/trip_models"
	"tripwise/pkg/utils"
)

var (
	testLoc   = time.FixedZone("IST", 5*3600+1800)
	testNow   = time.Date(2026, 3, 1, 12, 0, 0, 0, testLoc)
	testToday = civil.Date{Year: 2026, Month: time.March, Day: 1}
	testClock = utils.FixedClock(testNow)
)

func date(y int, m time.Month, d int) civil.Date {
	return civil.Date{Year: y, Month: m, Day: d}
}

// validDraft passes every wizard step as of testToday and lasts 3 days.
func validDraft() tm.TripDraft {
	return tm.TripDraft{
		Destination: "Goa",
		Categories:  []string{"beaches"},
		Budget:      tm.Budget{Min: 20000, Max: 30000},
		Travelers:   tm.Travelers{Adults: 2},
		Organizer: tm.Contact{
			Name:    "Asha Rao",
			Email:   "asha@example.com",
			Mobile1: "+91 98450 00000",
		},
		StartDate: date(2026, time.March, 10),
		EndDate:   date(2026, time.March, 13),
	}
}

func strPtr(s string) *string { return &s }
