package trip_models

import (
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
)

// Amount is money in minor currency units (paise).
type Amount int64

// String formats the amount in major units with two decimals, e.g. "81000.00".
func (a Amount) String() string {
	sign := ""
	if a < 0 {
		sign = "-"
		a = -a
	}
	return fmt.Sprintf("%s%d.%02d", sign, a/100, a%100)
}

// Budget is the per-traveler budget range in major units.
type Budget struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

type Travelers struct {
	Newborns    int `json:"newborns"`
	Children    int `json:"children"`
	Adults      int `json:"adults"`
	Seniors     int `json:"seniors"`
	Handicapped int `json:"handicapped"`
}

func (t Travelers) Total() int {
	return t.Newborns + t.Children + t.Adults + t.Seniors + t.Handicapped
}

func (t Travelers) HasNegative() bool {
	return t.Newborns < 0 || t.Children < 0 || t.Adults < 0 || t.Seniors < 0 || t.Handicapped < 0
}

// Contact is an organizer or assistant. Mobile2 is always optional.
type Contact struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Mobile1 string `json:"mobile1"`
	Mobile2 string `json:"mobile2,omitempty"`
}

type Services struct {
	MedicalFacilities bool `json:"medicalFacilities"`
	Transportation    bool `json:"transportation"`
	Accommodation     bool `json:"accommodation"`
}

type DayPlan struct {
	Day           int      `json:"day"`
	Title         string   `json:"title"`
	Activities    []string `json:"activities"`
	Accommodation string   `json:"accommodation"`
	Meals         []string `json:"meals"`
}

// TripDraft is the configuration accumulated across the wizard steps.
// Values are treated as immutable: reducers return modified clones.
type TripDraft struct {
	Destination string     `json:"destination"`
	Categories  []string   `json:"categories"`
	Budget      Budget     `json:"budget"`
	Travelers   Travelers  `json:"travelers"`
	Organizer   Contact    `json:"organizer"`
	Assistant   Contact    `json:"assistant"`
	StartDate   civil.Date `json:"startDate"`
	EndDate     civil.Date `json:"endDate"`
	Services    Services   `json:"services"`
	Itinerary   []DayPlan  `json:"itinerary"`
	TotalCost   Amount     `json:"totalCost"`
}

// Duration is the number of days between StartDate and EndDate. It reports
// false when either date is missing or the range is not at least one day.
func (d TripDraft) Duration() (int, bool) {
	if IsZeroDate(d.StartDate) || IsZeroDate(d.EndDate) {
		return 0, false
	}
	days := d.EndDate.DaysSince(d.StartDate)
	if days < 1 {
		return 0, false
	}
	return days, true
}

func (d TripDraft) Clone() TripDraft {
	out := d
	out.Categories = append([]string(nil), d.Categories...)
	if d.Itinerary != nil {
		out.Itinerary = make([]DayPlan, len(d.Itinerary))
		for i, day := range d.Itinerary {
			out.Itinerary[i] = day.Clone()
		}
	}
	return out
}

func (p DayPlan) Clone() DayPlan {
	out := p
	out.Activities = append([]string(nil), p.Activities...)
	out.Meals = append([]string(nil), p.Meals...)
	return out
}

// NormalizeCategories trims, lowercases and de-duplicates category keys
// while keeping the order in which they were first selected.
func NormalizeCategories(categories []string) []string {
	seen := make(map[string]bool, len(categories))
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		key := strings.ToLower(strings.TrimSpace(c))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, key)
	}
	return out
}

func IsZeroDate(d civil.Date) bool {
	return d == civil.Date{}
}
