// utils/timeutil.go
package utils

import (
	"time"

	"cloud.google.com/go/civil"
)

// Clock returns the current instant. Services take one so tests can pin "today".
type Clock func() time.Time

// LoadLocation resolves the trip calendar zone. India has no DST, so the fixed
// IST offset is an exact fallback when tzdata is missing.
func LoadLocation(name string) *time.Location {
	if name == "" {
		name = "Asia/Kolkata"
	}
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	return time.FixedZone("IST", 5*3600+1800)
}

// Today is the calendar date of now in loc.
func Today(now time.Time, loc *time.Location) civil.Date {
	return civil.DateOf(now.In(loc))
}

// FixedClock always reports t.
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func FormatRFC3339(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	return t.In(loc).Format(time.RFC3339)
}
