// Package biztime holds the business timezone. Storage and transport use UTC;
// the business timezone only decides where a calendar day starts and ends,
// which is what document expiry is measured in.
package biztime

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// DefaultTimezone is the default business timezone.
const DefaultTimezone = "Europe/Rome"

// DateLayout is the storage and wire layout of calendar dates.
const DateLayout = "2006-01-02"

var (
	mu          sync.RWMutex
	bizLocation *time.Location
)

// Init sets the business timezone. An empty tz selects DefaultTimezone.
func Init(tz string) error {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("failed to load business timezone %q: %w", tz, err)
	}
	mu.Lock()
	bizLocation = loc
	mu.Unlock()
	return nil
}

// MustInit initializes the business timezone and panics on error.
func MustInit(tz string) {
	if err := Init(tz); err != nil {
		panic(err)
	}
}

// Location returns the business timezone, initializing the default on first use.
func Location() *time.Location {
	mu.RLock()
	loc := bizLocation
	mu.RUnlock()
	if loc != nil {
		return loc
	}
	MustInit("")
	return Location()
}

func NowUTC() time.Time {
	return time.Now().UTC()
}

// DateOf returns the business calendar date of t as midnight UTC, a form
// that compares and subtracts without DST drift.
func DateOf(t time.Time) time.Time {
	b := t.In(Location())
	return time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween counts calendar days from the business date of from to the
// business date of to. Negative when to is earlier.
func DaysBetween(from, to time.Time) int {
	return int(DateOf(to).Sub(DateOf(from)).Hours() / 24)
}

// StartOfDayUTC returns business-day midnight of t, converted to UTC.
func StartOfDayUTC(t time.Time) time.Time {
	b := t.In(Location())
	return time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, Location()).UTC()
}

// NextMidnightUTC returns the end of the business day containing t, in UTC.
func NextMidnightUTC(t time.Time) time.Time {
	b := t.In(Location())
	return time.Date(b.Year(), b.Month(), b.Day()+1, 0, 0, 0, 0, Location()).UTC()
}

// ParseDate accepts YYYY-MM-DD or an RFC3339 timestamp and returns the
// business calendar date in DateOf form.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC3339", s)
	}
	return DateOf(t), nil
}

// FormatDate renders the business date of t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.In(Location()).Format(DateLayout)
}

// FormatInBizTimezone formats a UTC time as a string in business timezone.
func FormatInBizTimezone(t time.Time, layout string) string {
	return t.In(Location()).Format(layout)
}
