package service

import (
	"time"
)

// Date handling reproduces the tracker's wire contract exactly. Dates are
// stored and served as the fixed-width display string "Www Mmm DD YYYY"
// (15 characters, zero-padded day), e.g. "Mon Jan 01 1990". Clients
// submit and filter with plain "yyyy-mm-dd" values.
const (
	// displayLayout renders the stored form.
	displayLayout = "Mon Jan 02 2006"

	// entryLayout parses a stored date with the weekday prefix sliced off.
	entryLayout = "Jan 02 2006"

	// inputLayout parses client-supplied dates.
	inputLayout = "2006-01-02"
)

// minDate/maxDate bound an unfiltered date range, standing in for the
// omitted from/to query parameters.
var (
	minDate = time.Time{}
	maxDate = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)
)

// FormatDate renders a time as the stored display string.
func FormatDate(t time.Time) string {
	return t.Format(displayLayout)
}

// ResolveDate picks the date for a new exercise. A parseable yyyy-mm-dd
// value wins; anything else, including an empty value, silently falls
// back to the current date. Either way the result is the display string.
func ResolveDate(raw string, now func() time.Time) string {
	if raw != "" {
		if t, err := time.Parse(inputLayout, raw); err == nil {
			return FormatDate(t)
		}
	}
	return FormatDate(now())
}

// ParseEntryDate converts a stored display string back into a calendar
// date by skipping the 4-character weekday prefix, the same slice the
// filtering contract is defined on.
func ParseEntryDate(s string) (time.Time, error) {
	if len(s) > 4 {
		s = s[4:]
	}
	return time.Parse(entryLayout, s)
}

// ParseInputDate parses a client-supplied yyyy-mm-dd date.
func ParseInputDate(s string) (time.Time, error) {
	return time.Parse(inputLayout, s)
}
