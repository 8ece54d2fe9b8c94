package calendar

import (
	"errors"
	"strings"
	"time"
)

const (
	DateLayout      = "2006-01-02"
	TimeOfDayLayout = "15:04"

	timeWithSecondsLayout = "15:04:05"
)

var (
	ErrInvalidDate      = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidTimeOfDay = errors.New("invalid time format, use HH:MM")
)

// ParseDate parses an ISO calendar date into a UTC-midnight time.Time.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// ParseLooseDate accepts either an ISO calendar date or an RFC3339 timestamp
// (clients often submit "2025-01-01T00:00:00.000Z"). Only the date part of a
// timestamp is kept, as written by the client.
func ParseLooseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if d, err := time.Parse(DateLayout, s); err == nil {
		return d, nil
	}
	ts, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return DateOf(ts), nil
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(d time.Time) string {
	return d.Format(DateLayout)
}

// FormatDates renders every date with FormatDate.
func FormatDates(dates []time.Time) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = FormatDate(d)
	}
	return out
}

// ParseTimeOfDay accepts HH:MM or HH:MM:SS and returns the normalized HH:MM form.
func ParseTimeOfDay(s string) (string, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(TimeOfDayLayout, s)
	if err != nil {
		t, err = time.Parse(timeWithSecondsLayout, s)
		if err != nil {
			return "", ErrInvalidTimeOfDay
		}
	}
	return t.Format(TimeOfDayLayout), nil
}

// NormalizeTimeOfDay is ParseTimeOfDay for values already known to be valid,
// e.g. Postgres time columns scanned back as "10:00:00".
func NormalizeTimeOfDay(s string) string {
	if tod, err := ParseTimeOfDay(s); err == nil {
		return tod
	}
	return s
}

// DateOf strips the clock from t, keeping t's own year/month/day.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the calendar date of now as observed in loc.
func Today(now time.Time, loc *time.Location) time.Time {
	return DateOf(now.In(loc))
}

// AddDays shifts a calendar date by n whole days.
func AddDays(d time.Time, n int) time.Time {
	return d.AddDate(0, 0, n)
}

// Span returns n consecutive dates starting at start.
func Span(start time.Time, n int) []time.Time {
	if n <= 0 {
		return []time.Time{}
	}
	out := make([]time.Time, n)
	for i := 0; i < n; i++ {
		out[i] = AddDays(start, i)
	}
	return out
}

// Between returns every date from start to end inclusive.
func Between(start, end time.Time) []time.Time {
	days := int(end.Sub(start).Hours() / 24)
	return Span(start, days+1)
}

// Combine places a calendar date and an HH:MM time of day in loc.
func Combine(date time.Time, timeOfDay string, loc *time.Location) (time.Time, error) {
	tod, err := ParseTimeOfDay(timeOfDay)
	if err != nil {
		return time.Time{}, err
	}
	t, _ := time.Parse(TimeOfDayLayout, tod)
	y, m, d := date.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, loc), nil
}

// SplitDateTime is the inverse of Combine: the wall-clock date and HH:MM of t in loc.
func SplitDateTime(t time.Time, loc *time.Location) (time.Time, string) {
	local := t.In(loc)
	return DateOf(local), local.Format(TimeOfDayLayout)
}

// IsBeforeNow reports whether the slot (date, timeOfDay) in loc lies strictly before now.
func IsBeforeNow(date time.Time, timeOfDay string, now time.Time, loc *time.Location) (bool, error) {
	slot, err := Combine(date, timeOfDay, loc)
	if err != nil {
		return false, err
	}
	return slot.Before(now), nil
}

// IsAfterToday reports whether date is strictly after today's date in loc.
func IsAfterToday(date time.Time, now time.Time, loc *time.Location) bool {
	return DateOf(date).After(Today(now, loc))
}

// SameDay compares calendar dates, ignoring clock and location.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// SplitList turns a comma-separated value ("Mon, Wed, Fri") into trimmed items.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinList is the inverse of SplitList.
func JoinList(items []string) string {
	cleaned := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			cleaned = append(cleaned, item)
		}
	}
	return strings.Join(cleaned, ", ")
}
