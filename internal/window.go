package internal

import (
	"time"
)

const (
	// LocalOffset is the fixed offset of local time from UTC (KST)
	LocalOffset = 9 * time.Hour

	// DateLayout is the accepted layout for --date
	DateLayout = "2006-01-02"
)

// TimeWindow is a UTC interval covering one local calendar day
type TimeWindow struct {
	Start time.Time
	End   time.Time
	Label string // local calendar date, YYYY-MM-DD
}

// TodayWindow returns the window of the local calendar day containing now
func TodayWindow(now time.Time) TimeWindow {
	local := now.UTC().Add(LocalOffset)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
	return windowFromLocalMidnight(midnight)
}

// DateWindow returns the window of the given local date (YYYY-MM-DD)
func DateWindow(date string) (TimeWindow, error) {
	midnight, err := time.Parse(DateLayout, date)
	if err != nil {
		return TimeWindow{}, &ParseError{Source: "date", Key: date, Err: err}
	}
	return windowFromLocalMidnight(midnight), nil
}

// NewTimeWindow returns DateWindow(date) when date is set, TodayWindow(now) otherwise
func NewTimeWindow(date string, now time.Time) (TimeWindow, error) {
	if date == "" {
		return TodayWindow(now), nil
	}
	return DateWindow(date)
}

// windowFromLocalMidnight takes a local midnight expressed as a naive UTC value
func windowFromLocalMidnight(midnight time.Time) TimeWindow {
	start := midnight.Add(-LocalOffset)
	return TimeWindow{
		Start: start,
		End:   start.Add(24 * time.Hour),
		Label: midnight.Format(DateLayout),
	}
}

// Contains reports whether t falls within the window. Both bounds are
// inclusive, so an instant exactly at End also matches.
func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}
