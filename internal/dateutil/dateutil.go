package dateutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// DateFormat is the canonical YYYY-MM-DD date layout.
	DateFormat = "2006-01-02"
	// TimeFormat is the canonical HH:MM time-of-day layout.
	TimeFormat = "15:04"
)

// FormatDate formats t as a YYYY-MM-DD string.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %q (expected YYYY-MM-DD)", s)
	}
	return t, nil
}

// Today returns today's date as a YYYY-MM-DD string.
func Today() string {
	return FormatDate(time.Now())
}

// ValidateTimeFormat checks if the string matches the HH:MM layout.
func ValidateTimeFormat(timeStr string) bool {
	_, err := ParseTimeToMinutes(timeStr)
	return err == nil
}

// ParseTimeToMinutes parses an HH:MM string and returns minutes from
// midnight.
func ParseTimeToMinutes(timeStr string) (int, error) {
	parts := strings.Split(timeStr, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time format: %q", timeStr)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in %q", timeStr)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in %q", timeStr)
	}
	return hour*60 + minute, nil
}

// RangeKind selects a calendar range relative to a base date.
type RangeKind string

const (
	RangeLast7Days  RangeKind = "last7days"
	RangeWeek       RangeKind = "week"
	RangeLast30Days RangeKind = "last30days"
	RangeMonth      RangeKind = "month"
	RangeYear       RangeKind = "year"
)

// DateRange is an inclusive range of YYYY-MM-DD dates.
type DateRange struct {
	Start string
	End   string
}

// Contains reports whether date falls inside the range. The YYYY-MM-DD
// layout makes lexical comparison equivalent to date comparison.
func (r DateRange) Contains(date string) bool {
	return date >= r.Start && date <= r.End
}

// RangeFor computes the calendar range of the given kind around base.
// Weeks start on Monday.
func RangeFor(kind RangeKind, base time.Time) DateRange {
	switch kind {
	case RangeLast7Days:
		return DateRange{Start: FormatDate(base.AddDate(0, 0, -6)), End: FormatDate(base)}
	case RangeLast30Days:
		return DateRange{Start: FormatDate(base.AddDate(0, 0, -29)), End: FormatDate(base)}
	case RangeWeek:
		start := StartOfWeek(base)
		return DateRange{Start: FormatDate(start), End: FormatDate(start.AddDate(0, 0, 6))}
	case RangeMonth:
		start := time.Date(base.Year(), base.Month(), 1, 0, 0, 0, 0, base.Location())
		return DateRange{Start: FormatDate(start), End: FormatDate(start.AddDate(0, 1, -1))}
	case RangeYear:
		start := time.Date(base.Year(), 1, 1, 0, 0, 0, 0, base.Location())
		return DateRange{Start: FormatDate(start), End: FormatDate(start.AddDate(1, 0, -1))}
	default:
		today := FormatDate(base)
		return DateRange{Start: today, End: today}
	}
}

// StartOfWeek returns the Monday of the week containing t.
func StartOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the week that started the previous Monday
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).AddDate(0, 0, -(weekday - 1))
}

// CustomMonthRange computes the rolling monthly period anchored at
// startDay (1-31): if base's day-of-month is on or after startDay, the
// period runs from startDay of the current month to startDay-1 of the
// next; otherwise from startDay of the previous month to startDay-1 of
// the current one.
func CustomMonthRange(startDay int, base time.Time) DateRange {
	var start time.Time
	if base.Day() >= startDay {
		start = time.Date(base.Year(), base.Month(), startDay, 0, 0, 0, 0, base.Location())
	} else {
		start = time.Date(base.Year(), base.Month()-1, startDay, 0, 0, 0, 0, base.Location())
	}
	end := start.AddDate(0, 1, -1)
	return DateRange{Start: FormatDate(start), End: FormatDate(end)}
}

// DaysInRange lists every YYYY-MM-DD date from start to end inclusive.
// Returns nil if either bound is malformed or end precedes start.
func DaysInRange(start, end string) []string {
	startDate, err := ParseDate(start)
	if err != nil {
		return nil
	}
	endDate, err := ParseDate(end)
	if err != nil {
		return nil
	}

	var days []string
	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		days = append(days, FormatDate(d))
	}
	return days
}
