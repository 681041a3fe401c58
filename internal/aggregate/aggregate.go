// Package aggregate holds the pure derivation functions over habits
// and records: per-day accumulation, time-span net duration, and
// completion classification. Nothing here touches storage.
package aggregate

import (
	"math"

	"github.com/mwei/habitflow/internal/dateutil"
	"github.com/mwei/habitflow/internal/models"
)

// Accumulated sums the numeric value of every entry in the record.
// Entries that are not JSON numbers contribute 0.
func Accumulated(record models.HabitRecord) float64 {
	var total float64
	for _, entry := range record.Values {
		if n, ok := entry.Value.Number(); ok {
			total += n
		}
	}
	return total
}

// NetDuration computes the net duration in hours of a time span given
// HH:MM start and end strings and a deduction in hours. An end before
// the start is treated as crossing midnight. The result is floored at
// zero and rounded to 2 decimal places. Malformed times yield 0.
func NetDuration(startTime, endTime string, deduction float64) float64 {
	start, err := dateutil.ParseTimeToMinutes(startTime)
	if err != nil {
		return 0
	}
	end, err := dateutil.ParseTimeToMinutes(endTime)
	if err != nil {
		return 0
	}

	var minutes int
	if end >= start {
		minutes = end - start
	} else {
		minutes = (24*60 - start) + end
	}

	hours := float64(minutes)/60 - deduction
	if hours < 0 {
		hours = 0
	}
	return Round2(hours)
}

// SpanDuration computes the net duration of a record's time span, or 0
// if the record holds no usable span.
func SpanDuration(record models.HabitRecord) float64 {
	first, ok := record.FirstValue()
	if !ok {
		return 0
	}
	span, ok := first.Span()
	if !ok {
		return 0
	}
	return NetDuration(span.StartTime, span.EndTime, span.Deduction)
}

// Completed classifies whether the record counts as done for the
// habit's type:
//   - check-in: the value is true
//   - time-based: a non-empty value is set
//   - numeric/duration: accumulated >= target when a target is set,
//     otherwise accumulated > 0
//   - time-span: both start and end times are set (deduction alone
//     never affects completion)
func Completed(habit models.Habit, record models.HabitRecord) bool {
	switch habit.Type {
	case models.HabitCheckIn:
		first, ok := record.FirstValue()
		if !ok {
			return false
		}
		b, ok := first.Bool()
		return ok && b
	case models.HabitTimeBased:
		first, ok := record.FirstValue()
		if !ok {
			return false
		}
		s, ok := first.Text()
		return ok && s != ""
	case models.HabitNumeric, models.HabitDuration:
		total := Accumulated(record)
		if target, ok := habit.TargetNumber(); ok {
			return total >= target
		}
		return total > 0
	case models.HabitTimeSpan:
		first, ok := record.FirstValue()
		if !ok {
			return false
		}
		span, ok := first.Span()
		return ok && span.StartTime != "" && span.EndTime != ""
	default:
		return false
	}
}

// Round2 rounds to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
