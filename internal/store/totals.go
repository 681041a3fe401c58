package store

import (
	"time"

	"github.com/mwei/habitflow/internal/aggregate"
	"github.com/mwei/habitflow/internal/dateutil"
	"github.com/mwei/habitflow/internal/models"
)

// WeeklyTotal sums the net duration of the habit's records in the
// current Monday-start week, rounded to 2 decimal places. Only
// meaningful for time-span habits; any other type (or an unknown
// habit) yields 0.
func (s *Store) WeeklyTotal(habitID string) float64 {
	return s.totalInRange(habitID, dateutil.RangeFor(dateutil.RangeWeek, time.Now()))
}

// MonthlyTotal sums the net duration of the habit's records in the
// current calendar month, or in the habit's custom monthly cycle when
// monthlyStartDay is set. Rounded to 2 decimal places; 0 for
// non-time-span or unknown habits.
func (s *Store) MonthlyTotal(habitID string) float64 {
	habit, ok := s.HabitByID(habitID)
	if !ok {
		return 0
	}

	var r dateutil.DateRange
	if habit.MonthlyStartDay >= 1 && habit.MonthlyStartDay <= 31 {
		r = dateutil.CustomMonthRange(habit.MonthlyStartDay, time.Now())
	} else {
		r = dateutil.RangeFor(dateutil.RangeMonth, time.Now())
	}
	return s.totalInRange(habitID, r)
}

func (s *Store) totalInRange(habitID string, r dateutil.DateRange) float64 {
	habit, ok := s.HabitByID(habitID)
	if !ok || habit.Type != models.HabitTimeSpan {
		return 0
	}

	var total float64
	for _, rec := range s.records {
		if rec.HabitID == habitID && r.Contains(rec.Date) {
			total += aggregate.SpanDuration(rec)
		}
	}
	return aggregate.Round2(total)
}
