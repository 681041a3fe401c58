package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwei/habitflow/internal/dateutil"
	"github.com/mwei/habitflow/internal/models"
)

func spanRecord(habitID, date string, start, end string, deduction float64) models.HabitRecord {
	return models.HabitRecord{
		HabitID: habitID,
		Date:    date,
		Values: []models.ValueEntry{
			{Value: models.SpanValue(models.TimeSpan{StartTime: start, EndTime: end, Deduction: deduction})},
		},
	}
}

func newSpanStore(t *testing.T, monthlyStartDay int) *Store {
	t.Helper()
	habit := models.Habit{
		ID:              "work",
		Name:            "Work",
		Type:            models.HabitTimeSpan,
		IsActive:        true,
		CreatedAt:       "2025-01-01T00:00:00.000Z",
		Order:           1,
		MonthlyStartDay: monthlyStartDay,
	}
	s, _ := newTestStore(t, models.AppData{Habits: []models.Habit{habit}})
	return s
}

func TestWeeklyTotal_SumsNetDurationsInCurrentWeek(t *testing.T) {
	s := newSpanStore(t, 0)

	// today is always inside the current week; a date far in the past
	// never is
	require.NoError(t, s.AddRecord(spanRecord("work", dateutil.Today(), "09:00", "17:30", 0.5)))
	require.NoError(t, s.AddRecord(spanRecord("work", "2000-01-03", "09:00", "17:00", 0)))

	assert.Equal(t, 8.0, s.WeeklyTotal("work"))
}

func TestMonthlyTotal_CalendarMonth(t *testing.T) {
	s := newSpanStore(t, 0)

	require.NoError(t, s.AddRecord(spanRecord("work", dateutil.Today(), "23:00", "01:00", 0)))
	require.NoError(t, s.AddRecord(spanRecord("work", "2000-01-03", "09:00", "17:00", 0)))

	assert.Equal(t, 2.0, s.MonthlyTotal("work"))
}

func TestMonthlyTotal_CustomCycleContainsToday(t *testing.T) {
	// whatever today is, it falls inside its own custom monthly cycle
	s := newSpanStore(t, 15)

	require.NoError(t, s.AddRecord(spanRecord("work", dateutil.Today(), "09:00", "12:00", 0)))

	assert.Equal(t, 3.0, s.MonthlyTotal("work"))
}

func TestTotals_RoundToTwoDecimals(t *testing.T) {
	s := newSpanStore(t, 0)

	// 20 minutes = 0.3333... hours
	require.NoError(t, s.AddRecord(spanRecord("work", dateutil.Today(), "09:00", "09:20", 0)))

	assert.Equal(t, 0.33, s.WeeklyTotal("work"))
	assert.Equal(t, 0.33, s.MonthlyTotal("work"))
}

func TestTotals_ZeroForNonTimeSpanHabits(t *testing.T) {
	habit := checkIn("read", "Read", 1)
	s, _ := newTestStore(t, models.AppData{Habits: []models.Habit{habit}})
	require.NoError(t, s.AddRecord(numRecord("read", dateutil.Today(), 5)))

	assert.Equal(t, 0.0, s.WeeklyTotal("read"))
	assert.Equal(t, 0.0, s.MonthlyTotal("read"))
}

func TestTotals_ZeroForUnknownHabit(t *testing.T) {
	s, _ := newTestStore(t, models.AppData{})
	assert.Equal(t, 0.0, s.WeeklyTotal("nope"))
	assert.Equal(t, 0.0, s.MonthlyTotal("nope"))
}
