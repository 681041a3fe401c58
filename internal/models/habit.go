package models

import "time"

type HabitType string

const (
	HabitNumeric   HabitType = "numeric"
	HabitDuration  HabitType = "duration"
	HabitTimeBased HabitType = "time-based"
	HabitCheckIn   HabitType = "check-in"
	HabitTimeSpan  HabitType = "time-span"
)

// Valid reports whether t is one of the known habit types.
func (t HabitType) Valid() bool {
	switch t {
	case HabitNumeric, HabitDuration, HabitTimeBased, HabitCheckIn, HabitTimeSpan:
		return true
	}
	return false
}

// Habit represents a tracked behavior definition. ID and Type are
// immutable after creation. Timestamps are ISO-8601 strings to stay
// wire-compatible with data exported from the original web app.
type Habit struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      HabitType `json:"type"`
	Unit      string    `json:"unit,omitempty"`
	Target    *Value    `json:"target,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt string    `json:"createdAt"`

	// Order defines display and record-entry ordering among active
	// habits. Zero means unassigned; normalization repairs it.
	Order int `json:"order,omitempty"`

	// MonthlyStartDay (1-31) defines a custom monthly accounting period
	// for time-span habits. Zero means the calendar month applies.
	MonthlyStartDay int `json:"monthlyStartDay,omitempty"`
}

// TargetNumber returns the numeric target, if one is set.
func (h Habit) TargetNumber() (float64, bool) {
	if h.Target == nil {
		return 0, false
	}
	return h.Target.Number()
}

// TargetTime returns the HH:MM target for time-based habits, if set.
func (h Habit) TargetTime() (string, bool) {
	if h.Target == nil {
		return "", false
	}
	s, ok := h.Target.Text()
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// NowISO returns the current UTC time in the ISO-8601 format used for
// createdAt / completedAt / entry timestamps.
func NowISO() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
}
