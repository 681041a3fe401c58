package cli

import (
	"fmt"
	"strings"

	"github.com/mwei/habitflow/internal/aggregate"
	"github.com/mwei/habitflow/internal/models"
	"github.com/mwei/habitflow/internal/storage"
	"github.com/mwei/habitflow/internal/store"
)

// Context is passed to every command by kong.
type Context struct {
	Store   *store.Store
	Repo    *storage.Repository
	DataDir string
}

// findHabit resolves a habit by exact id or (case-insensitive) name.
func findHabit(s *store.Store, ref string) (models.Habit, error) {
	if habit, ok := s.HabitByID(ref); ok {
		return habit, nil
	}
	for _, habit := range s.Habits() {
		if strings.EqualFold(habit.Name, ref) {
			return habit, nil
		}
	}
	return models.Habit{}, fmt.Errorf("habit %q not found", ref)
}

// formatRecordValue renders a record's effective value for display
// according to the habit's type.
func formatRecordValue(habit models.Habit, rec models.HabitRecord) string {
	switch habit.Type {
	case models.HabitNumeric, models.HabitDuration:
		v := fmt.Sprintf("%g", aggregate.Accumulated(rec))
		if habit.Unit != "" {
			v += " " + habit.Unit
		}
		return v
	case models.HabitTimeBased:
		if first, ok := rec.FirstValue(); ok {
			if s, ok := first.Text(); ok && s != "" {
				return s
			}
		}
		return "-"
	case models.HabitCheckIn:
		if first, ok := rec.FirstValue(); ok {
			if b, ok := first.Bool(); ok && b {
				return "done"
			}
		}
		return "not done"
	case models.HabitTimeSpan:
		if first, ok := rec.FirstValue(); ok {
			if span, ok := first.Span(); ok {
				return fmt.Sprintf("%s-%s (%gh net)", span.StartTime, span.EndTime,
					aggregate.NetDuration(span.StartTime, span.EndTime, span.Deduction))
			}
		}
		return "-"
	default:
		return "-"
	}
}

func completionMark(habit models.Habit, rec models.HabitRecord) string {
	if aggregate.Completed(habit, rec) {
		return "x"
	}
	return " "
}
