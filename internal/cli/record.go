package cli

import (
	"fmt"

	"github.com/mwei/habitflow/internal/dateutil"
	"github.com/mwei/habitflow/internal/models"
)

type RecordCmd struct {
	Add   RecordAddCmd   `cmd:"" help:"Record a value for a habit."`
	List  RecordListCmd  `cmd:"" help:"Show records for a date."`
	Clear RecordClearCmd `cmd:"" help:"Clear a habit's entries for a date."`
}

type RecordAddCmd struct {
	Habit string `arg:"" help:"Habit name or id."`
	Date  string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
	Note  string `help:"Optional note." default:""`

	Value     float64 `help:"Value for numeric/duration habits."`
	Append    bool    `help:"Append the value as an extra same-day entry instead of replacing."`
	Time      string  `help:"HH:MM value for time-based habits." default:""`
	Done      bool    `help:"Mark a check-in habit as done." default:"true" negatable:""`
	Start     string  `help:"HH:MM start for time-span habits." default:""`
	End       string  `help:"HH:MM end for time-span habits." default:""`
	Deduction float64 `help:"Deduction in hours for time-span habits." default:"0"`
}

func (c *RecordAddCmd) Run(ctx *Context) error {
	habit, err := findHabit(ctx.Store, c.Habit)
	if err != nil {
		return err
	}

	date := c.Date
	if date == "" {
		date = dateutil.Today()
	} else if _, err := dateutil.ParseDate(date); err != nil {
		return err
	}

	entry, err := c.buildEntry(habit)
	if err != nil {
		return err
	}

	values := []models.ValueEntry{entry}
	if c.Append {
		if habit.Type != models.HabitNumeric && habit.Type != models.HabitDuration {
			return fmt.Errorf("--append only applies to numeric and duration habits")
		}
		if existing, ok := ctx.Store.RecordFor(habit.ID, date); ok {
			values = append(existing.Values, entry)
		}
	}

	record := models.HabitRecord{
		HabitID: habit.ID,
		Date:    date,
		Values:  values,
		Note:    c.Note,
	}
	if err := ctx.Store.AddRecord(record); err != nil {
		return err
	}

	saved, _ := ctx.Store.RecordFor(habit.ID, date)
	fmt.Printf("Recorded %s for %q on %s\n", formatRecordValue(habit, saved), habit.Name, date)
	return nil
}

func (c *RecordAddCmd) buildEntry(habit models.Habit) (models.ValueEntry, error) {
	switch habit.Type {
	case models.HabitNumeric, models.HabitDuration:
		return models.ValueEntry{Value: models.NumberValue(c.Value)}, nil
	case models.HabitTimeBased:
		if !dateutil.ValidateTimeFormat(c.Time) {
			return models.ValueEntry{}, fmt.Errorf("time-based habits need --time in HH:MM format")
		}
		return models.ValueEntry{Value: models.StringValue(c.Time)}, nil
	case models.HabitCheckIn:
		return models.ValueEntry{Value: models.BoolValue(c.Done)}, nil
	case models.HabitTimeSpan:
		if !dateutil.ValidateTimeFormat(c.Start) || !dateutil.ValidateTimeFormat(c.End) {
			return models.ValueEntry{}, fmt.Errorf("time-span habits need --start and --end in HH:MM format")
		}
		return models.ValueEntry{Value: models.SpanValue(models.TimeSpan{
			StartTime: c.Start,
			EndTime:   c.End,
			Deduction: c.Deduction,
		})}, nil
	default:
		return models.ValueEntry{}, fmt.Errorf("unknown habit type: %q", habit.Type)
	}
}

type RecordListCmd struct {
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *RecordListCmd) Run(ctx *Context) error {
	date := c.Date
	if date == "" {
		date = dateutil.Today()
	} else if _, err := dateutil.ParseDate(date); err != nil {
		return err
	}

	habits := ctx.Store.ActiveHabits()
	if len(habits) == 0 {
		fmt.Println("No active habits.")
		return nil
	}

	fmt.Printf("Records for %s:\n", date)
	for _, habit := range habits {
		rec, ok := ctx.Store.RecordFor(habit.ID, date)
		if !ok {
			fmt.Printf("  [ ] %s: no record\n", habit.Name)
			continue
		}
		line := fmt.Sprintf("  [%s] %s: %s", completionMark(habit, rec), habit.Name, formatRecordValue(habit, rec))
		if rec.Note != "" {
			line += fmt.Sprintf(" (%s)", rec.Note)
		}
		fmt.Println(line)
	}

	return nil
}

type RecordClearCmd struct {
	Habit string `arg:"" help:"Habit name or id."`
	Date  string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

// Run overwrites the record with an empty values sequence, the explicit
// "cleared" state, which is distinct from having no record at all.
func (c *RecordClearCmd) Run(ctx *Context) error {
	habit, err := findHabit(ctx.Store, c.Habit)
	if err != nil {
		return err
	}

	date := c.Date
	if date == "" {
		date = dateutil.Today()
	} else if _, err := dateutil.ParseDate(date); err != nil {
		return err
	}

	record := models.HabitRecord{
		HabitID: habit.ID,
		Date:    date,
		Values:  []models.ValueEntry{},
	}
	if err := ctx.Store.AddRecord(record); err != nil {
		return err
	}

	fmt.Printf("Cleared entries for %q on %s\n", habit.Name, date)
	return nil
}
