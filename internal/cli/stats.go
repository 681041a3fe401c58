package cli

import (
	"fmt"
	"time"

	"github.com/mwei/habitflow/internal/aggregate"
	"github.com/mwei/habitflow/internal/dateutil"
	"github.com/mwei/habitflow/internal/models"
)

type StatsCmd struct {
	Habit string `arg:"" optional:"" help:"Habit name or id (default: all active habits)."`
	Range string `help:"Range: week, month, year, last7days or last30days." default:"week"`
}

func (c *StatsCmd) Run(ctx *Context) error {
	habits := ctx.Store.ActiveHabits()
	if c.Habit != "" {
		habit, err := findHabit(ctx.Store, c.Habit)
		if err != nil {
			return err
		}
		habits = []models.Habit{habit}
	}
	if len(habits) == 0 {
		fmt.Println("No active habits.")
		return nil
	}

	kind := dateutil.RangeKind(c.Range)
	switch kind {
	case dateutil.RangeWeek, dateutil.RangeMonth, dateutil.RangeYear,
		dateutil.RangeLast7Days, dateutil.RangeLast30Days:
	default:
		return fmt.Errorf("invalid range: %q", c.Range)
	}

	for _, habit := range habits {
		c.printHabitStats(ctx, habit, kind)
	}
	return nil
}

func (c *StatsCmd) printHabitStats(ctx *Context, habit models.Habit, kind dateutil.RangeKind) {
	days := rangeDays(kind)

	switch habit.Type {
	case models.HabitTimeSpan:
		fmt.Printf("%s: %gh this week, %gh this month\n",
			habit.Name, ctx.Store.WeeklyTotal(habit.ID), ctx.Store.MonthlyTotal(habit.ID))
	case models.HabitNumeric, models.HabitDuration:
		var total float64
		completed := 0
		for _, day := range days {
			rec, ok := ctx.Store.RecordFor(habit.ID, day)
			if !ok {
				continue
			}
			total += aggregate.Accumulated(rec)
			if aggregate.Completed(habit, rec) {
				completed++
			}
		}
		unit := habit.Unit
		if unit != "" {
			unit = " " + unit
		}
		fmt.Printf("%s: %g%s over %s, %d/%d days completed\n",
			habit.Name, total, unit, kind, completed, len(days))
	default:
		completed := 0
		for _, day := range days {
			rec, ok := ctx.Store.RecordFor(habit.ID, day)
			if ok && aggregate.Completed(habit, rec) {
				completed++
			}
		}
		fmt.Printf("%s: %d/%d days completed over %s\n", habit.Name, completed, len(days), kind)
	}
}

func rangeDays(kind dateutil.RangeKind) []string {
	r := dateutil.RangeFor(kind, time.Now())
	return dateutil.DaysInRange(r.Start, r.End)
}
