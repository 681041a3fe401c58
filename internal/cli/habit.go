package cli

import (
	"fmt"

	"github.com/mwei/habitflow/internal/dateutil"
	"github.com/mwei/habitflow/internal/models"
)

type HabitCmd struct {
	Add     HabitAddCmd     `cmd:"" help:"Add a new habit."`
	List    HabitListCmd    `cmd:"" help:"List habits."`
	Rename  HabitRenameCmd  `cmd:"" help:"Rename a habit."`
	Archive HabitArchiveCmd `cmd:"" help:"Archive or un-archive a habit."`
	Delete  HabitDeleteCmd  `cmd:"" help:"Delete a habit permanently."`
	Up      HabitUpCmd      `cmd:"" help:"Move a habit up in the active ordering."`
	Down    HabitDownCmd    `cmd:"" help:"Move a habit down in the active ordering."`
}

type HabitAddCmd struct {
	Name            string  `arg:"" help:"Habit name."`
	Type            string  `help:"Habit type: numeric, duration, time-based, check-in or time-span." default:"check-in"`
	Unit            string  `help:"Unit label for numeric/duration habits." default:""`
	Target          float64 `help:"Numeric target for numeric/duration habits." default:"0"`
	TargetTime      string  `help:"HH:MM target for time-based habits." default:""`
	MonthlyStartDay int     `help:"Custom monthly cycle start day (1-31) for time-span habits." default:"0"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	habitType := models.HabitType(c.Type)
	if !habitType.Valid() {
		return fmt.Errorf("invalid habit type: %q", c.Type)
	}
	if c.MonthlyStartDay != 0 && (c.MonthlyStartDay < 1 || c.MonthlyStartDay > 31) {
		return fmt.Errorf("monthly start day must be between 1 and 31")
	}

	habit := models.Habit{
		Name:            c.Name,
		Type:            habitType,
		Unit:            c.Unit,
		IsActive:        true,
		MonthlyStartDay: c.MonthlyStartDay,
	}

	switch habitType {
	case models.HabitNumeric, models.HabitDuration:
		if c.Target > 0 {
			target := models.NumberValue(c.Target)
			habit.Target = &target
		}
	case models.HabitTimeBased:
		if c.TargetTime != "" {
			if !dateutil.ValidateTimeFormat(c.TargetTime) {
				return fmt.Errorf("invalid target time: %q (expected HH:MM)", c.TargetTime)
			}
			target := models.StringValue(c.TargetTime)
			habit.Target = &target
		}
	}

	if err := ctx.Store.AddHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (%s)\n", c.Name, habitType)
	return nil
}

type HabitListCmd struct {
	All bool `help:"Include archived habits."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	habits := ctx.Store.ActiveHabits()
	if c.All {
		habits = ctx.Store.Habits()
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	for _, habit := range habits {
		status := ""
		if !habit.IsActive {
			status = " [ARCHIVED]"
		}
		extra := ""
		if target, ok := habit.TargetNumber(); ok {
			extra = fmt.Sprintf(" target=%g", target)
			if habit.Unit != "" {
				extra += habit.Unit
			}
		} else if target, ok := habit.TargetTime(); ok {
			extra = " target=" + target
		}
		fmt.Printf("%3d. %s (%s)%s%s\n", habit.Order, habit.Name, habit.Type, extra, status)
	}

	return nil
}

type HabitRenameCmd struct {
	Habit string `arg:"" help:"Habit name or id."`
	Name  string `arg:"" help:"New name."`
}

func (c *HabitRenameCmd) Run(ctx *Context) error {
	habit, err := findHabit(ctx.Store, c.Habit)
	if err != nil {
		return err
	}

	habit.Name = c.Name
	if err := ctx.Store.UpdateHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Renamed habit to %q\n", c.Name)
	return nil
}

type HabitArchiveCmd struct {
	Habit string `arg:"" help:"Habit name or id."`
}

func (c *HabitArchiveCmd) Run(ctx *Context) error {
	habit, err := findHabit(ctx.Store, c.Habit)
	if err != nil {
		return err
	}

	if err := ctx.Store.ToggleHabitActive(habit.ID); err != nil {
		return err
	}

	if habit.IsActive {
		fmt.Printf("Archived habit %q\n", habit.Name)
	} else {
		fmt.Printf("Un-archived habit %q\n", habit.Name)
	}
	return nil
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit name or id."`
	Force bool   `help:"Skip confirmation."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	habit, err := findHabit(ctx.Store, c.Habit)
	if err != nil {
		return err
	}

	if !c.Force {
		return fmt.Errorf("deleting %q is permanent; re-run with --force to confirm", habit.Name)
	}

	if err := ctx.Store.DeleteHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit %q\n", habit.Name)
	return nil
}

type HabitUpCmd struct {
	Habit string `arg:"" help:"Habit name or id."`
}

func (c *HabitUpCmd) Run(ctx *Context) error {
	habit, err := findHabit(ctx.Store, c.Habit)
	if err != nil {
		return err
	}
	return ctx.Store.MoveHabitUp(habit.ID)
}

type HabitDownCmd struct {
	Habit string `arg:"" help:"Habit name or id."`
}

func (c *HabitDownCmd) Run(ctx *Context) error {
	habit, err := findHabit(ctx.Store, c.Habit)
	if err != nil {
		return err
	}
	return ctx.Store.MoveHabitDown(habit.ID)
}
