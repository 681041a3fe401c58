package cli

import (
	"fmt"
	"time"

	"github.com/mwei/habitflow/internal/backup"
	"github.com/mwei/habitflow/internal/dateutil"
	"github.com/mwei/habitflow/internal/models"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	if err := checkHabits(ctx); err != nil {
		fmt.Printf("FAIL habit integrity\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("ok   habit integrity\n")
	}

	if err := checkRecords(ctx); err != nil {
		fmt.Printf("FAIL record integrity\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("ok   record integrity\n")
	}

	if err := checkTodos(ctx); err != nil {
		fmt.Printf("FAIL todo ordering\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("ok   todo ordering\n")
	}

	// Missing backups are a warning, not a failure.
	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("warn backups present\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("ok   backups present\n")
	}

	if err := checkClock(); err != nil {
		fmt.Printf("FAIL clock sanity\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("ok   clock sanity\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkHabits(ctx *Context) error {
	seen := make(map[string]bool)
	for _, habit := range ctx.Store.Habits() {
		if habit.ID == "" {
			return fmt.Errorf("habit %q has no id", habit.Name)
		}
		if seen[habit.ID] {
			return fmt.Errorf("duplicate habit id: %s", habit.ID)
		}
		seen[habit.ID] = true
		if !habit.Type.Valid() {
			return fmt.Errorf("habit %q has unknown type %q", habit.Name, habit.Type)
		}
	}
	return nil
}

func checkRecords(ctx *Context) error {
	seen := make(map[models.RecordKey]bool)
	for _, rec := range ctx.Store.Records() {
		key := rec.Key()
		if seen[key] {
			return fmt.Errorf("duplicate record for habit %s on %s", key.HabitID, key.Date)
		}
		seen[key] = true
		if _, err := dateutil.ParseDate(rec.Date); err != nil {
			return fmt.Errorf("record %s has invalid date %q", rec.ID, rec.Date)
		}
	}
	return nil
}

func checkTodos(ctx *Context) error {
	seenCompleted := false
	for i, todo := range ctx.Store.Todos() {
		if todo.Order != i {
			return fmt.Errorf("todo %q has order %d, expected %d", todo.Text, todo.Order, i)
		}
		if todo.Completed {
			seenCompleted = true
		} else if seenCompleted {
			return fmt.Errorf("incomplete todo %q sorted after completed ones", todo.Text)
		}
	}
	return nil
}

func checkBackupsPresent(ctx *Context) error {
	mgr := backup.NewManager(ctx.DataDir)
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'habitflow backup create'")
	}
	return nil
}

func checkClock() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
