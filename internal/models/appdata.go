package models

// AppData is the full application data set, the unit the persistence
// layer stores and retrieves.
type AppData struct {
	Habits  []Habit       `json:"habits"`
	Records []HabitRecord `json:"records"`
	Todos   []Todo        `json:"todos"`
}

// EnsureDefaults normalizes nil collections to empty ones so the
// persisted form always carries all three sequences.
func (d *AppData) EnsureDefaults() {
	if d.Habits == nil {
		d.Habits = []Habit{}
	}
	if d.Records == nil {
		d.Records = []HabitRecord{}
	}
	if d.Todos == nil {
		d.Todos = []Todo{}
	}
}
