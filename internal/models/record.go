package models

// ValueEntry is one entry inside a record's values sequence. Numeric
// and duration habits may hold several entries per day (separate
// same-day contributions); the other types only use the first entry.
type ValueEntry struct {
	ID        string `json:"id"`
	Value     Value  `json:"value"`
	Timestamp string `json:"timestamp,omitempty"`
}

// HabitRecord holds all entries made for one habit on one calendar
// date. The (habitId, date) pair is the true uniqueness constraint;
// writes targeting an existing pair overwrite in place, preserving the
// original ID and CreatedAt.
type HabitRecord struct {
	ID        string       `json:"id"`
	HabitID   string       `json:"habitId"`
	Date      string       `json:"date"` // YYYY-MM-DD
	Values    []ValueEntry `json:"values"`
	Note      string       `json:"note,omitempty"`
	CreatedAt string       `json:"createdAt"`
}

// RecordKey is the composite key identifying a record.
type RecordKey struct {
	HabitID string
	Date    string
}

func (r HabitRecord) Key() RecordKey {
	return RecordKey{HabitID: r.HabitID, Date: r.Date}
}

// FirstValue returns the first entry's value, if any entry exists.
func (r HabitRecord) FirstValue() (Value, bool) {
	if len(r.Values) == 0 {
		return Value{}, false
	}
	return r.Values[0].Value, true
}
