package models

import (
	"bytes"
	"encoding/json"
)

// TimeSpan is the structured value recorded for time-span habits.
// StartTime and EndTime are HH:MM strings; Deduction is in hours.
type TimeSpan struct {
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Deduction float64 `json:"deduction"`
}

// Value holds a recorded value whose JSON shape depends on the owning
// habit's type: a number (numeric/duration), a time-of-day string
// (time-based), a bool (check-in) or a TimeSpan object (time-span).
// The raw JSON is carried as-is and interpreted by the typed accessors,
// so a shape that doesn't match the habit's current type degrades to
// "no usable value" rather than failing.
type Value struct {
	raw json.RawMessage
}

func NumberValue(n float64) Value {
	raw, _ := json.Marshal(n)
	return Value{raw: raw}
}

func StringValue(s string) Value {
	raw, _ := json.Marshal(s)
	return Value{raw: raw}
}

func BoolValue(b bool) Value {
	raw, _ := json.Marshal(b)
	return Value{raw: raw}
}

func SpanValue(ts TimeSpan) Value {
	raw, _ := json.Marshal(ts)
	return Value{raw: raw}
}

// IsZero reports whether no value is present at all.
func (v Value) IsZero() bool {
	return len(v.raw) == 0 || bytes.Equal(v.raw, []byte("null"))
}

func (v Value) MarshalJSON() ([]byte, error) {
	if len(v.raw) == 0 {
		return []byte("null"), nil
	}
	return v.raw, nil
}

func (v *Value) UnmarshalJSON(data []byte) error {
	v.raw = append(v.raw[:0:0], data...)
	return nil
}

// Number returns the value as a float64 if it is JSON-encoded as one.
func (v Value) Number() (float64, bool) {
	var n float64
	if err := json.Unmarshal(v.raw, &n); err != nil {
		return 0, false
	}
	return n, true
}

// Text returns the value as a string if it is JSON-encoded as one.
func (v Value) Text() (string, bool) {
	var s string
	if err := json.Unmarshal(v.raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// Bool returns the value as a bool if it is JSON-encoded as one.
func (v Value) Bool() (bool, bool) {
	var b bool
	if err := json.Unmarshal(v.raw, &b); err != nil {
		return false, false
	}
	return b, true
}

// Span returns the value as a TimeSpan if it is JSON-encoded as an object.
func (v Value) Span() (TimeSpan, bool) {
	if len(v.raw) == 0 || v.raw[0] != '{' {
		return TimeSpan{}, false
	}
	var ts TimeSpan
	if err := json.Unmarshal(v.raw, &ts); err != nil {
		return TimeSpan{}, false
	}
	return ts, true
}
