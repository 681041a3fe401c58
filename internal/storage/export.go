package storage

import (
	"encoding/json"
	"fmt"

	"github.com/mwei/habitflow/internal/models"
)

// Export serializes the full current data set as an indented JSON
// snapshot suitable for file download / backup.
func (r *Repository) Export() ([]byte, error) {
	data := r.Load()
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize export: %w", err)
	}
	return out, nil
}

// ParseSnapshot validates and parses an import payload. The payload
// must carry at least one of "habits" or "records" as a JSON array;
// anything else is a format error. Todos are optional (older exports
// predate them).
func ParseSnapshot(payload []byte) (models.AppData, error) {
	var raw struct {
		Habits  json.RawMessage `json:"habits"`
		Records json.RawMessage `json:"records"`
		Todos   json.RawMessage `json:"todos"`
	}
	if err := json.Unmarshal(payload, &raw); err != nil {
		return models.AppData{}, fmt.Errorf("invalid import file: not valid JSON")
	}

	var data models.AppData
	valid := false

	if isJSONArray(raw.Habits) {
		if err := json.Unmarshal(raw.Habits, &data.Habits); err != nil {
			return models.AppData{}, fmt.Errorf("invalid import file: malformed habits")
		}
		valid = true
	}
	if isJSONArray(raw.Records) {
		if err := json.Unmarshal(raw.Records, &data.Records); err != nil {
			return models.AppData{}, fmt.Errorf("invalid import file: malformed records")
		}
		valid = true
	}
	if !valid {
		return models.AppData{}, fmt.Errorf("invalid import file: missing habits or records")
	}

	if isJSONArray(raw.Todos) {
		if err := json.Unmarshal(raw.Todos, &data.Todos); err != nil {
			return models.AppData{}, fmt.Errorf("invalid import file: malformed todos")
		}
	}

	data.EnsureDefaults()
	return data, nil
}

// Import fully replaces stored data with the snapshot in payload.
// Validation happens before anything is touched, so a rejected import
// leaves existing storage unchanged.
func (r *Repository) Import(payload []byte) error {
	data, err := ParseSnapshot(payload)
	if err != nil {
		return err
	}
	if err := r.Clear(); err != nil {
		return err
	}
	return r.Save(data)
}

func isJSONArray(raw json.RawMessage) bool {
	for _, c := range raw {
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		case '[':
			return true
		default:
			return false
		}
	}
	return false
}
