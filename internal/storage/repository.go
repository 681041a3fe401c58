package storage

import (
	"encoding/json"
	"fmt"

	"github.com/mwei/habitflow/internal/logger"
	"github.com/mwei/habitflow/internal/models"
)

// Storage keys. The legacy pair predates the unified key: habits and
// records used to live in two separate collections with no todos.
// During the transitional period both shapes are kept readable, so
// every save writes all three keys.
const (
	UnifiedKey       = "habitflow_data"
	LegacyHabitsKey  = "habit_tracker_habits"
	LegacyRecordsKey = "habit_tracker_records"
)

// Repository durably stores and retrieves the entire application data
// set as one unit, owning schema migration between the legacy two-key
// layout and the unified single-key layout. The rest of the system
// never branches on storage format.
type Repository struct {
	kv KV
}

func NewRepository(kv KV) *Repository {
	return &Repository{kv: kv}
}

// Load returns the most current complete data set. It never fails from
// the caller's perspective: absent or unparseable data degrades to an
// empty-but-valid structure, and any readable legacy data is migrated
// forward into the unified key.
//
// When both formats are present, the one holding more records wins.
// This record-count comparison is a recency proxy, not a merge: a stale
// legacy copy with more records can shadow a newer unified copy that
// legitimately has fewer. Existing installs depend on this exact
// behavior for data recovery, so it is preserved as-is.
func (r *Repository) Load() models.AppData {
	unified, hasUnified := r.readUnified()
	legacy, hasLegacy := r.readLegacy()

	switch {
	case hasUnified && hasLegacy:
		if len(legacy.Records) > len(unified.Records) {
			logger.Warn("legacy storage has more records than unified, re-syncing",
				"legacy", len(legacy.Records), "unified", len(unified.Records))
			legacy.Todos = unified.Todos // legacy format never carried todos
			legacy.EnsureDefaults()
			if err := r.Save(legacy); err != nil {
				logger.Error("failed to re-sync legacy data", "error", err)
			}
			return legacy
		}
		return unified
	case hasUnified:
		return unified
	case hasLegacy:
		legacy.EnsureDefaults()
		if err := r.Save(legacy); err != nil {
			logger.Error("failed to migrate legacy data forward", "error", err)
		}
		return legacy
	default:
		empty := models.AppData{}
		empty.EnsureDefaults()
		return empty
	}
}

// Save persists the full data set, normalizing missing collections to
// empty ones and dual-writing the unified key and both legacy keys so
// either reader stays functional.
func (r *Repository) Save(data models.AppData) error {
	data.EnsureDefaults()

	unified, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to serialize data: %w", err)
	}
	habits, err := json.Marshal(data.Habits)
	if err != nil {
		return fmt.Errorf("failed to serialize habits: %w", err)
	}
	records, err := json.Marshal(data.Records)
	if err != nil {
		return fmt.Errorf("failed to serialize records: %w", err)
	}

	if err := r.kv.Set(UnifiedKey, unified); err != nil {
		return err
	}
	if err := r.kv.Set(LegacyHabitsKey, habits); err != nil {
		return err
	}
	return r.kv.Set(LegacyRecordsKey, records)
}

// Clear removes all persisted application data unconditionally.
func (r *Repository) Clear() error {
	for _, key := range []string{UnifiedKey, LegacyHabitsKey, LegacyRecordsKey} {
		if err := r.kv.Delete(key); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the underlying backend.
func (r *Repository) Close() error {
	return r.kv.Close()
}

func (r *Repository) readUnified() (models.AppData, bool) {
	raw, found, err := r.kv.Get(UnifiedKey)
	if err != nil {
		logger.Error("failed to read unified storage", "error", err)
		return models.AppData{}, false
	}
	if !found {
		return models.AppData{}, false
	}

	var data models.AppData
	if err := json.Unmarshal(raw, &data); err != nil {
		logger.Error("unified storage is corrupt, treating as absent", "error", err)
		return models.AppData{}, false
	}
	data.EnsureDefaults()
	return data, true
}

func (r *Repository) readLegacy() (models.AppData, bool) {
	var data models.AppData
	found := false

	if raw, ok := r.getKey(LegacyHabitsKey); ok {
		if err := json.Unmarshal(raw, &data.Habits); err != nil {
			logger.Error("legacy habits storage is corrupt, ignoring", "error", err)
		} else {
			found = true
		}
	}
	if raw, ok := r.getKey(LegacyRecordsKey); ok {
		if err := json.Unmarshal(raw, &data.Records); err != nil {
			logger.Error("legacy records storage is corrupt, ignoring", "error", err)
		} else {
			found = true
		}
	}

	if !found {
		return models.AppData{}, false
	}
	data.EnsureDefaults()
	return data, true
}

func (r *Repository) getKey(key string) ([]byte, bool) {
	raw, found, err := r.kv.Get(key)
	if err != nil {
		logger.Error("failed to read storage key", "key", key, "error", err)
		return nil, false
	}
	return raw, found
}
