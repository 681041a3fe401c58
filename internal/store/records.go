package store

import (
	"maps"
	"slices"

	"github.com/google/uuid"

	"github.com/mwei/habitflow/internal/models"
)

// Records returns a copy of all records.
func (s *Store) Records() []models.HabitRecord {
	return slices.Clone(s.records)
}

// RecordFor returns the record for the given habit and date, if one
// exists.
func (s *Store) RecordFor(habitID, date string) (models.HabitRecord, bool) {
	idx, ok := s.recordIndex[models.RecordKey{HabitID: habitID, Date: date}]
	if !ok {
		return models.HabitRecord{}, false
	}
	return s.records[idx], true
}

// AddRecord upserts a single record by its (habitId, date) composite
// key: a write targeting an existing pair overwrites in place,
// preserving the original id and createdAt; otherwise the record is
// appended. Drafts missing id/createdAt/entry ids are completed first.
func (s *Store) AddRecord(record models.HabitRecord) error {
	return s.AddMultipleRecords([]models.HabitRecord{record})
}

// AddMultipleRecords applies the upsert semantics of AddRecord to a
// whole batch as one state transition: equivalent to calling AddRecord
// once per item in sequence, without intermediate persisted states.
func (s *Store) AddMultipleRecords(records []models.HabitRecord) error {
	next := slices.Clone(s.records)
	index := maps.Clone(s.recordIndex)

	for _, rec := range records {
		completeRecordDraft(&rec)

		if at, ok := index[rec.Key()]; ok {
			rec.ID = next[at].ID
			rec.CreatedAt = next[at].CreatedAt
			next[at] = rec
			continue
		}
		index[rec.Key()] = len(next)
		next = append(next, rec)
	}

	if err := s.persist(s.snapshotWith(nil, next, nil)); err != nil {
		return err
	}
	s.records = next
	s.recordIndex = index
	return nil
}

// completeRecordDraft fills the fields UI collaborators leave blank.
// An empty values slice stays as an explicit "cleared" state.
func completeRecordDraft(rec *models.HabitRecord) {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt == "" {
		rec.CreatedAt = models.NowISO()
	}
	if rec.Values == nil {
		rec.Values = []models.ValueEntry{}
	}
	for i := range rec.Values {
		if rec.Values[i].ID == "" {
			rec.Values[i].ID = uuid.New().String()
		}
		if rec.Values[i].Timestamp == "" {
			rec.Values[i].Timestamp = models.NowISO()
		}
	}
}
