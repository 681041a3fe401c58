package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwei/habitflow/internal/models"
)

func mustNumber(t *testing.T, v models.Value) float64 {
	t.Helper()
	n, ok := v.Number()
	require.True(t, ok)
	return n
}

func numRecord(habitID, date string, values ...float64) models.HabitRecord {
	rec := models.HabitRecord{HabitID: habitID, Date: date}
	for _, v := range values {
		rec.Values = append(rec.Values, models.ValueEntry{Value: models.NumberValue(v)})
	}
	return rec
}

func TestAddRecord_CompletesDraft(t *testing.T) {
	s, repo := newTestStore(t, models.AppData{})

	require.NoError(t, s.AddRecord(numRecord("h1", "2025-06-01", 3)))

	records := s.Records()
	require.Len(t, records, 1)
	rec := records[0]
	assert.NotEmpty(t, rec.ID)
	assert.NotEmpty(t, rec.CreatedAt)
	require.Len(t, rec.Values, 1)
	assert.NotEmpty(t, rec.Values[0].ID)
	assert.NotEmpty(t, rec.Values[0].Timestamp)
	assert.Len(t, repo.data.Records, 1, "must persist")
}

func TestAddRecord_UpsertsByCompositeKey(t *testing.T) {
	s, _ := newTestStore(t, models.AppData{})

	require.NoError(t, s.AddRecord(numRecord("h1", "2025-06-01", 3)))
	first := s.Records()[0]

	second := numRecord("h1", "2025-06-01", 5, 2)
	second.Note = "updated"
	require.NoError(t, s.AddRecord(second))

	records := s.Records()
	require.Len(t, records, 1)
	rec := records[0]
	assert.Equal(t, first.ID, rec.ID, "original id survives overwrite")
	assert.Equal(t, first.CreatedAt, rec.CreatedAt, "original createdAt survives overwrite")
	assert.Equal(t, "updated", rec.Note)
	require.Len(t, rec.Values, 2)
}

func TestAddRecord_DifferentDatesCoexist(t *testing.T) {
	s, _ := newTestStore(t, models.AppData{})

	require.NoError(t, s.AddRecord(numRecord("h1", "2025-06-01", 1)))
	require.NoError(t, s.AddRecord(numRecord("h1", "2025-06-02", 2)))
	require.NoError(t, s.AddRecord(numRecord("h2", "2025-06-01", 3)))

	assert.Len(t, s.Records(), 3)
}

func TestAddRecord_EmptyValuesIsExplicitClearedState(t *testing.T) {
	s, _ := newTestStore(t, models.AppData{})

	require.NoError(t, s.AddRecord(numRecord("h1", "2025-06-01", 3)))
	require.NoError(t, s.AddRecord(models.HabitRecord{HabitID: "h1", Date: "2025-06-01", Values: []models.ValueEntry{}}))

	rec, ok := s.RecordFor("h1", "2025-06-01")
	require.True(t, ok, "cleared record still exists")
	assert.Empty(t, rec.Values)
}

func TestAddMultipleRecords_BatchUpsert(t *testing.T) {
	s, repo := newTestStore(t, models.AppData{})

	require.NoError(t, s.AddRecord(numRecord("h1", "2025-06-01", 1)))
	original := s.Records()[0]
	savesBefore := repo.saves

	batch := []models.HabitRecord{
		numRecord("h1", "2025-06-01", 9), // evicts the existing record
		numRecord("h1", "2025-06-02", 2),
		numRecord("h2", "2025-06-01", 3),
	}
	require.NoError(t, s.AddMultipleRecords(batch))

	assert.Equal(t, savesBefore+1, repo.saves, "one state transition for the whole batch")

	records := s.Records()
	require.Len(t, records, 3)

	rec, ok := s.RecordFor("h1", "2025-06-01")
	require.True(t, ok)
	assert.Equal(t, original.ID, rec.ID)
	assert.Equal(t, original.CreatedAt, rec.CreatedAt)
	assert.Equal(t, 9.0, mustNumber(t, rec.Values[0].Value))
}

func TestAddMultipleRecords_DuplicateKeysInsideBatch(t *testing.T) {
	s, _ := newTestStore(t, models.AppData{})

	batch := []models.HabitRecord{
		numRecord("h1", "2025-06-01", 1),
		numRecord("h1", "2025-06-01", 2), // same key: last write wins
	}
	require.NoError(t, s.AddMultipleRecords(batch))

	records := s.Records()
	require.Len(t, records, 1)
	assert.Equal(t, 2.0, mustNumber(t, records[0].Values[0].Value))
}

func TestCompositeKeyUniqueness_UnderMixedWrites(t *testing.T) {
	s, _ := newTestStore(t, models.AppData{})

	for i := 0; i < 3; i++ {
		require.NoError(t, s.AddRecord(numRecord("h1", "2025-06-01", float64(i))))
		require.NoError(t, s.AddMultipleRecords([]models.HabitRecord{
			numRecord("h1", "2025-06-01", float64(10+i)),
			numRecord("h2", "2025-06-01", float64(i)),
		}))
	}

	seen := map[models.RecordKey]int{}
	for _, rec := range s.Records() {
		seen[rec.Key()]++
	}
	for key, count := range seen {
		assert.Equal(t, 1, count, fmt.Sprintf("key %v duplicated", key))
	}
}

func TestRecordFor_Miss(t *testing.T) {
	s, _ := newTestStore(t, models.AppData{})
	_, ok := s.RecordFor("h1", "2025-06-01")
	assert.False(t, ok)
}
