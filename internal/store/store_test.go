package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwei/habitflow/internal/models"
)

// fakeRepo is an in-memory stand-in for the persistence layer.
type fakeRepo struct {
	data  models.AppData
	saves int
}

func (f *fakeRepo) Load() models.AppData {
	data := f.data
	data.EnsureDefaults()
	return data
}

func (f *fakeRepo) Save(data models.AppData) error {
	data.EnsureDefaults()
	f.data = data
	f.saves++
	return nil
}

func (f *fakeRepo) Clear() error {
	f.data = models.AppData{}
	return nil
}

func newTestStore(t *testing.T, initial models.AppData) (*Store, *fakeRepo) {
	t.Helper()
	repo := &fakeRepo{data: initial}
	s := New(repo)
	require.NoError(t, s.LoadInitialData())
	return s, repo
}

func checkIn(id, name string, order int) models.Habit {
	return models.Habit{
		ID:        id,
		Name:      name,
		Type:      models.HabitCheckIn,
		IsActive:  true,
		CreatedAt: "2025-01-01T00:00:00.000Z",
		Order:     order,
	}
}

func TestLoadInitialData_AssignsMissingOrders(t *testing.T) {
	initial := models.AppData{
		Habits: []models.Habit{
			checkIn("h1", "Read", 0),
			checkIn("h2", "Run", 3),
			checkIn("h3", "Write", 0),
		},
	}
	s, repo := newTestStore(t, initial)

	habits := s.Habits()
	assert.Equal(t, 4, habits[0].Order)
	assert.Equal(t, 3, habits[1].Order)
	assert.Equal(t, 5, habits[2].Order)
	assert.Equal(t, 1, repo.saves, "normalization should write back once")
}

func TestLoadInitialData_OrdersStrictlyIncreasingWhenAllMissing(t *testing.T) {
	initial := models.AppData{
		Habits: []models.Habit{
			checkIn("h1", "a", 0),
			checkIn("h2", "b", 0),
			checkIn("h3", "c", 0),
		},
	}
	s, _ := newTestStore(t, initial)

	habits := s.Habits()
	for i := 1; i < len(habits); i++ {
		assert.Greater(t, habits[i].Order, habits[i-1].Order)
	}
}

func TestLoadInitialData_DeduplicatesRecordsKeepingLaterCreatedAt(t *testing.T) {
	initial := models.AppData{
		Records: []models.HabitRecord{
			{ID: "old", HabitID: "h1", Date: "2025-06-01", CreatedAt: "2025-06-01T08:00:00.000Z",
				Values: []models.ValueEntry{{ID: "v1", Value: models.NumberValue(1)}}},
			{ID: "new", HabitID: "h1", Date: "2025-06-01", CreatedAt: "2025-06-01T12:00:00.000Z",
				Values: []models.ValueEntry{{ID: "v2", Value: models.NumberValue(2)}}},
			{ID: "other", HabitID: "h2", Date: "2025-06-01", CreatedAt: "2025-06-01T09:00:00.000Z"},
		},
	}
	s, _ := newTestStore(t, initial)

	records := s.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "new", records[0].ID)
	assert.Equal(t, "other", records[1].ID)
}

func TestLoadInitialData_Idempotent(t *testing.T) {
	initial := models.AppData{
		Habits: []models.Habit{checkIn("h1", "Read", 0)},
		Records: []models.HabitRecord{
			{ID: "a", HabitID: "h1", Date: "2025-06-01", CreatedAt: "2025-06-01T08:00:00.000Z"},
			{ID: "b", HabitID: "h1", Date: "2025-06-01", CreatedAt: "2025-06-01T12:00:00.000Z"},
		},
	}
	s, repo := newTestStore(t, initial)
	firstHabits := s.Habits()
	firstRecords := s.Records()
	savesAfterFirst := repo.saves

	require.NoError(t, s.LoadInitialData())
	assert.Equal(t, firstHabits, s.Habits())
	assert.Equal(t, firstRecords, s.Records())
	assert.Equal(t, savesAfterFirst, repo.saves, "second load must not write")
}

func TestLoadInitialData_CleanDataWritesNothing(t *testing.T) {
	initial := models.AppData{
		Habits:  []models.Habit{checkIn("h1", "Read", 1)},
		Records: []models.HabitRecord{{ID: "a", HabitID: "h1", Date: "2025-06-01", CreatedAt: "2025-06-01T08:00:00.000Z"}},
	}
	_, repo := newTestStore(t, initial)
	assert.Zero(t, repo.saves)
}

func TestAddHabit_CompletesDraftAndAssignsOrder(t *testing.T) {
	s, repo := newTestStore(t, models.AppData{Habits: []models.Habit{checkIn("h1", "Read", 7)}})

	require.NoError(t, s.AddHabit(models.Habit{Name: "Run", Type: models.HabitNumeric, IsActive: true}))

	habits := s.Habits()
	require.Len(t, habits, 2)
	added := habits[1]
	assert.NotEmpty(t, added.ID)
	assert.NotEmpty(t, added.CreatedAt)
	assert.Equal(t, 8, added.Order)
	assert.Len(t, repo.data.Habits, 2, "must persist")
}

func TestUpdateHabit_ReplacesByIDAndKeepsTypeAndCreatedAt(t *testing.T) {
	s, _ := newTestStore(t, models.AppData{Habits: []models.Habit{checkIn("h1", "Read", 1)}})

	updated := checkIn("h1", "Read books", 1)
	updated.Type = models.HabitNumeric // must not stick
	updated.CreatedAt = "2030-01-01T00:00:00.000Z"
	require.NoError(t, s.UpdateHabit(updated))

	habit, ok := s.HabitByID("h1")
	require.True(t, ok)
	assert.Equal(t, "Read books", habit.Name)
	assert.Equal(t, models.HabitCheckIn, habit.Type)
	assert.Equal(t, "2025-01-01T00:00:00.000Z", habit.CreatedAt)
}

func TestUpdateHabit_UnknownIDIsNoOp(t *testing.T) {
	s, repo := newTestStore(t, models.AppData{Habits: []models.Habit{checkIn("h1", "Read", 1)}})
	saves := repo.saves

	require.NoError(t, s.UpdateHabit(checkIn("nope", "x", 1)))
	assert.Len(t, s.Habits(), 1)
	assert.Equal(t, saves, repo.saves)
}

func TestDeleteHabit_DoesNotCascadeRecords(t *testing.T) {
	initial := models.AppData{
		Habits: []models.Habit{checkIn("h1", "Read", 1)},
		Records: []models.HabitRecord{
			{ID: "r1", HabitID: "h1", Date: "2025-06-01", CreatedAt: "2025-06-01T08:00:00.000Z"},
		},
	}
	s, repo := newTestStore(t, initial)

	require.NoError(t, s.DeleteHabit("h1"))

	assert.Empty(t, s.Habits())
	assert.Len(t, s.Records(), 1, "orphaned records are kept")
	assert.Len(t, repo.data.Records, 1)
}

func TestToggleHabitActive(t *testing.T) {
	s, _ := newTestStore(t, models.AppData{Habits: []models.Habit{checkIn("h1", "Read", 1)}})

	require.NoError(t, s.ToggleHabitActive("h1"))
	habit, _ := s.HabitByID("h1")
	assert.False(t, habit.IsActive)

	require.NoError(t, s.ToggleHabitActive("h1"))
	habit, _ = s.HabitByID("h1")
	assert.True(t, habit.IsActive)

	require.NoError(t, s.ToggleHabitActive("missing")) // silent no-op
}

func TestMoveHabit_SwapsOrderWithAdjacentActive(t *testing.T) {
	archived := checkIn("h2", "Archived", 2)
	archived.IsActive = false
	initial := models.AppData{
		Habits: []models.Habit{
			checkIn("h1", "First", 1),
			archived,
			checkIn("h3", "Second", 3),
		},
	}
	s, _ := newTestStore(t, initial)

	// h3's active neighbor above is h1: the archived habit in between
	// is skipped
	require.NoError(t, s.MoveHabitUp("h3"))

	h1, _ := s.HabitByID("h1")
	h3, _ := s.HabitByID("h3")
	assert.Equal(t, 3, h1.Order)
	assert.Equal(t, 1, h3.Order)

	active := s.ActiveHabits()
	assert.Equal(t, "h3", active[0].ID)
	assert.Equal(t, "h1", active[1].ID)
}

func TestMoveHabit_BoundariesAreNoOps(t *testing.T) {
	initial := models.AppData{
		Habits: []models.Habit{checkIn("h1", "First", 1), checkIn("h2", "Second", 2)},
	}
	s, repo := newTestStore(t, initial)
	saves := repo.saves

	require.NoError(t, s.MoveHabitUp("h1"))
	require.NoError(t, s.MoveHabitDown("h2"))
	require.NoError(t, s.MoveHabitUp("missing"))

	assert.Equal(t, saves, repo.saves)
	assert.Equal(t, "h1", s.ActiveHabits()[0].ID)
}
