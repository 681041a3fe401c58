// Package store is the single mutation path for habits, records and
// todos. Every operation computes the next full state, persists it
// through the injected repository, and only then commits it to memory,
// so the in-memory view and the durable view never diverge after a
// public operation completes.
package store

import (
	"fmt"
	"slices"
	"sort"

	"github.com/google/uuid"
	"github.com/mitchellh/hashstructure/v2"

	"github.com/mwei/habitflow/internal/models"
)

// Repository is the persistence dependency. *storage.Repository
// satisfies it; tests use an in-memory fake.
type Repository interface {
	Load() models.AppData
	Save(models.AppData) error
	Clear() error
}

type Store struct {
	repo Repository

	habits  []models.Habit
	records []models.HabitRecord
	todos   []models.Todo

	// recordIndex maps the (habitId, date) composite key to the
	// record's slot in records, so upserts are not a linear scan.
	recordIndex map[models.RecordKey]int
}

func New(repo Repository) *Store {
	return &Store{
		repo:        repo,
		habits:      []models.Habit{},
		records:     []models.HabitRecord{},
		todos:       []models.Todo{},
		recordIndex: map[models.RecordKey]int{},
	}
}

// LoadInitialData pulls the full data set from the repository,
// normalizes it (assigns missing habit orders, de-duplicates records
// sharing a composite key), writes back only if normalization changed
// anything, then populates in-memory state. Running it twice in a row
// yields the same state and triggers no write the second time.
func (s *Store) LoadInitialData() error {
	data := s.repo.Load()
	normalized := normalize(data)

	if changed(data, normalized) {
		if err := s.repo.Save(normalized); err != nil {
			return fmt.Errorf("failed to persist normalized data: %w", err)
		}
	}

	s.apply(normalized)
	return nil
}

func (s *Store) apply(data models.AppData) {
	data.EnsureDefaults()
	s.habits = data.Habits
	s.records = data.Records
	s.todos = data.Todos
	s.recordIndex = make(map[models.RecordKey]int, len(data.Records))
	for i, rec := range data.Records {
		s.recordIndex[rec.Key()] = i
	}
}

func (s *Store) persist(data models.AppData) error {
	return s.repo.Save(data)
}

func (s *Store) snapshotWith(habits []models.Habit, records []models.HabitRecord, todos []models.Todo) models.AppData {
	if habits == nil {
		habits = s.habits
	}
	if records == nil {
		records = s.records
	}
	if todos == nil {
		todos = s.todos
	}
	return models.AppData{Habits: habits, Records: records, Todos: todos}
}

// normalize repairs data read from storage: habits without an order get
// sequential orders after the current maximum, and records sharing a
// (habitId, date) key are collapsed to the one with the later
// createdAt.
func normalize(data models.AppData) models.AppData {
	habits := slices.Clone(data.Habits)
	maxOrder := 0
	for _, h := range habits {
		if h.Order > maxOrder {
			maxOrder = h.Order
		}
	}
	for i := range habits {
		if habits[i].Order == 0 {
			maxOrder++
			habits[i].Order = maxOrder
		}
	}

	records := make([]models.HabitRecord, 0, len(data.Records))
	index := make(map[models.RecordKey]int, len(data.Records))
	for _, rec := range data.Records {
		if at, ok := index[rec.Key()]; ok {
			if rec.CreatedAt > records[at].CreatedAt {
				records[at] = rec
			}
			continue
		}
		index[rec.Key()] = len(records)
		records = append(records, rec)
	}

	normalized := models.AppData{Habits: habits, Records: records, Todos: data.Todos}
	normalized.EnsureDefaults()
	return normalized
}

// changed reports whether normalization altered the data set.
func changed(before, after models.AppData) bool {
	before.EnsureDefaults()
	hashBefore, err := hashstructure.Hash(before, hashstructure.FormatV2, nil)
	if err != nil {
		return true
	}
	hashAfter, err := hashstructure.Hash(after, hashstructure.FormatV2, nil)
	if err != nil {
		return true
	}
	return hashBefore != hashAfter
}

// Habits returns a copy of all habits.
func (s *Store) Habits() []models.Habit {
	return slices.Clone(s.habits)
}

// ActiveHabits returns the non-archived habits sorted by order.
func (s *Store) ActiveHabits() []models.Habit {
	var active []models.Habit
	for _, h := range s.habits {
		if h.IsActive {
			active = append(active, h)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Order < active[j].Order
	})
	return active
}

// HabitByID looks up a habit by id.
func (s *Store) HabitByID(id string) (models.Habit, bool) {
	for _, h := range s.habits {
		if h.ID == id {
			return h, true
		}
	}
	return models.Habit{}, false
}

// AddHabit completes a habit draft (id, createdAt, order) and appends
// it. The assigned order is one past the current maximum.
func (s *Store) AddHabit(habit models.Habit) error {
	if habit.ID == "" {
		habit.ID = uuid.New().String()
	}
	if habit.CreatedAt == "" {
		habit.CreatedAt = models.NowISO()
	}
	maxOrder := 0
	for _, h := range s.habits {
		if h.Order > maxOrder {
			maxOrder = h.Order
		}
	}
	habit.Order = maxOrder + 1

	next := append(slices.Clone(s.habits), habit)
	if err := s.persist(s.snapshotWith(next, nil, nil)); err != nil {
		return err
	}
	s.habits = next
	return nil
}

// UpdateHabit replaces the habit with the same id. The stored type and
// creation timestamp are kept: changing a habit's type would orphan its
// historical record shapes. A missing id is a silent no-op.
func (s *Store) UpdateHabit(habit models.Habit) error {
	idx := s.habitIndex(habit.ID)
	if idx < 0 {
		return nil
	}

	habit.Type = s.habits[idx].Type
	habit.CreatedAt = s.habits[idx].CreatedAt

	next := slices.Clone(s.habits)
	next[idx] = habit
	if err := s.persist(s.snapshotWith(next, nil, nil)); err != nil {
		return err
	}
	s.habits = next
	return nil
}

// DeleteHabit hard-deletes the habit by id. The habit's records are
// kept: orphaned records stay addressable for a potential re-import but
// are never surfaced since their habit no longer resolves.
func (s *Store) DeleteHabit(habitID string) error {
	idx := s.habitIndex(habitID)
	if idx < 0 {
		return nil
	}

	next := slices.Delete(slices.Clone(s.habits), idx, idx+1)
	if err := s.persist(s.snapshotWith(next, nil, nil)); err != nil {
		return err
	}
	s.habits = next
	return nil
}

// ToggleHabitActive flips the habit's archived state. Archived habits
// are excluded from recording and the dashboard but keep their history.
func (s *Store) ToggleHabitActive(habitID string) error {
	idx := s.habitIndex(habitID)
	if idx < 0 {
		return nil
	}

	next := slices.Clone(s.habits)
	next[idx].IsActive = !next[idx].IsActive
	if err := s.persist(s.snapshotWith(next, nil, nil)); err != nil {
		return err
	}
	s.habits = next
	return nil
}

// MoveHabitUp swaps the habit's order with the previous active habit.
func (s *Store) MoveHabitUp(habitID string) error {
	return s.moveHabit(habitID, -1)
}

// MoveHabitDown swaps the habit's order with the next active habit.
func (s *Store) MoveHabitDown(habitID string) error {
	return s.moveHabit(habitID, +1)
}

func (s *Store) moveHabit(habitID string, direction int) error {
	active := s.ActiveHabits()
	pos := -1
	for i, h := range active {
		if h.ID == habitID {
			pos = i
			break
		}
	}
	neighbor := pos + direction
	if pos < 0 || neighbor < 0 || neighbor >= len(active) {
		return nil // not found or at a boundary
	}

	next := slices.Clone(s.habits)
	a := s.habitIndexIn(next, active[pos].ID)
	b := s.habitIndexIn(next, active[neighbor].ID)
	next[a].Order, next[b].Order = next[b].Order, next[a].Order

	if err := s.persist(s.snapshotWith(next, nil, nil)); err != nil {
		return err
	}
	s.habits = next
	return nil
}

func (s *Store) habitIndex(id string) int {
	return s.habitIndexIn(s.habits, id)
}

func (s *Store) habitIndexIn(habits []models.Habit, id string) int {
	for i, h := range habits {
		if h.ID == id {
			return i
		}
	}
	return -1
}
