package store

import (
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/mwei/habitflow/internal/models"
)

// Todos returns a copy of all todos.
func (s *Store) Todos() []models.Todo {
	return slices.Clone(s.todos)
}

// AddTodo appends a new todo. With afterID set, the todo is inserted
// right after that item; otherwise it lands at the end of the
// incomplete block. Blank text is silently dropped.
func (s *Store) AddTodo(text, afterID string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	todo := models.Todo{
		ID:        uuid.New().String(),
		Text:      text,
		CreatedAt: models.NowISO(),
	}

	next := slices.Clone(s.todos)
	at := -1
	if afterID != "" {
		at = todoIndexIn(next, afterID)
	}
	if at < 0 {
		at = lastIncompleteIndex(next)
	}
	next = slices.Insert(next, at+1, todo)

	return s.commitTodos(reindexTodos(next))
}

// UpdateTodo replaces the todo's text. A missing id is a silent no-op.
func (s *Store) UpdateTodo(id, text string) error {
	idx := todoIndexIn(s.todos, id)
	if idx < 0 {
		return nil
	}

	next := slices.Clone(s.todos)
	next[idx].Text = strings.TrimSpace(text)
	return s.commitTodos(next)
}

// ToggleTodo flips the todo's completed state, stamping or clearing
// completedAt, then re-partitions the list: incomplete items first,
// completed items after, each block keeping its relative order, with
// contiguous orders across the whole list.
func (s *Store) ToggleTodo(id string) error {
	idx := todoIndexIn(s.todos, id)
	if idx < 0 {
		return nil
	}

	next := slices.Clone(s.todos)
	next[idx].Completed = !next[idx].Completed
	if next[idx].Completed {
		now := models.NowISO()
		next[idx].CompletedAt = &now
	} else {
		next[idx].CompletedAt = nil
	}

	return s.commitTodos(reindexTodos(partitionTodos(next)))
}

// DeleteTodo removes the todo by id and closes the order gap.
func (s *Store) DeleteTodo(id string) error {
	idx := todoIndexIn(s.todos, id)
	if idx < 0 {
		return nil
	}

	next := slices.Delete(slices.Clone(s.todos), idx, idx+1)
	return s.commitTodos(reindexTodos(next))
}

// ReorderTodos moves the todo at startIndex to endIndex. Out-of-range
// indexes are silently ignored.
func (s *Store) ReorderTodos(startIndex, endIndex int) error {
	n := len(s.todos)
	if startIndex < 0 || startIndex >= n || endIndex < 0 || endIndex >= n {
		return nil
	}

	next := slices.Clone(s.todos)
	moved := next[startIndex]
	next = slices.Delete(next, startIndex, startIndex+1)
	next = slices.Insert(next, endIndex, moved)

	return s.commitTodos(reindexTodos(next))
}

// InsertTodoAfter splits one todo into two: the original keeps
// beforeText and a new todo with afterText is inserted right after it.
// Returns the new todo's id, or "" if afterID doesn't resolve.
func (s *Store) InsertTodoAfter(afterID, beforeText, afterText string) (string, error) {
	idx := todoIndexIn(s.todos, afterID)
	if idx < 0 {
		return "", nil
	}

	todo := models.Todo{
		ID:        uuid.New().String(),
		Text:      strings.TrimSpace(afterText),
		CreatedAt: models.NowISO(),
	}

	next := slices.Clone(s.todos)
	next[idx].Text = strings.TrimSpace(beforeText)
	next = slices.Insert(next, idx+1, todo)

	if err := s.commitTodos(reindexTodos(next)); err != nil {
		return "", err
	}
	return todo.ID, nil
}

func (s *Store) commitTodos(next []models.Todo) error {
	if err := s.persist(s.snapshotWith(nil, nil, next)); err != nil {
		return err
	}
	s.todos = next
	return nil
}

func todoIndexIn(todos []models.Todo, id string) int {
	for i, t := range todos {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// lastIncompleteIndex returns the index of the last incomplete todo,
// or -1 when every todo is completed (new items then go first).
func lastIncompleteIndex(todos []models.Todo) int {
	for i := len(todos) - 1; i >= 0; i-- {
		if !todos[i].Completed {
			return i
		}
	}
	return -1
}

// partitionTodos stably splits the list into the incomplete block
// followed by the completed block.
func partitionTodos(todos []models.Todo) []models.Todo {
	out := make([]models.Todo, 0, len(todos))
	for _, t := range todos {
		if !t.Completed {
			out = append(out, t)
		}
	}
	for _, t := range todos {
		if t.Completed {
			out = append(out, t)
		}
	}
	return out
}

func reindexTodos(todos []models.Todo) []models.Todo {
	for i := range todos {
		todos[i].Order = i
	}
	return todos
}
