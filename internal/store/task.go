package store

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rogersnm/todo/internal/id"
	"github.com/rogersnm/todo/internal/model"
)

var ErrNotFound = errors.New("no such task")

// TaskUpdate carries the fields to change on an existing task. Done can only
// move a task to finished; false is ignored.
type TaskUpdate struct {
	Text *string
	Done *bool
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

func normalizeText(text string) string {
	return strings.TrimSpace(lineBreaks.Replace(text))
}

// Tasks returns a copy of the list in store order.
func (s *Store) Tasks() []model.Task {
	return slices.Clone(s.tasks)
}

func (s *Store) Len() int {
	return len(s.tasks)
}

func (s *Store) Get(taskID int) (model.Task, error) {
	i := s.index(taskID)
	if i < 0 {
		return model.Task{}, notFound(taskID)
	}
	return s.tasks[i], nil
}

// Add appends a new open task with the next free id.
func (s *Store) Add(text string) model.Task {
	ids := make([]int, len(s.tasks))
	for i, t := range s.tasks {
		ids[i] = t.ID
	}
	t := model.Task{
		ID:        id.Next(ids),
		Text:      normalizeText(text),
		CreatedAt: s.now().Unix(),
	}
	s.tasks = append(s.tasks, t)
	return t
}

func (s *Store) Update(taskID int, upd TaskUpdate) (model.Task, error) {
	i := s.index(taskID)
	if i < 0 {
		return model.Task{}, notFound(taskID)
	}
	t := &s.tasks[i]
	if upd.Text != nil {
		t.Text = normalizeText(*upd.Text)
	}
	if upd.Done != nil && *upd.Done {
		t.Done = true
	}
	return *t, nil
}

// MarkDone finishes a task. Finishing it again is a no-op.
func (s *Store) MarkDone(taskID int) (model.Task, error) {
	done := true
	return s.Update(taskID, TaskUpdate{Done: &done})
}

// Edit replaces the text of a task, leaving its timestamp and state alone.
func (s *Store) Edit(taskID int, text string) (model.Task, error) {
	return s.Update(taskID, TaskUpdate{Text: &text})
}

// Remove deletes a task and renumbers the rest to 1..N in their current order.
func (s *Store) Remove(taskID int) (model.Task, error) {
	i := s.index(taskID)
	if i < 0 {
		return model.Task{}, notFound(taskID)
	}
	removed := s.tasks[i]
	s.tasks = slices.Delete(s.tasks, i, i+1)
	s.renumber()
	return removed, nil
}

func (s *Store) renumber() {
	for i := range s.tasks {
		s.tasks[i].ID = i + 1
	}
}

func (s *Store) index(taskID int) int {
	return slices.IndexFunc(s.tasks, func(t model.Task) bool { return t.ID == taskID })
}

func notFound(taskID int) error {
	return fmt.Errorf("%w: %d", ErrNotFound, taskID)
}
