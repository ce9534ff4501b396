package model

import (
	"fmt"
	"strings"
)

// Task is a single entry of the todo list.
type Task struct {
	ID        int    `yaml:"id"`
	Text      string `yaml:"-"`
	CreatedAt int64  `yaml:"created_at"`
	Done      bool   `yaml:"done"`
}

func (t *Task) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("task id must be positive, got %d", t.ID)
	}
	if t.CreatedAt < 0 {
		return fmt.Errorf("task %d: created_at must not be negative", t.ID)
	}
	if strings.ContainsAny(t.Text, "\r\n") {
		return fmt.Errorf("task %d: text must be a single line", t.ID)
	}
	return nil
}

// Open reports whether the task still needs doing.
func (t *Task) Open() bool {
	return !t.Done
}

// Counts returns the number of open and finished tasks.
func Counts(tasks []Task) (open, done int) {
	for _, t := range tasks {
		if t.Done {
			done++
		} else {
			open++
		}
	}
	return open, done
}
