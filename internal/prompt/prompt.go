// Package prompt asks the user for confirmation or a task choice. Nothing
// here reads stdin unless it is an interactive terminal, so scripts never
// block on input.
package prompt

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/rogersnm/todo/internal/model"
)

// ErrNotInteractive is returned when a choice is needed but stdin is not a terminal.
var ErrNotInteractive = errors.New("stdin is not a terminal")

type fder interface {
	Fd() uintptr
}

// IsTerminal reports whether v is a file attached to a terminal.
func IsTerminal(v any) bool {
	f, ok := v.(fder)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Confirm writes question to out and reads a single byte from in. Only 'y'
// or 'Y' confirms. When interactive is false nothing is read and the answer
// is no.
func Confirm(out io.Writer, in io.Reader, interactive bool, question string) bool {
	fmt.Fprintln(out, question)
	if !interactive {
		return false
	}
	var b [1]byte
	n, _ := in.Read(b[:])
	return n == 1 && (b[0] == 'y' || b[0] == 'Y')
}

// Options turns tasks into picker entries labelled like list rows.
func Options(tasks []model.Task) []huh.Option[int] {
	opts := make([]huh.Option[int], len(tasks))
	for i, t := range tasks {
		label := fmt.Sprintf("%2d. %s", t.ID, t.Text)
		if t.Done {
			label = fmt.Sprintf("%2d. %s (done)", t.ID, t.Text)
		}
		opts[i] = huh.NewOption(label, t.ID)
	}
	return opts
}

// Pick lets the user choose one of tasks and returns its id.
func Pick(title string, tasks []model.Task, interactive bool) (int, error) {
	if !interactive {
		return 0, ErrNotInteractive
	}
	if len(tasks) == 0 {
		return 0, fmt.Errorf("no tasks to choose from")
	}
	var choice int
	err := huh.NewSelect[int]().
		Title(title).
		Options(Options(tasks)...).
		Value(&choice).
		Run()
	if err != nil {
		return 0, fmt.Errorf("choosing task: %w", err)
	}
	return choice, nil
}
