package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/rogersnm/todo/internal/markdown"
	"github.com/rogersnm/todo/internal/model"
)

func editorCmd() string {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if e := strings.TrimSpace(os.Getenv(env)); e != "" {
			return e
		}
	}
	return "vi"
}

// Open runs the user's editor on path, attached to the process terminal.
func Open(path string) error {
	parts := strings.Fields(editorCmd())
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %q: %w", parts[0], err)
	}
	return nil
}

// EditTask writes t to a temporary markdown file, lets open edit it and reads
// the result back. Only the text and done fields are taken from the file.
func EditTask(t model.Task, open func(path string) error) (model.Task, error) {
	data, err := markdown.MarshalTask(t)
	if err != nil {
		return t, err
	}
	f, err := os.CreateTemp("", fmt.Sprintf("todo-%d-*.md", t.ID))
	if err != nil {
		return t, fmt.Errorf("creating edit file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.Write(data); err != nil {
		f.Close()
		return t, fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return t, fmt.Errorf("closing %s: %w", path, err)
	}

	if err := open(path); err != nil {
		return t, err
	}

	in, err := os.Open(path)
	if err != nil {
		return t, fmt.Errorf("opening %s: %w", path, err)
	}
	defer in.Close()
	edited, err := markdown.ParseTask(in)
	if err != nil {
		return t, err
	}

	t.Text = edited.Text
	t.Done = t.Done || edited.Done
	return t, nil
}
