// Package render formats task lists and command messages, either plain or
// decorated with ANSI styles.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/rogersnm/todo/internal/model"
)

type Renderer struct {
	decorate bool

	headerStyle lipgloss.Style
	idStyle     lipgloss.Style
	doneStyle   lipgloss.Style
	strikeStyle lipgloss.Style
	alertStyle  lipgloss.Style
}

// New returns a renderer. With decorate set, output always carries ANSI
// sequences regardless of what the destination is.
func New(decorate bool) *Renderer {
	lr := lipgloss.NewRenderer(io.Discard)
	lr.SetColorProfile(termenv.ANSI)
	return &Renderer{
		decorate:    decorate,
		headerStyle: lr.NewStyle().Bold(true),
		idStyle:     lr.NewStyle().Foreground(lipgloss.Color("10")),
		doneStyle:   lr.NewStyle().Foreground(lipgloss.Color("11")),
		strikeStyle: lr.NewStyle().Strikethrough(true),
		alertStyle:  lr.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

func (r *Renderer) apply(s lipgloss.Style, text string) string {
	if !r.decorate {
		return text
	}
	return s.Render(text)
}

// ID highlights a task id inside a message.
func (r *Renderer) ID(id int) string {
	return r.apply(r.idStyle, fmt.Sprint(id))
}

// Alert marks a destructive outcome.
func (r *Renderer) Alert(text string) string {
	return r.apply(r.alertStyle, text)
}

// Line renders one task row. now is used for the age of open tasks.
func (r *Renderer) Line(t model.Task, now int64) string {
	var sb strings.Builder
	if t.Done {
		sb.WriteString("[" + r.apply(r.doneStyle, "X") + "] ")
	} else {
		sb.WriteString("[ ] ")
	}
	sb.WriteString(r.apply(r.idStyle, fmt.Sprintf("%2d.", t.ID)))
	sb.WriteString(" ")
	if t.Done {
		sb.WriteString(r.apply(r.strikeStyle, t.Text))
	} else {
		sb.WriteString(t.Text)
		sb.WriteString(" ")
		sb.WriteString(model.Since(now, t.CreatedAt))
	}
	return sb.String()
}

// Summary renders the open/finished counts.
func (r *Renderer) Summary(open, done int) string {
	verb := "are"
	if done == 1 {
		verb = "is"
	}
	return fmt.Sprintf("Found %s open task(s) and %s %s finished.",
		r.apply(r.idStyle, fmt.Sprint(open)),
		r.apply(r.doneStyle, fmt.Sprint(done)),
		verb)
}

// List writes the full task list.
func (r *Renderer) List(w io.Writer, tasks []model.Task, now int64) error {
	var sb strings.Builder
	if len(tasks) == 0 {
		sb.WriteString("There are no tasks in the list.\n")
	} else {
		sb.WriteString("\n" + r.apply(r.headerStyle, "Task List:") + "\n")
		sb.WriteString(r.apply(r.headerStyle, "----------") + "\n\n")
		for _, t := range tasks {
			sb.WriteString(r.Line(t, now) + "\n")
		}
		open, done := model.Counts(tasks)
		sb.WriteString("\n" + r.Summary(open, done) + "\n")
	}
	sb.WriteString("\n")
	_, err := io.WriteString(w, sb.String())
	return err
}
