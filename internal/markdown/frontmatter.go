package markdown

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/rogersnm/todo/internal/model"
)

// MarshalTask renders t as YAML frontmatter with the task text as body.
func MarshalTask(t model.Task) ([]byte, error) {
	yamlBytes, err := yaml.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("marshaling frontmatter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(yamlBytes)
	buf.WriteString("---\n\n")
	if t.Text != "" {
		buf.WriteString(t.Text)
		buf.WriteString("\n")
	}
	return buf.Bytes(), nil
}

// ParseTask reads a task back from MarshalTask's format. The body becomes the
// text, with all whitespace runs (line breaks included) collapsed to a space.
func ParseTask(r io.Reader) (model.Task, error) {
	var t model.Task
	body, err := frontmatter.Parse(r, &t)
	if err != nil {
		return t, fmt.Errorf("parsing frontmatter: %w", err)
	}
	t.Text = strings.Join(strings.Fields(string(body)), " ")
	return t, nil
}
