package markdown

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogersnm/todo/internal/model"
)

func TestMarshalTask_Format(t *testing.T) {
	data, err := MarshalTask(model.Task{ID: 2, Text: "Buy milk", CreatedAt: 1700000000})
	require.NoError(t, err)
	assert.Equal(t, "---\nid: 2\ncreated_at: 1700000000\ndone: false\n---\n\nBuy milk\n", string(data))
}

func TestMarshalTask_RoundTrip(t *testing.T) {
	original := model.Task{ID: 3, Text: "semi;colon and 100%", CreatedAt: 42, Done: true}
	data, err := MarshalTask(original)
	require.NoError(t, err)

	parsed, err := ParseTask(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}

func TestParseTask_CollapsesBody(t *testing.T) {
	input := "---\nid: 1\ncreated_at: 0\ndone: true\n---\n\n  Call the\n  plumber  \n\n"
	got, err := ParseTask(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "Call the plumber", got.Text)
	assert.True(t, got.Done)
}

func TestParseTask_EmptyBody(t *testing.T) {
	data, err := MarshalTask(model.Task{ID: 1})
	require.NoError(t, err)

	got, err := ParseTask(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "", got.Text)
}

func TestParseTask_NoFrontmatter(t *testing.T) {
	got, err := ParseTask(strings.NewReader("Just the text"))
	// adrg/frontmatter returns an empty struct when no frontmatter is found
	require.NoError(t, err)
	assert.Equal(t, 0, got.ID)
	assert.Equal(t, "Just the text", got.Text)
}

func TestParseTask_MalformedYAML(t *testing.T) {
	_, err := ParseTask(strings.NewReader("---\n{{invalid yaml\n---\n"))
	assert.Error(t, err)
}
