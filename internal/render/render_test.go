package render

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogersnm/todo/internal/model"
)

const now = int64(1_700_100_000)

var sample = []model.Task{
	{ID: 1, Text: "Buy milk", CreatedAt: now - 5},
	{ID: 2, Text: "Walk the dog", CreatedAt: now - 7200, Done: true},
	{ID: 3, Text: "File taxes", CreatedAt: now - 3*86400},
	{ID: 10, Text: "Call mom", CreatedAt: now - 125},
}

func golden(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestList_Plain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(false).List(&buf, sample, now))
	golden(t).Assert(t, "list_plain", buf.Bytes())
}

func TestList_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(false).List(&buf, nil, now))
	golden(t).Assert(t, "list_empty", buf.Bytes())
}

func TestList_Decorated(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(true).List(&buf, sample, now))
	out := buf.String()
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "Task List:")
	assert.Contains(t, out, "(since 5 second(s))")
	assert.NotContains(t, out, "(since 2 hour(s))", "finished tasks carry no age")
}

func TestLine_DoneHasNoAge(t *testing.T) {
	line := New(false).Line(model.Task{ID: 4, Text: "x", Done: true}, now)
	assert.Equal(t, "[X]  4. x", line)
}

func TestSummary_Wording(t *testing.T) {
	r := New(false)
	assert.Equal(t, "Found 2 open task(s) and 1 is finished.", r.Summary(2, 1))
	assert.Equal(t, "Found 1 open task(s) and 0 are finished.", r.Summary(1, 0))
	assert.Equal(t, "Found 0 open task(s) and 3 are finished.", r.Summary(0, 3))
}

func TestID_Plain(t *testing.T) {
	assert.Equal(t, "12", New(false).ID(12))
	assert.NotEqual(t, "12", New(true).ID(12))
	assert.Contains(t, New(true).ID(12), "12")
}

func TestAlert(t *testing.T) {
	assert.Equal(t, "gone", New(false).Alert("gone"))
	assert.Contains(t, New(true).Alert("gone"), "\x1b[")
}
