package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultLevelHidesDebug(t *testing.T) {
	var buf bytes.Buffer
	l, closer, err := New(&buf, Options{})
	require.NoError(t, err)
	defer closer.Close()

	l.Debug("loaded database", "tasks", 3)
	assert.Empty(t, buf.String())

	l.Warn("data dir fallback")
	assert.Contains(t, buf.String(), "data dir fallback")
}

func TestNew_Debug(t *testing.T) {
	var buf bytes.Buffer
	l, closer, err := New(&buf, Options{Debug: true})
	require.NoError(t, err)
	defer closer.Close()

	l.Debug("loaded database", "tasks", 3)
	assert.Contains(t, buf.String(), "loaded database")
}

func TestNew_FileReceivesDebugJSON(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "todo.log")
	l, closer, err := New(&buf, Options{File: path})
	require.NoError(t, err)

	l.Debug("saved database", "tasks", 2)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"saved database"`)
	assert.Empty(t, buf.String())
}

func TestNew_BadFile(t *testing.T) {
	_, _, err := New(&bytes.Buffer{}, Options{File: filepath.Join(t.TempDir(), "missing", "x.log")})
	assert.Error(t, err)
}
