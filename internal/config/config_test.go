package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("color: never\n"), 0644)

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, ColorNever, cfg.Color)
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, ColorAuto, cfg.ColorMode())
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("{{bad yaml"), 0644)

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoad_InvalidColor(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("color: rainbow\n"), 0644)

	_, err := Load(dir)
	assert.ErrorContains(t, err, "rainbow")
}

func TestSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{Color: ColorAlways}

	require.NoError(t, Save(dir, cfg))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg.Color, loaded.Color)
}

func TestSave_CreatesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "subdir")

	require.NoError(t, Save(dir, &Config{}))
	_, err := os.Stat(filepath.Join(dir, "config.yaml"))
	assert.NoError(t, err)
}

func TestDecorate(t *testing.T) {
	tests := []struct {
		mode ColorMode
		tty  bool
		want bool
	}{
		{"", true, true},
		{"", false, false},
		{ColorAuto, true, true},
		{ColorAlways, false, true},
		{ColorNever, true, false},
	}
	for _, tt := range tests {
		cfg := &Config{Color: tt.mode}
		assert.Equal(t, tt.want, cfg.Decorate(tt.tty), "mode=%q tty=%v", tt.mode, tt.tty)
	}
}

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestDataDir_Linux(t *testing.T) {
	dir, ok := DataDir("linux", env(map[string]string{"HOME": "/home/me"}))
	assert.True(t, ok)
	assert.Equal(t, filepath.Join("/home/me", ".todo"), dir)
}

func TestDataDir_Windows(t *testing.T) {
	dir, ok := DataDir("windows", env(map[string]string{
		"HOME":         "/ignored",
		"LOCALAPPDATA": "/appdata",
	}))
	assert.True(t, ok)
	assert.Equal(t, filepath.Join("/appdata", ".todo"), dir)
}

func TestDataDir_Override(t *testing.T) {
	dir, ok := DataDir("linux", env(map[string]string{
		"HOME":          "/home/me",
		"TODO_DATA_DIR": "/srv/todo/",
	}))
	assert.True(t, ok)
	assert.Equal(t, filepath.Clean("/srv/todo"), dir)
}

func TestDataDir_UnsetFallsBackToCwd(t *testing.T) {
	dir, ok := DataDir("linux", env(nil))
	assert.False(t, ok)
	assert.Equal(t, filepath.Join(".", ".todo"), dir)
}
