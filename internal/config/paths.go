package config

import (
	"path/filepath"
	"runtime"
)

const (
	// SubDir is created inside the user's base directory.
	SubDir = ".todo"
	// EnvDataDir overrides the data directory entirely.
	EnvDataDir = "TODO_DATA_DIR"
)

// BaseDirEnv names the variable holding the per-user base directory on goos.
func BaseDirEnv(goos string) string {
	if goos == "windows" {
		return "LOCALAPPDATA"
	}
	return "HOME"
}

// DataDir resolves the data directory from the environment. ok is false when
// the base directory variable was unset and the current directory is used.
func DataDir(goos string, getenv func(string) string) (dir string, ok bool) {
	if d := getenv(EnvDataDir); d != "" {
		return filepath.Clean(d), true
	}
	base := getenv(BaseDirEnv(goos))
	if base == "" {
		return filepath.Join(".", SubDir), false
	}
	return filepath.Join(base, SubDir), true
}

// DefaultDataDir is DataDir for the running platform.
func DefaultDataDir(getenv func(string) string) (string, bool) {
	return DataDir(runtime.GOOS, getenv)
}
