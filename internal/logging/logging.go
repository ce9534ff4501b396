// Package logging builds the slog logger shared by the CLI and the store.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
	slogmulti "github.com/samber/slog-multi"
)

type Options struct {
	Debug bool
	// File, when set, additionally receives every record as JSON.
	File string
}

// New returns a logger writing human-readable records to w. The returned
// closer releases the log file, if any.
func New(w io.Writer, opts Options) (*slog.Logger, io.Closer, error) {
	level := charmlog.WarnLevel
	if opts.Debug {
		level = charmlog.DebugLevel
	}
	console := charmlog.NewWithOptions(w, charmlog.Options{
		Prefix: "todo",
		Level:  level,
	})

	if opts.File == "" {
		return slog.New(console), nopCloser{}, nil
	}

	f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %s: %w", opts.File, err)
	}
	file := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(slogmulti.Fanout(console, file)), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
