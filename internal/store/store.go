package store

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rogersnm/todo/internal/model"
)

const (
	DatabaseFile = "todo.data"
	BackupFile   = "todo.data.bak"
)

// Store holds the task list of one database file. It is loaded once per
// invocation and written back as a whole; nothing guards against two
// processes saving the same file concurrently.
type Store struct {
	Path       string
	BackupPath string

	tasks   []model.Task
	existed bool
	log     *slog.Logger
	now     func() time.Time
}

type Option func(*Store)

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithClock replaces the wall clock used to stamp new tasks.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New returns an empty store for the database inside dataDir.
func New(dataDir string, opts ...Option) *Store {
	s := &Store{
		Path:       filepath.Join(dataDir, DatabaseFile),
		BackupPath: filepath.Join(dataDir, BackupFile),
		log:        slog.New(slog.DiscardHandler),
		now:        time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Open creates a store for dataDir and loads it.
func Open(dataDir string, opts ...Option) (*Store, error) {
	s := New(dataDir, opts...)
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Existed reports whether the database file was present at the last Load.
func (s *Store) Existed() bool {
	return s.existed
}

// Load replaces the in-memory tasks with the contents of the database file.
// A missing file yields an empty list. Lines that do not decode are skipped.
func (s *Store) Load() error {
	s.tasks = nil
	f, err := os.Open(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.existed = false
			s.log.Debug("database missing", "path", s.Path)
			return nil
		}
		return fmt.Errorf("opening %s: %w", s.Path, err)
	}
	defer f.Close()
	s.existed = true

	r := bufio.NewReader(f)
	lineNo := 0
	for {
		line, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("reading %s: %w", s.Path, err)
		}
		if line == "" && err != nil {
			break
		}
		lineNo++
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if !skipLine(line) {
			t, derr := decodeLine(line)
			if derr != nil {
				s.log.Debug("skipping line", "path", s.Path, "line", lineNo, "err", derr)
			} else {
				s.tasks = append(s.tasks, t)
			}
		}
		if err != nil {
			break
		}
	}
	s.log.Debug("loaded database", "path", s.Path, "tasks", len(s.tasks))
	return nil
}

// Save writes every task back to the database file, replacing it atomically.
func (s *Store) Save() error {
	err := writeFileAtomic(s.Path, func(w io.Writer) error {
		if _, err := fmt.Fprintf(w, "%s\n\n", header); err != nil {
			return err
		}
		for _, t := range s.tasks {
			if _, err := fmt.Fprintln(w, encodeLine(t)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.existed = true
	s.log.Debug("saved database", "path", s.Path, "tasks", len(s.tasks))
	return nil
}

// Reset backs up the database file and empties the list. The file itself is
// rewritten by the next Save.
func (s *Store) Reset() error {
	if err := copyFile(s.Path, s.BackupPath); err != nil {
		return fmt.Errorf("backing up database: %w", err)
	}
	s.log.Debug("database backed up", "from", s.Path, "to", s.BackupPath)
	s.tasks = nil
	return nil
}

// Restore copies the backup over the database file and reloads it, so a
// following Save keeps the restored tasks.
func (s *Store) Restore() error {
	if err := copyFile(s.BackupPath, s.Path); err != nil {
		return fmt.Errorf("restoring backup: %w", err)
	}
	s.log.Debug("backup restored", "from", s.BackupPath, "to", s.Path)
	return s.Load()
}
