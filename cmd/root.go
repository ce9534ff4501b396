package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"slices"
	"strings"
	"time"

	mtp "github.com/modeltoolsprotocol/go-sdk"
	"github.com/rogersnm/todo/internal/config"
	"github.com/rogersnm/todo/internal/editor"
	"github.com/rogersnm/todo/internal/logging"
	"github.com/rogersnm/todo/internal/prompt"
	"github.com/rogersnm/todo/internal/render"
	"github.com/rogersnm/todo/internal/store"
	"github.com/spf13/cobra"
)

// annotationNoStore marks commands that run without loading or saving the database.
const annotationNoStore = "todo/no-store"

var (
	version = "dev"
	dataDir string
	noColor bool
	debug   bool
	logFile string

	dataDirFromEnv bool

	st        *store.Store
	cfg       *config.Config
	logger    *slog.Logger
	logCloser io.Closer
	out       *render.Renderer

	// Replaced in tests.
	clock           = time.Now
	stdinIsTerminal = func(cmd *cobra.Command) bool {
		return prompt.IsTerminal(cmd.InOrStdin())
	}
	stdoutIsTerminal = func(cmd *cobra.Command) bool {
		return prompt.IsTerminal(cmd.OutOrStdout())
	}
	openEditor = editor.Open
	pickTask   = prompt.Pick
)

func defaultDataDir() string {
	dir, ok := config.DefaultDataDir(os.Getenv)
	dataDirFromEnv = ok
	return dir
}

var rootCmd = &cobra.Command{
	Use:   "todo",
	Short: "Manage your todo list on the command line",
	Long: `Manage your todo list on the command line.

Tasks are kept in a plain text database in the data directory. Ids are
renumbered after a task is removed, so check "todo list" for the current ids.
Commands that ask for confirmation (remove, reset) only read an answer when
stdin is a terminal and abort otherwise, so todo is safe to use in scripts.`,
	Version:            version,
	Args:               cobra.ArbitraryArgs,
	PersistentPreRunE:  setup,
	PersistentPostRunE: persist,
	RunE: func(cmd *cobra.Command, args []string) error {
		name := cmd.Root().Name()
		if len(args) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "%s needs at least one argument, try --help\n", name)
			return nil
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Unknown argument, try %s --help\n", name)
		return nil
	},
	SilenceUsage: true,
}

func setup(cmd *cobra.Command, args []string) error {
	st = nil
	closeLog()

	var err error
	logger, logCloser, err = logging.New(cmd.ErrOrStderr(), logging.Options{Debug: debug, File: logFile})
	if err != nil {
		return err
	}
	if !dataDirFromEnv && !cmd.Flags().Changed("data-dir") {
		logger.Warn("base directory not set, using the current directory",
			"env", config.BaseDirEnv(runtime.GOOS), "dir", dataDir)
	}

	cfg, err = config.Load(dataDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	out = render.New(!noColor && cfg.Decorate(stdoutIsTerminal(cmd)))

	if skipsStore(cmd) {
		return nil
	}

	st, err = store.Open(dataDir, store.WithLogger(logger), store.WithClock(clock))
	if err != nil {
		return err
	}
	if !st.Existed() {
		fmt.Fprintln(cmd.OutOrStdout(), "ToDo database does not exist, creating a new one.")
	}
	return nil
}

func persist(cmd *cobra.Command, args []string) error {
	if st == nil || skipsStore(cmd) {
		return nil
	}
	return st.Save()
}

func skipsStore(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[annotationNoStore] == "true" {
			return true
		}
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return true
		}
	}
	return false
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", defaultDataDir(), "data directory path (env "+config.EnvDataDir+")")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log debug details to stderr")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "also write JSON logs to this file")

	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		fmt.Fprintf(cmd.ErrOrStderr(), "Unknown argument, try %s --help\n", cmd.Root().Name())
		return nil
	})

	mtpOpts := &mtp.DescribeOptions{
		Commands: map[string]*mtp.CommandAnnotation{
			"add": {
				Examples: []mtp.Example{
					{Description: "Add a task", Command: "todo add Buy milk"},
					{Description: "Add a task with special characters", Command: "todo add \"Fix a/b; then c\""},
				},
			},
			"done": {
				Examples: []mtp.Example{
					{Description: "Mark task 3 as done", Command: "todo done 3"},
				},
			},
			"edit": {
				Examples: []mtp.Example{
					{Description: "Replace the text of task 2", Command: "todo edit 2 Buy oat milk"},
					{Description: "Edit task 2 in $EDITOR", Command: "todo edit 2"},
				},
			},
			"list": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "One line per task with done marker, id, text and age of open tasks, then a summary",
				},
			},
			"remove": {
				Stdin: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "A single y/n byte, read only when stdin is a terminal",
				},
				Examples: []mtp.Example{
					{Description: "Remove task 2 (interactive confirm)", Command: "todo remove 2"},
				},
			},
			"reset": {
				Examples: []mtp.Example{
					{Description: "Back up and empty the list (interactive confirm)", Command: "todo reset"},
				},
			},
			"restore": {
				Examples: []mtp.Example{
					{Description: "Restore the list saved by the last reset", Command: "todo restore"},
				},
			},
			"config": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Data directory, database, backup and config paths and the color mode",
				},
			},
		},
	}

	mtp.WithDescribe(rootCmd, mtpOpts)
}

// normalizeArgs lowercases the command word so "ADD" works like "add".
func normalizeArgs(args []string) []string {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return args
	}
	args = slices.Clone(args)
	args[0] = strings.ToLower(args[0])
	return args
}

func Execute() error {
	rootCmd.SetArgs(normalizeArgs(os.Args[1:]))
	defer closeLog()
	return rootCmd.Execute()
}

func closeLog() {
	if logCloser != nil {
		logCloser.Close()
		logCloser = nil
	}
}
