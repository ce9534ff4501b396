package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rogersnm/todo/internal/editor"
	"github.com/rogersnm/todo/internal/id"
	"github.com/rogersnm/todo/internal/model"
	"github.com/rogersnm/todo/internal/prompt"
	"github.com/rogersnm/todo/internal/store"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <text...>",
	Short: "Add a task",
	Long: `Add a task. All remaining words form the task text; quote the text if it
contains characters the shell would interpret.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		t := st.Add(strings.Join(args, " "))
		fmt.Fprintf(cmd.OutOrStdout(), "Added a task with id %s.\n", out.ID(t.ID))
		return nil
	},
}

var doneCmd = &cobra.Command{
	Use:   "done [id]",
	Short: "Mark a task as done",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var open []model.Task
		for _, t := range st.Tasks() {
			if t.Open() {
				open = append(open, t)
			}
		}
		taskID, ok, err := resolveID(cmd, args, "Mark which task as done?", open)
		if err != nil || !ok {
			return err
		}
		t, err := st.MarkDone(taskID)
		if err != nil {
			return notFound(cmd, args, taskID, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Task with id %s marked as done.\n", out.ID(t.ID))
		return nil
	},
}

var editCmd = &cobra.Command{
	Use:   "edit [id] [text...]",
	Short: "Replace the text of a task",
	Long: `Replace the text of a task. Without new text and on a terminal, the task
opens in $EDITOR; setting "done: true" there also marks it as done.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		taskID, ok, err := resolveID(cmd, args, "Edit which task?", st.Tasks())
		if err != nil || !ok {
			return err
		}

		var t model.Task
		switch {
		case len(args) > 1:
			t, err = st.Edit(taskID, strings.Join(args[1:], " "))
		case stdinIsTerminal(cmd):
			t, err = st.Get(taskID)
			if err != nil {
				break
			}
			var edited model.Task
			edited, err = editor.EditTask(t, openEditor)
			if err != nil {
				return err
			}
			t, err = st.Update(taskID, store.TaskUpdate{Text: &edited.Text, Done: &edited.Done})
		default:
			t, err = st.Edit(taskID, "")
		}
		if err != nil {
			return notFound(cmd, args, taskID, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Task with id %s edited.\n", out.ID(t.ID))
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Print all tasks",
	Args:    cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return out.List(cmd.OutOrStdout(), st.Tasks(), clock().Unix())
	},
}

var removeCmd = &cobra.Command{
	Use:     "remove [id]",
	Aliases: []string{"rm"},
	Short:   "Remove a task after confirmation",
	Long: `Remove a task after confirmation. The remaining tasks get new consecutive
ids. The confirmation is only read from a terminal; otherwise removal aborts.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		taskID, ok, err := resolveID(cmd, args, "Remove which task?", st.Tasks())
		if err != nil || !ok {
			return err
		}
		t, err := st.Get(taskID)
		if err != nil {
			return notFound(cmd, args, taskID, err)
		}

		question := "Are you sure to delete this task (y|n)?\n-> " + t.Text
		if !prompt.Confirm(cmd.OutOrStdout(), cmd.InOrStdin(), stdinIsTerminal(cmd), question) {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
		if _, err := st.Remove(taskID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Task with id %s was removed.\n", out.ID(taskID))
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Back up and empty the whole list after confirmation",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		question := "Are you sure to reset the database, all entries will be lost (y|n)?"
		if !prompt.Confirm(cmd.OutOrStdout(), cmd.InOrStdin(), stdinIsTerminal(cmd), question) {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
		if err := st.Reset(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out.Alert("The database was reset, and is empty."))
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore the list saved by the last reset",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprint(cmd.OutOrStdout(), "Restoring last database backup...")
		if err := st.Restore(); err != nil {
			fmt.Fprintln(cmd.OutOrStdout())
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "done.")
		return nil
	},
}

// resolveID reads the task id from args, or lets the user pick one of
// candidates when no id was given on a terminal. ok is false when a notice
// was printed instead and the command should stop without error.
func resolveID(cmd *cobra.Command, args []string, title string, candidates []model.Task) (taskID int, ok bool, err error) {
	if len(args) > 0 {
		taskID, ok = id.Parse(args[0])
		if !ok {
			fmt.Fprintf(cmd.ErrOrStderr(), "No task with id %s.\n", args[0])
		}
		return taskID, ok, nil
	}

	taskID, err = pickTask(title, candidates, stdinIsTerminal(cmd))
	switch {
	case errors.Is(err, prompt.ErrNotInteractive):
		return 0, false, fmt.Errorf("a task id is required: %s", cmd.UseLine())
	case errors.Is(err, huh.ErrUserAborted):
		fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
		return 0, false, nil
	case err != nil:
		return 0, false, err
	}
	return taskID, true, nil
}

// notFound turns store.ErrNotFound into a notice; other errors pass through.
func notFound(cmd *cobra.Command, args []string, taskID int, err error) error {
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}
	token := fmt.Sprint(taskID)
	if len(args) > 0 {
		token = args[0]
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "No task with id %s.\n", token)
	return nil
}

func init() {
	// Everything after the first word is task text, even if it looks like a flag.
	addCmd.Flags().SetInterspersed(false)
	editCmd.Flags().SetInterspersed(false)

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(restoreCmd)
}
