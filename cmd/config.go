package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/rogersnm/todo/internal/config"
	"github.com/rogersnm/todo/internal/store"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:         "config",
	Short:       "Show file locations and settings",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationNoStore: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Data:     %s\n", dataDir)
		fmt.Fprintf(w, "Database: %s\n", filepath.Join(dataDir, store.DatabaseFile))
		fmt.Fprintf(w, "Backup:   %s\n", filepath.Join(dataDir, store.BackupFile))
		fmt.Fprintf(w, "Config:   %s\n", config.Path(dataDir))
		fmt.Fprintf(w, "Color:    %s\n", cfg.ColorMode())
		return nil
	},
}

var configColorCmd = &cobra.Command{
	Use:       "color <auto|always|never>",
	Short:     "Set when output is colored",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(config.ColorAuto), string(config.ColorAlways), string(config.ColorNever)},
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := config.ColorMode(args[0])
		if err := config.ValidateColor(mode); err != nil {
			return err
		}
		cfg.Color = mode
		if err := config.Save(dataDir, cfg); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Color mode set to %s\n", mode)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configColorCmd)
	rootCmd.AddCommand(configCmd)
}
