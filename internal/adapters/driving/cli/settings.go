package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the settings stored in config.toml.

Available settings:
  corpus.backend       csv or sqlite
  corpus.dir           directory holding the corpus CSV files
  corpus.database_dir  directory holding the local database
  documents.enabled    comma separated document ids (empty = all)
  output.decorated     true for markdown text output`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file path",
	RunE:  runSettingsPath,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsPathCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	database := settings.DatabaseDir
	if database == "" {
		database = "(default)"
	}
	enabled := strings.Join(settings.Documents, ", ")
	if enabled == "" {
		enabled = "(all)"
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Corpus]")
	cmd.Printf("  Backend:   %s (%s)\n", settings.Backend, settings.Backend.Description())
	cmd.Printf("  Directory: %s\n", settings.CorpusDir)
	cmd.Printf("  Database:  %s\n", database)
	cmd.Println()

	cmd.Println("[Documents]")
	cmd.Printf("  Enabled: %s\n", enabled)
	cmd.Println()

	cmd.Println("[Output]")
	cmd.Printf("  Decorated: %t\n", settings.Decorated)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to save setting: %w", err)
	}

	cmd.Printf("%s = %s\n", args[0], args[1])
	return nil
}

func runSettingsPath(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	cmd.Println(settingsService.Path())
	return nil
}
