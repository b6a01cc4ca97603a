package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure resolver settings.

Settings persist in the weld config file and apply to every run.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsDepthCmd = &cobra.Command{
	Use:   "depth [limit]",
	Short: "Set the maximum include depth",
	Long: `Sets how many levels of nested @include directives are expanded
before resolution reports a max_depth error.`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsDepth,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsDepthCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	cmd.Printf("max include depth: %d\n", settings.Resolver.MaxDepth)
	cmd.Printf("colored output:    %t\n", settings.Output.Color)
	return nil
}

func runSettingsDepth(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	depth, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid depth %q: %w", args[0], err)
	}

	if err := settingsService.SetMaxDepth(depth); err != nil {
		return err
	}

	cmd.Printf("max include depth set to %d\n", depth)
	return nil
}
