package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ppd-dev/ppd/internal/config"
	"github.com/ppd-dev/ppd/internal/logging"
)

// annotationInteractive marks commands that take over the terminal. Their
// logs go to a file so they do not corrupt the screen.
const annotationInteractive = "ppd/interactive"

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the ppd CLI.
// It wires up configuration, logging, tracing and the subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:           "ppd",
		Short:         "Selectable list explorer with a resizable pane",
		Long:          "ppd: browse a list of items with range selection, keyboard paging and a drag-resizable pane",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default $PPD_CONFIG or ~/.ppd/config.yaml)")
	cmd.PersistentFlags().String("project-dir", "", "project directory holding .ppd/config.yaml")
	cmd.AddCommand(NewExploreCmd(), NewItemsCmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Explore the demo list
  ppd explore

  # Explore items from YAML files with every pane edge resizable
  ppd explore --items a.yaml --items b.yaml --sides true

  # Only the right and bottom edges are handles
  ppd explore --sides right,bottom

  # Print the items as JSON
  ppd items --items a.yaml --output json

  # Initialize configuration
  ppd config init`

// loadConfig resolves the project directory and the config file and installs
// the result as the global configuration.
func loadConfig(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	flagDir, _ := cmd.Flags().GetString("project-dir")
	wd, _ := os.Getwd()
	config.SetResolvedProjectDir(config.ResolveProjectDir(ctx, flagDir, wd))

	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		config.SetGlobalConfig(config.NewWithProjectDir(ctx, config.GetResolvedProjectDir()))
		return nil
	}

	cfg := config.DefaultConfig()
	cfg.SetConfigPath(path)
	if err := cfg.Load(); err != nil {
		return &ExitError{Code: ExitCodeConfig, Err: err}
	}
	config.SetGlobalConfig(cfg)
	return nil
}

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigValidateCmd())
	return cmd
}

// interactiveCommand reports whether cmd will take over the terminal.
func interactiveCommand(cmd *cobra.Command) bool {
	if cmd.Annotations[annotationInteractive] != "true" {
		return false
	}
	return isTerminal(os.Stdout)
}

// Execute runs the root command with a background context.
func Execute(ver string) error {
	root := NewRootCmd(ver)
	if err := root.ExecuteContext(context.Background()); err != nil {
		return fmt.Errorf("ppd: %w", err)
	}
	return nil
}
