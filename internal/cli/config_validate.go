package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppd-dev/ppd/internal/config"
	"github.com/ppd-dev/ppd/internal/tui/resizable"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the effective configuration: the global file, the project overlay
and environment overrides.

This includes:
- Schema version compatibility
- List tuning ranges (page padding, scroll debounce, reveal ratio)
- Resizable sides shape and minimum sizes
- Logging level and format`,
		Example: `  # Validate current configuration
  ppd config validate

  # Validate and show detailed information
  ppd config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := config.GetGlobalConfig()

	if err := cfg.Validate(); err != nil {
		return &ExitError{Code: ExitCodeConfig, Err: fmt.Errorf("configuration validation failed: %w", err)}
	}

	cmd.Printf("Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}

	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Config file: %s\n", cfg.ConfigPath())
	cmd.Printf("  Version: %s\n", cfg.Version)
	cmd.Printf("  Selectable: %t\n", cfg.List.Selectable)
	cmd.Printf("  Page padding: %d\n", cfg.List.PagePadding)
	cmd.Printf("  Scroll debounce: %s\n", cfg.List.ScrollDebounce)
	cmd.Printf("  Resizable sides: %s\n", resizable.ResolveSides(cfg.Resizable.Sides))
	cmd.Printf("  Pane size: %dx%d (min %dx%d)\n",
		cfg.Resizable.Width, cfg.Resizable.Height, cfg.Resizable.MinWidth, cfg.Resizable.MinHeight)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Log file: %s\n", cfg.Logging.File)

	if len(cfg.Items.Files) > 0 {
		cmd.Printf("  Item files: %d\n", len(cfg.Items.Files))
		for _, f := range cfg.Items.Files {
			cmd.Printf("    - %s\n", f)
		}
	} else {
		cmd.Printf("  Demo items: %d\n", cfg.Items.DemoCount)
	}
}
