package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ppd-dev/ppd/internal/config"
	"github.com/ppd-dev/ppd/internal/items"
	"github.com/ppd-dev/ppd/internal/tui"
	listview "github.com/ppd-dev/ppd/internal/tui/list"
	"github.com/ppd-dev/ppd/internal/tui/resizable"
)

// exploreFlags holds the flags of the explore command.
type exploreFlags struct {
	files      []string
	selectable bool
	sides      string
	count      int
	plain      bool
	noColor    bool
}

// NewExploreCmd creates the explore command running the interactive explorer.
func NewExploreCmd() *cobra.Command {
	var flags exploreFlags

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Browse items in the interactive explorer",
		Long: `Opens the item list inside a resizable pane.

Arrows move focus, Shift extends the selection, Home/End and PageUp/PageDown
jump, Ctrl+A selects everything, Escape clears, Space toggles and Ctrl+R
scrolls the focused row into a comfortable position. Drag a highlighted pane
edge to resize it; press the same edge twice within a second to snap it to
its minimum size. Selected ids are printed when the explorer exits.

When stdout is not a terminal the items are printed instead.`,
		Example: `  # Explore the demo list
  ppd explore

  # Explore a file, with only the right edge resizable
  ppd explore --items items.yaml --sides false,true,false,false`,
		Annotations: map[string]string{annotationInteractive: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExplore(cmd, flags)
		},
	}

	cmd.Flags().StringSliceVar(&flags.files, "items", nil, "YAML items file (repeatable)")
	cmd.Flags().BoolVar(&flags.selectable, "selectable", true, "select items by clicking")
	cmd.Flags().StringVar(&flags.sides, "sides", "",
		"resizable sides: true, false, a left,right,top,bottom bool list, or side names")
	cmd.Flags().IntVar(&flags.count, "count", 0, "number of generated demo rows (0 = config default)")
	cmd.Flags().BoolVar(&flags.plain, "plain", false, "print items instead of opening the explorer")
	cmd.Flags().BoolVar(&flags.noColor, "no-color", false, "disable colors")

	return cmd
}

func runExplore(cmd *cobra.Command, flags exploreFlags) error {
	ctx := cmd.Context()
	cfg := config.GetGlobalConfig()

	list, err := loadItems(ctx, cfg, flags.files, flags.count)
	if err != nil {
		return err
	}

	opts := explorerOptions(cfg)
	if cmd.Flags().Changed("selectable") {
		opts.List.Selectable = flags.selectable
	}
	if flags.sides != "" {
		spec := resizable.ParseSpec(flags.sides)
		if spec.Kind() == resizable.SpecMalformed {
			return &ExitError{
				Code: ExitCodeInvalidInput,
				Err:  fmt.Errorf("invalid --sides %q", flags.sides),
			}
		}
		opts.Pane.Sides = resizable.ResolveSides(spec)
	}

	mode := tui.DetectOutputMode(false, flags.noColor, flags.plain)
	logger.Debug().Ctx(ctx).
		Str("mode", mode.String()).
		Int("items", len(list)).
		Msg("starting explorer")

	switch mode {
	case tui.OutputModeInteractive:
		return runInteractiveExplorer(ctx, cmd.OutOrStdout(), list, opts)
	case tui.OutputModeStyled, tui.OutputModePlain:
		fallthrough
	default:
		return tui.RenderPlain(cmd.OutOrStdout(), list)
	}
}

// explorerOptions maps the configuration onto explorer options.
func explorerOptions(cfg *config.Config) tui.ExplorerOptions {
	return tui.ExplorerOptions{
		List: listview.Options{
			Selectable:     cfg.List.Selectable,
			PagePadding:    cfg.List.PagePadding,
			ScrollDebounce: cfg.List.ScrollDebounce,
			RevealRatio:    cfg.List.RevealRatio,
			WheelStep:      cfg.List.WheelStep,
		},
		Pane: resizable.Options{
			Sides:      resizable.ResolveSides(cfg.Resizable.Sides),
			Width:      cfg.Resizable.Width,
			Height:     cfg.Resizable.Height,
			MinWidth:   cfg.Resizable.MinWidth,
			MinHeight:  cfg.Resizable.MinHeight,
			BorderSize: cfg.Resizable.BorderSize,
		},
	}
}

// loadItems reads item files from flags, then config, falling back to the demo list.
func loadItems(ctx context.Context, cfg *config.Config, files []string, count int) ([]items.Item, error) {
	if len(files) == 0 {
		files = cfg.Items.Files
	}

	var provider items.Provider
	if len(files) > 0 {
		provider = items.FileProvider{Paths: files}
	} else {
		if count <= 0 {
			count = cfg.Items.DemoCount
		}
		provider = items.DemoProvider{Count: count}
	}

	list, err := provider.Items(ctx)
	if err != nil {
		if errors.Is(err, items.ErrDuplicateID) {
			return nil, fmt.Errorf("loading items: %w", err)
		}
		return nil, &ExitError{Code: ExitCodeInvalidInput, Err: fmt.Errorf("loading items: %w", err)}
	}
	return list, nil
}

func runInteractiveExplorer(ctx context.Context, out io.Writer, list []items.Item, opts tui.ExplorerOptions) error {
	model := tui.NewExplorerModel(ctx, list, opts)
	defer model.Close()

	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run interactive explorer: %w", err)
	}

	for _, id := range model.Selected() {
		if _, err := fmt.Fprintln(out, id); err != nil {
			return fmt.Errorf("writing selection: %w", err)
		}
	}
	return nil
}
