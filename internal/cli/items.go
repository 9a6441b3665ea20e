package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppd-dev/ppd/internal/config"
	"github.com/ppd-dev/ppd/internal/tui"
)

// Output formats of the items command.
const (
	outputPlain = "plain"
	outputJSON  = "json"
)

// NewItemsCmd creates the items command printing the resolved item list.
func NewItemsCmd() *cobra.Command {
	var (
		files  []string
		count  int
		output string
	)

	cmd := &cobra.Command{
		Use:   "items",
		Short: "Print the item list",
		Example: `  # Print the demo list
  ppd items

  # Merge two files and print them as JSON
  ppd items --items a.yaml --items b.yaml --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if output != outputPlain && output != outputJSON {
				return &ExitError{
					Code: ExitCodeInvalidInput,
					Err:  fmt.Errorf("unsupported output format: %s", output),
				}
			}

			list, err := loadItems(cmd.Context(), config.GetGlobalConfig(), files, count)
			if err != nil {
				return err
			}

			if output == outputJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err = enc.Encode(list); err != nil {
					return fmt.Errorf("encoding items: %w", err)
				}
				return nil
			}
			return tui.RenderPlain(cmd.OutOrStdout(), list)
		},
	}

	cmd.Flags().StringSliceVar(&files, "items", nil, "YAML items file (repeatable)")
	cmd.Flags().IntVar(&count, "count", 0, "number of generated demo rows (0 = config default)")
	cmd.Flags().StringVarP(&output, "output", "o", outputPlain, "output format: plain or json")

	return cmd
}
