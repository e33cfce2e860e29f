package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewStockCommand creates the stock command.
func NewStockCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stock",
		Short: "Report total stock per store",
		Long: `Report the summed quantity in stock per store, sorted by store
name. Stores sharing a name report as one line.

Example:
  webstore stock --db ./webstore.db`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStock(rootOpts, cmd)
		},
	}

	return cmd
}

func runStock(opts *RootOptions, cmd *cobra.Command) error {
	eng, closeSource, err := openEngine(opts)
	if err != nil {
		return err
	}
	defer closeSource()

	stocks, err := eng.StockByStore(context.Background())
	if err != nil {
		return queryFailure("stock query failed", err)
	}

	if opts.Format == "json" {
		return writeJSON(cmd, stocks)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "Stock by store:")
	for _, s := range stocks {
		fmt.Fprintf(w, "  %s: %d\n", s.StoreName, s.TotalQuantity)
	}
	return nil
}
