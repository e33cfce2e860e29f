package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewTotalsCommand creates the totals command.
func NewTotalsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "totals",
		Short: "Report gross order value per customer",
		Long: `Report the summed gross value (quantity times unit price, before
discounts) of every order per customer, highest total first.
Customers without orders are omitted.

Example:
  webstore totals --db ./webstore.db`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTotals(rootOpts, cmd)
		},
	}

	return cmd
}

func runTotals(opts *RootOptions, cmd *cobra.Command) error {
	eng, closeSource, err := openEngine(opts)
	if err != nil {
		return err
	}
	defer closeSource()

	totals, err := eng.CustomerOrderTotals(context.Background())
	if err != nil {
		return queryFailure("totals query failed", err)
	}

	if opts.Format == "json" {
		return writeJSON(cmd, totals)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "Customer order totals:")
	for _, t := range totals {
		fmt.Fprintf(w, "  [%d] %s: %s\n", t.CustomerID, t.CustomerName, t.Total.StringFixed(2))
	}
	return nil
}
