package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewCategoryOrdersCommand creates the category-orders command.
func NewCategoryOrdersCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category-orders <category-name>",
		Short: "List orders containing products from a category",
		Long: `List every order containing at least one product from the named
category, with only the qualifying items shown per order. The name
match is exact and case-sensitive.

Example:
  webstore category-orders --db ./webstore.db Electronics`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCategoryOrders(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runCategoryOrders(opts *RootOptions, categoryName string, cmd *cobra.Command) error {
	eng, closeSource, err := openEngine(opts)
	if err != nil {
		return err
	}
	defer closeSource()

	orders, err := eng.OrdersWithProductsInCategory(context.Background(), categoryName)
	if err != nil {
		return queryFailure("category orders query failed", err)
	}

	if opts.Format == "json" {
		return writeJSON(cmd, orders)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Orders with products in category %q: %d\n", categoryName, len(orders))
	for _, o := range orders {
		fmt.Fprintf(w, "  [%d] %s\n", o.OrderID, o.CustomerName)
		for _, it := range o.Items {
			fmt.Fprintf(w, "      %s x%d @ %s\n", it.ProductName, it.Quantity, it.UnitPrice.StringFixed(2))
		}
	}
	return nil
}
