package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dkarlsen/webstore/internal/model"
	"github.com/dkarlsen/webstore/internal/query"
)

// ProductsOptions holds flags for the products command.
type ProductsOptions struct {
	*RootOptions
	Category int
	Top      int
}

// NewProductsCommand creates the products command.
func NewProductsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ProductsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List products by category or by price rank",
		Long: `List products by category or by price rank.

--category lists the products linked to a category id, --top lists
the N most expensive products (price descending, ties by id). With
neither flag, the top 5 most expensive products are listed.

Examples:
  webstore products --db ./webstore.db --category 3
  webstore products --data ./webstore.yaml --top 10`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProducts(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Category, "category", 0, "category id to list products for")
	cmd.Flags().IntVar(&opts.Top, "top", query.DefaultTopProducts, "number of most expensive products to list")

	return cmd
}

func runProducts(opts *ProductsOptions, cmd *cobra.Command) error {
	byCategory := cmd.Flags().Changed("category")
	if byCategory && cmd.Flags().Changed("top") {
		return NewExitError(ExitCommandError, "--category and --top are mutually exclusive")
	}

	eng, closeSource, err := openEngine(opts.RootOptions)
	if err != nil {
		return err
	}
	defer closeSource()

	ctx := context.Background()
	w := cmd.OutOrStdout()

	if byCategory {
		products, err := eng.ProductsByCategory(ctx, opts.Category)
		if err != nil {
			return queryFailure("products query failed", err)
		}
		if opts.Format == "json" {
			return writeJSON(cmd, products)
		}
		fmt.Fprintf(w, "Products in category %d: %d\n", opts.Category, len(products))
		writeProductLines(w, products)
		return nil
	}

	products, err := eng.TopExpensiveProducts(ctx, opts.Top)
	if err != nil {
		return queryFailure("products query failed", err)
	}
	if opts.Format == "json" {
		return writeJSON(cmd, products)
	}
	fmt.Fprintf(w, "Top %d products by price:\n", opts.Top)
	writeProductLines(w, products)
	return nil
}

// writeProductLines renders one text line per product.
func writeProductLines(w io.Writer, products []model.Product) {
	for _, p := range products {
		price := "(no price)"
		if p.Price != nil {
			price = p.Price.StringFixed(2)
		}
		fmt.Fprintf(w, "  [%d] %s %s\n", p.ID, p.Name, price)
	}
}
