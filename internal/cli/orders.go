package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/dkarlsen/webstore/internal/model"
)

// OrdersOptions holds flags for the orders command.
type OrdersOptions struct {
	*RootOptions
	Customer   int
	Status     string
	Discounted bool
}

// NewOrdersCommand creates the orders command.
func NewOrdersCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &OrdersOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List orders by customer, status, or discount",
		Long: `List orders selected by exactly one of three filters.

--customer lists one customer's orders, --status lists orders in an
exact status, --discounted lists orders containing at least one item
with a positive discount.

Examples:
  webstore orders --db ./webstore.db --customer 42
  webstore orders --db ./webstore.db --status Shipped
  webstore orders --data ./webstore.yaml --discounted`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrders(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Customer, "customer", 0, "customer id to list orders for")
	cmd.Flags().StringVar(&opts.Status, "status", "", "order status to filter on (exact match)")
	cmd.Flags().BoolVar(&opts.Discounted, "discounted", false, "list orders with discounted items")

	return cmd
}

func runOrders(opts *OrdersOptions, cmd *cobra.Command) error {
	filters := 0
	if cmd.Flags().Changed("customer") {
		filters++
	}
	if opts.Status != "" {
		filters++
	}
	if opts.Discounted {
		filters++
	}
	if filters != 1 {
		return NewExitError(ExitCommandError, "exactly one of --customer, --status, or --discounted is required")
	}

	eng, closeSource, err := openEngine(opts.RootOptions)
	if err != nil {
		return err
	}
	defer closeSource()

	ctx := context.Background()
	w := cmd.OutOrStdout()

	switch {
	case cmd.Flags().Changed("customer"):
		orders, err := eng.CustomerOrders(ctx, opts.Customer)
		if err != nil {
			return queryFailure("orders query failed", err)
		}
		if opts.Format == "json" {
			return writeJSON(cmd, orders)
		}
		fmt.Fprintf(w, "Orders for customer %d: %d\n", opts.Customer, len(orders))
		writeOrderLines(w, orders)

	case opts.Status != "":
		orders, err := eng.OrdersByStatus(ctx, opts.Status)
		if err != nil {
			return queryFailure("orders query failed", err)
		}
		if opts.Format == "json" {
			return writeJSON(cmd, orders)
		}
		fmt.Fprintf(w, "Orders with status %q: %d\n", opts.Status, len(orders))
		writeOrderLines(w, orders)

	default:
		orders, err := eng.DiscountedOrders(ctx)
		if err != nil {
			return queryFailure("orders query failed", err)
		}
		if opts.Format == "json" {
			return writeJSON(cmd, orders)
		}
		fmt.Fprintf(w, "Discounted orders: %d\n", len(orders))
		writeOrderLines(w, orders)
	}
	return nil
}

// writeOrderLines renders one text line per order.
func writeOrderLines(w io.Writer, orders []model.Order) {
	for _, o := range orders {
		date := "(no date)"
		if o.OrderDate != nil {
			date = o.OrderDate.Format("2006-01-02")
		}
		status := "(none)"
		if o.Status != nil {
			status = *o.Status
		}

		total := decimal.Zero
		for _, it := range o.Items {
			total = total.Add(it.LineTotal())
		}

		fmt.Fprintf(w, "  [%d] %s %s items=%d total=%s", o.ID, date, status, len(o.Items), total.StringFixed(2))
		if o.Customer != nil {
			fmt.Fprintf(w, " customer=%s", o.Customer.FullName())
		}
		if o.Carrier != nil {
			fmt.Fprintf(w, " carrier=%s", o.Carrier.Name)
		}
		fmt.Fprintln(w)
	}
}
