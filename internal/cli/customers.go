package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// CustomersOptions holds flags for the customers command.
type CustomersOptions struct {
	*RootOptions
	From string
	To   string
}

// NewCustomersCommand creates the customers command.
func NewCustomersCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CustomersOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "customers",
		Short: "List customers, optionally filtered by order activity",
		Long: `List every customer together with their orders.

With --from and --to, lists only customers that placed at least one
order inside the inclusive date range instead.

Examples:
  webstore customers --db ./webstore.db
  webstore customers --data ./webstore.yaml --from 2024-01-01 --to 2024-12-31`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCustomers(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.From, "from", "", "start of order date range (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.To, "to", "", "end of order date range (YYYY-MM-DD)")

	return cmd
}

func runCustomers(opts *CustomersOptions, cmd *cobra.Command) error {
	if (opts.From == "") != (opts.To == "") {
		return NewExitError(ExitCommandError, "--from and --to must be given together")
	}

	eng, closeSource, err := openEngine(opts.RootOptions)
	if err != nil {
		return err
	}
	defer closeSource()

	ctx := context.Background()
	w := cmd.OutOrStdout()

	if opts.From != "" {
		start, err := parseDate(opts.From)
		if err != nil {
			return WrapExitError(ExitCommandError, "invalid --from date", err)
		}
		end, err := parseDate(opts.To)
		if err != nil {
			return WrapExitError(ExitCommandError, "invalid --to date", err)
		}

		customers, err := eng.CustomersWithOrdersBetween(ctx, start, end)
		if err != nil {
			return queryFailure("customers query failed", err)
		}

		if opts.Format == "json" {
			return writeJSON(cmd, customers)
		}
		fmt.Fprintf(w, "Customers with orders between %s and %s: %d\n", opts.From, opts.To, len(customers))
		for _, c := range customers {
			fmt.Fprintf(w, "  [%d] %s <%s>\n", c.ID, c.FullName(), c.Email)
		}
		return nil
	}

	customers, err := eng.Customers(ctx)
	if err != nil {
		return queryFailure("customers query failed", err)
	}

	if opts.Format == "json" {
		return writeJSON(cmd, customers)
	}
	fmt.Fprintf(w, "Customers: %d\n", len(customers))
	for _, c := range customers {
		fmt.Fprintf(w, "  [%d] %s <%s> (%d orders)\n", c.ID, c.FullName(), c.Email, len(c.Orders))
	}
	return nil
}

// parseDate parses a YYYY-MM-DD flag value as a UTC date.
func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
