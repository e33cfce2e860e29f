package query

import (
	"errors"
	"fmt"
)

// Operation names used in OpError. Callers match on these rather than on
// error message text.
const (
	OpListCustomers      = "list customers"
	OpCustomerOrders     = "customer orders"
	OpProductsByCategory = "products by category"
	OpOrdersByStatus     = "orders by status"
	OpStockByStore       = "stock by store"
	OpCustomersInPeriod  = "customers with orders in period"
	OpTopProducts        = "top expensive products"
	OpCustomerTotals     = "customer order totals"
	OpDiscountedOrders   = "discounted orders"
	OpOrdersInCategory   = "orders with products in category"
)

// OpError labels a collaborator failure with the operation that hit it.
//
// The engine does not retry and does not interpret the underlying cause;
// it only records which of the catalogue operations was running when the
// data source failed.
type OpError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *OpError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying data source error.
func (e *OpError) Unwrap() error {
	return e.Err
}

// IsOpError reports whether err is an OpError for the named operation.
// Uses errors.As to handle wrapped errors.
func IsOpError(err error, op string) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Op == op
	}
	return false
}

// opError wraps a data source failure for the named operation.
func opError(op string, err error) error {
	return &OpError{Op: op, Err: err}
}
