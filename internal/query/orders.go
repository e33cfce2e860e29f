package query

import (
	"context"

	"github.com/dkarlsen/webstore/internal/model"
)

// CustomerOrders returns all orders for one customer with Items and each
// item's Product resolved. An unknown customer id yields an empty result.
func (e *Engine) CustomerOrders(ctx context.Context, customerID int) ([]model.Order, error) {
	orders, err := e.src.OrdersByCustomer(ctx, customerID)
	if err != nil {
		return nil, opError(OpCustomerOrders, err)
	}
	return e.resolveOrders(ctx, OpCustomerOrders, orders, false)
}

// OrdersByStatus returns all orders whose status equals the input exactly
// (case-sensitive), with Customer and Items resolved. Orders without a
// status never match.
func (e *Engine) OrdersByStatus(ctx context.Context, status string) ([]model.Order, error) {
	orders, err := e.src.Orders(ctx)
	if err != nil {
		return nil, opError(OpOrdersByStatus, err)
	}

	matched := filter(orders, func(o model.Order) bool {
		return o.Status != nil && *o.Status == status
	})

	return e.resolveOrders(ctx, OpOrdersByStatus, matched, true)
}

// DiscountedOrders returns all orders containing at least one item with a
// discount strictly greater than zero, with Customer and Items resolved so
// callers can see which products were discounted.
func (e *Engine) DiscountedOrders(ctx context.Context) ([]model.Order, error) {
	orders, err := e.src.Orders(ctx)
	if err != nil {
		return nil, opError(OpDiscountedOrders, err)
	}

	resolved, err := e.resolveOrders(ctx, OpDiscountedOrders, orders, true)
	if err != nil {
		return nil, err
	}

	return filter(resolved, func(o model.Order) bool {
		for _, it := range o.Items {
			if it.Discounted() {
				return true
			}
		}
		return false
	}), nil
}
