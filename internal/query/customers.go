package query

import (
	"context"
	"time"

	"github.com/dkarlsen/webstore/internal/model"
)

// Customers returns every customer with their orders resolved, in source
// order. Callers can inspect order counts without a second query.
func (e *Engine) Customers(ctx context.Context) ([]model.Customer, error) {
	customers, err := e.src.Customers(ctx)
	if err != nil {
		return nil, opError(OpListCustomers, err)
	}

	orders, err := e.src.Orders(ctx)
	if err != nil {
		return nil, opError(OpListCustomers, err)
	}
	byCustomer := groupBy(orders, func(o model.Order) int { return o.CustomerID })

	out := make([]model.Customer, 0, len(customers))
	for _, c := range customers {
		c.Orders = byCustomer[c.ID]
		out = append(out, c)
	}
	return out, nil
}

// CustomersWithOrdersBetween returns the distinct set of customers who
// placed at least one order dated within [start, end] inclusive.
//
// A customer with several qualifying orders appears once. Orders without a
// date never qualify. A reversed range yields an empty result.
func (e *Engine) CustomersWithOrdersBetween(ctx context.Context, start, end time.Time) ([]model.Customer, error) {
	if end.Before(start) {
		return []model.Customer{}, nil
	}

	orders, err := e.src.Orders(ctx)
	if err != nil {
		return nil, opError(OpCustomersInPeriod, err)
	}

	qualified := make(map[int]bool)
	for _, o := range orders {
		if o.OrderDate == nil {
			continue
		}
		d := *o.OrderDate
		if !d.Before(start) && !d.After(end) {
			qualified[o.CustomerID] = true
		}
	}

	customers, err := e.src.Customers(ctx)
	if err != nil {
		return nil, opError(OpCustomersInPeriod, err)
	}

	return filter(customers, func(c model.Customer) bool { return qualified[c.ID] }), nil
}
