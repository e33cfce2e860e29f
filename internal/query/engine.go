package query

import (
	"context"

	"github.com/dkarlsen/webstore/internal/model"
	"github.com/dkarlsen/webstore/internal/source"
)

// Engine runs the analytical operation catalogue against an injected data
// source. It holds no mutable state; construct one Engine and share it.
type Engine struct {
	src source.Source
}

// New creates an Engine reading from src.
func New(src source.Source) *Engine {
	return &Engine{src: src}
}

// resolveOrders attaches Items (with Product) to each order, and optionally
// the owning Customer and the shipping Carrier. Orders are value copies;
// attaching resolved relations never touches the underlying dataset.
func (e *Engine) resolveOrders(ctx context.Context, op string, orders []model.Order, withCustomer bool) ([]model.Order, error) {
	out := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		items, err := e.src.OrderItemsByOrder(ctx, o.ID)
		if err != nil {
			return nil, opError(op, err)
		}
		for i := range items {
			p, err := e.src.Product(ctx, items[i].ProductID)
			if err != nil {
				return nil, opError(op, err)
			}
			items[i].Product = p
		}
		o.Items = items

		if withCustomer {
			c, err := e.src.Customer(ctx, o.CustomerID)
			if err != nil {
				return nil, opError(op, err)
			}
			o.Customer = c
		}

		if o.CarrierID != nil {
			carrier, err := e.src.Carrier(ctx, *o.CarrierID)
			if err != nil {
				return nil, opError(op, err)
			}
			o.Carrier = carrier
		}

		out = append(out, o)
	}
	return out, nil
}
