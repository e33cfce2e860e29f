package query

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/dkarlsen/webstore/internal/model"
)

// CategoryOrderItem is one qualifying line within a CategoryOrder.
type CategoryOrderItem struct {
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CategoryOrder is the per-order projection for
// OrdersWithProductsInCategory.
type CategoryOrder struct {
	OrderID      int                 `json:"order_id"`
	CustomerName string              `json:"customer_name"`
	Items        []CategoryOrderItem `json:"items"`
}

// OrdersWithProductsInCategory returns, for each order containing at least
// one product in the named category, the order id, the customer's display
// name, and only the items whose product belongs to that category.
//
// The per-order item list is the filtered subset, not the full item list;
// orders with zero qualifying items are excluded entirely. The category
// name match is exact and case-sensitive; an unknown name yields an empty
// result.
func (e *Engine) OrdersWithProductsInCategory(ctx context.Context, categoryName string) ([]CategoryOrder, error) {
	categories, err := e.src.Categories(ctx)
	if err != nil {
		return nil, opError(OpOrdersInCategory, err)
	}

	matchingCategories := make(map[int]bool)
	for _, c := range categories {
		if c.Name == categoryName {
			matchingCategories[c.ID] = true
		}
	}
	if len(matchingCategories) == 0 {
		return []CategoryOrder{}, nil
	}

	links, err := e.src.ProductCategories(ctx)
	if err != nil {
		return nil, opError(OpOrdersInCategory, err)
	}
	inCategory := make(map[int]bool)
	for _, link := range links {
		if matchingCategories[link.CategoryID] {
			inCategory[link.ProductID] = true
		}
	}

	orders, err := e.src.Orders(ctx)
	if err != nil {
		return nil, opError(OpOrdersInCategory, err)
	}

	items, err := e.src.OrderItems(ctx)
	if err != nil {
		return nil, opError(OpOrdersInCategory, err)
	}
	itemsByOrder := groupBy(items, func(it model.OrderItem) int { return it.OrderID })

	products, err := e.src.Products(ctx)
	if err != nil {
		return nil, opError(OpOrdersInCategory, err)
	}
	productsByID := indexBy(products, func(p model.Product) int { return p.ID })

	customers, err := e.src.Customers(ctx)
	if err != nil {
		return nil, opError(OpOrdersInCategory, err)
	}
	customersByID := indexBy(customers, func(c model.Customer) int { return c.ID })

	out := make([]CategoryOrder, 0)
	for _, o := range orders {
		qualifying := filter(itemsByOrder[o.ID], func(it model.OrderItem) bool {
			return inCategory[it.ProductID]
		})
		if len(qualifying) == 0 {
			continue
		}

		projected := make([]CategoryOrderItem, 0, len(qualifying))
		for _, it := range qualifying {
			p, ok := productsByID[it.ProductID]
			if !ok {
				continue
			}
			price := decimal.Zero
			if it.UnitPrice != nil {
				price = *it.UnitPrice
			}
			projected = append(projected, CategoryOrderItem{
				ProductName: p.Name,
				Quantity:    it.Quantity,
				UnitPrice:   price,
			})
		}
		if len(projected) == 0 {
			continue
		}

		var customerName string
		if c, ok := customersByID[o.CustomerID]; ok {
			customerName = c.FullName()
		}

		out = append(out, CategoryOrder{
			OrderID:      o.ID,
			CustomerName: customerName,
			Items:        projected,
		})
	}
	return out, nil
}
