package query

import (
	"context"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/dkarlsen/webstore/internal/model"
)

// StoreStock is the per-store stock projection.
type StoreStock struct {
	StoreName     string `json:"store_name"`
	TotalQuantity int    `json:"total_quantity"`
}

// CustomerTotal is the per-customer order value projection.
type CustomerTotal struct {
	CustomerID   int             `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	Total        decimal.Decimal `json:"total"`
}

// StockByStore sums quantity-in-stock per store, grouped by store name and
// sorted by name for stable output.
//
// The group key is the store's display name, not its id: two stores sharing
// a name merge into one group. That matches the upstream report definition
// and is kept deliberately; do not "fix" it to group by id without a
// dataset owner signing off.
func (e *Engine) StockByStore(ctx context.Context) ([]StoreStock, error) {
	stocks, err := e.src.Stocks(ctx)
	if err != nil {
		return nil, opError(OpStockByStore, err)
	}

	stores, err := e.src.Stores(ctx)
	if err != nil {
		return nil, opError(OpStockByStore, err)
	}
	storesByID := indexBy(stores, func(s model.Store) int { return s.ID })

	totals := make(map[string]int)
	for _, st := range stocks {
		store, ok := storesByID[st.StoreID]
		if !ok {
			// Stock row pointing at no store; skip like an inner join would.
			continue
		}
		totals[store.Name] += st.QuantityInStock
	}

	out := make([]StoreStock, 0, len(totals))
	for name, qty := range totals {
		out = append(out, StoreStock{StoreName: name, TotalQuantity: qty})
	}
	return sortBy(out, func(a, b StoreStock) bool { return a.StoreName < b.StoreName }), nil
}

// CustomerOrderTotals sums the gross line total (quantity times unit price,
// discount not subtracted) of every item in every order, per customer.
// Customers with no orders are omitted. Output is sorted by total
// descending; ties break on collated customer name, then id.
func (e *Engine) CustomerOrderTotals(ctx context.Context) ([]CustomerTotal, error) {
	orders, err := e.src.Orders(ctx)
	if err != nil {
		return nil, opError(OpCustomerTotals, err)
	}

	items, err := e.src.OrderItems(ctx)
	if err != nil {
		return nil, opError(OpCustomerTotals, err)
	}
	itemsByOrder := groupBy(items, func(it model.OrderItem) int { return it.OrderID })

	customers, err := e.src.Customers(ctx)
	if err != nil {
		return nil, opError(OpCustomerTotals, err)
	}
	customersByID := indexBy(customers, func(c model.Customer) int { return c.ID })

	totals := make(map[int]decimal.Decimal)
	for _, o := range orders {
		sum := totals[o.CustomerID]
		for _, it := range itemsByOrder[o.ID] {
			sum = sum.Add(it.LineTotal())
		}
		totals[o.CustomerID] = sum
	}

	out := make([]CustomerTotal, 0, len(totals))
	for customerID, total := range totals {
		c, ok := customersByID[customerID]
		if !ok {
			// Order pointing at no customer; integrity is the storage layer's problem.
			continue
		}
		out = append(out, CustomerTotal{
			CustomerID:   customerID,
			CustomerName: c.FullName(),
			Total:        total,
		})
	}

	// Collator is not safe for shared use, so build one per call.
	coll := collate.New(language.Und)
	return sortBy(out, func(a, b CustomerTotal) bool {
		cmp := a.Total.Cmp(b.Total)
		if cmp != 0 {
			return cmp > 0
		}
		if byName := coll.CompareString(a.CustomerName, b.CustomerName); byName != 0 {
			return byName < 0
		}
		return a.CustomerID < b.CustomerID
	}), nil
}
