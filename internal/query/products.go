package query

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/dkarlsen/webstore/internal/model"
)

// DefaultTopProducts is the product count TopExpensiveProducts callers use
// when no explicit limit is given.
const DefaultTopProducts = 5

// ProductsByCategory returns the products linked to one category through
// the category-product join. An unknown or empty category yields an empty
// result.
func (e *Engine) ProductsByCategory(ctx context.Context, categoryID int) ([]model.Product, error) {
	links, err := e.src.ProductCategoriesByCategory(ctx, categoryID)
	if err != nil {
		return nil, opError(OpProductsByCategory, err)
	}

	products := make([]model.Product, 0, len(links))
	for _, link := range links {
		p, err := e.src.Product(ctx, link.ProductID)
		if err != nil {
			return nil, opError(OpProductsByCategory, err)
		}
		if p == nil {
			// Dangling join row; integrity is the storage layer's problem.
			continue
		}
		products = append(products, *p)
	}
	return products, nil
}

// TopExpensiveProducts returns the n most expensive products, price
// descending. Ties break on product id ascending so the ranking is
// reproducible. A product without a price ranks as zero. n <= 0 yields an
// empty result; n past the catalogue size yields every product.
func (e *Engine) TopExpensiveProducts(ctx context.Context, n int) ([]model.Product, error) {
	products, err := e.src.Products(ctx)
	if err != nil {
		return nil, opError(OpTopProducts, err)
	}

	return topN(products, n, func(a, b model.Product) bool {
		cmp := productPrice(a).Cmp(productPrice(b))
		if cmp != 0 {
			return cmp > 0
		}
		return a.ID < b.ID
	}), nil
}

func productPrice(p model.Product) decimal.Decimal {
	if p.Price == nil {
		return decimal.Zero
	}
	return *p.Price
}
