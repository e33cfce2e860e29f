package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOrdersWithProductsInCategory: orders 100, 101, and 103 contain
// Kitchen products; order 100's Laptop line is filtered out of the
// projection, and order 102 (Electronics only) is excluded entirely.
func TestOrdersWithProductsInCategory(t *testing.T) {
	e := newFixtureEngine()

	rows, err := e.OrdersWithProductsInCategory(context.Background(), "Kitchen")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	byOrder := make(map[int]CategoryOrder)
	for _, r := range rows {
		byOrder[r.OrderID] = r
	}

	first, ok := byOrder[100]
	require.True(t, ok)
	assert.Equal(t, "Ana Li", first.CustomerName)
	require.Len(t, first.Items, 1, "the Laptop line is not a Kitchen item")
	assert.Equal(t, "Mug", first.Items[0].ProductName)
	assert.Equal(t, 2, first.Items[0].Quantity)
	assert.True(t, first.Items[0].UnitPrice.Equal(decimalFromString(t, "10.00")))

	second, ok := byOrder[101]
	require.True(t, ok)
	require.Len(t, second.Items, 1)
	assert.Equal(t, "Kettle", second.Items[0].ProductName)

	third, ok := byOrder[103]
	require.True(t, ok)
	assert.Equal(t, "Bo Chen", third.CustomerName)

	_, excluded := byOrder[102]
	assert.False(t, excluded, "order 102 holds no Kitchen products")
}

// TestOrdersWithProductsInCategory_NoForeignItems: no projected item may
// belong to a product outside the requested category, and no order may
// appear with zero qualifying items.
func TestOrdersWithProductsInCategory_NoForeignItems(t *testing.T) {
	e := newFixtureEngine()

	rows, err := e.OrdersWithProductsInCategory(context.Background(), "Electronics")
	require.NoError(t, err)
	require.NotEmpty(t, rows)

	for _, r := range rows {
		require.NotEmpty(t, r.Items, "order %d projected with zero qualifying items", r.OrderID)
		for _, it := range r.Items {
			assert.Contains(t, []string{"Laptop", "Phone"}, it.ProductName,
				"order %d leaked a non-Electronics item", r.OrderID)
		}
	}
}

func TestOrdersWithProductsInCategory_UnknownName(t *testing.T) {
	e := newFixtureEngine()

	rows, err := e.OrdersWithProductsInCategory(context.Background(), "Garden")
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestOrdersWithProductsInCategory_ExactMatch(t *testing.T) {
	e := newFixtureEngine()

	rows, err := e.OrdersWithProductsInCategory(context.Background(), "kitchen")
	require.NoError(t, err)
	assert.Empty(t, rows, "category name match is case-sensitive")
}
