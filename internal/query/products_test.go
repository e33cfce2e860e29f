package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkarlsen/webstore/internal/model"
)

func productNames(products []model.Product) []string {
	names := make([]string, len(products))
	for i, p := range products {
		names[i] = p.Name
	}
	return names
}

func TestProductsByCategory(t *testing.T) {
	e := newFixtureEngine()

	products, err := e.ProductsByCategory(context.Background(), 2)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Mug", "Kettle"}, productNames(products))
}

func TestProductsByCategory_UnknownCategory(t *testing.T) {
	e := newFixtureEngine()

	products, err := e.ProductsByCategory(context.Background(), 999)
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestProductsByCategory_EmptyCategory(t *testing.T) {
	// Category 3 exists but links to no products.
	e := newFixtureEngine()

	products, err := e.ProductsByCategory(context.Background(), 3)
	require.NoError(t, err)
	assert.Empty(t, products)
}

// TestTopExpensiveProducts pins the full descending ranking: a product
// without a price ranks as zero and lands last.
func TestTopExpensiveProducts(t *testing.T) {
	e := newFixtureEngine()

	products, err := e.TopExpensiveProducts(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"Laptop", "Phone", "Kettle"}, productNames(products))
}

func TestTopExpensiveProducts_ZeroN(t *testing.T) {
	e := newFixtureEngine()

	products, err := e.TopExpensiveProducts(context.Background(), 0)
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestTopExpensiveProducts_NegativeN(t *testing.T) {
	e := newFixtureEngine()

	products, err := e.TopExpensiveProducts(context.Background(), -4)
	require.NoError(t, err)
	assert.Empty(t, products)
}

// TestTopExpensiveProducts_NPastCatalogue: every product exactly once,
// still sorted descending.
func TestTopExpensiveProducts_NPastCatalogue(t *testing.T) {
	e := newFixtureEngine()

	products, err := e.TopExpensiveProducts(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, []string{"Laptop", "Phone", "Kettle", "Mug", "Sticker"}, productNames(products))
}

// TestTopExpensiveProducts_DeterministicTies: equal prices break on
// product id, so repeated runs agree.
func TestTopExpensiveProducts_DeterministicTies(t *testing.T) {
	data := fixtureDataset()
	data.Products = []model.Product{
		{ID: 9, Name: "B-side", Price: dec("20.00")},
		{ID: 7, Name: "A-side", Price: dec("20.00")},
		{ID: 8, Name: "Mid", Price: dec("20.00")},
	}
	e := newEngineWith(data)

	first, err := e.TopExpensiveProducts(context.Background(), 3)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := e.TopExpensiveProducts(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, productNames(first), productNames(again))
	}
	assert.Equal(t, []string{"A-side", "Mid", "B-side"}, productNames(first), "ties order by product id")
}
