package sqlstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkarlsen/webstore/internal/model"
	"github.com/dkarlsen/webstore/internal/source"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func timePtr(t time.Time) *time.Time { return &t }

func seedDataset() source.Dataset {
	orderDate := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	return source.Dataset{
		Customers: []model.Customer{
			{ID: 1, FirstName: "Ana", LastName: "Li", Email: "ana@example.com", Phone: strPtr("555-0101")},
			{ID: 2, FirstName: "Bo", LastName: "Chen", Email: "bo@example.com"},
		},
		Carriers: []model.Carrier{
			{ID: 1, Name: "FastShip", ContactURL: strPtr("https://fastship.example.com")},
		},
		Orders: []model.Order{
			{
				ID: 100, CustomerID: 1, OrderDate: timePtr(orderDate),
				Status: strPtr("Pending"), ShippingAddressID: 11, BillingAddressID: 11,
				CarrierID: intPtr(1), TrackingNumber: strPtr("FS-1001"),
			},
			{ID: 101, CustomerID: 2, ShippingAddressID: 12, BillingAddressID: 13},
		},
		Products: []model.Product{
			{ID: 1, Name: "Mug", Price: dec("10.00")},
			{ID: 2, Name: "Kettle", Description: strPtr("Stovetop kettle"), Price: dec("35.50")},
			{ID: 3, Name: "Sticker"},
		},
		OrderItems: []model.OrderItem{
			{OrderID: 100, ProductID: 1, Quantity: 2, UnitPrice: dec("10.00"), Discount: dec("1.50")},
			{OrderID: 101, ProductID: 2, Quantity: 1, UnitPrice: dec("35.50")},
		},
		Categories: []model.Category{
			{ID: 1, Name: "Kitchen"},
			{ID: 2, Name: "Appliances", ParentID: intPtr(1)},
		},
		ProductCategories: []model.ProductCategory{
			{CategoryID: 1, ProductID: 1},
			{CategoryID: 2, ProductID: 2},
		},
		Stores: []model.Store{
			{ID: 1, Name: "North", City: strPtr("Oslo")},
			{ID: 2, Name: "South"},
		},
		Staff: []model.Staff{
			{ID: 1, FirstName: "Sam", LastName: "Royce", Email: "sam@example.com", StoreID: 1},
		},
		Stocks: []model.Stock{
			{StoreID: 1, ProductID: 1, QuantityInStock: 10},
			{StoreID: 2, ProductID: 2, QuantityInStock: 7},
		},
	}
}

// openSeeded opens a fresh store in a temp dir and seeds the fixture.
func openSeeded(t *testing.T) *Store {
	t.Helper()

	st, err := Open(filepath.Join(t.TempDir(), "webstore.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	require.NoError(t, st.Seed(context.Background(), seedDataset()))
	return st
}

func TestOpen_AppliesPragmas(t *testing.T) {
	st, err := Open(filepath.Join(t.TempDir(), "webstore.db"))
	require.NoError(t, err)
	defer st.Close()

	assert.NoError(t, st.verifyPragma("journal_mode", "wal"))
	assert.NoError(t, st.verifyPragma("foreign_keys", "1"))
	assert.NoError(t, st.verifyPragma("busy_timeout", "5000"))
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "webstore.db")

	first, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := Open(path)
	require.NoError(t, err)
	assert.NoError(t, second.Close())
}

func TestSeed_Idempotent(t *testing.T) {
	st := openSeeded(t)
	ctx := context.Background()

	// Seeding the same dataset again must not duplicate rows.
	require.NoError(t, st.Seed(ctx, seedDataset()))

	customers, err := st.Customers(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 2)

	items, err := st.OrderItems(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestClose_NilSafe(t *testing.T) {
	var st Store
	assert.NoError(t, st.Close())
}
