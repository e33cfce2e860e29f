package query

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dkarlsen/webstore/internal/model"
	"github.com/dkarlsen/webstore/internal/source"
	"github.com/dkarlsen/webstore/internal/source/memsource"
)

// dec parses a decimal literal or panics; fixtures only.
func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func decimalFromString(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString(s)
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func datePtr(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

// fixtureDataset is the shared webstore snapshot used across operation
// tests:
//
//   - Ana Li owns orders 100 (Pending: Laptop, 2 Mugs with a discount) and
//     101 (Shipped: Kettle)
//   - Bo Chen owns orders 102 (Pending, dated 2023: Phone) and 103
//     (undated, no status: 3 Mugs)
//   - Cara Diaz has no orders
//   - stores 1 and 3 share the name "North" (deliberate duplicate)
func fixtureDataset() source.Dataset {
	return source.Dataset{
		Customers: []model.Customer{
			{ID: 1, FirstName: "Ana", LastName: "Li", Email: "ana@example.com"},
			{ID: 2, FirstName: "Bo", LastName: "Chen", Email: "bo@example.com"},
			{ID: 3, FirstName: "Cara", LastName: "Diaz", Email: "cara@example.com"},
		},
		Carriers: []model.Carrier{
			{ID: 1, Name: "FastShip"},
		},
		Products: []model.Product{
			{ID: 1, Name: "Laptop", Price: dec("1200.00")},
			{ID: 2, Name: "Phone", Price: dec("800.00")},
			{ID: 3, Name: "Mug", Price: dec("10.00")},
			{ID: 4, Name: "Kettle", Price: dec("35.50")},
			{ID: 5, Name: "Sticker"}, // no price
		},
		Categories: []model.Category{
			{ID: 1, Name: "Electronics"},
			{ID: 2, Name: "Kitchen"},
			{ID: 3, Name: "Appliances", ParentID: intPtr(2)},
		},
		ProductCategories: []model.ProductCategory{
			{CategoryID: 1, ProductID: 1},
			{CategoryID: 1, ProductID: 2},
			{CategoryID: 2, ProductID: 3},
			{CategoryID: 2, ProductID: 4},
		},
		Orders: []model.Order{
			{ID: 100, CustomerID: 1, OrderDate: datePtr("2024-03-05"), Status: strPtr("Pending"), CarrierID: intPtr(1)},
			{ID: 101, CustomerID: 1, OrderDate: datePtr("2024-04-10"), Status: strPtr("Shipped")},
			{ID: 102, CustomerID: 2, OrderDate: datePtr("2023-12-01"), Status: strPtr("Pending")},
			{ID: 103, CustomerID: 2},
		},
		OrderItems: []model.OrderItem{
			{OrderID: 100, ProductID: 1, Quantity: 1, UnitPrice: dec("1200.00")},
			{OrderID: 100, ProductID: 3, Quantity: 2, UnitPrice: dec("10.00"), Discount: dec("2.50")},
			{OrderID: 101, ProductID: 4, Quantity: 1, UnitPrice: dec("35.50")},
			{OrderID: 102, ProductID: 2, Quantity: 1, UnitPrice: dec("800.00")},
			{OrderID: 103, ProductID: 3, Quantity: 3, UnitPrice: dec("10.00")},
		},
		Stores: []model.Store{
			{ID: 1, Name: "North"},
			{ID: 2, Name: "South"},
			{ID: 3, Name: "North"},
		},
		Stocks: []model.Stock{
			{StoreID: 1, ProductID: 1, QuantityInStock: 10},
			{StoreID: 1, ProductID: 3, QuantityInStock: 5},
			{StoreID: 2, ProductID: 3, QuantityInStock: 7},
			{StoreID: 3, ProductID: 4, QuantityInStock: 4},
		},
		Staff: []model.Staff{
			{ID: 1, FirstName: "Sam", LastName: "Royce", Email: "sam@example.com", StoreID: 1},
		},
	}
}

// newFixtureEngine builds an Engine over the shared fixture dataset.
func newFixtureEngine() *Engine {
	return newEngineWith(fixtureDataset())
}

// newEngineWith builds an Engine over an arbitrary fabricated dataset.
func newEngineWith(data source.Dataset) *Engine {
	return New(memsource.New(data))
}

// failSource is a Source whose every call fails with the given error.
// Used to verify that collaborator failures surface as OpErrors.
type failSource struct {
	err error
}

var _ source.Source = (*failSource)(nil)

func (f *failSource) Customers(ctx context.Context) ([]model.Customer, error) {
	return nil, f.err
}

func (f *failSource) Customer(ctx context.Context, id int) (*model.Customer, error) {
	return nil, f.err
}

func (f *failSource) Orders(ctx context.Context) ([]model.Order, error) {
	return nil, f.err
}

func (f *failSource) OrdersByCustomer(ctx context.Context, customerID int) ([]model.Order, error) {
	return nil, f.err
}

func (f *failSource) OrderItems(ctx context.Context) ([]model.OrderItem, error) {
	return nil, f.err
}

func (f *failSource) OrderItemsByOrder(ctx context.Context, orderID int) ([]model.OrderItem, error) {
	return nil, f.err
}

func (f *failSource) Products(ctx context.Context) ([]model.Product, error) {
	return nil, f.err
}

func (f *failSource) Product(ctx context.Context, id int) (*model.Product, error) {
	return nil, f.err
}

func (f *failSource) Categories(ctx context.Context) ([]model.Category, error) {
	return nil, f.err
}

func (f *failSource) Category(ctx context.Context, id int) (*model.Category, error) {
	return nil, f.err
}

func (f *failSource) ProductCategories(ctx context.Context) ([]model.ProductCategory, error) {
	return nil, f.err
}

func (f *failSource) ProductCategoriesByCategory(ctx context.Context, categoryID int) ([]model.ProductCategory, error) {
	return nil, f.err
}

func (f *failSource) Stores(ctx context.Context) ([]model.Store, error) {
	return nil, f.err
}

func (f *failSource) Store(ctx context.Context, id int) (*model.Store, error) {
	return nil, f.err
}

func (f *failSource) Staff(ctx context.Context) ([]model.Staff, error) {
	return nil, f.err
}

func (f *failSource) StaffByStore(ctx context.Context, storeID int) ([]model.Staff, error) {
	return nil, f.err
}

func (f *failSource) Stocks(ctx context.Context) ([]model.Stock, error) {
	return nil, f.err
}

func (f *failSource) StocksByStore(ctx context.Context, storeID int) ([]model.Stock, error) {
	return nil, f.err
}

func (f *failSource) Carriers(ctx context.Context) ([]model.Carrier, error) {
	return nil, f.err
}

func (f *failSource) Carrier(ctx context.Context, id int) (*model.Carrier, error) {
	return nil, f.err
}
