// Package source defines the read-only boundary between the query engine
// and whatever holds the webstore dataset.
//
// The engine composes three access shapes per entity: fetch all rows, fetch
// the rows matching a foreign-key value, and resolve a single row by id.
// Resolving an absent id yields nil, not an error; an error always means
// the collaborator itself failed. Implementations must serve each call from
// a consistent snapshot of the dataset, and the engine never writes through
// this interface.
package source

import (
	"context"

	"github.com/dkarlsen/webstore/internal/model"
)

// Source is the queryable data source the engine reads from.
type Source interface {
	Customers(ctx context.Context) ([]model.Customer, error)
	Customer(ctx context.Context, id int) (*model.Customer, error)

	Orders(ctx context.Context) ([]model.Order, error)
	OrdersByCustomer(ctx context.Context, customerID int) ([]model.Order, error)

	OrderItems(ctx context.Context) ([]model.OrderItem, error)
	OrderItemsByOrder(ctx context.Context, orderID int) ([]model.OrderItem, error)

	Products(ctx context.Context) ([]model.Product, error)
	Product(ctx context.Context, id int) (*model.Product, error)

	Categories(ctx context.Context) ([]model.Category, error)
	Category(ctx context.Context, id int) (*model.Category, error)

	ProductCategories(ctx context.Context) ([]model.ProductCategory, error)
	ProductCategoriesByCategory(ctx context.Context, categoryID int) ([]model.ProductCategory, error)

	Stores(ctx context.Context) ([]model.Store, error)
	Store(ctx context.Context, id int) (*model.Store, error)

	Staff(ctx context.Context) ([]model.Staff, error)
	StaffByStore(ctx context.Context, storeID int) ([]model.Staff, error)

	Stocks(ctx context.Context) ([]model.Stock, error)
	StocksByStore(ctx context.Context, storeID int) ([]model.Stock, error)

	Carriers(ctx context.Context) ([]model.Carrier, error)
	Carrier(ctx context.Context, id int) (*model.Carrier, error)
}

// Dataset holds one slice per entity type. It is the interchange value
// between fixture loaders and Source implementations; referential
// integrity between the slices is the producer's responsibility.
type Dataset struct {
	Customers         []model.Customer
	Orders            []model.Order
	OrderItems        []model.OrderItem
	Products          []model.Product
	Categories        []model.Category
	ProductCategories []model.ProductCategory
	Stores            []model.Store
	Staff             []model.Staff
	Stocks            []model.Stock
	Carriers          []model.Carrier
}
