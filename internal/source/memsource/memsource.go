// Package memsource provides an in-memory source.Source backed by id and
// foreign-key indexes built once from a source.Dataset.
//
// The dataset is copied on construction and never mutated afterwards, so a
// Mem serves every call from the same snapshot and is safe for concurrent
// use. All accessors return fresh slices; callers may attach resolved
// relations to the returned values without affecting the snapshot.
package memsource

import (
	"context"

	"github.com/dkarlsen/webstore/internal/model"
	"github.com/dkarlsen/webstore/internal/source"
)

// Mem is an immutable in-memory data source.
type Mem struct {
	data source.Dataset

	customersByID  map[int]model.Customer
	productsByID   map[int]model.Product
	categoriesByID map[int]model.Category
	storesByID     map[int]model.Store
	carriersByID   map[int]model.Carrier

	ordersByCustomer map[int][]model.Order
	itemsByOrder     map[int][]model.OrderItem
	linksByCategory  map[int][]model.ProductCategory
	staffByStore     map[int][]model.Staff
	stocksByStore    map[int][]model.Stock
}

var _ source.Source = (*Mem)(nil)

// New builds a Mem from the given dataset.
func New(data source.Dataset) *Mem {
	m := &Mem{
		data:             data,
		customersByID:    make(map[int]model.Customer, len(data.Customers)),
		productsByID:     make(map[int]model.Product, len(data.Products)),
		categoriesByID:   make(map[int]model.Category, len(data.Categories)),
		storesByID:       make(map[int]model.Store, len(data.Stores)),
		carriersByID:     make(map[int]model.Carrier, len(data.Carriers)),
		ordersByCustomer: make(map[int][]model.Order),
		itemsByOrder:     make(map[int][]model.OrderItem),
		linksByCategory:  make(map[int][]model.ProductCategory),
		staffByStore:     make(map[int][]model.Staff),
		stocksByStore:    make(map[int][]model.Stock),
	}

	for _, c := range data.Customers {
		m.customersByID[c.ID] = c
	}
	for _, p := range data.Products {
		m.productsByID[p.ID] = p
	}
	for _, c := range data.Categories {
		m.categoriesByID[c.ID] = c
	}
	for _, s := range data.Stores {
		m.storesByID[s.ID] = s
	}
	for _, c := range data.Carriers {
		m.carriersByID[c.ID] = c
	}

	for _, o := range data.Orders {
		m.ordersByCustomer[o.CustomerID] = append(m.ordersByCustomer[o.CustomerID], o)
	}
	for _, it := range data.OrderItems {
		m.itemsByOrder[it.OrderID] = append(m.itemsByOrder[it.OrderID], it)
	}
	for _, pc := range data.ProductCategories {
		m.linksByCategory[pc.CategoryID] = append(m.linksByCategory[pc.CategoryID], pc)
	}
	for _, st := range data.Staff {
		m.staffByStore[st.StoreID] = append(m.staffByStore[st.StoreID], st)
	}
	for _, s := range data.Stocks {
		m.stocksByStore[s.StoreID] = append(m.stocksByStore[s.StoreID], s)
	}

	return m
}

func (m *Mem) Customers(ctx context.Context) ([]model.Customer, error) {
	return copySlice(m.data.Customers), nil
}

func (m *Mem) Customer(ctx context.Context, id int) (*model.Customer, error) {
	return lookup(m.customersByID, id), nil
}

func (m *Mem) Orders(ctx context.Context) ([]model.Order, error) {
	return copySlice(m.data.Orders), nil
}

func (m *Mem) OrdersByCustomer(ctx context.Context, customerID int) ([]model.Order, error) {
	return copySlice(m.ordersByCustomer[customerID]), nil
}

func (m *Mem) OrderItems(ctx context.Context) ([]model.OrderItem, error) {
	return copySlice(m.data.OrderItems), nil
}

func (m *Mem) OrderItemsByOrder(ctx context.Context, orderID int) ([]model.OrderItem, error) {
	return copySlice(m.itemsByOrder[orderID]), nil
}

func (m *Mem) Products(ctx context.Context) ([]model.Product, error) {
	return copySlice(m.data.Products), nil
}

func (m *Mem) Product(ctx context.Context, id int) (*model.Product, error) {
	return lookup(m.productsByID, id), nil
}

func (m *Mem) Categories(ctx context.Context) ([]model.Category, error) {
	return copySlice(m.data.Categories), nil
}

func (m *Mem) Category(ctx context.Context, id int) (*model.Category, error) {
	return lookup(m.categoriesByID, id), nil
}

func (m *Mem) ProductCategories(ctx context.Context) ([]model.ProductCategory, error) {
	return copySlice(m.data.ProductCategories), nil
}

func (m *Mem) ProductCategoriesByCategory(ctx context.Context, categoryID int) ([]model.ProductCategory, error) {
	return copySlice(m.linksByCategory[categoryID]), nil
}

func (m *Mem) Stores(ctx context.Context) ([]model.Store, error) {
	return copySlice(m.data.Stores), nil
}

func (m *Mem) Store(ctx context.Context, id int) (*model.Store, error) {
	return lookup(m.storesByID, id), nil
}

func (m *Mem) Staff(ctx context.Context) ([]model.Staff, error) {
	return copySlice(m.data.Staff), nil
}

func (m *Mem) StaffByStore(ctx context.Context, storeID int) ([]model.Staff, error) {
	return copySlice(m.staffByStore[storeID]), nil
}

func (m *Mem) Stocks(ctx context.Context) ([]model.Stock, error) {
	return copySlice(m.data.Stocks), nil
}

func (m *Mem) StocksByStore(ctx context.Context, storeID int) ([]model.Stock, error) {
	return copySlice(m.stocksByStore[storeID]), nil
}

func (m *Mem) Carriers(ctx context.Context) ([]model.Carrier, error) {
	return copySlice(m.data.Carriers), nil
}

func (m *Mem) Carrier(ctx context.Context, id int) (*model.Carrier, error) {
	return lookup(m.carriersByID, id), nil
}

// copySlice returns a fresh, never-nil shallow copy of xs.
func copySlice[T any](xs []T) []T {
	out := make([]T, len(xs))
	copy(out, xs)
	return out
}

// lookup resolves an id to a copy of its row, or nil if absent.
func lookup[T any](index map[int]T, id int) *T {
	v, ok := index[id]
	if !ok {
		return nil
	}
	return &v
}
