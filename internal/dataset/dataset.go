// Package dataset loads webstore datasets from YAML fixture files.
//
// A fixture holds one list per entity type under snake_case keys. Unknown
// fields are rejected so a typo in a fixture fails loudly instead of
// silently dropping a column. Monetary values are decimal strings
// ("12.50"), never YAML floats, to keep amounts exact end to end.
package dataset

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/dkarlsen/webstore/internal/model"
	"github.com/dkarlsen/webstore/internal/source"
)

type fileSchema struct {
	Customers         []customerRow        `yaml:"customers"`
	Orders            []orderRow           `yaml:"orders"`
	OrderItems        []orderItemRow       `yaml:"order_items"`
	Products          []productRow         `yaml:"products"`
	Categories        []categoryRow        `yaml:"categories"`
	ProductCategories []productCategoryRow `yaml:"product_categories"`
	Stores            []storeRow           `yaml:"stores"`
	Staff             []staffRow           `yaml:"staff"`
	Stocks            []stockRow           `yaml:"stocks"`
	Carriers          []carrierRow         `yaml:"carriers"`
}

type customerRow struct {
	ID        int        `yaml:"id"`
	FirstName string     `yaml:"first_name"`
	LastName  string     `yaml:"last_name"`
	Email     string     `yaml:"email"`
	Phone     *string    `yaml:"phone"`
	CreatedAt *time.Time `yaml:"created_at"`
	UpdatedAt *time.Time `yaml:"updated_at"`
}

type orderRow struct {
	ID                int        `yaml:"id"`
	CustomerID        int        `yaml:"customer_id"`
	OrderDate         *time.Time `yaml:"order_date"`
	Status            *string    `yaml:"status"`
	ShippingAddressID int        `yaml:"shipping_address_id"`
	BillingAddressID  int        `yaml:"billing_address_id"`
	CarrierID         *int       `yaml:"carrier_id"`
	TrackingNumber    *string    `yaml:"tracking_number"`
	ShippedDate       *time.Time `yaml:"shipped_date"`
	DeliveredDate     *time.Time `yaml:"delivered_date"`
}

type orderItemRow struct {
	OrderID   int     `yaml:"order_id"`
	ProductID int     `yaml:"product_id"`
	Quantity  int     `yaml:"quantity"`
	UnitPrice *string `yaml:"unit_price"`
	Discount  *string `yaml:"discount"`
}

type productRow struct {
	ID          int        `yaml:"id"`
	Name        string     `yaml:"name"`
	Description *string    `yaml:"description"`
	Price       *string    `yaml:"price"`
	CreatedAt   *time.Time `yaml:"created_at"`
	UpdatedAt   *time.Time `yaml:"updated_at"`
}

type categoryRow struct {
	ID       int    `yaml:"id"`
	Name     string `yaml:"name"`
	ParentID *int   `yaml:"parent_id"`
}

type productCategoryRow struct {
	CategoryID int `yaml:"category_id"`
	ProductID  int `yaml:"product_id"`
}

type storeRow struct {
	ID         int     `yaml:"id"`
	Name       string  `yaml:"name"`
	Phone      *string `yaml:"phone"`
	Email      *string `yaml:"email"`
	Street     *string `yaml:"street"`
	City       *string `yaml:"city"`
	PostalCode *string `yaml:"postal_code"`
	Country    *string `yaml:"country"`
}

type staffRow struct {
	ID        int     `yaml:"id"`
	FirstName string  `yaml:"first_name"`
	LastName  string  `yaml:"last_name"`
	Email     string  `yaml:"email"`
	Phone     *string `yaml:"phone"`
	StoreID   int     `yaml:"store_id"`
}

type stockRow struct {
	StoreID         int        `yaml:"store_id"`
	ProductID       int        `yaml:"product_id"`
	QuantityInStock int        `yaml:"quantity_in_stock"`
	UpdatedAt       *time.Time `yaml:"updated_at"`
}

type carrierRow struct {
	ID           int     `yaml:"id"`
	Name         string  `yaml:"name"`
	ContactURL   *string `yaml:"contact_url"`
	ContactPhone *string `yaml:"contact_phone"`
}

// Load reads and parses a YAML dataset fixture from path.
func Load(path string) (source.Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return source.Dataset{}, fmt.Errorf("read dataset: %w", err)
	}

	data, err := Parse(raw)
	if err != nil {
		return source.Dataset{}, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	return data, nil
}

// Parse decodes a YAML dataset fixture. Unknown fields are an error.
func Parse(raw []byte) (source.Dataset, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var file fileSchema
	if err := dec.Decode(&file); err != nil {
		return source.Dataset{}, fmt.Errorf("decode yaml: %w", err)
	}

	return convert(file)
}

func convert(file fileSchema) (source.Dataset, error) {
	var data source.Dataset

	for _, r := range file.Customers {
		data.Customers = append(data.Customers, model.Customer{
			ID: r.ID, FirstName: r.FirstName, LastName: r.LastName,
			Email: r.Email, Phone: r.Phone,
			CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt,
		})
	}

	for _, r := range file.Orders {
		data.Orders = append(data.Orders, model.Order{
			ID: r.ID, CustomerID: r.CustomerID,
			OrderDate: r.OrderDate, Status: r.Status,
			ShippingAddressID: r.ShippingAddressID,
			BillingAddressID:  r.BillingAddressID,
			CarrierID:         r.CarrierID,
			TrackingNumber:    r.TrackingNumber,
			ShippedDate:       r.ShippedDate,
			DeliveredDate:     r.DeliveredDate,
		})
	}

	for _, r := range file.OrderItems {
		price, err := parseMoney(fmt.Sprintf("order_items (%d, %d) unit_price", r.OrderID, r.ProductID), r.UnitPrice)
		if err != nil {
			return source.Dataset{}, err
		}
		discount, err := parseMoney(fmt.Sprintf("order_items (%d, %d) discount", r.OrderID, r.ProductID), r.Discount)
		if err != nil {
			return source.Dataset{}, err
		}
		data.OrderItems = append(data.OrderItems, model.OrderItem{
			OrderID: r.OrderID, ProductID: r.ProductID,
			Quantity: r.Quantity, UnitPrice: price, Discount: discount,
		})
	}

	for _, r := range file.Products {
		price, err := parseMoney(fmt.Sprintf("products %d price", r.ID), r.Price)
		if err != nil {
			return source.Dataset{}, err
		}
		data.Products = append(data.Products, model.Product{
			ID: r.ID, Name: r.Name, Description: r.Description,
			Price: price, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt,
		})
	}

	for _, r := range file.Categories {
		data.Categories = append(data.Categories, model.Category{
			ID: r.ID, Name: r.Name, ParentID: r.ParentID,
		})
	}

	for _, r := range file.ProductCategories {
		data.ProductCategories = append(data.ProductCategories, model.ProductCategory{
			CategoryID: r.CategoryID, ProductID: r.ProductID,
		})
	}

	for _, r := range file.Stores {
		data.Stores = append(data.Stores, model.Store{
			ID: r.ID, Name: r.Name, Phone: r.Phone, Email: r.Email,
			Street: r.Street, City: r.City,
			PostalCode: r.PostalCode, Country: r.Country,
		})
	}

	for _, r := range file.Staff {
		data.Staff = append(data.Staff, model.Staff{
			ID: r.ID, FirstName: r.FirstName, LastName: r.LastName,
			Email: r.Email, Phone: r.Phone, StoreID: r.StoreID,
		})
	}

	for _, r := range file.Stocks {
		data.Stocks = append(data.Stocks, model.Stock{
			StoreID: r.StoreID, ProductID: r.ProductID,
			QuantityInStock: r.QuantityInStock, UpdatedAt: r.UpdatedAt,
		})
	}

	for _, r := range file.Carriers {
		data.Carriers = append(data.Carriers, model.Carrier{
			ID: r.ID, Name: r.Name,
			ContactURL: r.ContactURL, ContactPhone: r.ContactPhone,
		})
	}

	return data, nil
}

// parseMoney parses an optional decimal string field.
func parseMoney(field string, s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	return &d, nil
}
