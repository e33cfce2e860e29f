package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is a registered webstore customer.
type Customer struct {
	ID        int        `json:"id"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Email     string     `json:"email"`
	Phone     *string    `json:"phone,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`

	// Orders is resolved per query call; not persisted.
	Orders []Order `json:"orders,omitempty"`
}

// FullName returns the customer's display name ("First Last").
func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Order is a single customer order.
type Order struct {
	ID                int        `json:"id"`
	CustomerID        int        `json:"customer_id"`
	OrderDate         *time.Time `json:"order_date,omitempty"`
	Status            *string    `json:"status,omitempty"`
	ShippingAddressID int        `json:"shipping_address_id"`
	BillingAddressID  int        `json:"billing_address_id"`
	CarrierID         *int       `json:"carrier_id,omitempty"`
	TrackingNumber    *string    `json:"tracking_number,omitempty"`
	ShippedDate       *time.Time `json:"shipped_date,omitempty"`
	DeliveredDate     *time.Time `json:"delivered_date,omitempty"`

	// Resolved per query call; not persisted.
	Customer *Customer   `json:"customer,omitempty"`
	Carrier  *Carrier    `json:"carrier,omitempty"`
	Items    []OrderItem `json:"items,omitempty"`
}

// OrderItem is one product line within an order.
// (OrderID, ProductID) is the composite key, unique per order.
type OrderItem struct {
	OrderID   int              `json:"order_id"`
	ProductID int              `json:"product_id"`
	Quantity  int              `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
	Discount  *decimal.Decimal `json:"discount,omitempty"`

	// Product is resolved per query call; not persisted.
	Product *Product `json:"product,omitempty"`
}

// LineTotal returns quantity times unit price, gross of any discount.
// A missing unit price counts as zero.
func (i OrderItem) LineTotal() decimal.Decimal {
	if i.UnitPrice == nil {
		return decimal.Zero
	}
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Discounted reports whether the item carries a discount strictly above zero.
func (i OrderItem) Discounted() bool {
	return i.Discount != nil && i.Discount.GreaterThan(decimal.Zero)
}

// Product is a sellable catalogue item.
type Product struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	CreatedAt   *time.Time       `json:"created_at,omitempty"`
	UpdatedAt   *time.Time       `json:"updated_at,omitempty"`
}

// Category is a node in the self-referential category tree.
// The parent chain contains no cycles.
type Category struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	ParentID *int   `json:"parent_id,omitempty"`

	// Children is resolved per query call; not persisted.
	Children []Category `json:"children,omitempty"`
}

// ProductCategory links a product to a category (many-to-many join row).
// (CategoryID, ProductID) is the composite key.
type ProductCategory struct {
	CategoryID int `json:"category_id"`
	ProductID  int `json:"product_id"`
}

// Store is a physical store location.
type Store struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Phone      *string `json:"phone,omitempty"`
	Email      *string `json:"email,omitempty"`
	Street     *string `json:"street,omitempty"`
	City       *string `json:"city,omitempty"`
	PostalCode *string `json:"postal_code,omitempty"`
	Country    *string `json:"country,omitempty"`
}

// Staff is a store employee.
type Staff struct {
	ID        int     `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	StoreID   int     `json:"store_id"`
}

// Stock records the on-hand quantity of a product at a store.
// (StoreID, ProductID) is the composite key.
type Stock struct {
	StoreID         int        `json:"store_id"`
	ProductID       int        `json:"product_id"`
	QuantityInStock int        `json:"quantity_in_stock"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

// Carrier is a shipping carrier an order may reference.
type Carrier struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	ContactURL   *string `json:"contact_url,omitempty"`
	ContactPhone *string `json:"contact_phone,omitempty"`
}
