package sqlstore

import (
	"context"
	"fmt"

	"github.com/dkarlsen/webstore/internal/source"
)

// Seed loads a dataset into the database inside a single transaction.
//
// Rows are inserted in foreign-key dependency order and every insert uses
// ON CONFLICT DO NOTHING, so seeding the same dataset twice is idempotent.
// Population is the storage layer's concern; the query engine never writes.
func (s *Store) Seed(ctx context.Context, data source.Dataset) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	for _, c := range data.Customers {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO customers (customer_id, first_name, last_name, email, phone, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT DO NOTHING
		`, c.ID, c.FirstName, c.LastName, c.Email, c.Phone, c.CreatedAt, c.UpdatedAt); err != nil {
			return fmt.Errorf("seed customer %d: %w", c.ID, err)
		}
	}

	for _, c := range data.Carriers {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO carriers (carrier_id, carrier_name, contact_url, contact_phone)
			VALUES (?, ?, ?, ?)
			ON CONFLICT DO NOTHING
		`, c.ID, c.Name, c.ContactURL, c.ContactPhone); err != nil {
			return fmt.Errorf("seed carrier %d: %w", c.ID, err)
		}
	}

	for _, o := range data.Orders {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO orders
			(order_id, customer_id, order_date, order_status, shipping_address_id,
			 billing_address_id, carrier_id, tracking_number, shipped_date, delivered_date)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT DO NOTHING
		`, o.ID, o.CustomerID, o.OrderDate, o.Status, o.ShippingAddressID,
			o.BillingAddressID, o.CarrierID, o.TrackingNumber, o.ShippedDate, o.DeliveredDate); err != nil {
			return fmt.Errorf("seed order %d: %w", o.ID, err)
		}
	}

	for _, p := range data.Products {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO products (product_id, product_name, description, price, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT DO NOTHING
		`, p.ID, p.Name, p.Description, decimalArg(p.Price), p.CreatedAt, p.UpdatedAt); err != nil {
			return fmt.Errorf("seed product %d: %w", p.ID, err)
		}
	}

	for _, it := range data.OrderItems {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, unit_price, discount)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT DO NOTHING
		`, it.OrderID, it.ProductID, it.Quantity, decimalArg(it.UnitPrice), decimalArg(it.Discount)); err != nil {
			return fmt.Errorf("seed order item (%d, %d): %w", it.OrderID, it.ProductID, err)
		}
	}

	for _, c := range data.Categories {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO categories (category_id, category_name, parent_category_id)
			VALUES (?, ?, ?)
			ON CONFLICT DO NOTHING
		`, c.ID, c.Name, c.ParentID); err != nil {
			return fmt.Errorf("seed category %d: %w", c.ID, err)
		}
	}

	for _, pc := range data.ProductCategories {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO product_categories (category_id, product_id)
			VALUES (?, ?)
			ON CONFLICT DO NOTHING
		`, pc.CategoryID, pc.ProductID); err != nil {
			return fmt.Errorf("seed product category (%d, %d): %w", pc.CategoryID, pc.ProductID, err)
		}
	}

	for _, st := range data.Stores {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO stores (store_id, store_name, phone, email, street, city, postal_code, country)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT DO NOTHING
		`, st.ID, st.Name, st.Phone, st.Email, st.Street, st.City, st.PostalCode, st.Country); err != nil {
			return fmt.Errorf("seed store %d: %w", st.ID, err)
		}
	}

	for _, st := range data.Staff {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO staff (staff_id, first_name, last_name, email, phone, store_id)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT DO NOTHING
		`, st.ID, st.FirstName, st.LastName, st.Email, st.Phone, st.StoreID); err != nil {
			return fmt.Errorf("seed staff %d: %w", st.ID, err)
		}
	}

	for _, st := range data.Stocks {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO stocks (store_id, product_id, quantity_in_stock, updated_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT DO NOTHING
		`, st.StoreID, st.ProductID, st.QuantityInStock, st.UpdatedAt); err != nil {
			return fmt.Errorf("seed stock (%d, %d): %w", st.StoreID, st.ProductID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed: commit: %w", err)
	}

	return nil
}
