package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dkarlsen/webstore/internal/model"
)

// Customers returns all customer rows ordered by id.
func (s *Store) Customers(ctx context.Context) ([]model.Customer, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT customer_id, first_name, last_name, email, phone, created_at, updated_at
		FROM customers
		ORDER BY customer_id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query customers: %w", err)
	}
	defer rows.Close()

	var customers []model.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customers: %w", err)
	}

	// Return empty slice instead of nil
	if customers == nil {
		customers = []model.Customer{}
	}

	return customers, nil
}

// Customer resolves a customer id. Returns nil, nil when the id is absent.
func (s *Store) Customer(ctx context.Context, id int) (*model.Customer, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT customer_id, first_name, last_name, email, phone, created_at, updated_at
		FROM customers
		WHERE customer_id = ?
	`, id)
	if err != nil {
		return nil, fmt.Errorf("query customer: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	c, err := scanCustomer(rows)
	if err != nil {
		return nil, err
	}
	return &c, rows.Err()
}

// Orders returns all order rows ordered by id.
func (s *Store) Orders(ctx context.Context) ([]model.Order, error) {
	return s.queryOrders(ctx, `
		SELECT order_id, customer_id, order_date, order_status,
		       shipping_address_id, billing_address_id, carrier_id,
		       tracking_number, shipped_date, delivered_date
		FROM orders
		ORDER BY order_id ASC
	`)
}

// OrdersByCustomer returns the orders placed by one customer, ordered by id.
func (s *Store) OrdersByCustomer(ctx context.Context, customerID int) ([]model.Order, error) {
	return s.queryOrders(ctx, `
		SELECT order_id, customer_id, order_date, order_status,
		       shipping_address_id, billing_address_id, carrier_id,
		       tracking_number, shipped_date, delivered_date
		FROM orders
		WHERE customer_id = ?
		ORDER BY order_id ASC
	`, customerID)
}

func (s *Store) queryOrders(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}

	if orders == nil {
		orders = []model.Order{}
	}

	return orders, nil
}

// OrderItems returns all order item rows ordered by composite key.
func (s *Store) OrderItems(ctx context.Context) ([]model.OrderItem, error) {
	return s.queryOrderItems(ctx, `
		SELECT order_id, product_id, quantity, unit_price, discount
		FROM order_items
		ORDER BY order_id ASC, product_id ASC
	`)
}

// OrderItemsByOrder returns the items of one order, ordered by product id.
func (s *Store) OrderItemsByOrder(ctx context.Context, orderID int) ([]model.OrderItem, error) {
	return s.queryOrderItems(ctx, `
		SELECT order_id, product_id, quantity, unit_price, discount
		FROM order_items
		WHERE order_id = ?
		ORDER BY product_id ASC
	`, orderID)
}

func (s *Store) queryOrderItems(ctx context.Context, query string, args ...any) ([]model.OrderItem, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query order items: %w", err)
	}
	defer rows.Close()

	var items []model.OrderItem
	for rows.Next() {
		it, err := scanOrderItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order items: %w", err)
	}

	if items == nil {
		items = []model.OrderItem{}
	}

	return items, nil
}

// Products returns all product rows ordered by id.
func (s *Store) Products(ctx context.Context) ([]model.Product, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT product_id, product_name, description, price, created_at, updated_at
		FROM products
		ORDER BY product_id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	if products == nil {
		products = []model.Product{}
	}

	return products, nil
}

// Product resolves a product id. Returns nil, nil when the id is absent.
func (s *Store) Product(ctx context.Context, id int) (*model.Product, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT product_id, product_name, description, price, created_at, updated_at
		FROM products
		WHERE product_id = ?
	`, id)
	if err != nil {
		return nil, fmt.Errorf("query product: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	p, err := scanProduct(rows)
	if err != nil {
		return nil, err
	}
	return &p, rows.Err()
}

// Categories returns all category rows ordered by id.
func (s *Store) Categories(ctx context.Context) ([]model.Category, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT category_id, category_name, parent_category_id
		FROM categories
		ORDER BY category_id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		var parent sql.NullInt64
		if err := rows.Scan(&c.ID, &c.Name, &parent); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		c.ParentID = nullInt(parent)
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}

	if categories == nil {
		categories = []model.Category{}
	}

	return categories, nil
}

// Category resolves a category id. Returns nil, nil when the id is absent.
func (s *Store) Category(ctx context.Context, id int) (*model.Category, error) {
	var c model.Category
	var parent sql.NullInt64
	err := s.db.QueryRowContext(ctx, `
		SELECT category_id, category_name, parent_category_id
		FROM categories
		WHERE category_id = ?
	`, id).Scan(&c.ID, &c.Name, &parent)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query category: %w", err)
	}
	c.ParentID = nullInt(parent)
	return &c, nil
}

// ProductCategories returns all category-product join rows.
func (s *Store) ProductCategories(ctx context.Context) ([]model.ProductCategory, error) {
	return s.queryProductCategories(ctx, `
		SELECT category_id, product_id
		FROM product_categories
		ORDER BY category_id ASC, product_id ASC
	`)
}

// ProductCategoriesByCategory returns the join rows for one category.
func (s *Store) ProductCategoriesByCategory(ctx context.Context, categoryID int) ([]model.ProductCategory, error) {
	return s.queryProductCategories(ctx, `
		SELECT category_id, product_id
		FROM product_categories
		WHERE category_id = ?
		ORDER BY product_id ASC
	`, categoryID)
}

func (s *Store) queryProductCategories(ctx context.Context, query string, args ...any) ([]model.ProductCategory, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query product categories: %w", err)
	}
	defer rows.Close()

	var links []model.ProductCategory
	for rows.Next() {
		var pc model.ProductCategory
		if err := rows.Scan(&pc.CategoryID, &pc.ProductID); err != nil {
			return nil, fmt.Errorf("scan product category: %w", err)
		}
		links = append(links, pc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product categories: %w", err)
	}

	if links == nil {
		links = []model.ProductCategory{}
	}

	return links, nil
}

// Stores returns all store rows ordered by id.
func (s *Store) Stores(ctx context.Context) ([]model.Store, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT store_id, store_name, phone, email, street, city, postal_code, country
		FROM stores
		ORDER BY store_id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query stores: %w", err)
	}
	defer rows.Close()

	var stores []model.Store
	for rows.Next() {
		st, err := scanStore(rows)
		if err != nil {
			return nil, err
		}
		stores = append(stores, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stores: %w", err)
	}

	if stores == nil {
		stores = []model.Store{}
	}

	return stores, nil
}

// Store resolves a store id. Returns nil, nil when the id is absent.
func (s *Store) Store(ctx context.Context, id int) (*model.Store, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT store_id, store_name, phone, email, street, city, postal_code, country
		FROM stores
		WHERE store_id = ?
	`, id)
	if err != nil {
		return nil, fmt.Errorf("query store: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	st, err := scanStore(rows)
	if err != nil {
		return nil, err
	}
	return &st, rows.Err()
}

// Staff returns all staff rows ordered by id.
func (s *Store) Staff(ctx context.Context) ([]model.Staff, error) {
	return s.queryStaff(ctx, `
		SELECT staff_id, first_name, last_name, email, phone, store_id
		FROM staff
		ORDER BY staff_id ASC
	`)
}

// StaffByStore returns the staff of one store, ordered by id.
func (s *Store) StaffByStore(ctx context.Context, storeID int) ([]model.Staff, error) {
	return s.queryStaff(ctx, `
		SELECT staff_id, first_name, last_name, email, phone, store_id
		FROM staff
		WHERE store_id = ?
		ORDER BY staff_id ASC
	`, storeID)
}

func (s *Store) queryStaff(ctx context.Context, query string, args ...any) ([]model.Staff, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query staff: %w", err)
	}
	defer rows.Close()

	var staff []model.Staff
	for rows.Next() {
		var st model.Staff
		var phone sql.NullString
		if err := rows.Scan(&st.ID, &st.FirstName, &st.LastName, &st.Email, &phone, &st.StoreID); err != nil {
			return nil, fmt.Errorf("scan staff: %w", err)
		}
		st.Phone = nullString(phone)
		staff = append(staff, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate staff: %w", err)
	}

	if staff == nil {
		staff = []model.Staff{}
	}

	return staff, nil
}

// Stocks returns all stock rows ordered by composite key.
func (s *Store) Stocks(ctx context.Context) ([]model.Stock, error) {
	return s.queryStocks(ctx, `
		SELECT store_id, product_id, quantity_in_stock, updated_at
		FROM stocks
		ORDER BY store_id ASC, product_id ASC
	`)
}

// StocksByStore returns the stock rows of one store, ordered by product id.
func (s *Store) StocksByStore(ctx context.Context, storeID int) ([]model.Stock, error) {
	return s.queryStocks(ctx, `
		SELECT store_id, product_id, quantity_in_stock, updated_at
		FROM stocks
		WHERE store_id = ?
		ORDER BY product_id ASC
	`, storeID)
}

func (s *Store) queryStocks(ctx context.Context, query string, args ...any) ([]model.Stock, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query stocks: %w", err)
	}
	defer rows.Close()

	var stocks []model.Stock
	for rows.Next() {
		var st model.Stock
		var updated sql.NullTime
		if err := rows.Scan(&st.StoreID, &st.ProductID, &st.QuantityInStock, &updated); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		st.UpdatedAt = nullTime(updated)
		stocks = append(stocks, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stocks: %w", err)
	}

	if stocks == nil {
		stocks = []model.Stock{}
	}

	return stocks, nil
}

// Carriers returns all carrier rows ordered by id.
func (s *Store) Carriers(ctx context.Context) ([]model.Carrier, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT carrier_id, carrier_name, contact_url, contact_phone
		FROM carriers
		ORDER BY carrier_id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query carriers: %w", err)
	}
	defer rows.Close()

	var carriers []model.Carrier
	for rows.Next() {
		var c model.Carrier
		var url, phone sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &url, &phone); err != nil {
			return nil, fmt.Errorf("scan carrier: %w", err)
		}
		c.ContactURL = nullString(url)
		c.ContactPhone = nullString(phone)
		carriers = append(carriers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate carriers: %w", err)
	}

	if carriers == nil {
		carriers = []model.Carrier{}
	}

	return carriers, nil
}

// Carrier resolves a carrier id. Returns nil, nil when the id is absent.
func (s *Store) Carrier(ctx context.Context, id int) (*model.Carrier, error) {
	var c model.Carrier
	var url, phone sql.NullString
	err := s.db.QueryRowContext(ctx, `
		SELECT carrier_id, carrier_name, contact_url, contact_phone
		FROM carriers
		WHERE carrier_id = ?
	`, id).Scan(&c.ID, &c.Name, &url, &phone)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query carrier: %w", err)
	}
	c.ContactURL = nullString(url)
	c.ContactPhone = nullString(phone)
	return &c, nil
}

// scanCustomer scans a row into a Customer.
func scanCustomer(rows *sql.Rows) (model.Customer, error) {
	var c model.Customer
	var phone sql.NullString
	var created, updated sql.NullTime

	if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &phone, &created, &updated); err != nil {
		return model.Customer{}, fmt.Errorf("scan customer: %w", err)
	}

	c.Phone = nullString(phone)
	c.CreatedAt = nullTime(created)
	c.UpdatedAt = nullTime(updated)
	return c, nil
}

// scanOrder scans a row into an Order.
func scanOrder(rows *sql.Rows) (model.Order, error) {
	var o model.Order
	var orderDate, shipped, delivered sql.NullTime
	var status, tracking sql.NullString
	var carrierID sql.NullInt64

	if err := rows.Scan(
		&o.ID, &o.CustomerID, &orderDate, &status,
		&o.ShippingAddressID, &o.BillingAddressID, &carrierID,
		&tracking, &shipped, &delivered,
	); err != nil {
		return model.Order{}, fmt.Errorf("scan order: %w", err)
	}

	o.OrderDate = nullTime(orderDate)
	o.Status = nullString(status)
	o.CarrierID = nullInt(carrierID)
	o.TrackingNumber = nullString(tracking)
	o.ShippedDate = nullTime(shipped)
	o.DeliveredDate = nullTime(delivered)
	return o, nil
}

// scanOrderItem scans a row into an OrderItem.
func scanOrderItem(rows *sql.Rows) (model.OrderItem, error) {
	var it model.OrderItem
	var unitPrice, discount sql.NullString

	if err := rows.Scan(&it.OrderID, &it.ProductID, &it.Quantity, &unitPrice, &discount); err != nil {
		return model.OrderItem{}, fmt.Errorf("scan order item: %w", err)
	}

	price, err := nullDecimal("unit_price", unitPrice)
	if err != nil {
		return model.OrderItem{}, err
	}
	it.UnitPrice = price

	disc, err := nullDecimal("discount", discount)
	if err != nil {
		return model.OrderItem{}, err
	}
	it.Discount = disc

	return it, nil
}

// scanProduct scans a row into a Product.
func scanProduct(rows *sql.Rows) (model.Product, error) {
	var p model.Product
	var description, price sql.NullString
	var created, updated sql.NullTime

	if err := rows.Scan(&p.ID, &p.Name, &description, &price, &created, &updated); err != nil {
		return model.Product{}, fmt.Errorf("scan product: %w", err)
	}

	p.Description = nullString(description)
	d, err := nullDecimal("price", price)
	if err != nil {
		return model.Product{}, err
	}
	p.Price = d
	p.CreatedAt = nullTime(created)
	p.UpdatedAt = nullTime(updated)
	return p, nil
}

// scanStore scans a row into a Store.
func scanStore(rows *sql.Rows) (model.Store, error) {
	var st model.Store
	var phone, email, street, city, postal, country sql.NullString

	if err := rows.Scan(&st.ID, &st.Name, &phone, &email, &street, &city, &postal, &country); err != nil {
		return model.Store{}, fmt.Errorf("scan store: %w", err)
	}

	st.Phone = nullString(phone)
	st.Email = nullString(email)
	st.Street = nullString(street)
	st.City = nullString(city)
	st.PostalCode = nullString(postal)
	st.Country = nullString(country)
	return st, nil
}
