// Package model defines the webstore entity types shared by every query.
//
// Entities are plain value records mirroring the relational schema one to
// one. Relationships are carried as foreign-key ids; the resolved-relation
// fields (Customer.Orders, Order.Items, OrderItem.Product, ...) are filled
// in per query call by the query engine and are never the source of truth.
//
// Monetary values use shopspring/decimal throughout. Prices and totals are
// exact fixed-point amounts; binary floating point would drift when line
// totals are summed across orders. Nullable columns map to pointer fields,
// and a missing monetary value counts as zero wherever it is summed.
package model
