package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCustomer_FullName(t *testing.T) {
	c := Customer{FirstName: "Ana", LastName: "Li"}
	assert.Equal(t, "Ana Li", c.FullName())
}

func TestOrderItem_LineTotal(t *testing.T) {
	price := decimal.RequireFromString("10.50")
	item := OrderItem{Quantity: 3, UnitPrice: &price}
	assert.True(t, item.LineTotal().Equal(decimal.RequireFromString("31.50")),
		"line total should be quantity times unit price, got %s", item.LineTotal())
}

func TestOrderItem_LineTotal_MissingPrice(t *testing.T) {
	item := OrderItem{Quantity: 7}
	assert.True(t, item.LineTotal().IsZero(), "missing unit price counts as zero")
}

func TestOrderItem_LineTotal_ZeroQuantity(t *testing.T) {
	price := decimal.RequireFromString("99.99")
	item := OrderItem{Quantity: 0, UnitPrice: &price}
	assert.True(t, item.LineTotal().IsZero())
}

func TestOrderItem_Discounted(t *testing.T) {
	zero := decimal.Zero
	positive := decimal.RequireFromString("0.01")

	assert.False(t, OrderItem{}.Discounted(), "nil discount is not discounted")
	assert.False(t, OrderItem{Discount: &zero}.Discounted(), "zero discount is not discounted")
	assert.True(t, OrderItem{Discount: &positive}.Discounted())
}
