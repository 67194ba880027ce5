package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCartItem_TotalPrice(t *testing.T) {
	item := CartItem{
		Product:  Product{UnitPrice: decimal.RequireFromString("5.00")},
		Quantity: 3,
	}
	assert.True(t, decimal.RequireFromString("15.00").Equal(item.TotalPrice()))
}

func TestCart_TotalPrice(t *testing.T) {
	t.Run("Empty cart is zero", func(t *testing.T) {
		var cart Cart
		assert.True(t, decimal.Zero.Equal(cart.TotalPrice()))
	})

	t.Run("Sums line totals", func(t *testing.T) {
		cart := Cart{
			Items: []CartItem{
				{Product: Product{UnitPrice: decimal.RequireFromString("5.00")}, Quantity: 2},
				{Product: Product{UnitPrice: decimal.RequireFromString("3.00")}, Quantity: 1},
			},
		}
		assert.True(t, decimal.RequireFromString("13.00").Equal(cart.TotalPrice()))
	})
}
