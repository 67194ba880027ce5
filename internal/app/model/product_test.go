package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProduct_PriceWithTax(t *testing.T) {
	tests := []struct {
		name      string
		unitPrice string
		want      string
	}{
		{"Round amount", "10.00", "11.00"},
		{"Rounds half up", "19.99", "21.99"},
		{"Zero price", "0.00", "0.00"},
		{"Small amount", "0.10", "0.11"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product := Product{UnitPrice: decimal.RequireFromString(tt.unitPrice)}
			want := decimal.RequireFromString(tt.want)
			got := product.PriceWithTax()
			assert.True(t, want.Equal(got), "want %s, got %s", want, got)
		})
	}
}
