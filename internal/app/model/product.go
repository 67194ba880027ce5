package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// taxRate is the flat sales tax applied when quoting prices. The taxed
// price is derived on read and never written back to the row.
var taxRate = decimal.NewFromFloat(1.1)

type Product struct {
	ID           uint            `gorm:"primarykey" json:"id"`
	Title        string          `gorm:"size:255;not null" json:"title"`
	Slug         string          `gorm:"size:255;not null;index" json:"slug"`
	Description  *string         `gorm:"type:text" json:"description,omitempty"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(6,2);not null" json:"unit_price"`
	Inventory    int             `gorm:"not null" json:"inventory"`
	LastUpdate   time.Time       `gorm:"autoUpdateTime" json:"last_update"`
	CollectionID uint            `gorm:"not null;index" json:"collection_id"`

	// Relationships
	Collection Collection  `gorm:"foreignKey:CollectionID" json:"-"`
	Promotions []Promotion `gorm:"many2many:product_promotions" json:"-"`
	Reviews    []Review    `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
	OrderItems []OrderItem `gorm:"foreignKey:ProductID" json:"-"`
	CartItems  []CartItem  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

// PriceWithTax returns the unit price with the flat 10% tax applied,
// rounded to two decimal places.
func (p *Product) PriceWithTax() decimal.Decimal {
	return p.UnitPrice.Mul(taxRate).Round(2)
}
