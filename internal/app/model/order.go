package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusComplete PaymentStatus = "complete"
	PaymentStatusFailed   PaymentStatus = "failed"
)

type Order struct {
	ID            uint          `gorm:"primarykey" json:"id"`
	PlacedAt      time.Time     `gorm:"autoCreateTime" json:"placed_at"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(20);default:'pending'" json:"payment_status"`
	CustomerID    uint          `gorm:"not null;index" json:"customer_id"`

	// Relationships
	Customer   Customer    `gorm:"foreignKey:CustomerID" json:"-"`
	OrderItems []OrderItem `gorm:"foreignKey:OrderID" json:"order_items,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

type OrderItem struct {
	ID        uint `gorm:"primarykey" json:"id"`
	OrderID   uint `gorm:"not null;index" json:"order_id"`
	ProductID uint `gorm:"not null;index" json:"product_id"`
	Quantity  int  `gorm:"not null" json:"quantity"`
	// UnitPrice is the product price captured when the order was placed;
	// later product price changes do not touch it.
	UnitPrice decimal.Decimal `gorm:"type:decimal(6,2);not null" json:"unit_price"`

	// Relationships
	Order   Order   `gorm:"foreignKey:OrderID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
