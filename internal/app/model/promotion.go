package model

type Promotion struct {
	ID          uint    `gorm:"primarykey" json:"id"`
	Description string  `gorm:"size:255;not null" json:"description"`
	Discount    float64 `gorm:"not null" json:"discount"`

	// Relationships
	Products []Product `gorm:"many2many:product_promotions" json:"-"`
}

func (Promotion) TableName() string {
	return "promotions"
}
