package model

type Address struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	Street     string `gorm:"size:255;not null" json:"street"`
	City       string `gorm:"size:255;not null" json:"city"`
	CustomerID uint   `gorm:"not null;index" json:"customer_id"`

	// Relationships
	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
}

func (Address) TableName() string {
	return "addresses"
}
