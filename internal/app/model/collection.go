package model

type Collection struct {
	ID                uint   `gorm:"primarykey" json:"id"`
	Title             string `gorm:"size:255;not null" json:"title"`
	FeaturedProductID *uint  `gorm:"index" json:"featured_product_id,omitempty"`

	// Relationships
	FeaturedProduct *Product  `gorm:"foreignKey:FeaturedProductID;constraint:OnDelete:SET NULL" json:"-"`
	Products        []Product `gorm:"foreignKey:CollectionID" json:"-"`

	// ProductsCount is filled by the COUNT aggregation in the repository,
	// never stored.
	ProductsCount int64 `gorm:"->;-:migration" json:"products_count"`
}

func (Collection) TableName() string {
	return "collections"
}
