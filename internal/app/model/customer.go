package model

import "time"

type Membership string

const (
	MembershipBronze Membership = "bronze"
	MembershipSilver Membership = "silver"
	MembershipGold   Membership = "gold"
)

type Customer struct {
	ID         uint       `gorm:"primarykey" json:"id"`
	FirstName  string     `gorm:"size:255;not null;index:idx_customers_last_first,priority:2" json:"first_name"`
	LastName   string     `gorm:"size:255;not null;index:idx_customers_last_first,priority:1" json:"last_name"`
	Email      string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Phone      string     `gorm:"size:13;uniqueIndex;not null" json:"phone"`
	BirthDate  *time.Time `gorm:"type:date" json:"birth_date,omitempty"`
	Membership Membership `gorm:"type:varchar(20);default:'bronze'" json:"membership"`

	// Relationships
	Orders    []Order   `gorm:"foreignKey:CustomerID" json:"-"`
	Addresses []Address `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Customer) TableName() string {
	return "customers"
}
