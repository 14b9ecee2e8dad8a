package model

import (
	"time"

	"gorm.io/gorm"
)

type ProductStatus string

const (
	ProductStatusPending     ProductStatus = "pending"
	ProductStatusApproved    ProductStatus = "approved"
	ProductStatusDisapproved ProductStatus = "disapproved"
	ProductStatusRejected    ProductStatus = "rejected"
)

// Valid reports whether s is one of the known lifecycle states.
func (s ProductStatus) Valid() bool {
	switch s {
	case ProductStatusPending, ProductStatusApproved, ProductStatusDisapproved, ProductStatusRejected:
		return true
	}
	return false
}

type Product struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	UserID      uint          `json:"user_id" gorm:"not null;index"`
	User        User          `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
	Name        string        `json:"name" gorm:"not null;size:255"`
	URL         string        `json:"url" gorm:"column:url;type:text"`
	Description string        `json:"description" gorm:"type:text"`
	Price       float64       `json:"price" gorm:"type:decimal(10,2);not null;default:0"`
	Images      ImageList     `json:"images"`
	Status      ProductStatus `json:"status" gorm:"size:50;not null;default:pending"`
	Season      string        `json:"season" gorm:"size:100"`
	CreatedAt   time.Time     `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// AfterFind restores the empty image list for rows whose images column is
// NULL; gorm skips Scan for NULL values.
func (p *Product) AfterFind(tx *gorm.DB) error {
	if p.Images == nil {
		p.Images = ImageList{}
	}
	return nil
}
