package entity

import (
	"time"
)

// Product catalog entry. SKU is the external lookup key.
type Product struct {
	ID          string  `json:"id" gorm:"primaryKey;size:36"`
	SKU         string  `json:"sku" gorm:"size:64;not null;uniqueIndex"`
	Name        string  `json:"name" gorm:"size:200"`
	Description string  `json:"description" gorm:"type:text"`
	UnitCost    float64 `json:"unit_cost" gorm:"type:decimal(12,2);default:0"`
	SupplierID  *string `json:"supplier_id" gorm:"size:36;index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Supplier *Supplier `json:"supplier,omitempty" gorm:"foreignKey:SupplierID"`
}

func (Product) TableName() string {
	return "scm_products"
}
