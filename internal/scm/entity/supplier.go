package entity

import (
	"time"
)

// Supplier vendor master record. Suppliers are referenced by products and
// purchase orders and are never deleted.
type Supplier struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Name      string    `json:"name" gorm:"size:200;not null"`
	Contact   string    `json:"contact" gorm:"size:100"`
	Email     string    `json:"email" gorm:"size:100"`
	Phone     string    `json:"phone" gorm:"size:20"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Supplier) TableName() string {
	return "scm_suppliers"
}
