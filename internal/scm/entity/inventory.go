package entity

import (
	"time"
)

// DefaultReorderPoint is applied when a record is created lazily during
// purchase-order receiving.
const DefaultReorderPoint = 10

// InventoryRecord per-product on-hand quantity. At most one record exists per
// product; it is created on the first manual adjustment or the first PO
// receipt, not together with the product.
type InventoryRecord struct {
	ID           string    `json:"id" gorm:"primaryKey;size:36"`
	ProductID    string    `json:"product_id" gorm:"size:36;not null;uniqueIndex"`
	QtyOnHand    int       `json:"qty_on_hand" gorm:"not null"`
	ReorderPoint int       `json:"reorder_point" gorm:"not null"`
	LastUpdated  time.Time `json:"last_updated"`
	CreatedAt    time.Time `json:"created_at"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

func (InventoryRecord) TableName() string {
	return "scm_inventory_records"
}

// LowStock reports whether the record is at or below its reorder threshold.
func (r *InventoryRecord) LowStock() bool {
	return r.QtyOnHand <= r.ReorderPoint
}
