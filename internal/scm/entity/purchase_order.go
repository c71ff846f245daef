package entity

import (
	"time"
)

// PurchaseOrder header. PONumber is the key users receive against; the data
// layer deliberately does not enforce its uniqueness, the receiving workflow
// assumes at most one match. Received flips false->true exactly once.
type PurchaseOrder struct {
	ID         string    `json:"id" gorm:"primaryKey;size:36"`
	PONumber   string    `json:"po_number" gorm:"size:64;not null;index"`
	SupplierID *string   `json:"supplier_id" gorm:"size:36;index"`
	Received   bool      `json:"received" gorm:"not null;default:false"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Supplier *Supplier `json:"supplier,omitempty" gorm:"foreignKey:SupplierID"`
	Items    []POItem  `json:"items,omitempty" gorm:"foreignKey:POID"`
}

func (PurchaseOrder) TableName() string {
	return "scm_purchase_orders"
}

// POItem purchase order line. Owned by its order; UnitCost is frozen at order
// time and independent of the product's current cost.
type POItem struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	POID      string    `json:"po_id" gorm:"size:36;not null;index"`
	ProductID string    `json:"product_id" gorm:"size:36;not null"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	UnitCost  float64   `json:"unit_cost" gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt time.Time `json:"created_at"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

func (POItem) TableName() string {
	return "scm_po_items"
}
