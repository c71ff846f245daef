package entity

import "gorm.io/gorm"

// AutoMigrate migrates all supply-chain tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Supplier{},
		&Product{},
		&InventoryRecord{},
		&PurchaseOrder{},
		&POItem{},
	)
}
