package repository

import "gorm.io/gorm"

// Repositories supply-chain repository set
type Repositories struct {
	Supplier  *SupplierRepository
	Product   *ProductRepository
	Inventory *InventoryRepository
	Purchase  *PurchaseRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Supplier:  NewSupplierRepository(db),
		Product:   NewProductRepository(db),
		Inventory: NewInventoryRepository(db),
		Purchase:  NewPurchaseRepository(db),
	}
}
