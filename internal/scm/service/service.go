package service

import (
	"github.com/bitfantasy/nimo-scm/internal/scm/repository"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Services supply-chain service set
type Services struct {
	Supplier    *SupplierService
	Product     *ProductService
	Inventory   *InventoryService
	Procurement *ProcurementService
	Dashboard   *DashboardService
}

func NewServices(repos *repository.Repositories, db *gorm.DB, rdb *redis.Client) *Services {
	return &Services{
		Supplier:    NewSupplierService(repos.Supplier),
		Product:     NewProductService(repos.Product, repos.Supplier),
		Inventory:   NewInventoryService(repos.Inventory, repos.Product),
		Procurement: NewProcurementService(repos.Purchase),
		Dashboard:   NewDashboardService(repos.Product, repos.Supplier, repos.Inventory, repos.Purchase, rdb),
	}
}
