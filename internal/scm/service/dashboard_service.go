package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/bitfantasy/nimo-scm/internal/scm/entity"
	"github.com/bitfantasy/nimo-scm/internal/scm/repository"
	"github.com/redis/go-redis/v9"
)

const (
	overviewCacheKey = "scm:dashboard:overview"
	overviewCacheTTL = 30 * time.Second
)

// DashboardService aggregates the overview screen's counts. The counts are
// read-mostly and tolerate short staleness, so they are cached in redis.
type DashboardService struct {
	productRepo   *repository.ProductRepository
	supplierRepo  *repository.SupplierRepository
	inventoryRepo *repository.InventoryRepository
	purchaseRepo  *repository.PurchaseRepository
	rdb           *redis.Client
}

func NewDashboardService(
	productRepo *repository.ProductRepository,
	supplierRepo *repository.SupplierRepository,
	inventoryRepo *repository.InventoryRepository,
	purchaseRepo *repository.PurchaseRepository,
	rdb *redis.Client,
) *DashboardService {
	return &DashboardService{
		productRepo:   productRepo,
		supplierRepo:  supplierRepo,
		inventoryRepo: inventoryRepo,
		purchaseRepo:  purchaseRepo,
		rdb:           rdb,
	}
}

type Overview struct {
	TotalProducts  int64 `json:"total_products"`
	TotalSuppliers int64 `json:"total_suppliers"`
	LowStockSKUs   int64 `json:"low_stock_skus"`
}

func (s *DashboardService) Overview(ctx context.Context) (*Overview, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, overviewCacheKey).Bytes(); err == nil {
			var ov Overview
			if json.Unmarshal(cached, &ov) == nil {
				return &ov, nil
			}
		}
	}

	var ov Overview
	var err error
	if ov.TotalProducts, err = s.productRepo.Count(); err != nil {
		return nil, err
	}
	if ov.TotalSuppliers, err = s.supplierRepo.Count(); err != nil {
		return nil, err
	}
	if ov.LowStockSKUs, err = s.inventoryRepo.CountLowStock(); err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if payload, err := json.Marshal(&ov); err == nil {
			// Best effort: a cache write failure never fails the read.
			s.rdb.Set(ctx, overviewCacheKey, payload, overviewCacheTTL)
		}
	}

	return &ov, nil
}

func (s *DashboardService) RecentOrders(limit int) ([]entity.PurchaseOrder, error) {
	return s.purchaseRepo.Recent(limit)
}
