package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bitfantasy/nimo-scm/internal/scm/entity"
	"github.com/bitfantasy/nimo-scm/internal/scm/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InventoryService struct {
	repo        *repository.InventoryRepository
	productRepo *repository.ProductRepository
}

func NewInventoryService(repo *repository.InventoryRepository, productRepo *repository.ProductRepository) *InventoryService {
	return &InventoryService{repo: repo, productRepo: productRepo}
}

func (s *InventoryService) List(params repository.InventoryListParams) ([]entity.InventoryRecord, int64, error) {
	return s.repo.List(params)
}

type AdjustRequest struct {
	SKU          string `json:"sku" binding:"required"`
	QtyOnHand    int    `json:"qty_on_hand"`
	ReorderPoint int    `json:"reorder_point" binding:"gte=0"`
}

// Adjust sets a product's on-hand quantity and reorder point to absolute
// values, creating the inventory record if none exists. This is a direct
// overwrite independent of purchase orders; receiving accumulates, adjustment
// replaces.
func (s *InventoryService) Adjust(ctx context.Context, req AdjustRequest) (*entity.InventoryRecord, error) {
	product, err := s.productRepo.GetBySKU(req.SKU)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, req.SKU)
		}
		return nil, err
	}

	var rec *entity.InventoryRecord
	err = s.repo.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		now := time.Now()
		existing, err := repo.GetByProduct(product.ID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			rec = &entity.InventoryRecord{
				ID:           uuid.New().String(),
				ProductID:    product.ID,
				QtyOnHand:    req.QtyOnHand,
				ReorderPoint: req.ReorderPoint,
				LastUpdated:  now,
			}
			return repo.Create(rec)
		case err != nil:
			return err
		default:
			existing.QtyOnHand = req.QtyOnHand
			existing.ReorderPoint = req.ReorderPoint
			existing.LastUpdated = now
			if err := repo.Update(existing); err != nil {
				return err
			}
			rec = existing
			return nil
		}
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}
