package repository

import (
	"github.com/bitfantasy/nimo-scm/internal/scm/entity"
	"gorm.io/gorm"
)

type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// WithTx returns a copy of the repository bound to tx.
func (r *InventoryRepository) WithTx(tx *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: tx}
}

// GetByProduct returns the single inventory record for a product, if any.
func (r *InventoryRepository) GetByProduct(productID string) (*entity.InventoryRecord, error) {
	var rec entity.InventoryRecord
	err := r.db.Where("product_id = ?", productID).First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *InventoryRepository) Create(rec *entity.InventoryRecord) error {
	return r.db.Create(rec).Error
}

func (r *InventoryRepository) Update(rec *entity.InventoryRecord) error {
	return r.db.Save(rec).Error
}

type InventoryListParams struct {
	LowStock bool
	Page     int
	Size     int
}

func (r *InventoryRepository) List(params InventoryListParams) ([]entity.InventoryRecord, int64, error) {
	query := r.db.Model(&entity.InventoryRecord{})

	if params.LowStock {
		query = query.Where("qty_on_hand <= reorder_point")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Size <= 0 {
		params.Size = 20
	}

	var records []entity.InventoryRecord
	err := query.Preload("Product").Order("last_updated DESC").
		Offset((params.Page - 1) * params.Size).
		Limit(params.Size).
		Find(&records).Error

	return records, total, err
}

// CountLowStock counts SKUs at or below their reorder point.
func (r *InventoryRepository) CountLowStock() (int64, error) {
	var total int64
	err := r.db.Model(&entity.InventoryRecord{}).
		Where("qty_on_hand <= reorder_point").
		Count(&total).Error
	return total, err
}

// DB returns the underlying db for transactional workflows.
func (r *InventoryRepository) DB() *gorm.DB {
	return r.db
}
