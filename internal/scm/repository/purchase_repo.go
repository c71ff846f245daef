package repository

import (
	"github.com/bitfantasy/nimo-scm/internal/scm/entity"
	"gorm.io/gorm"
)

type PurchaseRepository struct {
	db *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) *PurchaseRepository {
	return &PurchaseRepository{db: db}
}

// WithTx returns a copy of the repository bound to tx.
func (r *PurchaseRepository) WithTx(tx *gorm.DB) *PurchaseRepository {
	return &PurchaseRepository{db: tx}
}

func (r *PurchaseRepository) Create(po *entity.PurchaseOrder) error {
	return r.db.Create(po).Error
}

func (r *PurchaseRepository) GetByID(id string) (*entity.PurchaseOrder, error) {
	var po entity.PurchaseOrder
	err := r.db.Preload("Supplier").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("scm_po_items.created_at ASC")
		}).
		Where("id = ?", id).First(&po).Error
	if err != nil {
		return nil, err
	}
	return &po, nil
}

type POListParams struct {
	SupplierID string
	Received   *bool
	Keyword    string
	Page       int
	Size       int
}

func (r *PurchaseRepository) List(params POListParams) ([]entity.PurchaseOrder, int64, error) {
	query := r.db.Model(&entity.PurchaseOrder{})

	if params.SupplierID != "" {
		query = query.Where("supplier_id = ?", params.SupplierID)
	}
	if params.Received != nil {
		query = query.Where("received = ?", *params.Received)
	}
	if params.Keyword != "" {
		kw := "%" + params.Keyword + "%"
		query = query.Where("po_number ILIKE ?", kw)
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

	var pos []entity.PurchaseOrder
	err := query.Preload("Supplier").Order("created_at DESC").
		Offset((params.Page - 1) * params.Size).
		Limit(params.Size).
		Find(&pos).Error

	return pos, total, err
}

// Recent returns the latest orders for the dashboard.
func (r *PurchaseRepository) Recent(limit int) ([]entity.PurchaseOrder, error) {
	if limit <= 0 {
		limit = 10
	}
	var pos []entity.PurchaseOrder
	err := r.db.Preload("Supplier").Order("created_at DESC").
		Limit(limit).Find(&pos).Error
	return pos, err
}

// DB returns the underlying db for transactional workflows.
func (r *PurchaseRepository) DB() *gorm.DB {
	return r.db
}
