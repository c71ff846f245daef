package repository

import (
	"github.com/bitfantasy/nimo-scm/internal/scm/entity"
	"gorm.io/gorm"
)

type SupplierRepository struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) *SupplierRepository {
	return &SupplierRepository{db: db}
}

func (r *SupplierRepository) Create(supplier *entity.Supplier) error {
	return r.db.Create(supplier).Error
}

func (r *SupplierRepository) GetByID(id string) (*entity.Supplier, error) {
	var supplier entity.Supplier
	err := r.db.Where("id = ?", id).First(&supplier).Error
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *SupplierRepository) Update(supplier *entity.Supplier) error {
	return r.db.Save(supplier).Error
}

type SupplierListParams struct {
	Keyword string
	Page    int
	Size    int
}

func (r *SupplierRepository) List(params SupplierListParams) ([]entity.Supplier, int64, error) {
	query := r.db.Model(&entity.Supplier{})

	if params.Keyword != "" {
		kw := "%" + params.Keyword + "%"
		query = query.Where("name ILIKE ? OR contact ILIKE ? OR email ILIKE ?", kw, kw, kw)
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

	var suppliers []entity.Supplier
	err := query.Order("name ASC").
		Offset((params.Page - 1) * params.Size).
		Limit(params.Size).
		Find(&suppliers).Error

	return suppliers, total, err
}

func (r *SupplierRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&entity.Supplier{}).Count(&total).Error
	return total, err
}
