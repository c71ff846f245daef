package repository

import (
	"github.com/bitfantasy/nimo-scm/internal/scm/entity"
	"gorm.io/gorm"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(product *entity.Product) error {
	return r.db.Create(product).Error
}

func (r *ProductRepository) GetByID(id string) (*entity.Product, error) {
	var product entity.Product
	err := r.db.Preload("Supplier").Where("id = ?", id).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) GetBySKU(sku string) (*entity.Product, error) {
	var product entity.Product
	err := r.db.Where("sku = ?", sku).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

type ProductListParams struct {
	SupplierID string
	Keyword    string
	Page       int
	Size       int
}

func (r *ProductRepository) List(params ProductListParams) ([]entity.Product, int64, error) {
	query := r.db.Model(&entity.Product{})

	if params.SupplierID != "" {
		query = query.Where("supplier_id = ?", params.SupplierID)
	}
	if params.Keyword != "" {
		kw := "%" + params.Keyword + "%"
		query = query.Where("sku ILIKE ? OR name ILIKE ?", kw, kw)
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

	var products []entity.Product
	err := query.Preload("Supplier").Order("name ASC").
		Offset((params.Page - 1) * params.Size).
		Limit(params.Size).
		Find(&products).Error

	return products, total, err
}

func (r *ProductRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&entity.Product{}).Count(&total).Error
	return total, err
}
