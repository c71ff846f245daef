package service

import (
	"errors"
	"fmt"

	"github.com/bitfantasy/nimo-scm/internal/scm/entity"
	"github.com/bitfantasy/nimo-scm/internal/scm/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductService struct {
	repo         *repository.ProductRepository
	supplierRepo *repository.SupplierRepository
}

func NewProductService(repo *repository.ProductRepository, supplierRepo *repository.SupplierRepository) *ProductService {
	return &ProductService{repo: repo, supplierRepo: supplierRepo}
}

type CreateProductRequest struct {
	SKU         string  `json:"sku" binding:"required"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	UnitCost    float64 `json:"unit_cost" binding:"gte=0"`
	SupplierID  *string `json:"supplier_id"`
}

func (s *ProductService) Create(req CreateProductRequest) (*entity.Product, error) {
	if _, err := s.repo.GetBySKU(req.SKU); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateSKU, req.SKU)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if req.SupplierID != nil && *req.SupplierID != "" {
		if _, err := s.supplierRepo.GetByID(*req.SupplierID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrSupplierNotFound
			}
			return nil, err
		}
	}

	product := &entity.Product{
		ID:          uuid.New().String(),
		SKU:         req.SKU,
		Name:        req.Name,
		Description: req.Description,
		UnitCost:    req.UnitCost,
		SupplierID:  req.SupplierID,
	}

	if err := s.repo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

func (s *ProductService) GetByID(id string) (*entity.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductService) GetBySKU(sku string) (*entity.Product, error) {
	product, err := s.repo.GetBySKU(sku)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, sku)
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductService) List(params repository.ProductListParams) ([]entity.Product, int64, error) {
	return s.repo.List(params)
}
