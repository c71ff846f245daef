package service

import (
	"errors"
	"fmt"

	"github.com/bitfantasy/nimo-scm/internal/scm/entity"
	"github.com/bitfantasy/nimo-scm/internal/scm/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SupplierService struct {
	repo *repository.SupplierRepository
}

func NewSupplierService(repo *repository.SupplierRepository) *SupplierService {
	return &SupplierService{repo: repo}
}

type CreateSupplierRequest struct {
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

func (s *SupplierService) Create(req CreateSupplierRequest) (*entity.Supplier, error) {
	supplier := &entity.Supplier{
		ID:      uuid.New().String(),
		Name:    req.Name,
		Contact: req.Contact,
		Email:   req.Email,
		Phone:   req.Phone,
	}

	if err := s.repo.Create(supplier); err != nil {
		return nil, fmt.Errorf("failed to create supplier: %w", err)
	}
	return supplier, nil
}

type UpdateSupplierRequest struct {
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

func (s *SupplierService) Update(id string, req UpdateSupplierRequest) (*entity.Supplier, error) {
	supplier, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, err
	}

	supplier.Name = req.Name
	supplier.Contact = req.Contact
	supplier.Email = req.Email
	supplier.Phone = req.Phone

	if err := s.repo.Update(supplier); err != nil {
		return nil, fmt.Errorf("failed to update supplier: %w", err)
	}
	return supplier, nil
}

func (s *SupplierService) GetByID(id string) (*entity.Supplier, error) {
	supplier, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, err
	}
	return supplier, nil
}

func (s *SupplierService) List(params repository.SupplierListParams) ([]entity.Supplier, int64, error) {
	return s.repo.List(params)
}
