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
	"gorm.io/gorm/clause"
)

type ProcurementService struct {
	purchaseRepo *repository.PurchaseRepository
}

func NewProcurementService(purchaseRepo *repository.PurchaseRepository) *ProcurementService {
	return &ProcurementService{purchaseRepo: purchaseRepo}
}

type CreatePORequest struct {
	PONumber   string         `json:"po_number" binding:"required"`
	SupplierID *string        `json:"supplier_id"`
	Items      []CreatePOItem `json:"items" binding:"required,min=1,dive"`
}

type CreatePOItem struct {
	SKU      string  `json:"sku" binding:"required"`
	Quantity int     `json:"quantity" binding:"required,gt=0"`
	UnitCost float64 `json:"unit_cost" binding:"gte=0"`
}

// CreatePO creates an order header with its line items. Every SKU must
// resolve; an unknown SKU rolls the header back too, so no order is ever
// persisted without its items.
func (s *ProcurementService) CreatePO(ctx context.Context, req CreatePORequest) (*entity.PurchaseOrder, error) {
	po := &entity.PurchaseOrder{
		ID:         uuid.New().String(),
		PONumber:   req.PONumber,
		SupplierID: req.SupplierID,
	}

	err := s.purchaseRepo.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if req.SupplierID != nil && *req.SupplierID != "" {
			var supplier entity.Supplier
			if err := tx.Where("id = ?", *req.SupplierID).First(&supplier).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrSupplierNotFound
				}
				return err
			}
		}

		if err := s.purchaseRepo.WithTx(tx).Create(po); err != nil {
			return err
		}

		for _, line := range req.Items {
			var product entity.Product
			if err := tx.Where("sku = ?", line.SKU).First(&product).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: %s", ErrProductNotFound, line.SKU)
				}
				return err
			}
			item := entity.POItem{
				ID:        uuid.New().String(),
				POID:      po.ID,
				ProductID: product.ID,
				Quantity:  line.Quantity,
				UnitCost:  line.UnitCost,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.purchaseRepo.GetByID(po.ID)
}

func (s *ProcurementService) GetByID(id string) (*entity.PurchaseOrder, error) {
	po, err := s.purchaseRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPONotFound
		}
		return nil, err
	}
	return po, nil
}

func (s *ProcurementService) List(params repository.POListParams) ([]entity.PurchaseOrder, int64, error) {
	return s.purchaseRepo.List(params)
}

// ReceiptSummary reports what a receive call applied.
type ReceiptSummary struct {
	PONumber        string   `json:"po_number"`
	ItemsApplied    int      `json:"items_applied"`
	ItemsSkipped    int      `json:"items_skipped"`
	SkippedProducts []string `json:"skipped_products,omitempty"`
}

// Receive marks the order matching poNumber as received and credits each line
// item's quantity to its product's inventory, creating the inventory record on
// first receipt. Line items whose product no longer exists are skipped and
// reported in the summary. The whole operation is one transaction: the
// received flag and every touched inventory row commit together or not at all.
//
// The order row is locked and the flag is flipped with a conditional update,
// so of two concurrent receives for the same number exactly one applies
// inventory and the other sees ErrAlreadyReceived.
func (s *ProcurementService) Receive(ctx context.Context, poNumber string) (*ReceiptSummary, error) {
	summary := &ReceiptSummary{PONumber: poNumber}

	err := s.purchaseRepo.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var po entity.PurchaseOrder
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("po_number = ?", poNumber).
			First(&po).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPONotFound
			}
			return err
		}
		if po.Received {
			return ErrAlreadyReceived
		}

		// Conditional flip: the WHERE received=false guard makes the
		// transition single-shot even if the flag changed since the read.
		res := tx.Model(&entity.PurchaseOrder{}).
			Where("id = ? AND received = ?", po.ID, false).
			Update("received", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyReceived
		}

		var items []entity.POItem
		if err := tx.Where("po_id = ?", po.ID).Order("created_at ASC").Find(&items).Error; err != nil {
			return err
		}

		now := time.Now()
		for _, item := range items {
			var product entity.Product
			err := tx.Where("id = ?", item.ProductID).First(&product).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Product deleted since ordering: the line contributes nothing.
				summary.ItemsSkipped++
				summary.SkippedProducts = append(summary.SkippedProducts, item.ProductID)
				continue
			}
			if err != nil {
				return err
			}

			var rec entity.InventoryRecord
			err = tx.Where("product_id = ?", product.ID).First(&rec).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				rec = entity.InventoryRecord{
					ID:           uuid.New().String(),
					ProductID:    product.ID,
					QtyOnHand:    item.Quantity,
					ReorderPoint: entity.DefaultReorderPoint,
					LastUpdated:  now,
				}
				if err := tx.Create(&rec).Error; err != nil {
					return err
				}
			case err != nil:
				return err
			default:
				rec.QtyOnHand += item.Quantity
				rec.LastUpdated = now
				if err := tx.Save(&rec).Error; err != nil {
					return err
				}
			}
			summary.ItemsApplied++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return summary, nil
}
