package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bitfantasy/nimo-scm/internal/scm/repository"
	"github.com/bitfantasy/nimo-scm/internal/scm/testutil"
	"gorm.io/gorm"
)

func setupInventory(t *testing.T) (*gorm.DB, *InventoryService) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	return db, NewInventoryService(repos.Inventory, repos.Product)
}

func TestAdjustCreatesRecord(t *testing.T) {
	db, svc := setupInventory(t)
	product := testutil.SeedProduct(t, db, "SKU-A", "Widget A", 2.50)

	rec, err := svc.Adjust(context.Background(), AdjustRequest{
		SKU:          "SKU-A",
		QtyOnHand:    40,
		ReorderPoint: 15,
	})
	if err != nil {
		t.Fatalf("adjust failed: %v", err)
	}
	if rec.ProductID != product.ID {
		t.Errorf("expected product %s, got %s", product.ID, rec.ProductID)
	}
	if rec.QtyOnHand != 40 || rec.ReorderPoint != 15 {
		t.Errorf("unexpected record: %+v", rec)
	}
}

// TestAdjustOverwrites verifies adjustment replaces values absolutely rather
// than accumulating like receiving does.
func TestAdjustOverwrites(t *testing.T) {
	db, svc := setupInventory(t)
	testutil.SeedProduct(t, db, "SKU-A", "Widget A", 2.50)

	if _, err := svc.Adjust(context.Background(), AdjustRequest{SKU: "SKU-A", QtyOnHand: 40, ReorderPoint: 15}); err != nil {
		t.Fatalf("first adjust failed: %v", err)
	}
	rec, err := svc.Adjust(context.Background(), AdjustRequest{SKU: "SKU-A", QtyOnHand: 12, ReorderPoint: 8})
	if err != nil {
		t.Fatalf("second adjust failed: %v", err)
	}
	if rec.QtyOnHand != 12 || rec.ReorderPoint != 8 {
		t.Errorf("expected overwrite to 12/8, got %d/%d", rec.QtyOnHand, rec.ReorderPoint)
	}
}

// TestAdjustIdempotent verifies repeating the same adjustment changes nothing
// but the timestamp.
func TestAdjustIdempotent(t *testing.T) {
	db, svc := setupInventory(t)
	testutil.SeedProduct(t, db, "SKU-A", "Widget A", 2.50)

	first, err := svc.Adjust(context.Background(), AdjustRequest{SKU: "SKU-A", QtyOnHand: 40, ReorderPoint: 15})
	if err != nil {
		t.Fatalf("first adjust failed: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	second, err := svc.Adjust(context.Background(), AdjustRequest{SKU: "SKU-A", QtyOnHand: 40, ReorderPoint: 15})
	if err != nil {
		t.Fatalf("second adjust failed: %v", err)
	}

	if second.ID != first.ID {
		t.Error("adjustment must reuse the single record per product")
	}
	if second.QtyOnHand != 40 || second.ReorderPoint != 15 {
		t.Errorf("unexpected record after repeat: %+v", second)
	}
	if !second.LastUpdated.After(first.LastUpdated) {
		t.Error("last_updated must be refreshed")
	}
}

// TestAdjustLowStockFlag verifies the at-or-below reorder comparison on the
// adjusted record.
func TestAdjustLowStockFlag(t *testing.T) {
	db, svc := setupInventory(t)
	testutil.SeedProduct(t, db, "SKU-A", "Widget A", 2.50)

	rec, err := svc.Adjust(context.Background(), AdjustRequest{SKU: "SKU-A", QtyOnHand: 10, ReorderPoint: 10})
	if err != nil {
		t.Fatalf("adjust failed: %v", err)
	}
	if !rec.LowStock() {
		t.Error("10 on hand at reorder point 10 must count as low stock")
	}

	rec, err = svc.Adjust(context.Background(), AdjustRequest{SKU: "SKU-A", QtyOnHand: 11, ReorderPoint: 10})
	if err != nil {
		t.Fatalf("adjust failed: %v", err)
	}
	if rec.LowStock() {
		t.Error("11 on hand above reorder point 10 must not count as low stock")
	}
}

func TestAdjustUnknownSKU(t *testing.T) {
	_, svc := setupInventory(t)

	_, err := svc.Adjust(context.Background(), AdjustRequest{SKU: "SKU-MISSING", QtyOnHand: 1, ReorderPoint: 1})
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
