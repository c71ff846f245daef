package service

import (
	"context"
	"testing"

	"github.com/bitfantasy/nimo-scm/internal/scm/entity"
	"github.com/bitfantasy/nimo-scm/internal/scm/repository"
	"github.com/bitfantasy/nimo-scm/internal/scm/testutil"
)

func TestDashboardOverview(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	svc := NewDashboardService(repos.Product, repos.Supplier, repos.Inventory, repos.Purchase, nil)

	testutil.SeedSupplier(t, db, "Acme Parts")
	low := testutil.SeedProduct(t, db, "SKU-LOW", "Low stock", 1.00)
	ok := testutil.SeedProduct(t, db, "SKU-OK", "Healthy stock", 1.00)

	if err := db.Create(&entity.InventoryRecord{ID: "inv-1", ProductID: low.ID, QtyOnHand: 3, ReorderPoint: 10}).Error; err != nil {
		t.Fatalf("failed to seed inventory: %v", err)
	}
	if err := db.Create(&entity.InventoryRecord{ID: "inv-2", ProductID: ok.ID, QtyOnHand: 50, ReorderPoint: 10}).Error; err != nil {
		t.Fatalf("failed to seed inventory: %v", err)
	}

	ov, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview failed: %v", err)
	}
	if ov.TotalProducts != 2 {
		t.Errorf("expected 2 products, got %d", ov.TotalProducts)
	}
	if ov.TotalSuppliers != 1 {
		t.Errorf("expected 1 supplier, got %d", ov.TotalSuppliers)
	}
	if ov.LowStockSKUs != 1 {
		t.Errorf("expected 1 low-stock SKU, got %d", ov.LowStockSKUs)
	}
}

func TestDashboardRecentOrders(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	svc := NewDashboardService(repos.Product, repos.Supplier, repos.Inventory, repos.Purchase, nil)

	product := testutil.SeedProduct(t, db, "SKU-A", "Widget A", 2.50)
	for _, num := range []string{"PO-1", "PO-2", "PO-3"} {
		testutil.SeedPO(t, db, num, nil, testutil.POLine{ProductID: product.ID, Quantity: 1})
	}

	orders, err := svc.RecentOrders(2)
	if err != nil {
		t.Fatalf("recent orders failed: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
}
