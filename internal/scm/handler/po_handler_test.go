package handler

import (
	"net/http"
	"testing"

	"github.com/bitfantasy/nimo-scm/internal/scm/repository"
	"github.com/bitfantasy/nimo-scm/internal/scm/service"
	"github.com/bitfantasy/nimo-scm/internal/scm/testutil"
)

func setupPOTest(t *testing.T) *testutil.TestEnv {
	t.Helper()
	db := testutil.SetupTestDB(t)

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, db, nil)
	handlers := NewHandlers(services)

	router := testutil.SetupRouter()
	api := router.Group("/api/v1")
	api.POST("/purchase-orders", handlers.PO.Create)
	api.POST("/purchase-orders/receive", handlers.PO.Receive)
	api.GET("/purchase-orders/:id", handlers.PO.Get)

	return &testutil.TestEnv{DB: db, Router: router, T: t}
}

func TestReceiveEndpoint(t *testing.T) {
	env := setupPOTest(t)

	product := testutil.SeedProduct(t, env.DB, "SKU-A", "Widget A", 2.50)
	testutil.SeedPO(t, env.DB, "PO-100", nil, testutil.POLine{ProductID: product.ID, Quantity: 5})

	body := map[string]interface{}{"po_number": "PO-100"}
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/purchase-orders/receive", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if data["items_applied"].(float64) != 1 {
		t.Fatalf("expected 1 item applied, got %v", data["items_applied"])
	}

	// second receive conflicts
	w = testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/purchase-orders/receive", body)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 on repeat receive, got %d: %s", w.Code, w.Body.String())
	}
}

func TestReceiveEndpointUnknownPO(t *testing.T) {
	env := setupPOTest(t)

	body := map[string]interface{}{"po_number": "PO-MISSING"}
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/purchase-orders/receive", body)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestReceiveEndpointValidation(t *testing.T) {
	env := setupPOTest(t)

	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/purchase-orders/receive", map[string]interface{}{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on missing po_number, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreatePOEndpoint(t *testing.T) {
	env := setupPOTest(t)

	supplier := testutil.SeedSupplier(t, env.DB, "Acme Parts")
	testutil.SeedProduct(t, env.DB, "SKU-A", "Widget A", 2.50)

	body := map[string]interface{}{
		"po_number":   "PO-700",
		"supplier_id": supplier.ID,
		"items": []map[string]interface{}{
			{"sku": "SKU-A", "quantity": 3, "unit_cost": 2.10},
		},
	}
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/purchase-orders", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if data["po_number"].(string) != "PO-700" {
		t.Fatalf("unexpected po_number: %v", data["po_number"])
	}

	// unknown SKU rejects the whole order
	body["po_number"] = "PO-701"
	body["items"] = []map[string]interface{}{{"sku": "SKU-NOPE", "quantity": 1}}
	w = testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/purchase-orders", body)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on unknown sku, got %d: %s", w.Code, w.Body.String())
	}
}
