package handler

import (
	"net/http"
	"testing"

	"github.com/bitfantasy/nimo-scm/internal/scm/repository"
	"github.com/bitfantasy/nimo-scm/internal/scm/service"
	"github.com/bitfantasy/nimo-scm/internal/scm/testutil"
)

func setupSupplierTest(t *testing.T) *testutil.TestEnv {
	t.Helper()
	db := testutil.SetupTestDB(t)

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, db, nil)
	handlers := NewHandlers(services)

	router := testutil.SetupRouter()
	api := router.Group("/api/v1")
	api.POST("/suppliers", handlers.Supplier.Create)
	api.GET("/suppliers/:id", handlers.Supplier.Get)
	api.PUT("/suppliers/:id", handlers.Supplier.Update)

	return &testutil.TestEnv{DB: db, Router: router, T: t}
}

func TestUpdateSupplierEndpoint(t *testing.T) {
	env := setupSupplierTest(t)

	supplier := testutil.SeedSupplier(t, env.DB, "Acme Parts")

	body := map[string]interface{}{
		"name":    "Acme Components",
		"contact": "Jo Nakamura",
		"email":   "jo@acme.test",
		"phone":   "555-0199",
	}
	w := testutil.DoRequest(env.Router, http.MethodPut, "/api/v1/suppliers/"+supplier.ID, body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if data["name"].(string) != "Acme Components" {
		t.Errorf("unexpected name: %v", data["name"])
	}

	// the row is replaced, not duplicated
	w = testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/suppliers/"+supplier.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on reload, got %d: %s", w.Code, w.Body.String())
	}
	resp = testutil.ParseResponse(w)
	data = resp["data"].(map[string]interface{})
	if data["contact"].(string) != "Jo Nakamura" {
		t.Errorf("unexpected contact after reload: %v", data["contact"])
	}
}

func TestUpdateSupplierEndpointNotFound(t *testing.T) {
	env := setupSupplierTest(t)

	body := map[string]interface{}{"name": "Nobody"}
	w := testutil.DoRequest(env.Router, http.MethodPut, "/api/v1/suppliers/missing-id", body)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}
