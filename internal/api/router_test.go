package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/storefront/catalog-api/internal/core/service"
	"github.com/storefront/catalog-api/internal/infrastructure/store/memory"
)

// The router is shared by all tests in this file: the prometheus middleware
// registers collectors with the default registry, which tolerates only one
// registration per process.
var (
	routerOnce sync.Once
	router     *echo.Echo
)

func testRouter() *echo.Echo {
	routerOnce.Do(func() {
		log := zerolog.Nop()

		users := memory.NewUserRepository()
		users.Seed(memory.DefaultUsers())
		products := memory.NewProductRepository()
		products.Seed(memory.DefaultProducts())

		router = NewRouter(RouterConfig{
			Env:       "test",
			Version:   "1.0.0",
			BodyLimit: "10M",
		}, log,
			service.NewUserService(users, log),
			service.NewProductService(products, log),
		)
	})
	return router
}

func doRequest(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, req)

	var resp map[string]any
	if len(rec.Body.Bytes()) > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid json response for %s %s: %v", method, path, err)
		}
	}
	return rec, resp
}

func TestAPI_Root(t *testing.T) {
	rec, resp := doRequest(t, http.MethodGet, "/", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if resp["message"] != "Welcome to Catalog API" {
		t.Errorf("unexpected message: %v", resp["message"])
	}
	if resp["version"] != "1.0.0" || resp["environment"] != "test" {
		t.Errorf("unexpected version/environment: %v / %v", resp["version"], resp["environment"])
	}
}

func TestAPI_RouteNotFound(t *testing.T) {
	rec, resp := doRequest(t, http.MethodGet, "/api/unknown", "")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if resp["error"] != "Route not found" {
		t.Errorf("unexpected error: %v", resp["error"])
	}
	if resp["path"] != "/api/unknown" {
		t.Errorf("unexpected path: %v", resp["path"])
	}
}

func TestAPI_Health(t *testing.T) {
	rec, resp := doRequest(t, http.MethodGet, "/api/health", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if resp["status"] != "OK" {
		t.Errorf("expected status OK, got %v", resp["status"])
	}
	if resp["environment"] != "test" {
		t.Errorf("expected environment test, got %v", resp["environment"])
	}
}

func TestAPI_HealthProbes(t *testing.T) {
	rec, resp := doRequest(t, http.MethodGet, "/api/health/ready", "")
	if rec.Code != http.StatusOK || resp["status"] != "ready" {
		t.Errorf("ready probe: got %d %v", rec.Code, resp["status"])
	}

	rec, resp = doRequest(t, http.MethodGet, "/api/health/live", "")
	if rec.Code != http.StatusOK || resp["status"] != "alive" {
		t.Errorf("live probe: got %d %v", rec.Code, resp["status"])
	}

	rec, resp = doRequest(t, http.MethodGet, "/api/health/detailed", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("detailed: expected 200, got %d", rec.Code)
	}
	if _, ok := resp["memory"].(map[string]any); !ok {
		t.Error("detailed: missing memory section")
	}
}

// TestAPI_UserLifecycle walks a user through create, duplicate rejection,
// fetch, delete, and fetch-after-delete.
func TestAPI_UserLifecycle(t *testing.T) {
	rec, resp := doRequest(t, http.MethodPost, "/api/users", `{"name":"A","email":"a@x.com"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	data := resp["data"].(map[string]any)
	if data["role"] != "user" {
		t.Errorf("create: expected default role user, got %v", data["role"])
	}
	id := int(data["id"].(float64))
	if id <= 2 {
		t.Errorf("create: id must exceed seeded ids, got %d", id)
	}
	rec, resp = doRequest(t, http.MethodPost, "/api/users", `{"name":"B","email":"a@x.com"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate: expected 400, got %d", rec.Code)
	}
	if !strings.Contains(resp["error"].(string), "already exists") {
		t.Errorf("duplicate: error should mention already exists, got %v", resp["error"])
	}

	path := "/api/users/" + strconv.Itoa(id)
	rec, resp = doRequest(t, http.MethodGet, path, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", rec.Code)
	}
	fetched := resp["data"].(map[string]any)
	if fetched["name"] != "A" || fetched["email"] != "a@x.com" {
		t.Errorf("get: unexpected record %v", fetched)
	}

	rec, resp = doRequest(t, http.MethodDelete, path, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", rec.Code)
	}
	if resp["message"] != "User deleted successfully" {
		t.Errorf("delete: unexpected message %v", resp["message"])
	}

	rec, _ = doRequest(t, http.MethodGet, path, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete: expected 404, got %d", rec.Code)
	}
}

func TestAPI_UserPatchKeepsAbsentFields(t *testing.T) {
	rec, resp := doRequest(t, http.MethodPut, "/api/users/2", `{"name":"Janet"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	data := resp["data"].(map[string]any)
	if data["name"] != "Janet" {
		t.Errorf("expected patched name, got %v", data["name"])
	}
	if data["email"] != "jane@example.com" || data["role"] != "admin" {
		t.Errorf("absent fields must be unchanged: %v", data)
	}
	if data["updatedAt"] == nil {
		t.Error("updatedAt must be stamped")
	}
}

func TestAPI_ProductFilters(t *testing.T) {
	rec, resp := doRequest(t, http.MethodGet, "/api/products?inStock=true&category=Electronics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	items := resp["data"].([]any)
	for _, raw := range items {
		p := raw.(map[string]any)
		if p["inStock"] != true || p["category"] != "Electronics" {
			t.Errorf("record fails filters: %v", p)
		}
	}
	if int(resp["total"].(float64)) < len(items) {
		t.Errorf("total %v smaller than count %d", resp["total"], len(items))
	}
}

func TestAPI_ProductSortPriceDesc(t *testing.T) {
	rec, resp := doRequest(t, http.MethodGet, "/api/products?sortBy=price&order=desc", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	items := resp["data"].([]any)
	prev := -1.0
	for i, raw := range items {
		price := raw.(map[string]any)["price"].(float64)
		if i > 0 && price > prev {
			t.Fatalf("prices not non-increasing at %d: %v > %v", i, price, prev)
		}
		prev = price
	}
}

func TestAPI_ProductCategoryNonExistent(t *testing.T) {
	rec, resp := doRequest(t, http.MethodGet, "/api/products/category/NonExistent", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data, ok := resp["data"].([]any)
	if !ok || len(data) != 0 {
		t.Errorf("expected empty data array, got %v", resp["data"])
	}
	if resp["count"] != float64(0) {
		t.Errorf("expected count 0, got %v", resp["count"])
	}
	if resp["category"] != "NonExistent" {
		t.Errorf("expected echoed category, got %v", resp["category"])
	}
}

func TestAPI_NonNumericIDIsNotFound(t *testing.T) {
	rec, resp := doRequest(t, http.MethodGet, "/api/products/abc", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if resp["error"] != "Product not found" {
		t.Errorf("unexpected error: %v", resp["error"])
	}
}
