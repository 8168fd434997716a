package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/storefront/catalog-api/internal/core/domain"
	"github.com/storefront/catalog-api/internal/core/ports"
)

type stubProductService struct {
	listFn       func(ctx context.Context, input ports.ListProductsInput) (*ports.ListProductsResult, error)
	getFn        func(ctx context.Context, id int) (*domain.Product, error)
	createFn     func(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error)
	updateFn     func(ctx context.Context, id int, input ports.UpdateProductInput) (*domain.Product, error)
	deleteFn     func(ctx context.Context, id int) (*domain.Product, error)
	byCategoryFn func(ctx context.Context, category string) (*ports.CategoryResult, error)
}

func (s *stubProductService) ListProducts(ctx context.Context, input ports.ListProductsInput) (*ports.ListProductsResult, error) {
	return s.listFn(ctx, input)
}

func (s *stubProductService) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	return s.getFn(ctx, id)
}

func (s *stubProductService) CreateProduct(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	return s.createFn(ctx, input)
}

func (s *stubProductService) UpdateProduct(ctx context.Context, id int, input ports.UpdateProductInput) (*domain.Product, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubProductService) DeleteProduct(ctx context.Context, id int) (*domain.Product, error) {
	return s.deleteFn(ctx, id)
}

func (s *stubProductService) ProductsByCategory(ctx context.Context, category string) (*ports.CategoryResult, error) {
	return s.byCategoryFn(ctx, category)
}

func TestProductHandler_List_ParsesQueryParams(t *testing.T) {
	var got ports.ListProductsInput
	stub := &stubProductService{
		listFn: func(ctx context.Context, input ports.ListProductsInput) (*ports.ListProductsResult, error) {
			got = input
			return &ports.ListProductsResult{Items: []domain.Product{}, Count: 0, Total: 3}, nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/products?category=Electronics&inStock=false&sortBy=price&order=desc", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.Category != "Electronics" || got.SortBy != "price" || got.Order != "desc" {
		t.Errorf("unexpected input: %+v", got)
	}
	if got.InStock == nil || *got.InStock != false {
		t.Errorf("inStock=false must parse to a false pointer, got %v", got.InStock)
	}
}

func TestProductHandler_List_NoInStockParamStaysNil(t *testing.T) {
	stub := &stubProductService{
		listFn: func(ctx context.Context, input ports.ListProductsInput) (*ports.ListProductsResult, error) {
			if input.InStock != nil {
				t.Fatalf("expected nil InStock, got %v", *input.InStock)
			}
			return &ports.ListProductsResult{Items: []domain.Product{}}, nil
		},
	}
	h := NewProductHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/api/products", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestProductHandler_List_EnvelopeIncludesTotal(t *testing.T) {
	stub := &stubProductService{
		listFn: func(ctx context.Context, input ports.ListProductsInput) (*ports.ListProductsResult, error) {
			return &ports.ListProductsResult{
				Items: []domain.Product{{ID: 1, Name: "Laptop"}},
				Count: 1,
				Total: 3,
			}, nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/products?category=Elec", "")
	_ = h.List(c)

	resp := decodeBody(t, rec)
	if resp["count"] != float64(1) || resp["total"] != float64(3) {
		t.Errorf("expected count=1 total=3, got count=%v total=%v", resp["count"], resp["total"])
	}
}

func TestProductHandler_Create_MissingFields(t *testing.T) {
	stub := &stubProductService{
		createFn: func(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
			t.Fatal("service must not be called for an invalid payload")
			return nil, nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/products", `{"name":"Desk","price":10}`)
	_ = h.Create(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	resp := decodeBody(t, rec)
	if resp["error"] != "Name, description, price, and category are required" {
		t.Errorf("unexpected error message: %v", resp["error"])
	}
}

func TestProductHandler_Create_NegativePrice(t *testing.T) {
	stub := &stubProductService{
		createFn: func(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
			t.Fatal("service must not be called for an invalid payload")
			return nil, nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/products",
		`{"name":"Desk","description":"d","price":-5,"category":"Furniture"}`)
	_ = h.Create(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	resp := decodeBody(t, rec)
	if resp["error"] != "Price must be a positive number" {
		t.Errorf("unexpected error message: %v", resp["error"])
	}
}

func TestProductHandler_Create_Success(t *testing.T) {
	stub := &stubProductService{
		createFn: func(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
			if input.InStock != nil {
				t.Fatalf("absent inStock must stay nil, got %v", *input.InStock)
			}
			return &domain.Product{ID: 4, Name: input.Name, Description: input.Description,
				Price: input.Price, Category: input.Category, InStock: true}, nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/products",
		`{"name":"Desk","description":"Standing desk","price":450,"category":"Furniture"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	resp := decodeBody(t, rec)
	data := resp["data"].(map[string]any)
	if data["inStock"] != true {
		t.Errorf("expected inStock default true, got %v", data["inStock"])
	}
}

func TestProductHandler_Update_InStockFalseForwarded(t *testing.T) {
	stub := &stubProductService{
		updateFn: func(ctx context.Context, id int, input ports.UpdateProductInput) (*domain.Product, error) {
			if input.InStock == nil || *input.InStock != false {
				t.Fatalf("inStock=false must reach the service as a false pointer: %+v", input)
			}
			return &domain.Product{ID: id, Name: "Laptop", InStock: false}, nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/api/products/1", `{"inStock":false}`)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProductHandler_Update_NotFound(t *testing.T) {
	stub := &stubProductService{
		updateFn: func(ctx context.Context, id int, input ports.UpdateProductInput) (*domain.Product, error) {
			return nil, domain.ErrProductNotFound
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/api/products/99", `{"name":"X"}`)
	c.SetParamNames("id")
	c.SetParamValues("99")

	_ = h.Update(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestProductHandler_ByCategory_Envelope(t *testing.T) {
	stub := &stubProductService{
		byCategoryFn: func(ctx context.Context, category string) (*ports.CategoryResult, error) {
			if category != "Kitchen" {
				t.Fatalf("expected category Kitchen, got %q", category)
			}
			return &ports.CategoryResult{
				Items: []domain.Product{{ID: 3, Name: "Coffee Mug", Category: "Kitchen"}},
				Count: 1,
			}, nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/products/category/Kitchen", "")
	c.SetParamNames("category")
	c.SetParamValues("Kitchen")

	_ = h.ByCategory(c)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decodeBody(t, rec)
	if resp["category"] != "Kitchen" || resp["count"] != float64(1) {
		t.Errorf("unexpected envelope: %v", resp)
	}
}

func TestProductHandler_ByCategory_EmptyIsOK(t *testing.T) {
	stub := &stubProductService{
		byCategoryFn: func(ctx context.Context, category string) (*ports.CategoryResult, error) {
			return &ports.CategoryResult{Items: []domain.Product{}, Count: 0}, nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/products/category/NonExistent", "")
	c.SetParamNames("category")
	c.SetParamValues("NonExistent")

	_ = h.ByCategory(c)

	if rec.Code != http.StatusOK {
		t.Fatalf("empty category must still be 200, got %d", rec.Code)
	}
	resp := decodeBody(t, rec)
	data, ok := resp["data"].([]any)
	if !ok || len(data) != 0 {
		t.Errorf("expected empty data array, got %v", resp["data"])
	}
}
