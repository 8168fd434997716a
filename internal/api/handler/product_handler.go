package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storefront/catalog-api/internal/api/metrics"
	"github.com/storefront/catalog-api/internal/core/domain"
	"github.com/storefront/catalog-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for product operations.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List handles GET /api/products with optional category, inStock, sortBy and
// order query parameters.
//
// @Summary      List products with filtering and sorting
// @Tags         products
// @Produce      json
// @Param        category  query     string  false  "Case-insensitive substring filter on category"
// @Param        inStock   query     bool    false  "Filter by stock status"
// @Param        sortBy    query     string  false  "Sort field (default name)"
// @Param        order     query     string  false  "asc or desc (default asc)"
// @Success      200       {object}  productListResponse
// @Failure      500       {object}  errorEnvelope
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	input := ports.ListProductsInput{
		Category: c.QueryParam("category"),
		SortBy:   c.QueryParam("sortBy"),
		Order:    c.QueryParam("order"),
	}
	// Any explicit inStock value other than "true" filters for out-of-stock,
	// mirroring the original string comparison on the query parameter.
	if raw := c.QueryParam("inStock"); raw != "" {
		inStock := raw == "true"
		input.InStock = &inStock
	}

	result, err := h.service.ListProducts(c.Request().Context(), input)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorEnvelope{Error: "Failed to fetch products"})
	}
	return c.JSON(http.StatusOK, productListResponse{
		Success: true,
		Data:    result.Items,
		Count:   result.Count,
		Total:   result.Total,
	})
}

// Get handles GET /api/products/:id.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  productResponse
// @Failure      404  {object}  errorEnvelope
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id, ok := parseID(c.Param("id"))
	if !ok {
		metrics.NotFoundTotal.WithLabelValues("product").Inc()
		return c.JSON(http.StatusNotFound, errorEnvelope{Error: "Product not found"})
	}

	product, err := h.service.GetProduct(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			metrics.NotFoundTotal.WithLabelValues("product").Inc()
			return c.JSON(http.StatusNotFound, errorEnvelope{Error: "Product not found"})
		}
		return c.JSON(http.StatusInternalServerError, errorEnvelope{Error: "Failed to fetch product"})
	}
	return c.JSON(http.StatusOK, productResponse{Success: true, Data: *product})
}

// Create handles POST /api/products.
//
// @Summary      Create a new product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      createProductRequest  true  "Product payload"
// @Success      201   {object}  productResponse
// @Failure      400   {object}  errorEnvelope
// @Router       /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorEnvelope{Error: "Invalid request payload"})
	}
	if err := c.Validate(&req); err != nil {
		metrics.ValidationFailuresTotal.WithLabelValues("product").Inc()
		if req.Name == "" || req.Description == "" || req.Price == 0 || req.Category == "" {
			return c.JSON(http.StatusBadRequest, errorEnvelope{Error: "Name, description, price, and category are required"})
		}
		return c.JSON(http.StatusBadRequest, errorEnvelope{Error: "Price must be a positive number"})
	}

	product, err := h.service.CreateProduct(c.Request().Context(), ports.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		InStock:     req.InStock,
	})
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			metrics.ValidationFailuresTotal.WithLabelValues("product").Inc()
			return c.JSON(http.StatusBadRequest, errorEnvelope{Error: ve.Message})
		}
		return c.JSON(http.StatusInternalServerError, errorEnvelope{Error: "Failed to create product"})
	}

	metrics.ResourceMutationsTotal.WithLabelValues("product", "create").Inc()
	return c.JSON(http.StatusCreated, productResponse{Success: true, Data: *product})
}

// Update handles PUT /api/products/:id.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path      int                   true  "Product id"
// @Param        body  body      updateProductRequest  true  "Fields to update"
// @Success      200   {object}  productResponse
// @Failure      400   {object}  errorEnvelope
// @Failure      404   {object}  errorEnvelope
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	id, ok := parseID(c.Param("id"))
	if !ok {
		metrics.NotFoundTotal.WithLabelValues("product").Inc()
		return c.JSON(http.StatusNotFound, errorEnvelope{Error: "Product not found"})
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorEnvelope{Error: "Invalid request payload"})
	}

	product, err := h.service.UpdateProduct(c.Request().Context(), id, ports.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		InStock:     req.InStock,
	})
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			metrics.NotFoundTotal.WithLabelValues("product").Inc()
			return c.JSON(http.StatusNotFound, errorEnvelope{Error: "Product not found"})
		}
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			metrics.ValidationFailuresTotal.WithLabelValues("product").Inc()
			return c.JSON(http.StatusBadRequest, errorEnvelope{Error: ve.Message})
		}
		return c.JSON(http.StatusInternalServerError, errorEnvelope{Error: "Failed to update product"})
	}

	metrics.ResourceMutationsTotal.WithLabelValues("product", "update").Inc()
	return c.JSON(http.StatusOK, productResponse{Success: true, Data: *product})
}

// Delete handles DELETE /api/products/:id.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  productDeletedResponse
// @Failure      404  {object}  errorEnvelope
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	id, ok := parseID(c.Param("id"))
	if !ok {
		metrics.NotFoundTotal.WithLabelValues("product").Inc()
		return c.JSON(http.StatusNotFound, errorEnvelope{Error: "Product not found"})
	}

	product, err := h.service.DeleteProduct(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			metrics.NotFoundTotal.WithLabelValues("product").Inc()
			return c.JSON(http.StatusNotFound, errorEnvelope{Error: "Product not found"})
		}
		return c.JSON(http.StatusInternalServerError, errorEnvelope{Error: "Failed to delete product"})
	}

	metrics.ResourceMutationsTotal.WithLabelValues("product", "delete").Inc()
	return c.JSON(http.StatusOK, productDeletedResponse{
		Success: true,
		Data:    *product,
		Message: "Product deleted successfully",
	})
}

// ByCategory handles GET /api/products/category/:category — exact
// case-insensitive match, 200 with an empty array when nothing matches.
//
// @Summary      List products in a category
// @Tags         products
// @Produce      json
// @Param        category  path      string  true  "Category name (case-insensitive)"
// @Success      200       {object}  productCategoryResponse
// @Router       /api/products/category/{category} [get]
func (h *ProductHandler) ByCategory(c echo.Context) error {
	category := c.Param("category")

	result, err := h.service.ProductsByCategory(c.Request().Context(), category)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorEnvelope{Error: "Failed to fetch products by category"})
	}
	return c.JSON(http.StatusOK, productCategoryResponse{
		Success:  true,
		Data:     result.Items,
		Count:    result.Count,
		Category: category,
	})
}
