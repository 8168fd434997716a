package handler

import "github.com/storefront/catalog-api/internal/core/domain"

// --- Request types ---

type createProductRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Category    string  `json:"category"    validate:"required"`
	InStock     *bool   `json:"inStock"`
}

// updateProductRequest is a patch: absent fields stay nil and are not applied.
// InStock is a pointer so that an explicit false is distinguishable from an
// omitted field.
type updateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	InStock     *bool    `json:"inStock"`
}

// --- Response envelopes ---

type productListResponse struct {
	Success bool             `json:"success"`
	Data    []domain.Product `json:"data"`
	Count   int              `json:"count"`
	Total   int              `json:"total"`
}

type productResponse struct {
	Success bool           `json:"success"`
	Data    domain.Product `json:"data"`
}

type productDeletedResponse struct {
	Success bool           `json:"success"`
	Data    domain.Product `json:"data"`
	Message string         `json:"message"`
}

type productCategoryResponse struct {
	Success  bool             `json:"success"`
	Data     []domain.Product `json:"data"`
	Count    int              `json:"count"`
	Category string           `json:"category"`
}
