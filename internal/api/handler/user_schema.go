package handler

import "github.com/storefront/catalog-api/internal/core/domain"

// errorEnvelope is the standard failure envelope: {"success":false,"error":"..."}.
type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// --- Request types ---

type createUserRequest struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required"`
	Role  string `json:"role"`
}

// updateUserRequest is a patch: absent fields stay nil and are not applied.
type updateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Role  *string `json:"role"`
}

// --- Response envelopes ---

type userListResponse struct {
	Success bool          `json:"success"`
	Data    []domain.User `json:"data"`
	Count   int           `json:"count"`
}

type userResponse struct {
	Success bool        `json:"success"`
	Data    domain.User `json:"data"`
}

type userDeletedResponse struct {
	Success bool        `json:"success"`
	Data    domain.User `json:"data"`
	Message string      `json:"message"`
}
