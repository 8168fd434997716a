package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storefront/catalog-api/internal/api/metrics"
	"github.com/storefront/catalog-api/internal/core/domain"
	"github.com/storefront/catalog-api/internal/core/ports"
)

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /api/users.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {object}  userListResponse
// @Failure      500  {object}  errorEnvelope
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	result, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorEnvelope{Error: "Failed to fetch users"})
	}
	return c.JSON(http.StatusOK, userListResponse{
		Success: true,
		Data:    result.Items,
		Count:   result.Count,
	})
}

// Get handles GET /api/users/:id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      404  {object}  errorEnvelope
// @Router       /api/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, ok := parseID(c.Param("id"))
	if !ok {
		metrics.NotFoundTotal.WithLabelValues("user").Inc()
		return c.JSON(http.StatusNotFound, errorEnvelope{Error: "User not found"})
	}

	user, err := h.service.GetUser(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.NotFoundTotal.WithLabelValues("user").Inc()
			return c.JSON(http.StatusNotFound, errorEnvelope{Error: "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, errorEnvelope{Error: "Failed to fetch user"})
	}
	return c.JSON(http.StatusOK, userResponse{Success: true, Data: *user})
}

// Create handles POST /api/users.
//
// @Summary      Create a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User payload"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorEnvelope
// @Router       /api/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorEnvelope{Error: "Invalid request payload"})
	}
	if err := c.Validate(&req); err != nil {
		metrics.ValidationFailuresTotal.WithLabelValues("user").Inc()
		return c.JSON(http.StatusBadRequest, errorEnvelope{Error: "Name and email are required"})
	}

	user, err := h.service.CreateUser(c.Request().Context(), ports.CreateUserInput{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			metrics.ValidationFailuresTotal.WithLabelValues("user").Inc()
			return c.JSON(http.StatusBadRequest, errorEnvelope{Error: ve.Message})
		}
		return c.JSON(http.StatusInternalServerError, errorEnvelope{Error: "Failed to create user"})
	}

	metrics.ResourceMutationsTotal.WithLabelValues("user", "create").Inc()
	return c.JSON(http.StatusCreated, userResponse{Success: true, Data: *user})
}

// Update handles PUT /api/users/:id.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorEnvelope
// @Failure      404   {object}  errorEnvelope
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, ok := parseID(c.Param("id"))
	if !ok {
		metrics.NotFoundTotal.WithLabelValues("user").Inc()
		return c.JSON(http.StatusNotFound, errorEnvelope{Error: "User not found"})
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorEnvelope{Error: "Invalid request payload"})
	}

	user, err := h.service.UpdateUser(c.Request().Context(), id, ports.UpdateUserInput{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.NotFoundTotal.WithLabelValues("user").Inc()
			return c.JSON(http.StatusNotFound, errorEnvelope{Error: "User not found"})
		}
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			metrics.ValidationFailuresTotal.WithLabelValues("user").Inc()
			return c.JSON(http.StatusBadRequest, errorEnvelope{Error: ve.Message})
		}
		return c.JSON(http.StatusInternalServerError, errorEnvelope{Error: "Failed to update user"})
	}

	metrics.ResourceMutationsTotal.WithLabelValues("user", "update").Inc()
	return c.JSON(http.StatusOK, userResponse{Success: true, Data: *user})
}

// Delete handles DELETE /api/users/:id.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  userDeletedResponse
// @Failure      404  {object}  errorEnvelope
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, ok := parseID(c.Param("id"))
	if !ok {
		metrics.NotFoundTotal.WithLabelValues("user").Inc()
		return c.JSON(http.StatusNotFound, errorEnvelope{Error: "User not found"})
	}

	user, err := h.service.DeleteUser(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.NotFoundTotal.WithLabelValues("user").Inc()
			return c.JSON(http.StatusNotFound, errorEnvelope{Error: "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, errorEnvelope{Error: "Failed to delete user"})
	}

	metrics.ResourceMutationsTotal.WithLabelValues("user", "delete").Inc()
	return c.JSON(http.StatusOK, userDeletedResponse{
		Success: true,
		Data:    *user,
		Message: "User deleted successfully",
	})
}
