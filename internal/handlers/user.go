// Package handlers contains HTTP request handlers for both REST surfaces.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GunarsK-portfolio/social-graph-service/internal/apperr"
	"github.com/GunarsK-portfolio/social-graph-service/internal/query"
	"github.com/GunarsK-portfolio/social-graph-service/internal/schema"
	"github.com/GunarsK-portfolio/social-graph-service/internal/service"
)

// UserHandler serves the plain user CRUD surface.
type UserHandler struct {
	users service.UserService
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(users service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// CreateUserRequest represents the user create payload. Age is required
// on this surface.
type CreateUserRequest struct {
	Name string `json:"name" binding:"required"`
	Age  *int   `json:"age" binding:"required"`
}

// UpdateUserRequest represents a partial user update payload.
type UpdateUserRequest struct {
	Name *string `json:"name"`
	Age  *int    `json:"age"`
}

// Create godoc
// @Summary Create user
// @Description Create a user with name and age
// @Tags users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "User fields"
// @Success 201 {object} models.User
// @Failure 400 {object} apperr.Error
// @Failure 422 {object} apperr.Error
// @Router /user [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.users.Create(c.Request.Context(), service.CreateUserInput{Name: req.Name, Age: req.Age})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// List godoc
// @Summary List users
// @Description List users, optionally filtered by partial name and exact age
// @Tags users
// @Produce json
// @Param name query string false "Case-insensitive name fragment"
// @Param age query int false "Exact age"
// @Success 200 {array} models.User
// @Failure 400 {object} apperr.Error
// @Router /user [get]
func (h *UserHandler) List(c *gin.Context) {
	filter := query.UserFilter{Name: c.Query("name")}
	if raw := c.Query("age"); raw != "" {
		age, err := strconv.Atoi(raw)
		if err != nil {
			respondBindError(c, err)
			return
		}
		filter.Age = &age
	}

	users, err := h.users.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Get godoc
// @Summary Get user by id
// @Tags users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} models.User
// @Failure 404 {object} apperr.Error
// @Router /user/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.users.GetByID(c.Request.Context(), c.Param("id"), nil)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Update godoc
// @Summary Update user
// @Description Update a subset of user fields; the response carries post-update state
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User id"
// @Param request body UpdateUserRequest true "Fields to change"
// @Success 200 {object} models.User
// @Failure 404 {object} apperr.Error
// @Failure 422 {object} apperr.Error
// @Router /user/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.users.Update(c.Request.Context(), c.Param("id"), service.UpdateUserInput{Name: req.Name, Age: req.Age})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Delete godoc
// @Summary Delete user
// @Description Soft-delete a user; the row is retained but excluded from default reads
// @Tags users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} map[string]int64
// @Failure 404 {object} apperr.Error
// @Router /user/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	count, err := h.users.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if count == 0 {
		respondError(c, apperr.NotFound(schema.EntityUser, c.Param("id")))
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": count})
}
