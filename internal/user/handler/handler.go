// Package handler provides HTTP handlers for user endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/octofit_tracker/internal/httpx"
	"github.com/festy23/octofit_tracker/internal/user/model"
	"github.com/festy23/octofit_tracker/internal/user/service"
)

// Handler handles HTTP requests for user endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new user handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// List handles GET /users/ request.
// @Summary List users
// @Tags Users
// @Produce json
// @Success 200 {array} model.User
// @Router /users/ [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		httpx.WriteError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Get handles GET /users/:id/ request.
// @Summary Get a user
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} model.User
// @Failure 404 {object} httpx.ErrorResponse
// @Router /users/{id}/ [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Get(c *gin.Context) {
	user, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.WriteError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Create handles POST /users/ request.
// @Summary Create a user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body model.CreateUserRequest true "Request"
// @Success 201 {object} model.User
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse "Email already registered"
// @Router /users/ [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateUserRequest
	if err := httpx.BindJSON(c, &req); err != nil {
		httpx.RespondBindError(c, err)
		return
	}

	user, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		httpx.WriteError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Update handles PUT /users/:id/ request.
// @Summary Replace a user
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body model.UpdateUserRequest true "Request"
// @Success 200 {object} model.User
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /users/{id}/ [put] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Update(c *gin.Context) {
	var req model.UpdateUserRequest
	if err := httpx.BindJSON(c, &req); err != nil {
		httpx.RespondBindError(c, err)
		return
	}

	user, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		httpx.WriteError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Patch handles PATCH /users/:id/ request.
// @Summary Partially update a user
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body model.PatchUserRequest true "Request"
// @Success 200 {object} model.User
// @Router /users/{id}/ [patch] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Patch(c *gin.Context) {
	var req model.PatchUserRequest
	if err := httpx.BindJSON(c, &req); err != nil {
		httpx.RespondBindError(c, err)
		return
	}

	user, err := h.service.Patch(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		httpx.WriteError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /users/:id/ request.
// @Summary Delete a user
// @Tags Users
// @Param id path string true "User ID"
// @Success 204
// @Failure 404 {object} httpx.ErrorResponse
// @Router /users/{id}/ [delete] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httpx.WriteError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ByTeam handles GET /users/by_team request.
// @Summary List users of a team
// @Tags Users
// @Produce json
// @Param team query string true "Team name"
// @Success 200 {array} model.User
// @Failure 400 {object} httpx.ErrorResponse "Missing team parameter"
// @Router /users/by_team [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ByTeam(c *gin.Context) {
	users, err := h.service.ListByTeam(c.Request.Context(), c.Query("team"))
	if err != nil {
		httpx.WriteError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, users)
}
