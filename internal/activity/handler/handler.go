// Package handler provides HTTP handlers for activity endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/octofit_tracker/internal/activity/model"
	"github.com/festy23/octofit_tracker/internal/activity/service"
	"github.com/festy23/octofit_tracker/internal/httpx"
)

// Handler handles HTTP requests for activity endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new activity handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// List handles GET /activities/ request.
// @Summary List activities
// @Tags Activities
// @Produce json
// @Success 200 {array} model.Activity
// @Router /activities/ [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) List(c *gin.Context) {
	h.respond(c, http.StatusOK)(h.service.List(c.Request.Context()))
}

// Get handles GET /activities/:id/ request.
// @Summary Get an activity
// @Tags Activities
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} model.Activity
// @Failure 404 {object} httpx.ErrorResponse
// @Router /activities/{id}/ [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Get(c *gin.Context) {
	h.respond(c, http.StatusOK)(h.service.Get(c.Request.Context(), c.Param("id")))
}

// Create handles POST /activities/ request.
// @Summary Log an activity
// @Tags Activities
// @Accept json
// @Produce json
// @Param request body model.CreateActivityRequest true "Request"
// @Success 201 {object} model.Activity
// @Failure 400 {object} httpx.ErrorResponse
// @Router /activities/ [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateActivityRequest
	if err := httpx.BindJSON(c, &req); err != nil {
		httpx.RespondBindError(c, err)
		return
	}
	h.respond(c, http.StatusCreated)(h.service.Create(c.Request.Context(), &req))
}

// Update handles PUT /activities/:id/ request.
// @Summary Replace an activity
// @Tags Activities
// @Accept json
// @Produce json
// @Param id path string true "Activity ID"
// @Param request body model.UpdateActivityRequest true "Request"
// @Success 200 {object} model.Activity
// @Router /activities/{id}/ [put] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Update(c *gin.Context) {
	var req model.UpdateActivityRequest
	if err := httpx.BindJSON(c, &req); err != nil {
		httpx.RespondBindError(c, err)
		return
	}
	h.respond(c, http.StatusOK)(h.service.Update(c.Request.Context(), c.Param("id"), &req))
}

// Patch handles PATCH /activities/:id/ request.
// @Summary Partially update an activity
// @Tags Activities
// @Accept json
// @Produce json
// @Param id path string true "Activity ID"
// @Param request body model.PatchActivityRequest true "Request"
// @Success 200 {object} model.Activity
// @Router /activities/{id}/ [patch] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Patch(c *gin.Context) {
	var req model.PatchActivityRequest
	if err := httpx.BindJSON(c, &req); err != nil {
		httpx.RespondBindError(c, err)
		return
	}
	h.respond(c, http.StatusOK)(h.service.Patch(c.Request.Context(), c.Param("id"), &req))
}

// Delete handles DELETE /activities/:id/ request.
// @Summary Delete an activity
// @Tags Activities
// @Param id path string true "Activity ID"
// @Success 204
// @Router /activities/{id}/ [delete] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httpx.WriteError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ByUser handles GET /activities/by_user request.
// @Summary List a user's activities, most recent first
// @Tags Activities
// @Produce json
// @Param email query string true "User email"
// @Success 200 {array} model.Activity
// @Failure 400 {object} httpx.ErrorResponse "Missing email parameter"
// @Router /activities/by_user [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ByUser(c *gin.Context) {
	h.respond(c, http.StatusOK)(h.service.ByUser(c.Request.Context(), c.Query("email")))
}

// ByType handles GET /activities/by_type request.
// @Summary List activities of a type, most recent first
// @Tags Activities
// @Produce json
// @Param type query string true "Activity type"
// @Success 200 {array} model.Activity
// @Failure 400 {object} httpx.ErrorResponse "Missing type parameter"
// @Router /activities/by_type [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ByType(c *gin.Context) {
	h.respond(c, http.StatusOK)(h.service.ByType(c.Request.Context(), c.Query("type")))
}

// respond returns a writer for a (value, error) pair: the value with status on
// success, the mapped error body otherwise.
func (h *Handler) respond(c *gin.Context, status int) func(any, error) {
	return func(v any, err error) {
		if err != nil {
			httpx.WriteError(c, h.logger, err)
			return
		}
		c.JSON(status, v)
	}
}
