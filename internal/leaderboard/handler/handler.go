// Package handler provides HTTP handlers for leaderboard endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/octofit_tracker/internal/httpx"
	"github.com/festy23/octofit_tracker/internal/leaderboard/model"
	"github.com/festy23/octofit_tracker/internal/leaderboard/service"
)

// Handler handles HTTP requests for leaderboard endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new leaderboard handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// List handles GET /leaderboard/ request.
// @Summary List leaderboard entries by rank
// @Tags Leaderboard
// @Produce json
// @Success 200 {array} model.Entry
// @Router /leaderboard/ [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) List(c *gin.Context) {
	entries, err := h.service.List(c.Request.Context())
	if err != nil {
		httpx.WriteError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Get handles GET /leaderboard/:id/ request.
// @Summary Get a leaderboard entry
// @Tags Leaderboard
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} model.Entry
// @Failure 404 {object} httpx.ErrorResponse
// @Router /leaderboard/{id}/ [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Get(c *gin.Context) {
	entry, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.WriteError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// Create handles POST /leaderboard/ request.
// @Summary Create a leaderboard entry
// @Tags Leaderboard
// @Accept json
// @Produce json
// @Param request body model.CreateEntryRequest true "Request"
// @Success 201 {object} model.Entry
// @Failure 400 {object} httpx.ErrorResponse
// @Router /leaderboard/ [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateEntryRequest
	if err := httpx.BindJSON(c, &req); err != nil {
		httpx.RespondBindError(c, err)
		return
	}

	entry, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		httpx.WriteError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// Update handles PUT /leaderboard/:id/ request.
// @Summary Replace a leaderboard entry
// @Tags Leaderboard
// @Accept json
// @Produce json
// @Param id path string true "Entry ID"
// @Param request body model.UpdateEntryRequest true "Request"
// @Success 200 {object} model.Entry
// @Router /leaderboard/{id}/ [put] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Update(c *gin.Context) {
	var req model.UpdateEntryRequest
	if err := httpx.BindJSON(c, &req); err != nil {
		httpx.RespondBindError(c, err)
		return
	}

	entry, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		httpx.WriteError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// Patch handles PATCH /leaderboard/:id/ request.
// @Summary Partially update a leaderboard entry
// @Tags Leaderboard
// @Accept json
// @Produce json
// @Param id path string true "Entry ID"
// @Param request body model.PatchEntryRequest true "Request"
// @Success 200 {object} model.Entry
// @Router /leaderboard/{id}/ [patch] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Patch(c *gin.Context) {
	var req model.PatchEntryRequest
	if err := httpx.BindJSON(c, &req); err != nil {
		httpx.RespondBindError(c, err)
		return
	}

	entry, err := h.service.Patch(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		httpx.WriteError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// Delete handles DELETE /leaderboard/:id/ request.
// @Summary Delete a leaderboard entry
// @Tags Leaderboard
// @Param id path string true "Entry ID"
// @Success 204
// @Router /leaderboard/{id}/ [delete] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httpx.WriteError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ByTeam handles GET /leaderboard/by_team request.
// @Summary List a team's leaderboard entries by rank
// @Tags Leaderboard
// @Produce json
// @Param team query string true "Team name"
// @Success 200 {array} model.Entry
// @Failure 400 {object} httpx.ErrorResponse "Missing team parameter"
// @Router /leaderboard/by_team [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ByTeam(c *gin.Context) {
	entries, err := h.service.ByTeam(c.Request.Context(), c.Query("team"))
	if err != nil {
		httpx.WriteError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Top handles GET /leaderboard/top request.
// @Summary Best-ranked leaderboard entries
// @Tags Leaderboard
// @Produce json
// @Param limit query int false "Number of entries" default(10)
// @Success 200 {array} model.Entry
// @Failure 400 {object} httpx.ErrorResponse "Invalid limit"
// @Router /leaderboard/top [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Top(c *gin.Context) {
	entries, err := h.service.Top(c.Request.Context(), c.Query("limit"))
	if err != nil {
		httpx.WriteError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
