// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/octofit_tracker/internal/httpx"
	teamModel "github.com/festy23/octofit_tracker/internal/team/model"
	"github.com/festy23/octofit_tracker/internal/team/service"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// List handles GET /teams/ request.
// @Summary List teams
// @Tags Teams
// @Produce json
// @Success 200 {array} teamModel.Team
// @Router /teams/ [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) List(c *gin.Context) {
	teams, err := h.service.List(c.Request.Context())
	if err != nil {
		httpx.WriteError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// Get handles GET /teams/:id/ request.
// @Summary Get a team
// @Tags Teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} teamModel.Team
// @Failure 404 {object} httpx.ErrorResponse
// @Router /teams/{id}/ [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Get(c *gin.Context) {
	team, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.WriteError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// Create handles POST /teams/ request.
// @Summary Create a team
// @Tags Teams
// @Accept json
// @Produce json
// @Param request body teamModel.CreateTeamRequest true "Request"
// @Success 201 {object} teamModel.Team
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse "Team name already taken"
// @Router /teams/ [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Create(c *gin.Context) {
	var req teamModel.CreateTeamRequest
	if err := httpx.BindJSON(c, &req); err != nil {
		httpx.RespondBindError(c, err)
		return
	}

	team, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		httpx.WriteError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, team)
}

// Update handles PUT /teams/:id/ request.
// @Summary Replace a team
// @Tags Teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param request body teamModel.UpdateTeamRequest true "Request"
// @Success 200 {object} teamModel.Team
// @Router /teams/{id}/ [put] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Update(c *gin.Context) {
	var req teamModel.UpdateTeamRequest
	if err := httpx.BindJSON(c, &req); err != nil {
		httpx.RespondBindError(c, err)
		return
	}

	team, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		httpx.WriteError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// Patch handles PATCH /teams/:id/ request.
// @Summary Partially update a team
// @Tags Teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param request body teamModel.PatchTeamRequest true "Request"
// @Success 200 {object} teamModel.Team
// @Router /teams/{id}/ [patch] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Patch(c *gin.Context) {
	var req teamModel.PatchTeamRequest
	if err := httpx.BindJSON(c, &req); err != nil {
		httpx.RespondBindError(c, err)
		return
	}

	team, err := h.service.Patch(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		httpx.WriteError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// Delete handles DELETE /teams/:id/ request.
// @Summary Delete a team
// @Tags Teams
// @Param id path string true "Team ID"
// @Success 204
// @Router /teams/{id}/ [delete] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httpx.WriteError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Members handles GET /teams/:id/members request.
// @Summary List the users of a team
// @Tags Teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {array} userModel.User
// @Failure 404 {object} httpx.ErrorResponse
// @Router /teams/{id}/members [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Members(c *gin.Context) {
	users, err := h.service.Members(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.WriteError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, users)
}
