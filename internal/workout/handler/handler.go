// Package handler provides HTTP handlers for workout endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/octofit_tracker/internal/httpx"
	"github.com/festy23/octofit_tracker/internal/workout/model"
	"github.com/festy23/octofit_tracker/internal/workout/service"
)

// Handler handles HTTP requests for workout endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new workout handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// List handles GET /workouts/ request.
// @Summary List workouts
// @Tags Workouts
// @Produce json
// @Success 200 {array} model.Workout
// @Router /workouts/ [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) List(c *gin.Context) {
	workouts, err := h.service.List(c.Request.Context())
	if err != nil {
		httpx.WriteError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, workouts)
}

// Get handles GET /workouts/:id/ request.
// @Summary Get a workout
// @Tags Workouts
// @Produce json
// @Param id path string true "Workout ID"
// @Success 200 {object} model.Workout
// @Failure 404 {object} httpx.ErrorResponse
// @Router /workouts/{id}/ [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Get(c *gin.Context) {
	workout, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.WriteError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

// Create handles POST /workouts/ request.
// @Summary Create a workout
// @Tags Workouts
// @Accept json
// @Produce json
// @Param request body model.CreateWorkoutRequest true "Request"
// @Success 201 {object} model.Workout
// @Failure 400 {object} httpx.ErrorResponse
// @Router /workouts/ [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateWorkoutRequest
	if err := httpx.BindJSON(c, &req); err != nil {
		httpx.RespondBindError(c, err)
		return
	}

	workout, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		httpx.WriteError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, workout)
}

// Update handles PUT /workouts/:id/ request.
// @Summary Replace a workout
// @Tags Workouts
// @Accept json
// @Produce json
// @Param id path string true "Workout ID"
// @Param request body model.UpdateWorkoutRequest true "Request"
// @Success 200 {object} model.Workout
// @Router /workouts/{id}/ [put] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Update(c *gin.Context) {
	var req model.UpdateWorkoutRequest
	if err := httpx.BindJSON(c, &req); err != nil {
		httpx.RespondBindError(c, err)
		return
	}

	workout, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		httpx.WriteError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

// Patch handles PATCH /workouts/:id/ request.
// @Summary Partially update a workout
// @Tags Workouts
// @Accept json
// @Produce json
// @Param id path string true "Workout ID"
// @Param request body model.PatchWorkoutRequest true "Request"
// @Success 200 {object} model.Workout
// @Router /workouts/{id}/ [patch] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Patch(c *gin.Context) {
	var req model.PatchWorkoutRequest
	if err := httpx.BindJSON(c, &req); err != nil {
		httpx.RespondBindError(c, err)
		return
	}

	workout, err := h.service.Patch(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		httpx.WriteError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

// Delete handles DELETE /workouts/:id/ request.
// @Summary Delete a workout
// @Tags Workouts
// @Param id path string true "Workout ID"
// @Success 204
// @Router /workouts/{id}/ [delete] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httpx.WriteError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ByDifficulty handles GET /workouts/by_difficulty request.
// @Summary List workouts of a difficulty
// @Tags Workouts
// @Produce json
// @Param difficulty query string true "Beginner, Intermediate or Advanced"
// @Success 200 {array} model.Workout
// @Failure 400 {object} httpx.ErrorResponse "Missing difficulty parameter"
// @Router /workouts/by_difficulty [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ByDifficulty(c *gin.Context) {
	workouts, err := h.service.ByDifficulty(c.Request.Context(), c.Query("difficulty"))
	if err != nil {
		httpx.WriteError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, workouts)
}

// ByType handles GET /workouts/by_type request.
// @Summary List workouts of an activity type
// @Tags Workouts
// @Produce json
// @Param type query string true "Activity type"
// @Success 200 {array} model.Workout
// @Failure 400 {object} httpx.ErrorResponse "Missing type parameter"
// @Router /workouts/by_type [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ByType(c *gin.Context) {
	workouts, err := h.service.ByType(c.Request.Context(), c.Query("type"))
	if err != nil {
		httpx.WriteError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, workouts)
}
