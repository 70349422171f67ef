// Package router provides workout module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/octofit_tracker/internal/httpx"
	"github.com/festy23/octofit_tracker/internal/workout/handler"
	"github.com/festy23/octofit_tracker/internal/workout/repository"
	"github.com/festy23/octofit_tracker/internal/workout/service"
)

// RegisterRoutes registers workout module routes.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, logger *zap.SugaredLogger) {
	httpx.SetupValidator()

	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	workouts := r.Group("/workouts")
	workouts.GET("/", h.List)
	workouts.POST("/", h.Create)
	workouts.GET("/by_difficulty", h.ByDifficulty)
	workouts.GET("/by_type", h.ByType)
	workouts.GET("/:id/", h.Get)
	workouts.PUT("/:id/", h.Update)
	workouts.PATCH("/:id/", h.Patch)
	workouts.DELETE("/:id/", h.Delete)
}
