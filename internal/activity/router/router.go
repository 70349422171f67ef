// Package router provides activity module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/octofit_tracker/internal/activity/handler"
	"github.com/festy23/octofit_tracker/internal/activity/repository"
	"github.com/festy23/octofit_tracker/internal/activity/service"
	"github.com/festy23/octofit_tracker/internal/httpx"
)

// RegisterRoutes registers activity module routes.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, logger *zap.SugaredLogger) {
	httpx.SetupValidator()

	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	activities := r.Group("/activities")
	activities.GET("/", h.List)
	activities.POST("/", h.Create)
	activities.GET("/by_user", h.ByUser)
	activities.GET("/by_type", h.ByType)
	activities.GET("/:id/", h.Get)
	activities.PUT("/:id/", h.Update)
	activities.PATCH("/:id/", h.Patch)
	activities.DELETE("/:id/", h.Delete)
}
