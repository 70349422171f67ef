// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/octofit_tracker/internal/httpx"
	"github.com/festy23/octofit_tracker/internal/team/handler"
	"github.com/festy23/octofit_tracker/internal/team/repository"
	"github.com/festy23/octofit_tracker/internal/team/service"
)

// RegisterRoutes registers team module routes.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, logger *zap.SugaredLogger) {
	httpx.SetupValidator()

	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	teams := r.Group("/teams")
	teams.GET("/", h.List)
	teams.POST("/", h.Create)
	teams.GET("/:id/", h.Get)
	teams.PUT("/:id/", h.Update)
	teams.PATCH("/:id/", h.Patch)
	teams.DELETE("/:id/", h.Delete)
	teams.GET("/:id/members", h.Members)
}
