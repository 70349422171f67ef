// Package router provides user module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/octofit_tracker/internal/httpx"
	"github.com/festy23/octofit_tracker/internal/user/handler"
	"github.com/festy23/octofit_tracker/internal/user/repository"
	"github.com/festy23/octofit_tracker/internal/user/service"
)

// RegisterRoutes registers user module routes.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, logger *zap.SugaredLogger) {
	httpx.SetupValidator()

	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	users := r.Group("/users")
	users.GET("/", h.List)
	users.POST("/", h.Create)
	users.GET("/by_team", h.ByTeam)
	users.GET("/:id/", h.Get)
	users.PUT("/:id/", h.Update)
	users.PATCH("/:id/", h.Patch)
	users.DELETE("/:id/", h.Delete)
}
