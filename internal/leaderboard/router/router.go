// Package router provides leaderboard module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/octofit_tracker/internal/httpx"
	"github.com/festy23/octofit_tracker/internal/leaderboard/handler"
	"github.com/festy23/octofit_tracker/internal/leaderboard/repository"
	"github.com/festy23/octofit_tracker/internal/leaderboard/service"
)

// RegisterRoutes registers leaderboard module routes.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, logger *zap.SugaredLogger) {
	httpx.SetupValidator()

	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	leaderboard := r.Group("/leaderboard")
	leaderboard.GET("/", h.List)
	leaderboard.POST("/", h.Create)
	leaderboard.GET("/by_team", h.ByTeam)
	leaderboard.GET("/top", h.Top)
	leaderboard.GET("/:id/", h.Get)
	leaderboard.PUT("/:id/", h.Update)
	leaderboard.PATCH("/:id/", h.Patch)
	leaderboard.DELETE("/:id/", h.Delete)
}
