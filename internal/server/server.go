// Package server assembles the HTTP engine and runs it with graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	activityRouter "github.com/festy23/octofit_tracker/internal/activity/router"
	"github.com/festy23/octofit_tracker/internal/config"
	"github.com/festy23/octofit_tracker/internal/health"
	leaderboardRouter "github.com/festy23/octofit_tracker/internal/leaderboard/router"
	"github.com/festy23/octofit_tracker/internal/middleware"
	teamRouter "github.com/festy23/octofit_tracker/internal/team/router"
	userRouter "github.com/festy23/octofit_tracker/internal/user/router"
	workoutRouter "github.com/festy23/octofit_tracker/internal/workout/router"
)

// Resources lists the collections advertised by the API root, in display order.
var Resources = []string{"users", "teams", "activities", "leaderboard", "workouts"}

// NewEngine builds the gin engine with middleware and every route mounted.
func NewEngine(cfg config.Config, db *gorm.DB, logger *zap.SugaredLogger) *gin.Engine {
	gin.SetMode(cfg.GinMode)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.Metrics(),
	)

	r.GET("/", apiRoot)
	health.RegisterRoutes(r, db, logger)
	if cfg.MetricsPath != "" {
		r.GET(cfg.MetricsPath, gin.WrapH(promhttp.Handler()))
	}

	userRouter.RegisterRoutes(r, db, logger)
	teamRouter.RegisterRoutes(r, db, logger)
	activityRouter.RegisterRoutes(r, db, logger)
	leaderboardRouter.RegisterRoutes(r, db, logger)
	workoutRouter.RegisterRoutes(r, db, logger)

	return r
}

// apiRoot handles GET / with absolute URLs of every collection.
//
//	@Summary	API root
//	@Tags		root
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Router		/ [get]
func apiRoot(c *gin.Context) {
	base := baseURL(c.Request)
	links := make(map[string]string, len(Resources))
	for _, name := range Resources {
		links[name] = base + "/" + name + "/"
	}
	c.JSON(http.StatusOK, links)
}

func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "http" || proto == "https" {
		scheme = proto
	}
	return scheme + "://" + r.Host
}

// Run serves handler until ctx is cancelled, then drains in-flight requests
// within the configured shutdown timeout.
func Run(ctx context.Context, cfg config.ServerConfig, handler http.Handler, logger *zap.SugaredLogger) error {
	srv := &http.Server{
		Addr:         cfg.GetAddress(),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infow("server starting", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Infow("shutting down server", "timeout", cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	logger.Infow("server stopped")
	return nil
}
