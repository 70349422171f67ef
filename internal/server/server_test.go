package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/festy23/octofit_tracker/internal/config"
	"github.com/festy23/octofit_tracker/internal/database/migrate"
	leaderboardModel "github.com/festy23/octofit_tracker/internal/leaderboard/model"
	"github.com/festy23/octofit_tracker/internal/middleware"
	"github.com/festy23/octofit_tracker/internal/seed"
	userModel "github.com/festy23/octofit_tracker/internal/user/model"
)

func TestMain(m *testing.M) {
	userModel.PasswordCost = bcrypt.MinCost
	os.Exit(m.Run())
}

func testConfig() config.Config {
	return config.Config{GinMode: gin.TestMode, MetricsPath: "/metrics"}
}

func setupEngine(t *testing.T) (*gin.Engine, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	logger := zap.NewNop().Sugar()
	require.NoError(t, migrate.Up(db, "", logger))
	return NewEngine(testConfig(), db, logger), db
}

func do(r http.Handler, method, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAPIRoot(t *testing.T) {
	r, _ := setupEngine(t)

	t.Run("lists collections", func(t *testing.T) {
		w := do(r, http.MethodGet, "http://octofit.local:8000/", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var links map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &links))
		assert.Equal(t, map[string]string{
			"users":       "http://octofit.local:8000/users/",
			"teams":       "http://octofit.local:8000/teams/",
			"activities":  "http://octofit.local:8000/activities/",
			"leaderboard": "http://octofit.local:8000/leaderboard/",
			"workouts":    "http://octofit.local:8000/workouts/",
		}, links)
	})

	t.Run("honours forwarded proto", func(t *testing.T) {
		w := do(r, http.MethodGet, "http://api.octofit.dev/", http.Header{"X-Forwarded-Proto": {"https"}})

		var links map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &links))
		assert.Equal(t, "https://api.octofit.dev/workouts/", links["workouts"])
	})

	t.Run("every advertised collection answers", func(t *testing.T) {
		for _, name := range Resources {
			w := do(r, http.MethodGet, "/"+name+"/", nil)
			assert.Equal(t, http.StatusOK, w.Code, name)
			assert.JSONEq(t, `[]`, w.Body.String(), name)
		}
	})
}

func TestEngine_Operational(t *testing.T) {
	r, _ := setupEngine(t)

	t.Run("health", func(t *testing.T) {
		w := do(r, http.MethodGet, "/health", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})

	t.Run("request id echoed", func(t *testing.T) {
		w := do(r, http.MethodGet, "/users/", http.Header{middleware.RequestIDHeader: {"abc-123"}})

		assert.Equal(t, "abc-123", w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("metrics exposition", func(t *testing.T) {
		do(r, http.MethodGet, "/teams/", nil)

		w := do(r, http.MethodGet, "/metrics", nil)

		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, `octofit_http_requests_total{method="GET",route="/teams/",status="200"}`)
		assert.Contains(t, body, "octofit_http_request_duration_seconds_bucket")
	})

	t.Run("metrics disabled", func(t *testing.T) {
		cfg := testConfig()
		cfg.MetricsPath = ""
		engine := NewEngine(cfg, nil, zap.NewNop().Sugar())

		assert.Equal(t, http.StatusNotFound, do(engine, http.MethodGet, "/metrics", nil).Code)
	})
}

func TestEngine_SeededQueries(t *testing.T) {
	r, db := setupEngine(t)
	_, err := seed.New(db, zap.NewNop().Sugar()).Run(context.Background())
	require.NoError(t, err)

	t.Run("top five", func(t *testing.T) {
		w := do(r, http.MethodGet, "/leaderboard/top?limit=5", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var entries []leaderboardModel.Entry
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
		require.Len(t, entries, 5)
		for i, e := range entries {
			assert.Equal(t, i+1, e.Rank)
		}
		assert.Equal(t, "ironman@marvel.com", entries[0].UserEmail)
	})

	t.Run("activities by user newest first", func(t *testing.T) {
		w := do(r, http.MethodGet, "/activities/by_user?email=batman@dc.com", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var acts []struct {
			UserEmail string    `json:"user_email"`
			Date      time.Time `json:"date"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &acts))
		require.Len(t, acts, 7)
		for i := 1; i < len(acts); i++ {
			assert.False(t, acts[i].Date.After(acts[i-1].Date))
		}
	})

	t.Run("passwords never leak", func(t *testing.T) {
		w := do(r, http.MethodGet, "/users/", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, strings.ToLower(w.Body.String()), "password")
	})

	t.Run("team members", func(t *testing.T) {
		w := do(r, http.MethodGet, "/teams/", nil)
		var teams []struct {
			ID      string   `json:"id"`
			Name    string   `json:"name"`
			Members []string `json:"members"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &teams))
		require.Len(t, teams, 2)

		w = do(r, http.MethodGet, "/teams/"+teams[0].ID+"/members", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var users []struct {
			Email string `json:"email"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
		require.Len(t, users, len(teams[0].Members))
		for i, u := range users {
			assert.Equal(t, teams[0].Members[i], u.Email)
		}
	})
}

func TestRun(t *testing.T) {
	logger := zap.NewNop().Sugar()
	cfg := config.ServerConfig{
		Host:            "127.0.0.1",
		Port:            "0",
		ReadTimeout:     time.Second,
		WriteTimeout:    time.Second,
		IdleTimeout:     time.Second,
		ShutdownTimeout: time.Second,
	}

	t.Run("stops on cancel", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- Run(ctx, cfg, http.NotFoundHandler(), logger) }()

		time.Sleep(50 * time.Millisecond)
		cancel()

		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("server did not stop")
		}
	})

	t.Run("listen error", func(t *testing.T) {
		bad := cfg
		bad.Port = "-1"

		err := Run(context.Background(), bad, http.NotFoundHandler(), logger)

		assert.ErrorContains(t, err, "server failed")
	})
}
