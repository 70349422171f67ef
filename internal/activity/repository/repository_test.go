package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/festy23/octofit_tracker/internal/activity/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.Activity{}))
	return db
}

var baseDate = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func activity(email, activityType string, daysAgo, duration, calories int) model.Activity {
	return model.Activity{
		UserEmail:    email,
		ActivityType: activityType,
		Duration:     duration,
		Calories:     calories,
		Date:         baseDate.AddDate(0, 0, -daysAgo),
	}
}

func TestRepository_ListByUser(t *testing.T) {
	ctx := context.Background()
	repo := New(setupTestDB(t), zap.NewNop().Sugar())

	require.NoError(t, repo.CreateMany(ctx, []model.Activity{
		activity("u1@x.com", "Running", 2, 30, 200),
		activity("u1@x.com", "Yoga", 0, 40, 150),
		activity("u2@x.com", "Running", 1, 25, 180),
		activity("u1@x.com", "Cycling", 1, 50, 300),
	}))

	activities, err := repo.ListByUser(ctx, "u1@x.com")

	require.NoError(t, err)
	require.Len(t, activities, 3)
	assert.Equal(t, "Yoga", activities[0].ActivityType)
	assert.Equal(t, "Cycling", activities[1].ActivityType)
	assert.Equal(t, "Running", activities[2].ActivityType)
	for _, a := range activities {
		assert.Equal(t, "u1@x.com", a.UserEmail)
	}

	none, err := repo.ListByUser(ctx, "U1@x.com")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRepository_ListByType(t *testing.T) {
	ctx := context.Background()
	repo := New(setupTestDB(t), zap.NewNop().Sugar())

	require.NoError(t, repo.CreateMany(ctx, []model.Activity{
		activity("u1@x.com", "Running", 3, 30, 200),
		activity("u2@x.com", "Running", 0, 25, 180),
		activity("u3@x.com", "Boxing", 0, 45, 400),
	}))

	activities, err := repo.ListByType(ctx, "Running")

	require.NoError(t, err)
	require.Len(t, activities, 2)
	assert.Equal(t, "u2@x.com", activities[0].UserEmail)
	assert.Equal(t, "u1@x.com", activities[1].UserEmail)
}

func TestRepository_Totals(t *testing.T) {
	ctx := context.Background()
	repo := New(setupTestDB(t), zap.NewNop().Sugar())

	require.NoError(t, repo.CreateMany(ctx, []model.Activity{
		activity("u1@x.com", "Running", 0, 30, 200),
		activity("u1@x.com", "Yoga", 1, 40, 150),
		activity("u2@x.com", "Running", 0, 25, 180),
	}))

	t.Run("sums one user", func(t *testing.T) {
		totals, err := repo.Totals(ctx, "u1@x.com")

		require.NoError(t, err)
		assert.Equal(t, 350, totals.TotalCalories)
		assert.Equal(t, 70, totals.TotalDuration)
		assert.Equal(t, 2, totals.TotalActivities)
	})

	t.Run("no activities", func(t *testing.T) {
		totals, err := repo.Totals(ctx, "nobody@x.com")

		require.NoError(t, err)
		assert.Equal(t, model.Totals{}, *totals)
	})
}

func TestRepository_DistanceNullable(t *testing.T) {
	ctx := context.Background()
	repo := New(setupTestDB(t), zap.NewNop().Sugar())
	distance := 5.5

	withDistance := activity("u1@x.com", "Running", 0, 30, 200)
	withDistance.Distance = &distance
	withoutDistance := activity("u1@x.com", "Yoga", 0, 30, 100)
	require.NoError(t, repo.Create(ctx, &withDistance))
	require.NoError(t, repo.Create(ctx, &withoutDistance))

	got, err := repo.GetByID(ctx, withDistance.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Distance)
	assert.InDelta(t, 5.5, *got.Distance, 1e-9)

	got, err = repo.GetByID(ctx, withoutDistance.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Distance)
}

func TestRepository_UpdateDelete(t *testing.T) {
	ctx := context.Background()
	repo := New(setupTestDB(t), zap.NewNop().Sugar())
	a := activity("u1@x.com", "Running", 0, 30, 200)
	require.NoError(t, repo.Create(ctx, &a))

	a.Calories = 250
	require.NoError(t, repo.Update(ctx, &a))
	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 250, got.Calories)

	require.NoError(t, repo.Delete(ctx, a.ID))
	_, err = repo.GetByID(ctx, a.ID)
	assert.ErrorIs(t, err, model.ErrActivityNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, a.ID), model.ErrActivityNotFound)
}
