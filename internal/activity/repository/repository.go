// Package repository provides data access layer for activity module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/octofit_tracker/internal/activity/model"
	"github.com/festy23/octofit_tracker/internal/database/collection"
)

const insertBatchSize = 100

// Repository defines the interface for activity data access operations.
type Repository interface {
	// List returns all activities in insertion order.
	List(ctx context.Context) ([]model.Activity, error)

	// GetByID finds activity by id.
	GetByID(ctx context.Context, id string) (*model.Activity, error)

	// Create inserts a new activity.
	Create(ctx context.Context, activity *model.Activity) error

	// CreateMany inserts activities in batches.
	CreateMany(ctx context.Context, activities []model.Activity) error

	// Update replaces the mutable fields of an existing activity.
	Update(ctx context.Context, activity *model.Activity) error

	// Delete removes activity by id.
	Delete(ctx context.Context, id string) error

	// ListByUser returns the activities of one user, most recent first.
	ListByUser(ctx context.Context, email string) ([]model.Activity, error)

	// ListByType returns activities of one type, most recent first.
	ListByType(ctx context.Context, activityType string) ([]model.Activity, error)

	// Totals sums calories and duration and counts activities of one user.
	Totals(ctx context.Context, email string) (*model.Totals, error)

	// DeleteAll removes every activity.
	DeleteAll(ctx context.Context) (int64, error)

	// Count returns the number of activities.
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db         *gorm.DB
	activities *collection.Collection[model.Activity]
	logger     *zap.SugaredLogger
}

// New creates a new activity repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{
		db:         db,
		activities: collection.New[model.Activity](db, logger, "activities"),
		logger:     logger,
	}
}

func (r *repository) List(ctx context.Context) ([]model.Activity, error) {
	return r.activities.Find(ctx)
}

func (r *repository) GetByID(ctx context.Context, id string) (*model.Activity, error) {
	activity, err := r.activities.Get(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return activity, nil
}

func (r *repository) Create(ctx context.Context, activity *model.Activity) error {
	r.logger.Debugw("Create called", "user_email", activity.UserEmail, "activity_type", activity.ActivityType)
	return r.activities.Insert(ctx, activity)
}

func (r *repository) CreateMany(ctx context.Context, activities []model.Activity) error {
	r.logger.Debugw("CreateMany called", "count", len(activities))
	return r.activities.InsertMany(ctx, activities, insertBatchSize)
}

func (r *repository) Update(ctx context.Context, activity *model.Activity) error {
	return mapError(r.activities.Replace(ctx, activity))
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return mapError(r.activities.Delete(ctx, id))
}

func (r *repository) ListByUser(ctx context.Context, email string) ([]model.Activity, error) {
	r.logger.Debugw("ListByUser called", "user_email", email)
	return r.activities.Find(ctx,
		collection.Where("user_email", email),
		collection.OrderBy("date", true),
	)
}

func (r *repository) ListByType(ctx context.Context, activityType string) ([]model.Activity, error) {
	r.logger.Debugw("ListByType called", "activity_type", activityType)
	return r.activities.Find(ctx,
		collection.Where("activity_type", activityType),
		collection.OrderBy("date", true),
	)
}

func (r *repository) Totals(ctx context.Context, email string) (*model.Totals, error) {
	r.logger.Debugw("Totals called", "user_email", email)

	var totals model.Totals
	err := r.db.WithContext(ctx).
		Model(&model.Activity{}).
		Select(`
			COALESCE(SUM(calories), 0) as total_calories,
			COALESCE(SUM(duration), 0) as total_duration,
			COUNT(*) as total_activities
		`).
		Where("user_email = ?", email).
		Scan(&totals).Error
	if err != nil {
		r.logger.Errorw("Totals database error", "user_email", email, "error", err)
		return nil, err
	}

	r.logger.Debugw("Totals completed",
		"user_email", email,
		"total_activities", totals.TotalActivities,
		"total_calories", totals.TotalCalories,
	)
	return &totals, nil
}

func (r *repository) DeleteAll(ctx context.Context) (int64, error) {
	return r.activities.DeleteAll(ctx)
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	return r.activities.Count(ctx)
}

func mapError(err error) error {
	if errors.Is(err, collection.ErrNoRecord) {
		return model.ErrActivityNotFound
	}
	return err
}
