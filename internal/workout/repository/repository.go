// Package repository provides data access layer for workout module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/octofit_tracker/internal/database/collection"
	"github.com/festy23/octofit_tracker/internal/workout/model"
)

// Repository defines the interface for workout data access operations.
type Repository interface {
	List(ctx context.Context) ([]model.Workout, error)
	GetByID(ctx context.Context, id string) (*model.Workout, error)
	Create(ctx context.Context, workout *model.Workout) error
	CreateMany(ctx context.Context, workouts []model.Workout) error
	Update(ctx context.Context, workout *model.Workout) error
	Delete(ctx context.Context, id string) error
	ListByDifficulty(ctx context.Context, difficulty model.Difficulty) ([]model.Workout, error)
	ListByType(ctx context.Context, activityType string) ([]model.Workout, error)
	DeleteAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	workouts *collection.Collection[model.Workout]
}

// New creates a new workout repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{workouts: collection.New[model.Workout](db, logger, "workouts")}
}

func (r *repository) List(ctx context.Context) ([]model.Workout, error) {
	return r.workouts.Find(ctx)
}

func (r *repository) GetByID(ctx context.Context, id string) (*model.Workout, error) {
	workout, err := r.workouts.Get(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return workout, nil
}

func (r *repository) Create(ctx context.Context, workout *model.Workout) error {
	return r.workouts.Insert(ctx, workout)
}

func (r *repository) CreateMany(ctx context.Context, workouts []model.Workout) error {
	return r.workouts.InsertMany(ctx, workouts, len(workouts))
}

func (r *repository) Update(ctx context.Context, workout *model.Workout) error {
	return mapError(r.workouts.Replace(ctx, workout))
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return mapError(r.workouts.Delete(ctx, id))
}

func (r *repository) ListByDifficulty(ctx context.Context, difficulty model.Difficulty) ([]model.Workout, error) {
	return r.workouts.Find(ctx, collection.Where("difficulty", string(difficulty)))
}

func (r *repository) ListByType(ctx context.Context, activityType string) ([]model.Workout, error) {
	return r.workouts.Find(ctx, collection.Where("activity_type", activityType))
}

func (r *repository) DeleteAll(ctx context.Context) (int64, error) {
	return r.workouts.DeleteAll(ctx)
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	return r.workouts.Count(ctx)
}

func mapError(err error) error {
	if errors.Is(err, collection.ErrNoRecord) {
		return model.ErrWorkoutNotFound
	}
	return err
}
