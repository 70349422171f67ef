// Package service provides business logic layer for workout module.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/festy23/octofit_tracker/internal/apperror"
	"github.com/festy23/octofit_tracker/internal/workout/model"
	"github.com/festy23/octofit_tracker/internal/workout/repository"
)

// Service defines the interface for workout business logic operations.
type Service interface {
	List(ctx context.Context) ([]model.Workout, error)
	Get(ctx context.Context, id string) (*model.Workout, error)
	Create(ctx context.Context, req *model.CreateWorkoutRequest) (*model.Workout, error)
	Update(ctx context.Context, id string, req *model.UpdateWorkoutRequest) (*model.Workout, error)
	Patch(ctx context.Context, id string, req *model.PatchWorkoutRequest) (*model.Workout, error)
	Delete(ctx context.Context, id string) error
	ByDifficulty(ctx context.Context, difficulty string) ([]model.Workout, error)
	ByType(ctx context.Context, activityType string) ([]model.Workout, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new workout service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) List(ctx context.Context) ([]model.Workout, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, id string) (*model.Workout, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, req *model.CreateWorkoutRequest) (*model.Workout, error) {
	workout := &model.Workout{}
	req.Apply(workout)
	if err := s.repo.Create(ctx, workout); err != nil {
		return nil, err
	}
	s.logger.Infow("Workout created", "id", workout.ID, "name", workout.Name)
	return workout, nil
}

func (s *service) Update(ctx context.Context, id string, req *model.UpdateWorkoutRequest) (*model.Workout, error) {
	workout, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Apply(workout)
	if err := s.repo.Update(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

func (s *service) Patch(ctx context.Context, id string, req *model.PatchWorkoutRequest) (*model.Workout, error) {
	workout, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Apply(workout)
	if err := s.repo.Update(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// ByDifficulty filters by exact difficulty. Values outside the known
// difficulties are not rejected; they simply match nothing.
func (s *service) ByDifficulty(ctx context.Context, difficulty string) ([]model.Workout, error) {
	if err := apperror.RequireParam("difficulty", difficulty); err != nil {
		return nil, err
	}
	return s.repo.ListByDifficulty(ctx, model.Difficulty(difficulty))
}

func (s *service) ByType(ctx context.Context, activityType string) ([]model.Workout, error) {
	if err := apperror.RequireParam("type", activityType); err != nil {
		return nil, err
	}
	return s.repo.ListByType(ctx, activityType)
}
