// Package service provides business logic layer for activity module.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/festy23/octofit_tracker/internal/activity/model"
	"github.com/festy23/octofit_tracker/internal/activity/repository"
	"github.com/festy23/octofit_tracker/internal/apperror"
)

// Service defines the interface for activity business logic operations.
type Service interface {
	List(ctx context.Context) ([]model.Activity, error)
	Get(ctx context.Context, id string) (*model.Activity, error)
	Create(ctx context.Context, req *model.CreateActivityRequest) (*model.Activity, error)
	Update(ctx context.Context, id string, req *model.UpdateActivityRequest) (*model.Activity, error)
	Patch(ctx context.Context, id string, req *model.PatchActivityRequest) (*model.Activity, error)
	Delete(ctx context.Context, id string) error

	// ByUser returns the activities logged by email, most recent first.
	ByUser(ctx context.Context, email string) ([]model.Activity, error)

	// ByType returns activities of activityType, most recent first.
	ByType(ctx context.Context, activityType string) ([]model.Activity, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new activity service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) List(ctx context.Context) ([]model.Activity, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, id string) (*model.Activity, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, req *model.CreateActivityRequest) (*model.Activity, error) {
	activity := &model.Activity{}
	if err := req.Apply(activity); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, activity); err != nil {
		return nil, err
	}

	s.logger.Infow("Activity logged", "id", activity.ID, "user_email", activity.UserEmail)
	return activity, nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req *model.UpdateActivityRequest,
) (*model.Activity, error) {
	activity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := req.Apply(activity); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *service) Patch(
	ctx context.Context,
	id string,
	req *model.PatchActivityRequest,
) (*model.Activity, error) {
	activity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := req.Apply(activity); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) ByUser(ctx context.Context, email string) ([]model.Activity, error) {
	if err := apperror.RequireParam("email", email); err != nil {
		return nil, err
	}
	return s.repo.ListByUser(ctx, email)
}

func (s *service) ByType(ctx context.Context, activityType string) ([]model.Activity, error) {
	if err := apperror.RequireParam("type", activityType); err != nil {
		return nil, err
	}
	return s.repo.ListByType(ctx, activityType)
}
