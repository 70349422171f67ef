// Package service provides business logic layer for user module.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/festy23/octofit_tracker/internal/apperror"
	"github.com/festy23/octofit_tracker/internal/user/model"
	"github.com/festy23/octofit_tracker/internal/user/repository"
)

// Service defines the interface for user business logic operations.
type Service interface {
	// List returns all users.
	List(ctx context.Context) ([]model.User, error)

	// Get returns a single user.
	Get(ctx context.Context, id string) (*model.User, error)

	// Create registers a new user.
	Create(ctx context.Context, req *model.CreateUserRequest) (*model.User, error)

	// Update replaces the mutable fields of a user.
	Update(ctx context.Context, id string, req *model.UpdateUserRequest) (*model.User, error)

	// Patch changes only the supplied fields of a user.
	Patch(ctx context.Context, id string, req *model.PatchUserRequest) (*model.User, error)

	// Delete removes a user.
	Delete(ctx context.Context, id string) error

	// ListByTeam returns users that belong to the named team.
	ListByTeam(ctx context.Context, teamName string) ([]model.User, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new user service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// List returns all users.
func (s *service) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

// Get returns a single user.
func (s *service) Get(ctx context.Context, id string) (*model.User, error) {
	return s.repo.GetByID(ctx, id)
}

// Create registers a new user with a hashed password.
func (s *service) Create(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	s.logger.Debugw("Create called", "email", req.Email)

	hash, err := model.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
		Team:     req.Team,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		s.logger.Debugw("Create failed", "email", req.Email, "error", err)
		return nil, err
	}

	s.logger.Infow("Create completed", "id", user.ID)
	return user, nil
}

// Update replaces the mutable fields of a user.
func (s *service) Update(ctx context.Context, id string, req *model.UpdateUserRequest) (*model.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hash, err := model.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user.Name = req.Name
	user.Email = req.Email
	user.Password = hash
	user.Team = req.Team

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Infow("Update completed", "id", id)
	return user, nil
}

// Patch changes only the supplied fields of a user.
func (s *service) Patch(ctx context.Context, id string, req *model.PatchUserRequest) (*model.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		hash, hashErr := model.HashPassword(*req.Password)
		if hashErr != nil {
			return nil, hashErr
		}
		user.Password = hash
	}
	if req.Team != nil {
		user.Team = req.Team
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Infow("Patch completed", "id", id)
	return user, nil
}

// Delete removes a user.
func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Infow("Delete completed", "id", id)
	return nil
}

// ListByTeam returns users that belong to the named team.
// An empty team name is rejected rather than treated as "all users".
func (s *service) ListByTeam(ctx context.Context, teamName string) ([]model.User, error) {
	if err := apperror.RequireParam("team", teamName); err != nil {
		return nil, err
	}
	return s.repo.ListByTeam(ctx, teamName)
}
