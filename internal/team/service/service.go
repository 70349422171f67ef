// Package service provides business logic layer for team module.
package service

import (
	"context"

	"go.uber.org/zap"

	teamModel "github.com/festy23/octofit_tracker/internal/team/model"
	"github.com/festy23/octofit_tracker/internal/team/repository"
	userModel "github.com/festy23/octofit_tracker/internal/user/model"
)

// Service defines the interface for team business logic operations.
type Service interface {
	List(ctx context.Context) ([]teamModel.Team, error)
	Get(ctx context.Context, id string) (*teamModel.Team, error)
	Create(ctx context.Context, req *teamModel.CreateTeamRequest) (*teamModel.Team, error)
	Update(ctx context.Context, id string, req *teamModel.UpdateTeamRequest) (*teamModel.Team, error)
	Patch(ctx context.Context, id string, req *teamModel.PatchTeamRequest) (*teamModel.Team, error)
	Delete(ctx context.Context, id string) error

	// Members returns the users whose team is the named team, resolved by name
	// at query time rather than from the stored members list.
	Members(ctx context.Context, teamID string) ([]userModel.User, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new team service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

func (s *service) List(ctx context.Context) ([]teamModel.Team, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, id string) (*teamModel.Team, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, req *teamModel.CreateTeamRequest) (*teamModel.Team, error) {
	team := &teamModel.Team{
		Name:        req.Name,
		Description: req.Description,
		Members:     req.Members,
	}
	if err := s.repo.Create(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

func (s *service) Update(ctx context.Context, id string, req *teamModel.UpdateTeamRequest) (*teamModel.Team, error) {
	team, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	team.Name = req.Name
	team.Description = req.Description
	team.Members = req.Members

	if err := s.repo.Update(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

func (s *service) Patch(ctx context.Context, id string, req *teamModel.PatchTeamRequest) (*teamModel.Team, error) {
	team, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.Description != nil {
		team.Description = *req.Description
	}
	if req.Members != nil {
		team.Members = *req.Members
	}

	if err := s.repo.Update(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) Members(ctx context.Context, teamID string) ([]userModel.User, error) {
	team, err := s.repo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	members, err := s.repo.ListMembers(ctx, team.Name)
	if err != nil {
		return nil, err
	}

	s.logger.Debugw("Members resolved", "team", team.Name, "count", len(members))
	return members, nil
}
