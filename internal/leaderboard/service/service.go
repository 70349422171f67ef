// Package service provides business logic layer for leaderboard module.
package service

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/festy23/octofit_tracker/internal/apperror"
	"github.com/festy23/octofit_tracker/internal/leaderboard/model"
	"github.com/festy23/octofit_tracker/internal/leaderboard/repository"
)

// Service defines the interface for leaderboard business logic operations.
type Service interface {
	List(ctx context.Context) ([]model.Entry, error)
	Get(ctx context.Context, id string) (*model.Entry, error)
	Create(ctx context.Context, req *model.CreateEntryRequest) (*model.Entry, error)
	Update(ctx context.Context, id string, req *model.UpdateEntryRequest) (*model.Entry, error)
	Patch(ctx context.Context, id string, req *model.PatchEntryRequest) (*model.Entry, error)
	Delete(ctx context.Context, id string) error

	// ByTeam returns the entries of one team, best rank first.
	ByTeam(ctx context.Context, team string) ([]model.Entry, error)

	// Top returns the first entries by rank. limit is the raw query value:
	// empty means DefaultTopLimit, anything else must be a non-negative integer.
	Top(ctx context.Context, limit string) ([]model.Entry, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new leaderboard service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) List(ctx context.Context) ([]model.Entry, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, id string) (*model.Entry, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, req *model.CreateEntryRequest) (*model.Entry, error) {
	entry := &model.Entry{}
	req.Apply(entry)
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *service) Update(ctx context.Context, id string, req *model.UpdateEntryRequest) (*model.Entry, error) {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Apply(entry)
	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *service) Patch(ctx context.Context, id string, req *model.PatchEntryRequest) (*model.Entry, error) {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Apply(entry)
	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) ByTeam(ctx context.Context, team string) ([]model.Entry, error) {
	if err := apperror.RequireParam("team", team); err != nil {
		return nil, err
	}
	return s.repo.ListByTeam(ctx, team)
}

func (s *service) Top(ctx context.Context, limit string) ([]model.Entry, error) {
	n, err := parseLimit(limit)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return []model.Entry{}, nil
	}
	return s.repo.Top(ctx, n)
}

func parseLimit(raw string) (int, error) {
	if raw == "" {
		return model.DefaultTopLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &apperror.InvalidParameterError{Param: "limit", Value: raw, Reason: "must be an integer"}
	}
	if n < 0 {
		return 0, &apperror.InvalidParameterError{Param: "limit", Value: raw, Reason: "must not be negative"}
	}
	return n, nil
}
