// Package repository provides data access layer for team module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/octofit_tracker/internal/database/collection"
	teamModel "github.com/festy23/octofit_tracker/internal/team/model"
	userModel "github.com/festy23/octofit_tracker/internal/user/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// List returns all teams in insertion order.
	List(ctx context.Context) ([]teamModel.Team, error)

	// GetByID finds team by id.
	GetByID(ctx context.Context, id string) (*teamModel.Team, error)

	// Create inserts a new team.
	Create(ctx context.Context, team *teamModel.Team) error

	// Update replaces the mutable fields of an existing team.
	Update(ctx context.Context, team *teamModel.Team) error

	// Delete removes team by id.
	Delete(ctx context.Context, id string) error

	// ListMembers returns users whose team field equals teamName.
	ListMembers(ctx context.Context, teamName string) ([]userModel.User, error)

	// DeleteAll removes every team.
	DeleteAll(ctx context.Context) (int64, error)

	// Count returns the number of teams.
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	teams  *collection.Collection[teamModel.Team]
	users  *collection.Collection[userModel.User]
	logger *zap.SugaredLogger
}

// New creates a new team repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{
		teams:  collection.New[teamModel.Team](db, logger, "teams"),
		users:  collection.New[userModel.User](db, logger, "users"),
		logger: logger,
	}
}

// List returns all teams in insertion order.
func (r *repository) List(ctx context.Context) ([]teamModel.Team, error) {
	return r.teams.Find(ctx)
}

// GetByID finds team by id.
func (r *repository) GetByID(ctx context.Context, id string) (*teamModel.Team, error) {
	team, err := r.teams.Get(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return team, nil
}

// Create inserts a new team.
func (r *repository) Create(ctx context.Context, team *teamModel.Team) error {
	if err := r.teams.Insert(ctx, team); err != nil {
		return mapError(err)
	}
	r.logger.Infow("Team created", "id", team.ID, "name", team.Name)
	return nil
}

// Update replaces the mutable fields of an existing team.
func (r *repository) Update(ctx context.Context, team *teamModel.Team) error {
	return mapError(r.teams.Replace(ctx, team))
}

// Delete removes team by id. Users keep their team name.
func (r *repository) Delete(ctx context.Context, id string) error {
	return mapError(r.teams.Delete(ctx, id))
}

// ListMembers returns users whose team field equals teamName.
func (r *repository) ListMembers(ctx context.Context, teamName string) ([]userModel.User, error) {
	return r.users.Find(ctx, collection.Where("team", teamName))
}

// DeleteAll removes every team.
func (r *repository) DeleteAll(ctx context.Context) (int64, error) {
	return r.teams.DeleteAll(ctx)
}

// Count returns the number of teams.
func (r *repository) Count(ctx context.Context) (int64, error) {
	return r.teams.Count(ctx)
}

func mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, collection.ErrNoRecord):
		return teamModel.ErrTeamNotFound
	case errors.Is(err, collection.ErrDuplicate):
		return teamModel.ErrTeamNameTaken
	default:
		return err
	}
}
