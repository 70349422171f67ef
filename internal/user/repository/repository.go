// Package repository provides data access layer for user module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/octofit_tracker/internal/database/collection"
	"github.com/festy23/octofit_tracker/internal/user/model"
)

// Repository defines the interface for user data access operations.
type Repository interface {
	// List returns all users in insertion order.
	List(ctx context.Context) ([]model.User, error)

	// GetByID finds user by id.
	GetByID(ctx context.Context, id string) (*model.User, error)

	// Create inserts a new user.
	Create(ctx context.Context, user *model.User) error

	// Update replaces the mutable fields of an existing user.
	Update(ctx context.Context, user *model.User) error

	// Delete removes user by id.
	Delete(ctx context.Context, id string) error

	// ListByTeam returns users whose team equals teamName.
	ListByTeam(ctx context.Context, teamName string) ([]model.User, error)

	// DeleteAll removes every user.
	DeleteAll(ctx context.Context) (int64, error)

	// Count returns the number of users.
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	users  *collection.Collection[model.User]
	logger *zap.SugaredLogger
}

// New creates a new user repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{
		users:  collection.New[model.User](db, logger, "users"),
		logger: logger,
	}
}

// List returns all users in insertion order.
func (r *repository) List(ctx context.Context) ([]model.User, error) {
	return r.users.Find(ctx)
}

// GetByID finds user by id.
func (r *repository) GetByID(ctx context.Context, id string) (*model.User, error) {
	r.logger.Debugw("GetByID called", "id", id)

	user, err := r.users.Get(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return user, nil
}

// Create inserts a new user.
func (r *repository) Create(ctx context.Context, user *model.User) error {
	r.logger.Debugw("Create called", "email", user.Email)

	if err := r.users.Insert(ctx, user); err != nil {
		return mapError(err)
	}

	r.logger.Infow("Create completed", "id", user.ID, "email", user.Email)
	return nil
}

// Update replaces the mutable fields of an existing user.
func (r *repository) Update(ctx context.Context, user *model.User) error {
	r.logger.Debugw("Update called", "id", user.ID)
	return mapError(r.users.Replace(ctx, user))
}

// Delete removes user by id. Activities and leaderboard rows that reference
// the user's email are left in place.
func (r *repository) Delete(ctx context.Context, id string) error {
	r.logger.Debugw("Delete called", "id", id)
	return mapError(r.users.Delete(ctx, id))
}

// ListByTeam returns users whose team equals teamName.
func (r *repository) ListByTeam(ctx context.Context, teamName string) ([]model.User, error) {
	r.logger.Debugw("ListByTeam called", "team", teamName)

	users, err := r.users.Find(ctx, collection.Where("team", teamName))
	if err != nil {
		return nil, err
	}

	r.logger.Debugw("ListByTeam completed", "team", teamName, "count", len(users))
	return users, nil
}

// DeleteAll removes every user.
func (r *repository) DeleteAll(ctx context.Context) (int64, error) {
	return r.users.DeleteAll(ctx)
}

// Count returns the number of users.
func (r *repository) Count(ctx context.Context) (int64, error) {
	return r.users.Count(ctx)
}

func mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, collection.ErrNoRecord):
		return model.ErrUserNotFound
	case errors.Is(err, collection.ErrDuplicate):
		return model.ErrEmailTaken
	default:
		return err
	}
}
