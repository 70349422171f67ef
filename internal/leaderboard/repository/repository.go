// Package repository provides data access layer for leaderboard module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/octofit_tracker/internal/database/collection"
	"github.com/festy23/octofit_tracker/internal/leaderboard/model"
)

// Repository defines the interface for leaderboard data access operations.
// Every listing is ordered by rank ascending.
type Repository interface {
	List(ctx context.Context) ([]model.Entry, error)
	GetByID(ctx context.Context, id string) (*model.Entry, error)
	Create(ctx context.Context, entry *model.Entry) error
	CreateMany(ctx context.Context, entries []model.Entry) error
	Update(ctx context.Context, entry *model.Entry) error
	Delete(ctx context.Context, id string) error
	ListByTeam(ctx context.Context, team string) ([]model.Entry, error)
	Top(ctx context.Context, limit int) ([]model.Entry, error)
	DeleteAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	entries *collection.Collection[model.Entry]
	logger  *zap.SugaredLogger
}

// New creates a new leaderboard repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{
		entries: collection.New[model.Entry](db, logger, "leaderboard"),
		logger:  logger,
	}
}

var byRank = collection.OrderBy("rank", false)

func (r *repository) List(ctx context.Context) ([]model.Entry, error) {
	return r.entries.Find(ctx, byRank)
}

func (r *repository) GetByID(ctx context.Context, id string) (*model.Entry, error) {
	entry, err := r.entries.Get(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return entry, nil
}

func (r *repository) Create(ctx context.Context, entry *model.Entry) error {
	return r.entries.Insert(ctx, entry)
}

func (r *repository) CreateMany(ctx context.Context, entries []model.Entry) error {
	return r.entries.InsertMany(ctx, entries, len(entries))
}

func (r *repository) Update(ctx context.Context, entry *model.Entry) error {
	return mapError(r.entries.Replace(ctx, entry))
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return mapError(r.entries.Delete(ctx, id))
}

func (r *repository) ListByTeam(ctx context.Context, team string) ([]model.Entry, error) {
	r.logger.Debugw("ListByTeam called", "team", team)
	return r.entries.Find(ctx, collection.Where("team", team), byRank)
}

func (r *repository) Top(ctx context.Context, limit int) ([]model.Entry, error) {
	r.logger.Debugw("Top called", "limit", limit)
	return r.entries.Find(ctx, byRank, collection.Limit(limit))
}

func (r *repository) DeleteAll(ctx context.Context) (int64, error) {
	return r.entries.DeleteAll(ctx)
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	return r.entries.Count(ctx)
}

func mapError(err error) error {
	if errors.Is(err, collection.ErrNoRecord) {
		return model.ErrEntryNotFound
	}
	return err
}
