// Package collection provides the record store every resource repository is built on:
// insert, equality filter, ordering, replace, delete, delete-all and count over one table.
package collection

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrNoRecord is returned when no row matches the requested id.
	ErrNoRecord = errors.New("record not found")
	// ErrDuplicate is returned when a write violates a unique index.
	ErrDuplicate = errors.New("duplicate key")
)

// postgresUniqueViolation is the SQLSTATE for unique_violation.
const postgresUniqueViolation = "23505"

// Scope narrows or orders a query.
type Scope = func(*gorm.DB) *gorm.DB

// Where restricts rows to those whose column equals value.
func Where(column string, value any) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(map[string]any{column: value})
	}
}

// OrderBy sorts rows by column.
func OrderBy(column string, desc bool) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if desc {
			return db.Order(column + " DESC")
		}
		return db.Order(column + " ASC")
	}
}

// Limit caps the number of returned rows.
func Limit(n int) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Limit(n)
	}
}

// Collection is a typed view over the table backing T.
// Ids are expected to be time-ordered, so ordering by id yields insertion order.
type Collection[T any] struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
	name   string
}

// New creates a collection over the table of T. name labels log entries.
func New[T any](db *gorm.DB, logger *zap.SugaredLogger, name string) *Collection[T] {
	return &Collection[T]{db: db, logger: logger, name: name}
}

// Insert stores a new record.
func (c *Collection[T]) Insert(ctx context.Context, rec *T) error {
	if err := c.db.WithContext(ctx).Create(rec).Error; err != nil {
		if IsDuplicate(err) {
			c.logger.Debugw("Insert duplicate key", "collection", c.name, "error", err)
			return ErrDuplicate
		}
		c.logger.Errorw("Insert database error", "collection", c.name, "error", err)
		return err
	}
	return nil
}

// InsertMany stores recs in batches of batchSize.
func (c *Collection[T]) InsertMany(ctx context.Context, recs []T, batchSize int) error {
	if len(recs) == 0 {
		return nil
	}
	if err := c.db.WithContext(ctx).CreateInBatches(recs, batchSize).Error; err != nil {
		if IsDuplicate(err) {
			return ErrDuplicate
		}
		c.logger.Errorw("InsertMany database error", "collection", c.name, "count", len(recs), "error", err)
		return err
	}
	return nil
}

// Get returns the record with the given id.
func (c *Collection[T]) Get(ctx context.Context, id string) (*T, error) {
	var rec T
	err := c.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoRecord
		}
		c.logger.Errorw("Get database error", "collection", c.name, "id", id, "error", err)
		return nil, err
	}
	return &rec, nil
}

// Find returns the records matching scopes. Rows that compare equal under the
// requested order, or all rows when no order is given, come back in insertion order.
func (c *Collection[T]) Find(ctx context.Context, scopes ...Scope) ([]T, error) {
	var recs []T
	// Scopes run at execution time, so the tiebreak has to be the last scope.
	scopes = append(scopes, OrderBy("id", false))
	if err := c.db.WithContext(ctx).Scopes(scopes...).Find(&recs).Error; err != nil {
		c.logger.Errorw("Find database error", "collection", c.name, "error", err)
		return nil, err
	}
	if recs == nil {
		recs = []T{}
	}
	return recs, nil
}

// Replace overwrites every column of rec except id, created_at and any extra omitted columns.
func (c *Collection[T]) Replace(ctx context.Context, rec *T, omit ...string) error {
	omit = append([]string{"id", "created_at"}, omit...)
	result := c.db.WithContext(ctx).Model(rec).Select("*").Omit(omit...).Updates(rec)
	if result.Error != nil {
		if IsDuplicate(result.Error) {
			return ErrDuplicate
		}
		c.logger.Errorw("Replace database error", "collection", c.name, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNoRecord
	}
	return nil
}

// Delete removes the record with the given id.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	result := c.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if result.Error != nil {
		c.logger.Errorw("Delete database error", "collection", c.name, "id", id, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNoRecord
	}
	return nil
}

// DeleteAll removes every record and returns how many were removed.
func (c *Collection[T]) DeleteAll(ctx context.Context) (int64, error) {
	result := c.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(new(T))
	if result.Error != nil {
		c.logger.Errorw("DeleteAll database error", "collection", c.name, "error", result.Error)
		return 0, result.Error
	}
	c.logger.Debugw("DeleteAll completed", "collection", c.name, "deleted", result.RowsAffected)
	return result.RowsAffected, nil
}

// Count returns the number of stored records.
func (c *Collection[T]) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := c.db.WithContext(ctx).Model(new(T)).Count(&n).Error; err != nil {
		c.logger.Errorw("Count database error", "collection", c.name, "error", err)
		return 0, err
	}
	return n, nil
}

// IsDuplicate reports whether err is a unique index violation from any supported driver.
func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == postgresUniqueViolation
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			liteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
