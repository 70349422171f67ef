package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/festy23/octofit_tracker/internal/activity/model"
	"github.com/festy23/octofit_tracker/internal/activity/repository"
	"github.com/festy23/octofit_tracker/internal/apperror"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) activities(args mock.Arguments) ([]model.Activity, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Activity), args.Error(1)
}

func (m *mockRepository) List(ctx context.Context) ([]model.Activity, error) {
	return m.activities(m.Called(ctx))
}

func (m *mockRepository) GetByID(ctx context.Context, id string) (*model.Activity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Activity), args.Error(1)
}

func (m *mockRepository) Create(ctx context.Context, activity *model.Activity) error {
	return m.Called(ctx, activity).Error(0)
}

func (m *mockRepository) CreateMany(ctx context.Context, activities []model.Activity) error {
	return m.Called(ctx, activities).Error(0)
}

func (m *mockRepository) Update(ctx context.Context, activity *model.Activity) error {
	return m.Called(ctx, activity).Error(0)
}

func (m *mockRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepository) ListByUser(ctx context.Context, email string) ([]model.Activity, error) {
	return m.activities(m.Called(ctx, email))
}

func (m *mockRepository) ListByType(ctx context.Context, activityType string) ([]model.Activity, error) {
	return m.activities(m.Called(ctx, activityType))
}

func (m *mockRepository) Totals(ctx context.Context, email string) (*model.Totals, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Totals), args.Error(1)
}

func (m *mockRepository) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

var _ repository.Repository = (*mockRepository)(nil)

func intPtr(v int) *int { return &v }

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(mockRepository)
	svc := New(mockRepo, zap.NewNop().Sugar())

	mockRepo.On("Create", ctx, mock.MatchedBy(func(a *model.Activity) bool {
		return a.UserEmail == "u@x.com" && a.Duration == 30 && a.Date.Year() == 2025
	})).Return(nil)

	activity, err := svc.Create(ctx, &model.CreateActivityRequest{
		UserEmail:    "u@x.com",
		ActivityType: "Running",
		Duration:     intPtr(30),
		Calories:     intPtr(200),
		Date:         "2025-06-10T08:00:00Z",
	})

	require.NoError(t, err)
	assert.Equal(t, "Running", activity.ActivityType)
	mockRepo.AssertExpectations(t)
}

func TestService_Patch(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, zap.NewNop().Sugar())

		mockRepo.On("GetByID", ctx, "missing").Return(nil, model.ErrActivityNotFound)

		_, err := svc.Patch(ctx, "missing", &model.PatchActivityRequest{Calories: intPtr(1)})

		assert.ErrorIs(t, err, model.ErrActivityNotFound)
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})

	t.Run("updates supplied fields", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, zap.NewNop().Sugar())
		existing := &model.Activity{ID: "a1", ActivityType: "Running", Duration: 30, Calories: 200}

		mockRepo.On("GetByID", ctx, "a1").Return(existing, nil)
		mockRepo.On("Update", ctx, existing).Return(nil)

		activity, err := svc.Patch(ctx, "a1", &model.PatchActivityRequest{Duration: intPtr(45)})

		require.NoError(t, err)
		assert.Equal(t, 45, activity.Duration)
		assert.Equal(t, 200, activity.Calories)
	})
}

func TestService_Filters(t *testing.T) {
	ctx := context.Background()

	t.Run("by user", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, zap.NewNop().Sugar())
		expected := []model.Activity{{ID: "a2"}, {ID: "a1"}}

		mockRepo.On("ListByUser", ctx, "u@x.com").Return(expected, nil)

		activities, err := svc.ByUser(ctx, "u@x.com")

		require.NoError(t, err)
		assert.Equal(t, expected, activities)
	})

	t.Run("by type", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, zap.NewNop().Sugar())

		mockRepo.On("ListByType", ctx, "Yoga").Return([]model.Activity{}, nil)

		activities, err := svc.ByType(ctx, "Yoga")

		require.NoError(t, err)
		assert.Empty(t, activities)
	})

	t.Run("missing parameters", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, zap.NewNop().Sugar())
		var missing *apperror.MissingParameterError

		_, err := svc.ByUser(ctx, "")
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "email", missing.Param)

		_, err = svc.ByType(ctx, "")
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "type", missing.Param)

		mockRepo.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything)
		mockRepo.AssertNotCalled(t, "ListByType", mock.Anything, mock.Anything)
	})
}
