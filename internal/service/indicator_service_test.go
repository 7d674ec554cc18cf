package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"mentoria_engine/internal/config"
	"mentoria_engine/internal/model"
	"mentoria_engine/internal/repository"
	"mentoria_engine/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestIndicatorService_GetIndicators_CacheHit(t *testing.T) {
	ctx := context.Background()
	studentID := uuid.New()
	db := setupTestDB(t)

	cache := new(mocks.IndicatorCache)
	cached := &model.Indicators{StudentID: studentID, Composite: 72.5}
	cache.On("Get", ctx, studentID).Return(cached, nil).Once()

	studentRepo := new(mocks.StudentRepository)
	svc := NewIndicatorService(db, studentRepo, new(mocks.SessionRepository), new(mocks.EventRepository), new(mocks.PlanRepository), cache)

	ind, err := svc.GetIndicators(ctx, studentID)

	require.NoError(t, err)
	assert.Equal(t, 72.5, ind.Composite)
	// A hit must not touch the database at all.
	studentRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything, mock.Anything)
	cache.AssertExpectations(t)
}

func TestIndicatorService_GetIndicators_CacheMissComputesAndStores(t *testing.T) {
	ctx := context.Background()
	studentID := uuid.New()
	db := setupTestDB(t)

	cache := new(mocks.IndicatorCache)
	cache.On("Get", ctx, studentID).Return(nil, model.ErrNotFound).Once()
	cache.On("Set", ctx, mock.AnythingOfType("*model.Indicators"), mock.AnythingOfType("time.Duration")).
		Return(nil).Once()

	studentRepo := new(mocks.StudentRepository)
	sessionRepo := new(mocks.SessionRepository)
	eventRepo := new(mocks.EventRepository)
	planRepo := new(mocks.PlanRepository)

	studentRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), studentID).
		Return(&model.Student{StudentID: studentID}, nil).Once()
	sessionRepo.On("FindByStudent", ctx, mock.AnythingOfType("*gorm.DB"), studentID).
		Return([]*model.MentoringSession{
			{SessionNumber: 1, Presence: model.Present, TaskStatus: model.TaskNone},
			{SessionNumber: 2, Presence: model.Absent, TaskStatus: model.TaskNone},
		}, nil).Once()
	eventRepo.On("FindParticipationsByStudent", ctx, mock.AnythingOfType("*gorm.DB"), studentID).
		Return(nil, nil).Once()
	planRepo.On("FindFrozenItemsByStudent", ctx, mock.AnythingOfType("*gorm.DB"), studentID).
		Return(nil, nil).Once()

	svc := NewIndicatorService(db, studentRepo, sessionRepo, eventRepo, planRepo, cache)
	ind, err := svc.GetIndicators(ctx, studentID)

	require.NoError(t, err)
	assert.Equal(t, studentID, ind.StudentID)
	assert.InDelta(t, 50.0, ind.Mentoring, 1e-9)
	cache.AssertExpectations(t)
}

func TestIndicatorService_GetIndicators_CacheErrorDegradesToCompute(t *testing.T) {
	ctx := context.Background()
	studentID := uuid.New()
	db := setupTestDB(t)

	cache := new(mocks.IndicatorCache)
	cache.On("Get", ctx, studentID).Return(nil, errors.New("redis: connection refused")).Once()
	cache.On("Set", ctx, mock.AnythingOfType("*model.Indicators"), mock.AnythingOfType("time.Duration")).
		Return(errors.New("redis: connection refused")).Once()

	studentRepo := new(mocks.StudentRepository)
	sessionRepo := new(mocks.SessionRepository)
	eventRepo := new(mocks.EventRepository)
	planRepo := new(mocks.PlanRepository)

	studentRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), studentID).
		Return(&model.Student{StudentID: studentID}, nil).Once()
	sessionRepo.On("FindByStudent", ctx, mock.AnythingOfType("*gorm.DB"), studentID).
		Return(nil, nil).Once()
	eventRepo.On("FindParticipationsByStudent", ctx, mock.AnythingOfType("*gorm.DB"), studentID).
		Return(nil, nil).Once()
	planRepo.On("FindFrozenItemsByStudent", ctx, mock.AnythingOfType("*gorm.DB"), studentID).
		Return(nil, nil).Once()

	svc := NewIndicatorService(db, studentRepo, sessionRepo, eventRepo, planRepo, cache)
	ind, err := svc.GetIndicators(ctx, studentID)

	// Both cache failures are swallowed; the request still serves data.
	require.NoError(t, err)
	assert.Equal(t, studentID, ind.StudentID)
}

func TestIndicatorService_GetIndicators_UnknownStudent(t *testing.T) {
	ctx := context.Background()
	studentID := uuid.New()
	db := setupTestDB(t)

	studentRepo := new(mocks.StudentRepository)
	studentRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), studentID).
		Return(nil, model.ErrNotFound).Once()

	svc := NewIndicatorService(db, studentRepo, new(mocks.SessionRepository), new(mocks.EventRepository), new(mocks.PlanRepository), repository.NewRedisIndicatorCache(nil))
	_, err := svc.GetIndicators(ctx, studentID)

	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func TestIndicatorService_PrecomputeProgram(t *testing.T) {
	ctx := context.Background()
	programID := uuid.New()
	db := setupTestDB(t)

	prevWorkers := config.Cfg.App.IngestWorkers
	config.Cfg.App.IngestWorkers = 4
	t.Cleanup(func() { config.Cfg.App.IngestWorkers = prevWorkers })

	students := []*model.Student{
		{StudentID: uuid.New(), ProgramID: programID},
		{StudentID: uuid.New(), ProgramID: programID},
		{StudentID: uuid.New(), ProgramID: programID},
	}

	studentRepo := new(mocks.StudentRepository)
	sessionRepo := new(mocks.SessionRepository)
	eventRepo := new(mocks.EventRepository)
	planRepo := new(mocks.PlanRepository)
	cache := new(mocks.IndicatorCache)

	studentRepo.On("FindByProgram", ctx, mock.AnythingOfType("*gorm.DB"), programID).
		Return(students, nil).Once()
	for _, student := range students {
		studentRepo.On("FindByID", mock.Anything, mock.AnythingOfType("*gorm.DB"), student.StudentID).
			Return(student, nil).Once()
		sessionRepo.On("FindByStudent", mock.Anything, mock.AnythingOfType("*gorm.DB"), student.StudentID).
			Return(nil, nil).Once()
		eventRepo.On("FindParticipationsByStudent", mock.Anything, mock.AnythingOfType("*gorm.DB"), student.StudentID).
			Return(nil, nil).Once()
		planRepo.On("FindFrozenItemsByStudent", mock.Anything, mock.AnythingOfType("*gorm.DB"), student.StudentID).
			Return(nil, nil).Once()
	}
	cache.On("Set", mock.Anything, mock.AnythingOfType("*model.Indicators"), mock.AnythingOfType("time.Duration")).
		Return(nil).Times(len(students))

	svc := NewIndicatorService(db, studentRepo, sessionRepo, eventRepo, planRepo, cache)
	count, err := svc.PrecomputeProgram(ctx, programID)

	require.NoError(t, err)
	assert.Equal(t, len(students), count)
	cache.AssertExpectations(t)
}

func TestIndicatorService_InvalidateProgram(t *testing.T) {
	ctx := context.Background()
	programID := uuid.New()
	db := setupTestDB(t)

	students := []*model.Student{
		{StudentID: uuid.New()},
		{StudentID: uuid.New()},
	}

	studentRepo := new(mocks.StudentRepository)
	studentRepo.On("FindByProgram", ctx, mock.AnythingOfType("*gorm.DB"), programID).
		Return(students, nil).Twice()

	t.Run("removes every student key", func(t *testing.T) {
		cache := new(mocks.IndicatorCache)
		cache.On("Invalidate", ctx, []uuid.UUID{students[0].StudentID, students[1].StudentID}).
			Return(nil).Once()

		svc := NewIndicatorService(db, studentRepo, new(mocks.SessionRepository), new(mocks.EventRepository), new(mocks.PlanRepository), cache)
		require.NoError(t, svc.InvalidateProgram(ctx, programID))
		cache.AssertExpectations(t)
	})

	t.Run("cache failure does not fail the caller", func(t *testing.T) {
		cache := new(mocks.IndicatorCache)
		cache.On("Invalidate", ctx, mock.AnythingOfType("[]uuid.UUID")).
			Return(errors.New("redis: connection refused")).Once()

		svc := NewIndicatorService(db, studentRepo, new(mocks.SessionRepository), new(mocks.EventRepository), new(mocks.PlanRepository), cache)
		assert.NoError(t, svc.InvalidateProgram(ctx, programID))
	})
}

func TestNoopIndicatorCache(t *testing.T) {
	cache := repository.NewRedisIndicatorCache(nil)

	_, err := cache.Get(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, model.ErrNotFound))
	assert.NoError(t, cache.Set(context.Background(), &model.Indicators{}, time.Minute))
	assert.NoError(t, cache.Invalidate(context.Background(), []uuid.UUID{uuid.New()}))
}
