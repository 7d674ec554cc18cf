package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"mentoria_engine/internal/model"
	"mentoria_engine/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNormalizeScorePair(t *testing.T) {
	tests := []struct {
		name       string
		score      float64
		target     float64
		wantScore  float64
		wantTarget float64
	}{
		{"explicit target wins", 8.0, 9.0, 8.0, 9.0},
		{"legacy score gets the 0-10 default", 6.5, 0, 6.5, 7.0},
		{"normalized score gets the 0-100 default", 65.0, 0, 65.0, 70.0},
		{"zero score still defaults on the legacy scale", 0, 0, 0, 7.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, target := normalizeScorePair(tt.score, tt.target)
			assert.Equal(t, tt.wantScore, score)
			assert.Equal(t, tt.wantTarget, target)
		})
	}
}

func TestDeriveStatus(t *testing.T) {
	assert.Equal(t, model.PlanDone, deriveStatus(7.0, 7.0))
	assert.Equal(t, model.PlanDone, deriveStatus(9.5, 7.0))
	assert.Equal(t, model.PlanInProgress, deriveStatus(3.0, 7.0))
	assert.Equal(t, model.PlanPending, deriveStatus(0, 7.0))
	assert.Equal(t, model.PlanPending, deriveStatus(0, 0))
}

func TestClampMicroWindow(t *testing.T) {
	macroStart := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	macroEnd := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)
	cycle := &model.AssessmentCycle{
		CycleID:    uuid.New(),
		MacroStart: macroStart,
		MacroEnd:   macroEnd,
	}
	t.Run("dates outside the cycle are pulled in", func(t *testing.T) {
		early := macroStart.AddDate(0, -1, 0)
		late := macroEnd.AddDate(0, 1, 0)
		item := &model.PlanItem{MicroStart: &early, MicroEnd: &late}

		clampMicroWindow(item, cycle, testLogger())

		assert.True(t, item.MicroStart.Equal(macroStart))
		assert.True(t, item.MicroEnd.Equal(macroEnd))
	})

	t.Run("dates inside the cycle are untouched", func(t *testing.T) {
		start := macroStart.AddDate(0, 1, 0)
		end := macroEnd.AddDate(0, -1, 0)
		item := &model.PlanItem{MicroStart: &start, MicroEnd: &end}

		clampMicroWindow(item, cycle, testLogger())

		assert.True(t, item.MicroStart.Equal(start))
		assert.True(t, item.MicroEnd.Equal(end))
	})

	t.Run("cycle without a window is a no-op", func(t *testing.T) {
		early := macroStart.AddDate(0, -6, 0)
		item := &model.PlanItem{MicroStart: &early}

		clampMicroWindow(item, &model.AssessmentCycle{CycleID: uuid.New()}, testLogger())

		assert.True(t, item.MicroStart.Equal(early))
	})
}

func TestProgressService_UpsertProgress(t *testing.T) {
	ctx := context.Background()
	studentID := uuid.New()
	competencyID := uuid.New()

	t.Run("first import creates the pair", func(t *testing.T) {
		db := setupTestDB(t)
		planRepo := new(mocks.PlanRepository)
		planRepo.On("FindItem", ctx, mock.AnythingOfType("*gorm.DB"), studentID, competencyID).
			Return(nil, model.ErrNotFound).Once()
		planRepo.On("CreateItem", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.PlanItem")).
			Run(func(args mock.Arguments) {
				item := args.Get(2).(*model.PlanItem)
				assert.NotEqual(t, uuid.Nil, item.PlanItemID)
				assert.Equal(t, 6.5, item.Score)
				assert.Equal(t, 7.0, item.TargetScore)
				assert.Equal(t, model.PlanInProgress, item.Status)
			}).Return(nil).Once()

		svc := NewProgressService(db, planRepo)
		item, err := svc.UpsertProgress(ctx, &model.UpsertProgressRequest{
			StudentID:    studentID,
			CompetencyID: competencyID,
			Score:        6.5,
		})

		require.NoError(t, err)
		require.NotNil(t, item)
		planRepo.AssertExpectations(t)
	})

	t.Run("re-import updates the existing pair instead of duplicating", func(t *testing.T) {
		db := setupTestDB(t)
		planRepo := new(mocks.PlanRepository)
		existing := &model.PlanItem{
			PlanItemID:   uuid.New(),
			StudentID:    studentID,
			CompetencyID: competencyID,
			Score:        4.0,
			TargetScore:  7.0,
			Status:       model.PlanInProgress,
			CreatedAt:    time.Now(),
		}
		planRepo.On("FindItem", ctx, mock.AnythingOfType("*gorm.DB"), studentID, competencyID).
			Return(existing, nil).Once()
		planRepo.On("UpdateItem", ctx, mock.AnythingOfType("*gorm.DB"), existing).
			Return(nil).Once()

		svc := NewProgressService(db, planRepo)
		item, err := svc.UpsertProgress(ctx, &model.UpsertProgressRequest{
			StudentID:    studentID,
			CompetencyID: competencyID,
			Score:        7.5,
		})

		require.NoError(t, err)
		assert.Equal(t, existing.PlanItemID, item.PlanItemID)
		assert.Equal(t, model.PlanDone, item.Status)
		planRepo.AssertNotCalled(t, "CreateItem", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing cycle reference is rejected", func(t *testing.T) {
		db := setupTestDB(t)
		planRepo := new(mocks.PlanRepository)
		cycleID := uuid.New()
		planRepo.On("FindItem", ctx, mock.AnythingOfType("*gorm.DB"), studentID, competencyID).
			Return(nil, model.ErrNotFound).Once()
		planRepo.On("FindCycle", ctx, mock.AnythingOfType("*gorm.DB"), cycleID).
			Return(nil, model.ErrNotFound).Once()

		svc := NewProgressService(db, planRepo)
		_, err := svc.UpsertProgress(ctx, &model.UpsertProgressRequest{
			StudentID:    studentID,
			CompetencyID: competencyID,
			CycleID:      &cycleID,
			Score:        5.0,
		})

		require.Error(t, err)
		var appErr *model.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "UNRESOLVED_REFERENCE", appErr.Code)
		assert.True(t, errors.Is(err, model.ErrUnresolvedReference))
		planRepo.AssertNotCalled(t, "CreateItem", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("micro dates outside the cycle window are clamped on write", func(t *testing.T) {
		db := setupTestDB(t)
		planRepo := new(mocks.PlanRepository)
		cycleID := uuid.New()
		macroStart := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
		macroEnd := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)
		early := macroStart.AddDate(0, -2, 0)

		planRepo.On("FindItem", ctx, mock.AnythingOfType("*gorm.DB"), studentID, competencyID).
			Return(nil, model.ErrNotFound).Once()
		planRepo.On("FindCycle", ctx, mock.AnythingOfType("*gorm.DB"), cycleID).
			Return(&model.AssessmentCycle{
				CycleID: cycleID, MacroStart: macroStart, MacroEnd: macroEnd,
				Status: model.CycleActive,
			}, nil).Once()
		planRepo.On("CreateItem", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.PlanItem")).
			Run(func(args mock.Arguments) {
				item := args.Get(2).(*model.PlanItem)
				require.NotNil(t, item.MicroStart)
				assert.True(t, item.MicroStart.Equal(macroStart))
			}).Return(nil).Once()

		svc := NewProgressService(db, planRepo)
		_, err := svc.UpsertProgress(ctx, &model.UpsertProgressRequest{
			StudentID:    studentID,
			CompetencyID: competencyID,
			CycleID:      &cycleID,
			Score:        5.0,
			MicroStart:   &early,
		})
		require.NoError(t, err)
		planRepo.AssertExpectations(t)
	})

	t.Run("missing student id fails validation", func(t *testing.T) {
		db := setupTestDB(t)
		svc := NewProgressService(db, new(mocks.PlanRepository))

		_, err := svc.UpsertProgress(ctx, &model.UpsertProgressRequest{
			CompetencyID: competencyID,
			Score:        5.0,
		})
		assert.Error(t, err)
	})
}

func TestProgressService_FinalizeCycle(t *testing.T) {
	ctx := context.Background()
	cycleID := uuid.New()

	t.Run("freezes the cycle", func(t *testing.T) {
		db := setupTestDB(t)
		planRepo := new(mocks.PlanRepository)
		planRepo.On("UpdateCycleStatus", ctx, mock.AnythingOfType("*gorm.DB"), cycleID, model.CycleFrozen).
			Return(nil).Once()

		svc := NewProgressService(db, planRepo)
		require.NoError(t, svc.FinalizeCycle(ctx, cycleID))
		planRepo.AssertExpectations(t)
	})

	t.Run("unknown cycle passes not-found through", func(t *testing.T) {
		db := setupTestDB(t)
		planRepo := new(mocks.PlanRepository)
		planRepo.On("UpdateCycleStatus", ctx, mock.AnythingOfType("*gorm.DB"), cycleID, model.CycleFrozen).
			Return(model.ErrNotFound).Once()

		svc := NewProgressService(db, planRepo)
		err := svc.FinalizeCycle(ctx, cycleID)
		assert.True(t, errors.Is(err, model.ErrNotFound))
	})
}

func TestProgressService_FindOrCreateCycle(t *testing.T) {
	ctx := context.Background()
	studentID := uuid.New()

	t.Run("existing label resolves", func(t *testing.T) {
		db := setupTestDB(t)
		planRepo := new(mocks.PlanRepository)
		existing := &model.AssessmentCycle{CycleID: uuid.New(), StudentID: studentID, Label: "Ciclo 1"}
		planRepo.On("FindCycleByLabel", ctx, mock.AnythingOfType("*gorm.DB"), studentID, "Ciclo 1").
			Return(existing, nil).Once()

		svc := NewProgressService(db, planRepo)
		cycle, err := svc.FindOrCreateCycle(ctx, studentID, "Ciclo 1")

		require.NoError(t, err)
		assert.Equal(t, existing.CycleID, cycle.CycleID)
		planRepo.AssertNotCalled(t, "CreateCycle", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("new label starts an active cycle", func(t *testing.T) {
		db := setupTestDB(t)
		planRepo := new(mocks.PlanRepository)
		planRepo.On("FindCycleByLabel", ctx, mock.AnythingOfType("*gorm.DB"), studentID, "Ciclo 2").
			Return(nil, model.ErrNotFound).Once()
		planRepo.On("CreateCycle", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.AssessmentCycle")).
			Run(func(args mock.Arguments) {
				assert.Equal(t, model.CycleActive, args.Get(2).(*model.AssessmentCycle).Status)
			}).Return(nil).Once()

		svc := NewProgressService(db, planRepo)
		cycle, err := svc.FindOrCreateCycle(ctx, studentID, "Ciclo 2")

		require.NoError(t, err)
		assert.Equal(t, model.CycleActive, cycle.Status)
	})
}
