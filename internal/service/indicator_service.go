package service

import (
	"context"
	"errors"

	"mentoria_engine/internal/config"
	"mentoria_engine/internal/middleware"
	"mentoria_engine/internal/model"
	"mentoria_engine/internal/repository"
	"mentoria_engine/internal/scoring"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// IndicatorService computes per-student indicator sets on demand, with a
// read-through cache in front. Computation never writes; the stored facts are
// the source of truth and the cache is only a shortcut.
type IndicatorService interface {
	GetIndicators(ctx context.Context, studentID uuid.UUID) (*model.Indicators, error)
	// PrecomputeProgram warms the cache for every student of a program, fanned
	// out over the configured worker count. Runs after a batch completes.
	PrecomputeProgram(ctx context.Context, programID uuid.UUID) (int, error)
	InvalidateProgram(ctx context.Context, programID uuid.UUID) error
}

type indicatorService struct {
	db          *gorm.DB
	studentRepo repository.StudentRepository
	sessionRepo repository.SessionRepository
	eventRepo   repository.EventRepository
	planRepo    repository.PlanRepository
	cache       repository.IndicatorCache
}

func NewIndicatorService(db *gorm.DB, studentRepo repository.StudentRepository, sessionRepo repository.SessionRepository, eventRepo repository.EventRepository, planRepo repository.PlanRepository, cache repository.IndicatorCache) IndicatorService {
	return &indicatorService{
		db:          db,
		studentRepo: studentRepo,
		sessionRepo: sessionRepo,
		eventRepo:   eventRepo,
		planRepo:    planRepo,
		cache:       cache,
	}
}

func (s *indicatorService) GetIndicators(ctx context.Context, studentID uuid.UUID) (*model.Indicators, error) {
	logger := middleware.GetLogger(ctx).With("student_id", studentID)

	cached, err := s.cache.Get(ctx, studentID)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		// Cache trouble degrades to a recompute, never to a failed request.
		logger.Warn("Indicator cache read failed", "error", err)
	}

	ind, err := s.compute(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, ind, config.Cfg.Scoring.CacheTTL); err != nil {
		logger.Warn("Indicator cache write failed", "error", err)
	}
	return ind, nil
}

func (s *indicatorService) compute(ctx context.Context, studentID uuid.UUID) (*model.Indicators, error) {
	logger := middleware.GetLogger(ctx).With("student_id", studentID)

	if _, err := s.studentRepo.FindByID(ctx, s.db, studentID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Failed to load student", "error", err)
		return nil, model.ErrInternalServer
	}

	ledger := &model.StudentLedger{}
	var err error
	if ledger.Sessions, err = s.sessionRepo.FindByStudent(ctx, s.db, studentID); err != nil {
		logger.Error("Failed to load sessions", "error", err)
		return nil, model.ErrInternalServer
	}
	if ledger.Participations, err = s.eventRepo.FindParticipationsByStudent(ctx, s.db, studentID); err != nil {
		logger.Error("Failed to load event participations", "error", err)
		return nil, model.ErrInternalServer
	}
	if ledger.FrozenPlanItems, err = s.planRepo.FindFrozenItemsByStudent(ctx, s.db, studentID); err != nil {
		logger.Error("Failed to load frozen plan items", "error", err)
		return nil, model.ErrInternalServer
	}

	ind := scoring.Compute(ledger)
	ind.StudentID = studentID
	return &ind, nil
}

func (s *indicatorService) PrecomputeProgram(ctx context.Context, programID uuid.UUID) (int, error) {
	logger := middleware.GetLogger(ctx).With("program_id", programID)

	students, err := s.studentRepo.FindByProgram(ctx, s.db, programID)
	if err != nil {
		logger.Error("Failed to list program students", "error", err)
		return 0, model.ErrInternalServer
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(config.Cfg.App.IngestWorkers)
	for _, student := range students {
		studentID := student.StudentID
		g.Go(func() error {
			ind, err := s.compute(gctx, studentID)
			if err != nil {
				return err
			}
			return s.cache.Set(gctx, ind, config.Cfg.Scoring.CacheTTL)
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("Indicator precompute failed", "error", err)
		return 0, model.ErrInternalServer
	}

	logger.Info("Indicator precompute finished", "students", len(students))
	return len(students), nil
}

func (s *indicatorService) InvalidateProgram(ctx context.Context, programID uuid.UUID) error {
	students, err := s.studentRepo.FindByProgram(ctx, s.db, programID)
	if err != nil {
		return model.ErrInternalServer
	}
	ids := make([]uuid.UUID, 0, len(students))
	for _, student := range students {
		ids = append(ids, student.StudentID)
	}
	if err := s.cache.Invalidate(ctx, ids); err != nil {
		middleware.GetLogger(ctx).Warn("Indicator cache invalidation failed",
			"error", err, "program_id", programID)
	}
	return nil
}
