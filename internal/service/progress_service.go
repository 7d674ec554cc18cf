package service

import (
	"context"
	"errors"
	"log/slog"

	"mentoria_engine/internal/config"
	"mentoria_engine/internal/middleware"
	"mentoria_engine/internal/model"
	"mentoria_engine/internal/repository"
	"mentoria_engine/internal/webutil"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// legacyScaleCeiling separates the two score scales that coexist in imports:
// anything at or below it is read as the original 0-10 scale.
const legacyScaleCeiling = 10.0

// ProgressService maintains the individual development plan: one row per
// student-competency pair, grouped into assessment cycles.
type ProgressService interface {
	// UpsertProgress creates or updates the (student, competency) row. The
	// pair is the natural key, so re-imported performance files converge
	// instead of duplicating.
	UpsertProgress(ctx context.Context, req *model.UpsertProgressRequest) (*model.PlanItem, error)
	// FinalizeCycle freezes a cycle. Frozen items become visible to the
	// competency and learning indicators; active ones never are.
	FinalizeCycle(ctx context.Context, cycleID uuid.UUID) error
	FindOrCreateCycle(ctx context.Context, studentID uuid.UUID, label string) (*model.AssessmentCycle, error)
	ListPlan(ctx context.Context, studentID uuid.UUID) ([]*model.PlanItem, error)
}

type progressService struct {
	db       *gorm.DB
	planRepo repository.PlanRepository
}

func NewProgressService(db *gorm.DB, planRepo repository.PlanRepository) ProgressService {
	return &progressService{db: db, planRepo: planRepo}
}

func (s *progressService) UpsertProgress(ctx context.Context, req *model.UpsertProgressRequest) (*model.PlanItem, error) {
	logger := middleware.GetLogger(ctx).With("student_id", req.StudentID, "competency_id", req.CompetencyID)

	if err := webutil.ValidateStruct(req); err != nil {
		return nil, err
	}

	score, target := normalizeScorePair(req.Score, req.TargetScore)

	var saved *model.PlanItem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item, err := s.planRepo.FindItem(ctx, tx, req.StudentID, req.CompetencyID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return err
		}

		if errors.Is(err, model.ErrNotFound) {
			item = &model.PlanItem{
				PlanItemID:   uuid.New(),
				StudentID:    req.StudentID,
				CompetencyID: req.CompetencyID,
			}
		}

		item.CycleID = req.CycleID
		item.Required = req.Required
		item.Score = score
		item.TargetScore = target
		item.AssessmentScore = req.AssessmentScore
		item.Status = deriveStatus(score, target)
		item.MicroStart = req.MicroStart
		item.MicroEnd = req.MicroEnd

		if req.CycleID != nil {
			cycle, err := s.planRepo.FindCycle(ctx, tx, *req.CycleID)
			if err != nil {
				if errors.Is(err, model.ErrNotFound) {
					return model.NewAppError("UNRESOLVED_REFERENCE",
						"cycle does not exist", "cycle_id", model.ErrUnresolvedReference)
				}
				return err
			}
			clampMicroWindow(item, cycle, logger)
			if req.CycleStatus.Valid() && req.CycleStatus != cycle.Status {
				if err := s.planRepo.UpdateCycleStatus(ctx, tx, cycle.CycleID, req.CycleStatus); err != nil {
					return err
				}
			}
		}

		if item.CreatedAt.IsZero() {
			if err := s.planRepo.CreateItem(ctx, tx, item); err != nil {
				return err
			}
		} else if err := s.planRepo.UpdateItem(ctx, tx, item); err != nil {
			return err
		}
		saved = item
		return nil
	})
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		logger.Error("Failed to upsert progress", "error", err)
		return nil, model.ErrInternalServer
	}
	return saved, nil
}

func (s *progressService) FinalizeCycle(ctx context.Context, cycleID uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.planRepo.UpdateCycleStatus(ctx, tx, cycleID, model.CycleFrozen)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Failed to finalize cycle", "error", err, "cycle_id", cycleID)
		return model.ErrInternalServer
	}
	middleware.GetLogger(ctx).Info("Cycle frozen", "cycle_id", cycleID)
	return nil
}

func (s *progressService) FindOrCreateCycle(ctx context.Context, studentID uuid.UUID, label string) (*model.AssessmentCycle, error) {
	var resolved *model.AssessmentCycle
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cycle, err := s.planRepo.FindCycleByLabel(ctx, tx, studentID, label)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return err
		}
		if err == nil {
			resolved = cycle
			return nil
		}

		resolved = &model.AssessmentCycle{
			CycleID:   uuid.New(),
			StudentID: studentID,
			Label:     label,
			Status:    model.CycleActive,
		}
		return s.planRepo.CreateCycle(ctx, tx, resolved)
	})
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to find or create cycle", "error", err, "label", label)
		return nil, model.ErrInternalServer
	}
	return resolved, nil
}

func (s *progressService) ListPlan(ctx context.Context, studentID uuid.UUID) ([]*model.PlanItem, error) {
	items, err := s.planRepo.FindItemsByStudent(ctx, s.db, studentID)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to list plan items", "error", err, "student_id", studentID)
		return nil, model.ErrInternalServer
	}
	return items, nil
}

// normalizeScorePair keeps score and target on the same scale. A score above
// the legacy ceiling marks a 0-100 normalized import; the default target then
// scales accordingly. Zero target always means "use the configured default".
func normalizeScorePair(score, target float64) (float64, float64) {
	if target > 0 {
		return score, target
	}
	defaultTarget := config.Cfg.Scoring.DefaultTargetScore
	if defaultTarget <= 0 {
		defaultTarget = config.DefaultTargetScore
	}
	if score > legacyScaleCeiling {
		return score, defaultTarget * 10
	}
	return score, defaultTarget
}

// deriveStatus is the single place status is computed from scores; callers
// never set it directly.
func deriveStatus(score, target float64) model.PlanStatus {
	switch {
	case target > 0 && score >= target:
		return model.PlanDone
	case score > 0:
		return model.PlanInProgress
	default:
		return model.PlanPending
	}
}

// clampMicroWindow forces the per-item window inside its cycle's macro window.
// Source files occasionally carry micro dates outside the cycle; the row is
// kept and the overflow logged rather than rejected.
func clampMicroWindow(item *model.PlanItem, cycle *model.AssessmentCycle, logger *slog.Logger) {
	if cycle.MacroStart.IsZero() && cycle.MacroEnd.IsZero() {
		return
	}
	clamped := false
	if item.MicroStart != nil && !cycle.MacroStart.IsZero() && item.MicroStart.Before(cycle.MacroStart) {
		start := cycle.MacroStart
		item.MicroStart = &start
		clamped = true
	}
	if item.MicroEnd != nil && !cycle.MacroEnd.IsZero() && item.MicroEnd.After(cycle.MacroEnd) {
		end := cycle.MacroEnd
		item.MicroEnd = &end
		clamped = true
	}
	if clamped {
		logger.Warn("Micro window clamped into cycle window",
			"plan_item_id", item.PlanItemID, "cycle_id", cycle.CycleID)
	}
}
