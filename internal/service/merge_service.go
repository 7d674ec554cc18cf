package service

import (
	"context"
	"errors"
	"strings"

	"mentoria_engine/internal/middleware"
	"mentoria_engine/internal/model"
	"mentoria_engine/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DependentReassigner is the generic half of the merge mechanism: any entity
// type with foreign-key dependents can be merged once something knows how to
// bulk-move those dependents between ids. Mentors use the session ledger;
// other entity kinds plug in their own.
type DependentReassigner interface {
	Kind() string
	Reassign(ctx context.Context, tx *gorm.DB, fromID, toID uuid.UUID) (int64, error)
}

// sessionReassigner moves mentoring sessions between mentors.
type sessionReassigner struct {
	sessions repository.SessionRepository
}

func (r sessionReassigner) Kind() string { return "mentor" }

func (r sessionReassigner) Reassign(ctx context.Context, tx *gorm.DB, fromID, toID uuid.UUID) (int64, error) {
	return r.sessions.ReassignMentor(ctx, tx, fromID, toID)
}

// MergeService consolidates duplicate canonical entities. Duplicate detection
// is a human decision made by cross-referencing names and session counts; the
// service only provides the mechanism and the evidence report.
type MergeService interface {
	// MergeMentors reassigns every session from the duplicates onto the
	// survivor, deletes the duplicates, and renames the survivor. Running the
	// same merge twice is a no-op, not an error.
	MergeMentors(ctx context.Context, programID uuid.UUID, req *model.MergeMentorsRequest) (*model.MergeResult, error)
	// DuplicateCandidates groups a program's mentors by normalized name so a
	// human can decide which rows are the same person.
	DuplicateCandidates(ctx context.Context, programID uuid.UUID) ([]model.MentorDuplicateCandidate, error)
}

type mergeService struct {
	db          *gorm.DB
	mentorRepo  repository.MentorRepository
	sessionRepo repository.SessionRepository
	auditRepo   repository.AuditRepository
}

func NewMergeService(db *gorm.DB, mentorRepo repository.MentorRepository, sessionRepo repository.SessionRepository, auditRepo repository.AuditRepository) MergeService {
	return &mergeService{
		db:          db,
		mentorRepo:  mentorRepo,
		sessionRepo: sessionRepo,
		auditRepo:   auditRepo,
	}
}

func (s *mergeService) MergeMentors(ctx context.Context, programID uuid.UUID, req *model.MergeMentorsRequest) (*model.MergeResult, error) {
	logger := middleware.GetLogger(ctx).With("survivor_id", req.SurvivorID)

	reassigner := sessionReassigner{sessions: s.sessionRepo}
	result := &model.MergeResult{SurvivorID: req.SurvivorID}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		survivor, err := s.mentorRepo.FindByID(ctx, tx, req.SurvivorID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("SURVIVOR_NOT_FOUND",
					"survivor mentor does not exist", "survivor_id", model.ErrNotFound)
			}
			return model.ErrInternalServer
		}
		if survivor.IsFallback {
			return model.NewAppError("INVALID_SURVIVOR",
				"the unresolved-reference bucket cannot survive a merge", "survivor_id",
				model.ErrValidation)
		}

		for _, dupID := range req.DuplicateIDs {
			if dupID == req.SurvivorID {
				return model.NewAppError("INVALID_MERGE",
					"survivor listed among duplicates", "duplicate_ids",
					model.ErrValidation)
			}

			dup, err := s.mentorRepo.FindByID(ctx, tx, dupID)
			if errors.Is(err, model.ErrNotFound) {
				// Already merged on a previous run; skipping keeps the
				// operation idempotent.
				logger.Info("Duplicate already removed, skipping", "duplicate_id", dupID)
				continue
			}
			if err != nil {
				return model.ErrInternalServer
			}
			if dup.IsFallback {
				return model.NewAppError("INVALID_MERGE",
					"the unresolved-reference bucket cannot be merged away", "duplicate_ids",
					model.ErrValidation)
			}

			moved, err := reassigner.Reassign(ctx, tx, dupID, req.SurvivorID)
			if err != nil {
				return model.ErrInternalServer
			}
			result.ReassignedRows += moved

			if _, err := s.mentorRepo.HardDelete(ctx, tx, dupID); err != nil {
				return model.ErrInternalServer
			}
			result.RemovedDuplicates++
		}

		if err := s.mentorRepo.Rename(ctx, tx, req.SurvivorID, req.FinalName); err != nil {
			return model.ErrInternalServer
		}

		result.SurvivorSessions, err = s.sessionRepo.CountByMentor(ctx, tx, req.SurvivorID)
		if err != nil {
			return model.ErrInternalServer
		}

		return s.auditRepo.CreateMergeLog(ctx, tx, &model.MergeLog{
			MergeID:        uuid.New(),
			EntityKind:     reassigner.Kind(),
			SurvivorID:     req.SurvivorID,
			DuplicateCount: result.RemovedDuplicates,
			ReassignedRows: result.ReassignedRows,
			SurvivorName:   req.FinalName,
		})
	})
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		logger.Error("Merge transaction failed", "error", err)
		return nil, model.ErrInternalServer
	}

	// Orphan scan runs after commit: sessions whose mentor id no longer
	// resolves are surfaced for review, never auto-fixed.
	orphans, err := s.sessionRepo.OrphanMentorIDs(ctx, s.db, programID)
	if err != nil {
		logger.Error("Orphan scan failed after merge", "error", err)
		return result, nil
	}
	for _, orphanID := range orphans {
		result.Warnings = append(result.Warnings, model.DataIntegrityWarning{
			Code:     "ORPHAN_SESSIONS",
			Message:  "sessions reference a mentor id that no longer resolves",
			EntityID: orphanID,
		})
	}
	if len(orphans) > 0 {
		logger.Warn("Orphan sessions detected after merge", "orphan_mentor_ids", len(orphans))
	}

	logger.Info("Merge completed",
		"reassigned_rows", result.ReassignedRows,
		"removed_duplicates", result.RemovedDuplicates,
		"survivor_sessions", result.SurvivorSessions,
	)
	return result, nil
}

func (s *mergeService) DuplicateCandidates(ctx context.Context, programID uuid.UUID) ([]model.MentorDuplicateCandidate, error) {
	loads, err := s.mentorRepo.ListWithSessionCounts(ctx, s.db, programID)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to list mentors with session counts", "error", err)
		return nil, model.ErrInternalServer
	}

	// Group by normalized name prefix: the common duplication pattern is the
	// same name with a suffix bolted on ("Adriana Deus - Coordenação").
	groups := make(map[string][]model.MentorLoad)
	order := make([]string, 0)
	for _, load := range loads {
		key := normalizeMentorName(load.Name)
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], load)
	}

	candidates := make([]model.MentorDuplicateCandidate, 0)
	for _, key := range order {
		if len(groups[key]) < 2 {
			continue
		}
		candidates = append(candidates, model.MentorDuplicateCandidate{
			NormalizedName: key,
			Mentors:        groups[key],
		})
	}
	return candidates, nil
}

// normalizeMentorName lowercases and keeps only the part before a separator,
// so "Adriana Deus - Coordenação" and "adriana deus" group together.
func normalizeMentorName(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	for _, sep := range []string{" - ", " – ", "(", "/"} {
		if idx := strings.Index(lower, sep); idx > 0 {
			lower = lower[:idx]
		}
	}
	return strings.TrimSpace(lower)
}
