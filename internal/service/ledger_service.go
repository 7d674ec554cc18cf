package service

import (
	"context"
	"errors"
	"time"

	"mentoria_engine/internal/middleware"
	"mentoria_engine/internal/model"
	"mentoria_engine/internal/repository"
	"mentoria_engine/internal/webutil"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LedgerService is the append-only store of discrete facts: mentoring
// sessions and event participations.
type LedgerService interface {
	// RecordSession appends a session row. Historical rows are never updated
	// in place; re-uploaded files coexist unless the orchestrator clears the
	// file window first.
	RecordSession(ctx context.Context, req *model.RecordSessionRequest) (*model.MentoringSession, error)
	// ClearFileSessions removes the rows a file produced; batch-level
	// re-import is replace, not merge.
	ClearFileSessions(ctx context.Context, fileID uuid.UUID) (int64, error)
	// RecordEventParticipation upserts the (student, event) row; spreadsheet
	// imports commonly seed it as ausente.
	RecordEventParticipation(ctx context.Context, studentID, eventID uuid.UUID, status model.Presence) (*model.EventParticipation, error)
	// SelfReport flips the row to presente with the student's reflection.
	// Accepted only after the event's recorded end; events without an end
	// time stay open for legacy compatibility.
	SelfReport(ctx context.Context, req *model.SelfReportRequest) (*model.EventParticipation, error)
	FindOrCreateEvent(ctx context.Context, programID uuid.UUID, title string, eventType model.EventType, date time.Time) (*model.Event, error)
}

type ledgerService struct {
	db          *gorm.DB
	sessionRepo repository.SessionRepository
	eventRepo   repository.EventRepository
	now         func() time.Time
}

func NewLedgerService(db *gorm.DB, sessionRepo repository.SessionRepository, eventRepo repository.EventRepository) LedgerService {
	return &ledgerService{
		db:          db,
		sessionRepo: sessionRepo,
		eventRepo:   eventRepo,
		now:         time.Now,
	}
}

func (s *ledgerService) RecordSession(ctx context.Context, req *model.RecordSessionRequest) (*model.MentoringSession, error) {
	logger := middleware.GetLogger(ctx).With("student_id", req.StudentID)

	if err := webutil.ValidateStruct(req); err != nil {
		return nil, err
	}
	if !req.Presence.Valid() {
		return nil, model.NewAppError("VALIDATION_ERROR",
			"presence must be presente or ausente", "presence", model.ErrValidation)
	}
	if req.TaskStatus == "" {
		req.TaskStatus = model.TaskNone
	}
	if !req.TaskStatus.Valid() {
		return nil, model.NewAppError("VALIDATION_ERROR",
			"unknown task status", "task_status", model.ErrValidation)
	}
	if req.EngagementScore != nil && (*req.EngagementScore < 1 || *req.EngagementScore > 5) {
		return nil, model.NewAppError("VALIDATION_ERROR",
			"engagement rating must be between 1 and 5", "engagement_score",
			model.ErrValidation)
	}

	session := &model.MentoringSession{
		SessionID:       uuid.New(),
		StudentID:       req.StudentID,
		MentorID:        req.MentorID,
		CohortID:        req.CohortID,
		Cycle:           req.Cycle,
		SessionNumber:   req.SessionNumber,
		Date:            req.Date,
		Presence:        req.Presence,
		TaskStatus:      req.TaskStatus,
		EngagementScore: req.EngagementScore,
		SourceFileID:    req.SourceFileID,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.sessionRepo.Create(ctx, tx, session)
	})
	if err != nil {
		logger.Error("Failed to record session", "error", err)
		return nil, model.ErrInternalServer
	}
	return session, nil
}

func (s *ledgerService) ClearFileSessions(ctx context.Context, fileID uuid.UUID) (int64, error) {
	var cleared int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		cleared, err = s.sessionRepo.DeleteBySourceFile(ctx, tx, fileID)
		return err
	})
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to clear file sessions", "error", err, "file_id", fileID)
		return 0, model.ErrInternalServer
	}
	if cleared > 0 {
		middleware.GetLogger(ctx).Info("Cleared sessions for re-imported file",
			"file_id", fileID, "cleared", cleared)
	}
	return cleared, nil
}

func (s *ledgerService) RecordEventParticipation(ctx context.Context, studentID, eventID uuid.UUID, status model.Presence) (*model.EventParticipation, error) {
	if !status.Valid() {
		return nil, model.NewAppError("VALIDATION_ERROR",
			"presence must be presente or ausente", "status", model.ErrValidation)
	}

	var saved *model.EventParticipation
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.eventRepo.FindParticipation(ctx, tx, studentID, eventID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return err
		}

		if errors.Is(err, model.ErrNotFound) {
			saved = &model.EventParticipation{
				ParticipationID: uuid.New(),
				StudentID:       studentID,
				EventID:         eventID,
				Status:          status,
			}
			return s.eventRepo.CreateParticipation(ctx, tx, saved)
		}

		// A presente row already confirmed (possibly self-reported) is never
		// downgraded by a later spreadsheet seed.
		if existing.Status == model.Present {
			saved = existing
			return nil
		}
		existing.Status = status
		saved = existing
		return s.eventRepo.UpdateParticipation(ctx, tx, existing)
	})
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to record event participation", "error", err)
		return nil, model.ErrInternalServer
	}
	return saved, nil
}

func (s *ledgerService) SelfReport(ctx context.Context, req *model.SelfReportRequest) (*model.EventParticipation, error) {
	logger := middleware.GetLogger(ctx).With("student_id", req.StudentID, "event_id", req.EventID)

	if err := webutil.ValidateStruct(req); err != nil {
		return nil, err
	}

	var saved *model.EventParticipation
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		event, err := s.eventRepo.FindByID(ctx, tx, req.EventID)
		if err != nil {
			return err
		}
		if event.EndsAt != nil && s.now().Before(*event.EndsAt) {
			return model.NewAppError("SELF_REPORT_TOO_EARLY",
				"self-report opens after the event ends", "event_id",
				model.ErrSelfReportTooEarly)
		}

		now := s.now()
		existing, err := s.eventRepo.FindParticipation(ctx, tx, req.StudentID, req.EventID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return err
		}

		if errors.Is(err, model.ErrNotFound) {
			saved = &model.EventParticipation{
				ParticipationID: uuid.New(),
				StudentID:       req.StudentID,
				EventID:         req.EventID,
				Status:          model.Present,
				Reflection:      req.Reflection,
				SelfReportedAt:  &now,
			}
			return s.eventRepo.CreateParticipation(ctx, tx, saved)
		}

		existing.Status = model.Present
		existing.Reflection = req.Reflection
		existing.SelfReportedAt = &now
		saved = existing
		return s.eventRepo.UpdateParticipation(ctx, tx, existing)
	})
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) || errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		logger.Error("Self-report failed", "error", err)
		return nil, model.ErrInternalServer
	}

	logger.Info("Self-report accepted")
	return saved, nil
}

func (s *ledgerService) FindOrCreateEvent(ctx context.Context, programID uuid.UUID, title string, eventType model.EventType, date time.Time) (*model.Event, error) {
	var resolved *model.Event
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		event, err := s.eventRepo.FindByTitleAndDate(ctx, tx, programID, title, date)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return err
		}
		if err == nil {
			resolved = event
			return nil
		}

		if !eventType.Valid() {
			eventType = model.EventWebinar
		}
		resolved = &model.Event{
			EventID:   uuid.New(),
			ProgramID: programID,
			Title:     title,
			Type:      eventType,
			Date:      date,
		}
		return s.eventRepo.Create(ctx, tx, resolved)
	})
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to find or create event", "error", err, "title", title)
		return nil, model.ErrInternalServer
	}
	return resolved, nil
}
