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

// fallbackMentorName labels the per-program bucket that absorbs sessions
// whose mentor name could not be resolved on lenient files.
const fallbackMentorName = "Consultor não identificado"

// ResolverService matches incoming row identifiers against canonical
// entities, creating them when absent. Every create and update is written to
// the resolution log with its source batch and file.
type ResolverService interface {
	ResolveStudent(ctx context.Context, bctx model.BatchContext, externalID, name, email string, cohortID *uuid.UUID) (*model.Student, error)
	// ResolveMentor matches case-insensitively on the exact name. Each
	// distinct name string becomes its own mentor; consolidation is the merge
	// service's job, never the resolver's.
	ResolveMentor(ctx context.Context, bctx model.BatchContext, name string) (*model.Mentor, error)
	// FallbackMentor returns (creating once per program) the bucket mentor
	// for unresolved references on lenient files.
	FallbackMentor(ctx context.Context, bctx model.BatchContext) (*model.Mentor, error)
	LookupCohort(ctx context.Context, programID uuid.UUID, externalID string) (*model.Cohort, error)
	LookupCompetency(ctx context.Context, externalID string) (*model.Competency, error)
}

type resolverService struct {
	db          *gorm.DB
	studentRepo repository.StudentRepository
	mentorRepo  repository.MentorRepository
	programRepo repository.ProgramRepository
	auditRepo   repository.AuditRepository
}

func NewResolverService(db *gorm.DB, studentRepo repository.StudentRepository, mentorRepo repository.MentorRepository, programRepo repository.ProgramRepository, auditRepo repository.AuditRepository) ResolverService {
	return &resolverService{
		db:          db,
		studentRepo: studentRepo,
		mentorRepo:  mentorRepo,
		programRepo: programRepo,
		auditRepo:   auditRepo,
	}
}

func (s *resolverService) ResolveStudent(ctx context.Context, bctx model.BatchContext, externalID, name, email string, cohortID *uuid.UUID) (*model.Student, error) {
	logger := middleware.GetLogger(ctx).With("program_id", bctx.ProgramID)

	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return nil, model.NewAppError("MISSING_IDENTIFIER",
			"row lacks the student external identifier", "external_id",
			model.ErrMissingIdentifier)
	}

	var resolved *model.Student
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		student, err := s.studentRepo.FindByExternalID(ctx, tx, bctx.ProgramID, externalID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return model.ErrInternalServer
		}

		if errors.Is(err, model.ErrNotFound) {
			student = &model.Student{
				StudentID:  uuid.New(),
				ProgramID:  bctx.ProgramID,
				ExternalID: externalID,
				Name:       strings.TrimSpace(name),
				Email:      strings.TrimSpace(email),
				CohortID:   cohortID,
			}
			if err := s.studentRepo.Create(ctx, tx, student); err != nil {
				return model.ErrInternalServer
			}
			if err := s.logResolution(ctx, tx, bctx, "student", student.StudentID, externalID, model.ResolutionCreated); err != nil {
				return model.ErrInternalServer
			}
			resolved = student
			return nil
		}

		// Only fill fields that are currently empty. A populated field that
		// disagrees with the row is a reconciliation conflict for the merge
		// path, not something to overwrite silently.
		updates := make(map[string]interface{})
		if student.Name == "" && strings.TrimSpace(name) != "" {
			updates["name"] = strings.TrimSpace(name)
		}
		if student.Email == "" && strings.TrimSpace(email) != "" {
			updates["email"] = strings.TrimSpace(email)
		}
		if student.CohortID == nil && cohortID != nil {
			updates["cohort_id"] = *cohortID
		}
		if student.Name != "" && strings.TrimSpace(name) != "" &&
			!strings.EqualFold(student.Name, strings.TrimSpace(name)) {
			logger.Warn("Student name conflict left for manual review",
				"student_id", student.StudentID,
				"canonical", student.Name,
				"incoming", strings.TrimSpace(name),
			)
		}

		action := model.ResolutionMatched
		if len(updates) > 0 {
			if err := s.studentRepo.Update(ctx, tx, student.StudentID, updates); err != nil {
				return model.ErrInternalServer
			}
			action = model.ResolutionUpdated
		}
		if action != model.ResolutionMatched {
			if err := s.logResolution(ctx, tx, bctx, "student", student.StudentID, externalID, action); err != nil {
				return model.ErrInternalServer
			}
		}

		resolved, err = s.studentRepo.FindByExternalID(ctx, tx, bctx.ProgramID, externalID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resolved, nil
}

func (s *resolverService) ResolveMentor(ctx context.Context, bctx model.BatchContext, name string) (*model.Mentor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.NewAppError("MISSING_IDENTIFIER",
			"row lacks the mentor name", "consultor",
			model.ErrMissingIdentifier)
	}

	var resolved *model.Mentor
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		mentor, err := s.mentorRepo.FindByName(ctx, tx, bctx.ProgramID, name)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return model.ErrInternalServer
		}
		if err == nil {
			resolved = mentor
			return nil
		}

		programID := bctx.ProgramID
		mentor = &model.Mentor{
			MentorID:  uuid.New(),
			ProgramID: &programID,
			Name:      name,
			Active:    true,
		}
		if err := s.mentorRepo.Create(ctx, tx, mentor); err != nil {
			return model.ErrInternalServer
		}
		if err := s.logResolution(ctx, tx, bctx, "mentor", mentor.MentorID, name, model.ResolutionCreated); err != nil {
			return model.ErrInternalServer
		}
		resolved = mentor
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resolved, nil
}

func (s *resolverService) FallbackMentor(ctx context.Context, bctx model.BatchContext) (*model.Mentor, error) {
	var resolved *model.Mentor
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		mentor, err := s.mentorRepo.FindFallback(ctx, tx, bctx.ProgramID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return model.ErrInternalServer
		}
		if err == nil {
			resolved = mentor
			return nil
		}

		programID := bctx.ProgramID
		mentor = &model.Mentor{
			MentorID:   uuid.New(),
			ProgramID:  &programID,
			Name:       fallbackMentorName,
			Active:     false,
			IsFallback: true,
		}
		if err := s.mentorRepo.Create(ctx, tx, mentor); err != nil {
			return model.ErrInternalServer
		}
		if err := s.logResolution(ctx, tx, bctx, "mentor", mentor.MentorID, fallbackMentorName, model.ResolutionCreated); err != nil {
			return model.ErrInternalServer
		}
		resolved = mentor
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resolved, nil
}

func (s *resolverService) LookupCohort(ctx context.Context, programID uuid.UUID, externalID string) (*model.Cohort, error) {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return nil, model.NewAppError("UNRESOLVED_REFERENCE",
			"row lacks the cohort identifier", "turma",
			model.ErrUnresolvedReference)
	}
	cohort, err := s.programRepo.FindCohortByExternalID(ctx, s.db, programID, externalID)
	if errors.Is(err, model.ErrNotFound) {
		return nil, model.NewAppError("UNRESOLVED_REFERENCE",
			"cohort not found in catalog: "+externalID, "turma",
			model.ErrUnresolvedReference)
	}
	return cohort, err
}

func (s *resolverService) LookupCompetency(ctx context.Context, externalID string) (*model.Competency, error) {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return nil, model.NewAppError("UNRESOLVED_REFERENCE",
			"row lacks the competency identifier", "id_competencia",
			model.ErrUnresolvedReference)
	}
	competency, err := s.programRepo.FindCompetencyByExternalID(ctx, s.db, externalID)
	if errors.Is(err, model.ErrNotFound) {
		return nil, model.NewAppError("UNRESOLVED_REFERENCE",
			"competency not found in catalog: "+externalID, "id_competencia",
			model.ErrUnresolvedReference)
	}
	return competency, err
}

func (s *resolverService) logResolution(ctx context.Context, tx *gorm.DB, bctx model.BatchContext, kind string, entityID uuid.UUID, externalID string, action model.ResolutionAction) error {
	return s.auditRepo.CreateResolutionLog(ctx, tx, &model.ResolutionLog{
		LogID:      uuid.New(),
		ProgramID:  bctx.ProgramID,
		BatchID:    bctx.BatchID,
		FileID:     bctx.FileID,
		EntityKind: kind,
		EntityID:   entityID,
		ExternalID: externalID,
		Action:     action,
	})
}
