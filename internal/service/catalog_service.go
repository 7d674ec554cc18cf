package service

import (
	"context"
	"strings"

	"mentoria_engine/internal/middleware"
	"mentoria_engine/internal/model"
	"mentoria_engine/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogService is the admin surface for reference data. Ingestion only reads
// the catalog; programs, cohorts and competencies are created here.
type CatalogService interface {
	CreateProgram(ctx context.Context, name string) (*model.Program, error)
	ListPrograms(ctx context.Context) ([]*model.Program, error)
	CreateCohort(ctx context.Context, programID uuid.UUID, externalID, name string, year int) (*model.Cohort, error)
	CreateCompetency(ctx context.Context, trackID *uuid.UUID, externalID, name string, ordering int) (*model.Competency, error)
}

type catalogService struct {
	db          *gorm.DB
	programRepo repository.ProgramRepository
}

func NewCatalogService(db *gorm.DB, programRepo repository.ProgramRepository) CatalogService {
	return &catalogService{db: db, programRepo: programRepo}
}

func (s *catalogService) CreateProgram(ctx context.Context, name string) (*model.Program, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.NewAppError("VALIDATION_ERROR",
			"program name is required", "name", model.ErrValidation)
	}

	program := &model.Program{ProgramID: uuid.New(), Name: name}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.programRepo.Create(ctx, tx, program)
	})
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to create program", "error", err, "name", name)
		return nil, model.ErrInternalServer
	}
	return program, nil
}

func (s *catalogService) ListPrograms(ctx context.Context) ([]*model.Program, error) {
	programs, err := s.programRepo.List(ctx, s.db)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to list programs", "error", err)
		return nil, model.ErrInternalServer
	}
	return programs, nil
}

func (s *catalogService) CreateCohort(ctx context.Context, programID uuid.UUID, externalID, name string, year int) (*model.Cohort, error) {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return nil, model.NewAppError("VALIDATION_ERROR",
			"cohort external identifier is required", "external_id", model.ErrValidation)
	}

	cohort := &model.Cohort{
		CohortID:   uuid.New(),
		ProgramID:  programID,
		ExternalID: externalID,
		Name:       strings.TrimSpace(name),
		Year:       year,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.programRepo.CreateCohort(ctx, tx, cohort)
	})
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to create cohort", "error", err, "external_id", externalID)
		return nil, model.ErrInternalServer
	}
	return cohort, nil
}

func (s *catalogService) CreateCompetency(ctx context.Context, trackID *uuid.UUID, externalID, name string, ordering int) (*model.Competency, error) {
	if strings.TrimSpace(name) == "" {
		return nil, model.NewAppError("VALIDATION_ERROR",
			"competency name is required", "name", model.ErrValidation)
	}

	competency := &model.Competency{
		CompetencyID: uuid.New(),
		TrackID:      trackID,
		ExternalID:   strings.TrimSpace(externalID),
		Name:         strings.TrimSpace(name),
		Ordering:     ordering,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.programRepo.CreateCompetency(ctx, tx, competency)
	})
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to create competency", "error", err, "name", name)
		return nil, model.ErrInternalServer
	}
	return competency, nil
}
