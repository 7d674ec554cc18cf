//go:generate mockery --name ProgramRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"mentoria_engine/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgramRepository interface {
	Create(ctx context.Context, tx *gorm.DB, program *model.Program) error
	FindByID(ctx context.Context, db *gorm.DB, programID uuid.UUID) (*model.Program, error)
	List(ctx context.Context, db *gorm.DB) ([]*model.Program, error)

	CreateCohort(ctx context.Context, tx *gorm.DB, cohort *model.Cohort) error
	// FindCohortByExternalID scopes the lookup to one program: the same
	// external identifier may exist in several programs and must never be
	// conflated across them.
	FindCohortByExternalID(ctx context.Context, db *gorm.DB, programID uuid.UUID, externalID string) (*model.Cohort, error)

	FindCompetencyByExternalID(ctx context.Context, db *gorm.DB, externalID string) (*model.Competency, error)
	CreateCompetency(ctx context.Context, tx *gorm.DB, competency *model.Competency) error
}

type gormProgramRepository struct{}

func NewGormProgramRepository() ProgramRepository {
	return &gormProgramRepository{}
}

func (r *gormProgramRepository) Create(ctx context.Context, tx *gorm.DB, program *model.Program) error {
	result := tx.WithContext(ctx).Create(program)
	if result.Error != nil {
		return fmt.Errorf("gormProgramRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormProgramRepository) FindByID(ctx context.Context, db *gorm.DB, programID uuid.UUID) (*model.Program, error) {
	var program model.Program
	result := db.WithContext(ctx).Where("program_id = ?", programID).First(&program)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormProgramRepository.FindByID: %w", result.Error)
	}
	return &program, nil
}

func (r *gormProgramRepository) List(ctx context.Context, db *gorm.DB) ([]*model.Program, error) {
	var programs []*model.Program
	result := db.WithContext(ctx).Order("name ASC").Find(&programs)
	if result.Error != nil {
		return nil, fmt.Errorf("gormProgramRepository.List: %w", result.Error)
	}
	return programs, nil
}

func (r *gormProgramRepository) CreateCohort(ctx context.Context, tx *gorm.DB, cohort *model.Cohort) error {
	result := tx.WithContext(ctx).Create(cohort)
	if result.Error != nil {
		return fmt.Errorf("gormProgramRepository.CreateCohort: %w", result.Error)
	}
	return nil
}

func (r *gormProgramRepository) FindCohortByExternalID(ctx context.Context, db *gorm.DB, programID uuid.UUID, externalID string) (*model.Cohort, error) {
	var cohort model.Cohort
	result := db.WithContext(ctx).
		Where("program_id = ? AND external_id = ?", programID, externalID).
		First(&cohort)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormProgramRepository.FindCohortByExternalID: %w", result.Error)
	}
	return &cohort, nil
}

func (r *gormProgramRepository) FindCompetencyByExternalID(ctx context.Context, db *gorm.DB, externalID string) (*model.Competency, error) {
	var competency model.Competency
	result := db.WithContext(ctx).Where("external_id = ?", externalID).First(&competency)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormProgramRepository.FindCompetencyByExternalID: %w", result.Error)
	}
	return &competency, nil
}

func (r *gormProgramRepository) CreateCompetency(ctx context.Context, tx *gorm.DB, competency *model.Competency) error {
	result := tx.WithContext(ctx).Create(competency)
	if result.Error != nil {
		return fmt.Errorf("gormProgramRepository.CreateCompetency: %w", result.Error)
	}
	return nil
}
