//go:generate mockery --name StudentRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"mentoria_engine/internal/middleware"
	"mentoria_engine/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentRepository interface {
	Create(ctx context.Context, tx *gorm.DB, student *model.Student) error
	FindByID(ctx context.Context, db *gorm.DB, studentID uuid.UUID) (*model.Student, error)
	FindByExternalID(ctx context.Context, db *gorm.DB, programID uuid.UUID, externalID string) (*model.Student, error)
	FindByProgram(ctx context.Context, db *gorm.DB, programID uuid.UUID) ([]*model.Student, error)
	Update(ctx context.Context, tx *gorm.DB, studentID uuid.UUID, updates map[string]interface{}) error
}

type gormStudentRepository struct{}

func NewGormStudentRepository() StudentRepository {
	return &gormStudentRepository{}
}

func (r *gormStudentRepository) Create(ctx context.Context, tx *gorm.DB, student *model.Student) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(student)
	if result.Error != nil {
		logger.Error("Error creating student in DB",
			"error", result.Error,
			"program_id", student.ProgramID.String(),
			"external_id", student.ExternalID,
		)
		return fmt.Errorf("gormStudentRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormStudentRepository) FindByID(ctx context.Context, db *gorm.DB, studentID uuid.UUID) (*model.Student, error) {
	var student model.Student
	result := db.WithContext(ctx).Where("student_id = ?", studentID).First(&student)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormStudentRepository.FindByID: %w", result.Error)
	}
	return &student, nil
}

func (r *gormStudentRepository) FindByExternalID(ctx context.Context, db *gorm.DB, programID uuid.UUID, externalID string) (*model.Student, error) {
	var student model.Student
	result := db.WithContext(ctx).
		Where("program_id = ? AND external_id = ?", programID, externalID).
		First(&student)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormStudentRepository.FindByExternalID: %w", result.Error)
	}
	return &student, nil
}

func (r *gormStudentRepository) FindByProgram(ctx context.Context, db *gorm.DB, programID uuid.UUID) ([]*model.Student, error) {
	var students []*model.Student
	result := db.WithContext(ctx).
		Where("program_id = ?", programID).
		Order("created_at ASC").
		Find(&students)
	if result.Error != nil {
		return nil, fmt.Errorf("gormStudentRepository.FindByProgram: %w", result.Error)
	}
	return students, nil
}

func (r *gormStudentRepository) Update(ctx context.Context, tx *gorm.DB, studentID uuid.UUID, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Student{}).
		Where("student_id = ?", studentID).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("gormStudentRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
