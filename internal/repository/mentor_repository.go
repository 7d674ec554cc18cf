//go:generate mockery --name MentorRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mentoria_engine/internal/middleware"
	"mentoria_engine/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MentorRepository interface {
	Create(ctx context.Context, tx *gorm.DB, mentor *model.Mentor) error
	FindByID(ctx context.Context, db *gorm.DB, mentorID uuid.UUID) (*model.Mentor, error)
	// FindByName matches case-insensitively on the exact name within a
	// program. No fuzzy matching: "Adriana Deus" and "Adriana Deus -
	// Coordenação" are two mentors until a human merges them.
	FindByName(ctx context.Context, db *gorm.DB, programID uuid.UUID, name string) (*model.Mentor, error)
	FindFallback(ctx context.Context, db *gorm.DB, programID uuid.UUID) (*model.Mentor, error)
	Rename(ctx context.Context, tx *gorm.DB, mentorID uuid.UUID, name string) error
	// HardDelete removes the row outright; merge must not leave soft-deleted
	// duplicates that a name match could resurrect.
	HardDelete(ctx context.Context, tx *gorm.DB, mentorID uuid.UUID) (int64, error)
	ExistingIDs(ctx context.Context, db *gorm.DB, ids []uuid.UUID) (map[uuid.UUID]bool, error)
	ListWithSessionCounts(ctx context.Context, db *gorm.DB, programID uuid.UUID) ([]model.MentorLoad, error)
}

type gormMentorRepository struct{}

func NewGormMentorRepository() MentorRepository {
	return &gormMentorRepository{}
}

func (r *gormMentorRepository) Create(ctx context.Context, tx *gorm.DB, mentor *model.Mentor) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(mentor)
	if result.Error != nil {
		logger.Error("Error creating mentor in DB",
			"error", result.Error,
			"name", mentor.Name,
		)
		return fmt.Errorf("gormMentorRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormMentorRepository) FindByID(ctx context.Context, db *gorm.DB, mentorID uuid.UUID) (*model.Mentor, error) {
	var mentor model.Mentor
	result := db.WithContext(ctx).Where("mentor_id = ?", mentorID).First(&mentor)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormMentorRepository.FindByID: %w", result.Error)
	}
	return &mentor, nil
}

func (r *gormMentorRepository) FindByName(ctx context.Context, db *gorm.DB, programID uuid.UUID, name string) (*model.Mentor, error) {
	var mentor model.Mentor
	result := db.WithContext(ctx).
		Where("program_id = ? AND LOWER(name) = ?", programID, strings.ToLower(strings.TrimSpace(name))).
		First(&mentor)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormMentorRepository.FindByName: %w", result.Error)
	}
	return &mentor, nil
}

func (r *gormMentorRepository) FindFallback(ctx context.Context, db *gorm.DB, programID uuid.UUID) (*model.Mentor, error) {
	var mentor model.Mentor
	result := db.WithContext(ctx).
		Where("program_id = ? AND is_fallback = ?", programID, true).
		First(&mentor)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormMentorRepository.FindFallback: %w", result.Error)
	}
	return &mentor, nil
}

func (r *gormMentorRepository) Rename(ctx context.Context, tx *gorm.DB, mentorID uuid.UUID, name string) error {
	result := tx.WithContext(ctx).Model(&model.Mentor{}).
		Where("mentor_id = ?", mentorID).
		Update("name", name)
	if result.Error != nil {
		return fmt.Errorf("gormMentorRepository.Rename: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormMentorRepository) HardDelete(ctx context.Context, tx *gorm.DB, mentorID uuid.UUID) (int64, error) {
	result := tx.WithContext(ctx).Unscoped().
		Where("mentor_id = ?", mentorID).
		Delete(&model.Mentor{})
	if result.Error != nil {
		return 0, fmt.Errorf("gormMentorRepository.HardDelete: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *gormMentorRepository) ExistingIDs(ctx context.Context, db *gorm.DB, ids []uuid.UUID) (map[uuid.UUID]bool, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]bool{}, nil
	}
	var found []uuid.UUID
	result := db.WithContext(ctx).Model(&model.Mentor{}).
		Where("mentor_id IN ?", ids).
		Pluck("mentor_id", &found)
	if result.Error != nil {
		return nil, fmt.Errorf("gormMentorRepository.ExistingIDs: %w", result.Error)
	}
	existing := make(map[uuid.UUID]bool, len(found))
	for _, id := range found {
		existing[id] = true
	}
	return existing, nil
}

func (r *gormMentorRepository) ListWithSessionCounts(ctx context.Context, db *gorm.DB, programID uuid.UUID) ([]model.MentorLoad, error) {
	var loads []model.MentorLoad
	result := db.WithContext(ctx).Model(&model.Mentor{}).
		Select("mentors.mentor_id, mentors.name, COUNT(mentoring_sessions.session_id) AS session_count").
		Joins("LEFT JOIN mentoring_sessions ON mentoring_sessions.mentor_id = mentors.mentor_id").
		Where("mentors.program_id = ? AND mentors.is_fallback = ? AND mentors.deleted_at IS NULL", programID, false).
		Group("mentors.mentor_id, mentors.name").
		Order("mentors.name ASC").
		Scan(&loads)
	if result.Error != nil {
		return nil, fmt.Errorf("gormMentorRepository.ListWithSessionCounts: %w", result.Error)
	}
	return loads, nil
}
