//go:generate mockery --name SessionRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"mentoria_engine/internal/middleware"
	"mentoria_engine/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, session *model.MentoringSession) error
	FindByStudent(ctx context.Context, db *gorm.DB, studentID uuid.UUID) ([]*model.MentoringSession, error)
	CountByMentor(ctx context.Context, db *gorm.DB, mentorID uuid.UUID) (int64, error)
	// ReassignMentor moves every session from one mentor to another in a
	// single bulk update and reports how many rows moved.
	ReassignMentor(ctx context.Context, tx *gorm.DB, fromMentorID, toMentorID uuid.UUID) (int64, error)
	// DeleteBySourceFile clears the rows a file produced; re-import of a file
	// is replace, not merge.
	DeleteBySourceFile(ctx context.Context, tx *gorm.DB, fileID uuid.UUID) (int64, error)
	// OrphanMentorIDs returns mentor ids referenced by sessions with no
	// matching mentor row.
	OrphanMentorIDs(ctx context.Context, db *gorm.DB, programID uuid.UUID) ([]uuid.UUID, error)
}

type gormSessionRepository struct{}

func NewGormSessionRepository() SessionRepository {
	return &gormSessionRepository{}
}

func (r *gormSessionRepository) Create(ctx context.Context, tx *gorm.DB, session *model.MentoringSession) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(session)
	if result.Error != nil {
		logger.Error("Error creating session in DB",
			"error", result.Error,
			"student_id", session.StudentID.String(),
			"session_number", session.SessionNumber,
		)
		return fmt.Errorf("gormSessionRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormSessionRepository) FindByStudent(ctx context.Context, db *gorm.DB, studentID uuid.UUID) ([]*model.MentoringSession, error) {
	var sessions []*model.MentoringSession
	result := db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("session_number ASC, date ASC").
		Find(&sessions)
	if result.Error != nil {
		return nil, fmt.Errorf("gormSessionRepository.FindByStudent: %w", result.Error)
	}
	return sessions, nil
}

func (r *gormSessionRepository) CountByMentor(ctx context.Context, db *gorm.DB, mentorID uuid.UUID) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.MentoringSession{}).
		Where("mentor_id = ?", mentorID).
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("gormSessionRepository.CountByMentor: %w", result.Error)
	}
	return count, nil
}

func (r *gormSessionRepository) ReassignMentor(ctx context.Context, tx *gorm.DB, fromMentorID, toMentorID uuid.UUID) (int64, error) {
	result := tx.WithContext(ctx).Model(&model.MentoringSession{}).
		Where("mentor_id = ?", fromMentorID).
		Update("mentor_id", toMentorID)
	if result.Error != nil {
		return 0, fmt.Errorf("gormSessionRepository.ReassignMentor: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *gormSessionRepository) DeleteBySourceFile(ctx context.Context, tx *gorm.DB, fileID uuid.UUID) (int64, error) {
	result := tx.WithContext(ctx).
		Where("source_file_id = ?", fileID).
		Delete(&model.MentoringSession{})
	if result.Error != nil {
		return 0, fmt.Errorf("gormSessionRepository.DeleteBySourceFile: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *gormSessionRepository) OrphanMentorIDs(ctx context.Context, db *gorm.DB, programID uuid.UUID) ([]uuid.UUID, error) {
	var orphans []uuid.UUID
	result := db.WithContext(ctx).Model(&model.MentoringSession{}).
		Distinct("mentoring_sessions.mentor_id").
		Joins("LEFT JOIN mentors ON mentors.mentor_id = mentoring_sessions.mentor_id AND mentors.deleted_at IS NULL").
		Joins("JOIN students ON students.student_id = mentoring_sessions.student_id").
		Where("students.program_id = ? AND mentors.mentor_id IS NULL", programID).
		Pluck("mentoring_sessions.mentor_id", &orphans)
	if result.Error != nil {
		return nil, fmt.Errorf("gormSessionRepository.OrphanMentorIDs: %w", result.Error)
	}
	return orphans, nil
}
