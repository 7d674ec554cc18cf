//go:generate mockery --name EventRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"mentoria_engine/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventRepository interface {
	Create(ctx context.Context, tx *gorm.DB, event *model.Event) error
	FindByID(ctx context.Context, db *gorm.DB, eventID uuid.UUID) (*model.Event, error)
	// FindByTitleAndDate is the reconciliation key for event rows coming off
	// spreadsheets: same program, same title (case-insensitive), same day.
	FindByTitleAndDate(ctx context.Context, db *gorm.DB, programID uuid.UUID, title string, date time.Time) (*model.Event, error)

	CreateParticipation(ctx context.Context, tx *gorm.DB, p *model.EventParticipation) error
	FindParticipation(ctx context.Context, db *gorm.DB, studentID, eventID uuid.UUID) (*model.EventParticipation, error)
	UpdateParticipation(ctx context.Context, tx *gorm.DB, p *model.EventParticipation) error
	FindParticipationsByStudent(ctx context.Context, db *gorm.DB, studentID uuid.UUID) ([]*model.EventParticipation, error)
}

type gormEventRepository struct{}

func NewGormEventRepository() EventRepository {
	return &gormEventRepository{}
}

func (r *gormEventRepository) Create(ctx context.Context, tx *gorm.DB, event *model.Event) error {
	result := tx.WithContext(ctx).Create(event)
	if result.Error != nil {
		return fmt.Errorf("gormEventRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormEventRepository) FindByID(ctx context.Context, db *gorm.DB, eventID uuid.UUID) (*model.Event, error) {
	var event model.Event
	result := db.WithContext(ctx).Where("event_id = ?", eventID).First(&event)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormEventRepository.FindByID: %w", result.Error)
	}
	return &event, nil
}

func (r *gormEventRepository) FindByTitleAndDate(ctx context.Context, db *gorm.DB, programID uuid.UUID, title string, date time.Time) (*model.Event, error) {
	var event model.Event
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	result := db.WithContext(ctx).
		Where("program_id = ? AND LOWER(title) = ? AND date >= ? AND date < ?",
			programID, strings.ToLower(strings.TrimSpace(title)), dayStart, dayEnd).
		First(&event)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormEventRepository.FindByTitleAndDate: %w", result.Error)
	}
	return &event, nil
}

func (r *gormEventRepository) CreateParticipation(ctx context.Context, tx *gorm.DB, p *model.EventParticipation) error {
	result := tx.WithContext(ctx).Create(p)
	if result.Error != nil {
		return fmt.Errorf("gormEventRepository.CreateParticipation: %w", result.Error)
	}
	return nil
}

func (r *gormEventRepository) FindParticipation(ctx context.Context, db *gorm.DB, studentID, eventID uuid.UUID) (*model.EventParticipation, error) {
	var p model.EventParticipation
	result := db.WithContext(ctx).
		Where("student_id = ? AND event_id = ?", studentID, eventID).
		First(&p)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormEventRepository.FindParticipation: %w", result.Error)
	}
	return &p, nil
}

func (r *gormEventRepository) UpdateParticipation(ctx context.Context, tx *gorm.DB, p *model.EventParticipation) error {
	result := tx.WithContext(ctx).Save(p)
	if result.Error != nil {
		return fmt.Errorf("gormEventRepository.UpdateParticipation: %w", result.Error)
	}
	return nil
}

func (r *gormEventRepository) FindParticipationsByStudent(ctx context.Context, db *gorm.DB, studentID uuid.UUID) ([]*model.EventParticipation, error) {
	var ps []*model.EventParticipation
	result := db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at ASC").
		Find(&ps)
	if result.Error != nil {
		return nil, fmt.Errorf("gormEventRepository.FindParticipationsByStudent: %w", result.Error)
	}
	return ps, nil
}
