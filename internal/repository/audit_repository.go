//go:generate mockery --name AuditRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"mentoria_engine/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuditRepository interface {
	CreateResolutionLog(ctx context.Context, tx *gorm.DB, log *model.ResolutionLog) error
	CreateMergeLog(ctx context.Context, tx *gorm.DB, log *model.MergeLog) error
	FindResolutionLogsByBatch(ctx context.Context, db *gorm.DB, batchID uuid.UUID) ([]*model.ResolutionLog, error)
}

type gormAuditRepository struct{}

func NewGormAuditRepository() AuditRepository {
	return &gormAuditRepository{}
}

func (r *gormAuditRepository) CreateResolutionLog(ctx context.Context, tx *gorm.DB, log *model.ResolutionLog) error {
	result := tx.WithContext(ctx).Create(log)
	if result.Error != nil {
		return fmt.Errorf("gormAuditRepository.CreateResolutionLog: %w", result.Error)
	}
	return nil
}

func (r *gormAuditRepository) CreateMergeLog(ctx context.Context, tx *gorm.DB, log *model.MergeLog) error {
	result := tx.WithContext(ctx).Create(log)
	if result.Error != nil {
		return fmt.Errorf("gormAuditRepository.CreateMergeLog: %w", result.Error)
	}
	return nil
}

func (r *gormAuditRepository) FindResolutionLogsByBatch(ctx context.Context, db *gorm.DB, batchID uuid.UUID) ([]*model.ResolutionLog, error) {
	var logs []*model.ResolutionLog
	result := db.WithContext(ctx).
		Where("batch_id = ?", batchID).
		Order("created_at ASC").
		Find(&logs)
	if result.Error != nil {
		return nil, fmt.Errorf("gormAuditRepository.FindResolutionLogsByBatch: %w", result.Error)
	}
	return logs, nil
}
