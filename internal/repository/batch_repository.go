//go:generate mockery --name BatchRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"mentoria_engine/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BatchRepository interface {
	CreateBatch(ctx context.Context, tx *gorm.DB, batch *model.UploadBatch) error
	FindBatch(ctx context.Context, db *gorm.DB, batchID uuid.UUID) (*model.UploadBatch, error)
	UpdateBatchStatus(ctx context.Context, tx *gorm.DB, batchID uuid.UUID, status model.BatchStatus) error

	CreateFile(ctx context.Context, tx *gorm.DB, file *model.UploadedFile) error
	FindFile(ctx context.Context, db *gorm.DB, fileID uuid.UUID) (*model.UploadedFile, error)
	FindFilesByBatch(ctx context.Context, db *gorm.DB, batchID uuid.UUID) ([]*model.UploadedFile, error)
	UpdateFile(ctx context.Context, tx *gorm.DB, fileID uuid.UUID, updates map[string]interface{}) error
}

type gormBatchRepository struct{}

func NewGormBatchRepository() BatchRepository {
	return &gormBatchRepository{}
}

func (r *gormBatchRepository) CreateBatch(ctx context.Context, tx *gorm.DB, batch *model.UploadBatch) error {
	result := tx.WithContext(ctx).Create(batch)
	if result.Error != nil {
		return fmt.Errorf("gormBatchRepository.CreateBatch: %w", result.Error)
	}
	return nil
}

func (r *gormBatchRepository) FindBatch(ctx context.Context, db *gorm.DB, batchID uuid.UUID) (*model.UploadBatch, error) {
	var batch model.UploadBatch
	result := db.WithContext(ctx).Preload("Files").Where("batch_id = ?", batchID).First(&batch)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormBatchRepository.FindBatch: %w", result.Error)
	}
	return &batch, nil
}

func (r *gormBatchRepository) UpdateBatchStatus(ctx context.Context, tx *gorm.DB, batchID uuid.UUID, status model.BatchStatus) error {
	result := tx.WithContext(ctx).Model(&model.UploadBatch{}).
		Where("batch_id = ?", batchID).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("gormBatchRepository.UpdateBatchStatus: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormBatchRepository) CreateFile(ctx context.Context, tx *gorm.DB, file *model.UploadedFile) error {
	result := tx.WithContext(ctx).Create(file)
	if result.Error != nil {
		return fmt.Errorf("gormBatchRepository.CreateFile: %w", result.Error)
	}
	return nil
}

func (r *gormBatchRepository) FindFile(ctx context.Context, db *gorm.DB, fileID uuid.UUID) (*model.UploadedFile, error) {
	var file model.UploadedFile
	result := db.WithContext(ctx).Where("file_id = ?", fileID).First(&file)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormBatchRepository.FindFile: %w", result.Error)
	}
	return &file, nil
}

func (r *gormBatchRepository) FindFilesByBatch(ctx context.Context, db *gorm.DB, batchID uuid.UUID) ([]*model.UploadedFile, error) {
	var files []*model.UploadedFile
	result := db.WithContext(ctx).
		Where("batch_id = ?", batchID).
		Order("created_at ASC").
		Find(&files)
	if result.Error != nil {
		return nil, fmt.Errorf("gormBatchRepository.FindFilesByBatch: %w", result.Error)
	}
	return files, nil
}

func (r *gormBatchRepository) UpdateFile(ctx context.Context, tx *gorm.DB, fileID uuid.UUID, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.UploadedFile{}).
		Where("file_id = ?", fileID).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("gormBatchRepository.UpdateFile: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
