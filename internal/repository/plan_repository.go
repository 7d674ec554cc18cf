//go:generate mockery --name PlanRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"mentoria_engine/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlanRepository interface {
	CreateItem(ctx context.Context, tx *gorm.DB, item *model.PlanItem) error
	UpdateItem(ctx context.Context, tx *gorm.DB, item *model.PlanItem) error
	FindItem(ctx context.Context, db *gorm.DB, studentID, competencyID uuid.UUID) (*model.PlanItem, error)
	FindItemsByStudent(ctx context.Context, db *gorm.DB, studentID uuid.UUID) ([]*model.PlanItem, error)
	// FindFrozenItemsByStudent returns only items whose owning cycle is
	// finalized; these are the only rows that may feed indicators 4 and 5.
	FindFrozenItemsByStudent(ctx context.Context, db *gorm.DB, studentID uuid.UUID) ([]*model.PlanItem, error)

	CreateCycle(ctx context.Context, tx *gorm.DB, cycle *model.AssessmentCycle) error
	FindCycle(ctx context.Context, db *gorm.DB, cycleID uuid.UUID) (*model.AssessmentCycle, error)
	FindCycleByLabel(ctx context.Context, db *gorm.DB, studentID uuid.UUID, label string) (*model.AssessmentCycle, error)
	UpdateCycleStatus(ctx context.Context, tx *gorm.DB, cycleID uuid.UUID, status model.CycleStatus) error
}

type gormPlanRepository struct{}

func NewGormPlanRepository() PlanRepository {
	return &gormPlanRepository{}
}

func (r *gormPlanRepository) CreateItem(ctx context.Context, tx *gorm.DB, item *model.PlanItem) error {
	result := tx.WithContext(ctx).Create(item)
	if result.Error != nil {
		return fmt.Errorf("gormPlanRepository.CreateItem: %w", result.Error)
	}
	return nil
}

func (r *gormPlanRepository) UpdateItem(ctx context.Context, tx *gorm.DB, item *model.PlanItem) error {
	result := tx.WithContext(ctx).Save(item)
	if result.Error != nil {
		return fmt.Errorf("gormPlanRepository.UpdateItem: %w", result.Error)
	}
	return nil
}

func (r *gormPlanRepository) FindItem(ctx context.Context, db *gorm.DB, studentID, competencyID uuid.UUID) (*model.PlanItem, error) {
	var item model.PlanItem
	result := db.WithContext(ctx).
		Where("student_id = ? AND competency_id = ?", studentID, competencyID).
		First(&item)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormPlanRepository.FindItem: %w", result.Error)
	}
	return &item, nil
}

func (r *gormPlanRepository) FindItemsByStudent(ctx context.Context, db *gorm.DB, studentID uuid.UUID) ([]*model.PlanItem, error) {
	var items []*model.PlanItem
	result := db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at ASC").
		Find(&items)
	if result.Error != nil {
		return nil, fmt.Errorf("gormPlanRepository.FindItemsByStudent: %w", result.Error)
	}
	return items, nil
}

func (r *gormPlanRepository) FindFrozenItemsByStudent(ctx context.Context, db *gorm.DB, studentID uuid.UUID) ([]*model.PlanItem, error) {
	var items []*model.PlanItem
	result := db.WithContext(ctx).
		Joins("JOIN assessment_cycles ON assessment_cycles.cycle_id = plan_items.cycle_id").
		Where("plan_items.student_id = ? AND assessment_cycles.status = ?", studentID, model.CycleFrozen).
		Order("plan_items.created_at ASC").
		Find(&items)
	if result.Error != nil {
		return nil, fmt.Errorf("gormPlanRepository.FindFrozenItemsByStudent: %w", result.Error)
	}
	return items, nil
}

func (r *gormPlanRepository) CreateCycle(ctx context.Context, tx *gorm.DB, cycle *model.AssessmentCycle) error {
	result := tx.WithContext(ctx).Create(cycle)
	if result.Error != nil {
		return fmt.Errorf("gormPlanRepository.CreateCycle: %w", result.Error)
	}
	return nil
}

func (r *gormPlanRepository) FindCycle(ctx context.Context, db *gorm.DB, cycleID uuid.UUID) (*model.AssessmentCycle, error) {
	var cycle model.AssessmentCycle
	result := db.WithContext(ctx).Where("cycle_id = ?", cycleID).First(&cycle)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormPlanRepository.FindCycle: %w", result.Error)
	}
	return &cycle, nil
}

func (r *gormPlanRepository) FindCycleByLabel(ctx context.Context, db *gorm.DB, studentID uuid.UUID, label string) (*model.AssessmentCycle, error) {
	var cycle model.AssessmentCycle
	result := db.WithContext(ctx).
		Where("student_id = ? AND label = ?", studentID, label).
		First(&cycle)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormPlanRepository.FindCycleByLabel: %w", result.Error)
	}
	return &cycle, nil
}

func (r *gormPlanRepository) UpdateCycleStatus(ctx context.Context, tx *gorm.DB, cycleID uuid.UUID, status model.CycleStatus) error {
	result := tx.WithContext(ctx).Model(&model.AssessmentCycle{}).
		Where("cycle_id = ?", cycleID).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("gormPlanRepository.UpdateCycleStatus: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
