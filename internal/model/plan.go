package model

import (
	"time"

	"github.com/google/uuid"
)

// PlanStatus is the completion status of a student-competency pair.
type PlanStatus string

const (
	PlanPending    PlanStatus = "pendente"
	PlanInProgress PlanStatus = "em_progresso"
	PlanDone       PlanStatus = "concluida"
)

func (s PlanStatus) Valid() bool {
	switch s {
	case PlanPending, PlanInProgress, PlanDone:
		return true
	default:
		return false
	}
}

// CycleStatus tells whether a development cycle still accepts work. Only
// frozen (finalized) cycles feed the competency and learning indicators.
type CycleStatus string

const (
	CycleActive CycleStatus = "ativo"
	CycleFrozen CycleStatus = "congelado"
)

func (s CycleStatus) Valid() bool {
	return s == CycleActive || s == CycleFrozen
}

// AssessmentCycle groups a student's competencies inside a macro time window.
// Per-item micro windows are clamped into the macro window at write time.
type AssessmentCycle struct {
	CycleID    uuid.UUID   `gorm:"type:uuid;primaryKey" json:"cycle_id"`
	StudentID  uuid.UUID   `gorm:"type:uuid;not null;index" json:"student_id"`
	Label      string      `json:"label"`
	MacroStart time.Time   `json:"macro_start"`
	MacroEnd   time.Time   `json:"macro_end"`
	Status     CycleStatus `gorm:"not null;default:ativo" json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

func (AssessmentCycle) TableName() string {
	return "assessment_cycles"
}

// PlanItem (plano individual) is one student-competency pair with its current
// and target scores. AssessmentScore carries the per-lesson average on a 0-10
// scale; nil means "Sem avaliações respondidas" in the source file.
type PlanItem struct {
	PlanItemID      uuid.UUID  `gorm:"type:uuid;primaryKey" json:"plan_item_id"`
	StudentID       uuid.UUID  `gorm:"type:uuid;not null;index:idx_student_competency,unique" json:"student_id"`
	CompetencyID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_student_competency,unique" json:"competency_id"`
	CycleID         *uuid.UUID `gorm:"type:uuid;index" json:"cycle_id,omitempty"`
	Required        bool       `gorm:"default:true" json:"required"`
	Score           float64    `json:"score"`
	TargetScore     float64    `json:"target_score"`
	AssessmentScore *float64   `json:"assessment_score,omitempty"`
	Status          PlanStatus `gorm:"not null;default:pendente" json:"status"`
	MicroStart      *time.Time `json:"micro_start,omitempty"`
	MicroEnd        *time.Time `json:"micro_end,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (PlanItem) TableName() string {
	return "plan_items"
}

// UpsertProgressRequest is the tracker's write DTO. Scores arrive either on
// the 0-10 scale or as a 0-100 normalized import; TargetScore zero means
// "use the configured default".
type UpsertProgressRequest struct {
	StudentID       uuid.UUID   `json:"student_id" validate:"required"`
	CompetencyID    uuid.UUID   `json:"competency_id" validate:"required"`
	CycleID         *uuid.UUID  `json:"cycle_id,omitempty"`
	Score           float64     `json:"score" validate:"gte=0"`
	TargetScore     float64     `json:"target_score" validate:"gte=0"`
	AssessmentScore *float64    `json:"assessment_score,omitempty"`
	Required        bool        `json:"required"`
	CycleStatus     CycleStatus `json:"cycle_status"`
	MicroStart      *time.Time  `json:"micro_start,omitempty"`
	MicroEnd        *time.Time  `json:"micro_end,omitempty"`
}
