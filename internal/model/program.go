package model

import (
	"time"

	"github.com/google/uuid"
)

// Program is the top-level tenant scope. Every cohort, student and mentor
// ultimately belongs to exactly one program.
type Program struct {
	ProgramID uuid.UUID `gorm:"type:uuid;primaryKey" json:"program_id"`
	Name      string    `gorm:"not null;unique" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Program) TableName() string {
	return "programs"
}

// Cohort (turma) groups students inside one program. The external identifier
// is unique within a program; the same identifier may be reused by other
// programs and must not be conflated across them.
type Cohort struct {
	CohortID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"cohort_id"`
	ProgramID  uuid.UUID `gorm:"type:uuid;not null;index:idx_program_cohort_ext,unique" json:"program_id"`
	ExternalID string    `gorm:"not null;index:idx_program_cohort_ext,unique" json:"external_id"`
	Name       string    `gorm:"not null" json:"name"`
	Year       int       `json:"year"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Cohort) TableName() string {
	return "cohorts"
}
