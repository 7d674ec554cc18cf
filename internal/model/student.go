package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Student (aluno) is reconciled across weekly imports by (ProgramID,
// ExternalID). Name and email are filled on first sight and never silently
// overwritten afterwards; a populated field that disagrees with a later import
// is a reconciliation conflict left for the merge path.
type Student struct {
	StudentID    uuid.UUID      `gorm:"type:uuid;primaryKey" json:"student_id"`
	ProgramID    uuid.UUID      `gorm:"type:uuid;not null;index:idx_program_student_ext,unique" json:"program_id"`
	ExternalID   string         `gorm:"not null;index:idx_program_student_ext,unique" json:"external_id"`
	Name         string         `json:"name"`
	Email        string         `json:"email"`
	CohortID     *uuid.UUID     `gorm:"type:uuid;index" json:"cohort_id,omitempty"`
	MentorID     *uuid.UUID     `gorm:"type:uuid;index" json:"mentor_id,omitempty"`
	TrackID      *uuid.UUID     `gorm:"type:uuid" json:"track_id,omitempty"`
	LoginEnabled bool           `gorm:"default:false" json:"login_enabled"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Student) TableName() string {
	return "students"
}

// Mentor (consultor). Hand-entered spreadsheets routinely produce several
// near-identical name variants for the same person; each distinct name string
// becomes its own row and consolidation happens through the merge service.
// IsFallback marks the per-program bucket that absorbs sessions whose mentor
// name could not be resolved on lenient files.
type Mentor struct {
	MentorID   uuid.UUID      `gorm:"type:uuid;primaryKey" json:"mentor_id"`
	ProgramID  *uuid.UUID     `gorm:"type:uuid;index" json:"program_id,omitempty"`
	Name       string         `gorm:"not null" json:"name"`
	Active     bool           `gorm:"default:true" json:"active"`
	IsFallback bool           `gorm:"default:false" json:"is_fallback"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Mentor) TableName() string {
	return "mentors"
}

// MergeMentorsRequest is the human-curated merge instruction set: the engine
// provides the mechanism, a person decides which rows are the same mentor.
type MergeMentorsRequest struct {
	SurvivorID   uuid.UUID   `json:"survivor_id" validate:"required"`
	DuplicateIDs []uuid.UUID `json:"duplicate_ids" validate:"required,min=1"`
	FinalName    string      `json:"final_name" validate:"required,min=1"`
}

// MentorDuplicateCandidate is one row of the duplicate-candidate report:
// mentors grouped by normalized name with their session counts, so a human
// can cross-reference before issuing a merge.
type MentorDuplicateCandidate struct {
	NormalizedName string       `json:"normalized_name"`
	Mentors        []MentorLoad `json:"mentors"`
}

// MentorLoad pairs a mentor with the number of sessions pointing at it.
type MentorLoad struct {
	MentorID     uuid.UUID `json:"mentor_id"`
	Name         string    `json:"name"`
	SessionCount int64     `json:"session_count"`
}
