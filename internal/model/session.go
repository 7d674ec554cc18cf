package model

import (
	"time"

	"github.com/google/uuid"
)

// Presence of a student in a mentoring session.
type Presence string

const (
	Present Presence = "presente"
	Absent  Presence = "ausente"
)

func (p Presence) Valid() bool {
	return p == Present || p == Absent
}

// TaskStatus is the delivery state of the practical activity attached to a
// session. Sessions without a task are excluded from the delivery ratio.
type TaskStatus string

const (
	TaskDelivered    TaskStatus = "entregue"
	TaskNotDelivered TaskStatus = "nao_entregue"
	TaskNone         TaskStatus = "sem_tarefa"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskDelivered, TaskNotDelivered, TaskNone:
		return true
	default:
		return false
	}
}

// AssessmentSessionNumber: session #1 is by convention the assessment
// session and never counts toward task-delivery statistics.
const AssessmentSessionNumber = 1

// MentoringSession is one append-only ledger fact. Historical rows are never
// updated in place; a re-uploaded file replaces its window instead of merging.
// EngagementScore is the mentor-reported rating on a 1-5 scale, nil when the
// source cell was empty.
type MentoringSession struct {
	SessionID       uuid.UUID  `gorm:"type:uuid;primaryKey" json:"session_id"`
	StudentID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"student_id"`
	MentorID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"mentor_id"`
	CohortID        *uuid.UUID `gorm:"type:uuid;index" json:"cohort_id,omitempty"`
	Cycle           string     `json:"cycle"`
	SessionNumber   int        `gorm:"not null" json:"session_number"`
	Date            time.Time  `json:"date"`
	Presence        Presence   `gorm:"not null" json:"presence"`
	TaskStatus      TaskStatus `gorm:"not null;default:sem_tarefa" json:"task_status"`
	EngagementScore *int       `json:"engagement_score,omitempty"`
	SourceFileID    *uuid.UUID `gorm:"type:uuid;index" json:"source_file_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func (MentoringSession) TableName() string {
	return "mentoring_sessions"
}

// RecordSessionRequest is the ledger's write DTO.
type RecordSessionRequest struct {
	StudentID       uuid.UUID  `json:"student_id" validate:"required"`
	MentorID        uuid.UUID  `json:"mentor_id" validate:"required"`
	CohortID        *uuid.UUID `json:"cohort_id,omitempty"`
	Cycle           string     `json:"cycle"`
	SessionNumber   int        `json:"session_number" validate:"gte=1"`
	Date            time.Time  `json:"date"`
	Presence        Presence   `json:"presence" validate:"required"`
	TaskStatus      TaskStatus `json:"task_status"`
	EngagementScore *int       `json:"engagement_score,omitempty"`
	SourceFileID    *uuid.UUID `json:"source_file_id,omitempty"`
}
