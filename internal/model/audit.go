package model

import (
	"time"

	"github.com/google/uuid"
)

// ResolutionAction distinguishes what the resolver did to an entity.
type ResolutionAction string

const (
	ResolutionCreated ResolutionAction = "created"
	ResolutionUpdated ResolutionAction = "updated"
	ResolutionMatched ResolutionAction = "matched"
)

// ResolutionLog records every resolver create/update with its source batch and
// file, so any canonical row can be traced back to the upload that produced it.
type ResolutionLog struct {
	LogID      uuid.UUID        `gorm:"type:uuid;primaryKey" json:"log_id"`
	ProgramID  uuid.UUID        `gorm:"type:uuid;not null;index" json:"program_id"`
	BatchID    uuid.UUID        `gorm:"type:uuid;index" json:"batch_id"`
	FileID     uuid.UUID        `gorm:"type:uuid;index" json:"file_id"`
	EntityKind string           `gorm:"not null" json:"entity_kind"`
	EntityID   uuid.UUID        `gorm:"type:uuid;not null;index" json:"entity_id"`
	ExternalID string           `json:"external_id,omitempty"`
	Action     ResolutionAction `gorm:"not null" json:"action"`
	CreatedAt  time.Time        `json:"created_at"`
}

func (ResolutionLog) TableName() string {
	return "resolution_logs"
}

// MergeLog is the audit trail of one merge operation.
type MergeLog struct {
	MergeID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"merge_id"`
	EntityKind      string    `gorm:"not null" json:"entity_kind"`
	SurvivorID      uuid.UUID `gorm:"type:uuid;not null;index" json:"survivor_id"`
	DuplicateCount  int       `json:"duplicate_count"`
	ReassignedRows  int64     `json:"reassigned_rows"`
	SurvivorName    string    `json:"survivor_name"`
	OrphansDetected int       `json:"orphans_detected"`
	CreatedAt       time.Time `json:"created_at"`
}

func (MergeLog) TableName() string {
	return "merge_logs"
}

// DataIntegrityWarning is a non-fatal inconsistency surfaced for human review.
// It is a value, not an error: processing continues around it.
type DataIntegrityWarning struct {
	Code     string    `json:"code"`
	Message  string    `json:"message"`
	EntityID uuid.UUID `json:"entity_id,omitempty"`
}

// MergeResult reports what a merge actually did. Running the same merge twice
// yields ReassignedRows == 0 on the second run; that is expected, not an error.
type MergeResult struct {
	SurvivorID        uuid.UUID              `json:"survivor_id"`
	ReassignedRows    int64                  `json:"reassigned_rows"`
	RemovedDuplicates int                    `json:"removed_duplicates"`
	SurvivorSessions  int64                  `json:"survivor_sessions"`
	Warnings          []DataIntegrityWarning `json:"warnings,omitempty"`
}
