package model

import (
	"time"

	"github.com/google/uuid"
)

// MinReflectionLen is the hard floor for self-reported reflections.
const MinReflectionLen = 20

// EventType distinguishes webinars from workshops; both count identically in
// the participation indicator.
type EventType string

const (
	EventWebinar  EventType = "webinar"
	EventWorkshop EventType = "workshop"
)

func (t EventType) Valid() bool {
	return t == EventWebinar || t == EventWorkshop
}

// Event is a program-level webinar or workshop. EndsAt nil means the event
// predates end-time tracking; self-report stays open for those.
type Event struct {
	EventID   uuid.UUID  `gorm:"type:uuid;primaryKey" json:"event_id"`
	ProgramID uuid.UUID  `gorm:"type:uuid;not null;index" json:"program_id"`
	TrackID   *uuid.UUID `gorm:"type:uuid" json:"track_id,omitempty"`
	Title     string     `gorm:"not null" json:"title"`
	Type      EventType  `gorm:"not null;default:webinar" json:"type"`
	Date      time.Time  `json:"date"`
	EndsAt    *time.Time `json:"ends_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (Event) TableName() string {
	return "events"
}

// EventParticipation ties a student to an event. Rows are commonly seeded by
// spreadsheet import as ausente and later flipped to presente by the student's
// own self-report; the pair (StudentID, EventID) is the upsert key.
type EventParticipation struct {
	ParticipationID uuid.UUID  `gorm:"type:uuid;primaryKey" json:"participation_id"`
	StudentID       uuid.UUID  `gorm:"type:uuid;not null;index:idx_student_event,unique" json:"student_id"`
	EventID         uuid.UUID  `gorm:"type:uuid;not null;index:idx_student_event,unique" json:"event_id"`
	Status          Presence   `gorm:"not null;default:ausente" json:"status"`
	Reflection      string     `json:"reflection,omitempty"`
	SelfReportedAt  *time.Time `json:"self_reported_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (EventParticipation) TableName() string {
	return "event_participations"
}

// SelfReportRequest confirms attendance after the event has ended.
type SelfReportRequest struct {
	StudentID  uuid.UUID `json:"student_id" validate:"required"`
	EventID    uuid.UUID `json:"event_id" validate:"required"`
	Reflection string    `json:"reflection" validate:"required,min=20"`
}
