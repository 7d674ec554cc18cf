package model

import (
	"time"

	"github.com/google/uuid"
)

// Track (trilha) is part of the static catalog; ingestion never mutates it.
type Track struct {
	TrackID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"track_id"`
	Name      string    `gorm:"not null" json:"name"`
	Ordering  int       `json:"ordering"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Track) TableName() string {
	return "tracks"
}

// Competency belongs to a track. Catalog data, keyed for reconciliation by
// ExternalID the same way students are.
type Competency struct {
	CompetencyID uuid.UUID  `gorm:"type:uuid;primaryKey" json:"competency_id"`
	TrackID      *uuid.UUID `gorm:"type:uuid;index" json:"track_id,omitempty"`
	ExternalID   string     `gorm:"index" json:"external_id"`
	Name         string     `gorm:"not null" json:"name"`
	Ordering     int        `json:"ordering"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (Competency) TableName() string {
	return "competencies"
}
