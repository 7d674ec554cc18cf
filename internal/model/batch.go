package model

import (
	"time"

	"github.com/google/uuid"
)

// BatchStatus is the per-batch state machine. A batch completes only when
// every file in it reached processed; anything less stays visible as partial.
type BatchStatus string

const (
	BatchPending    BatchStatus = "pending"
	BatchProcessing BatchStatus = "processing"
	BatchCompleted  BatchStatus = "completed"
	BatchError      BatchStatus = "error"
)

func (s BatchStatus) Valid() bool {
	switch s {
	case BatchPending, BatchProcessing, BatchCompleted, BatchError:
		return true
	default:
		return false
	}
}

// FileStatus is the per-file state machine inside a batch.
type FileStatus string

const (
	FilePending    FileStatus = "pending"
	FileProcessing FileStatus = "processing"
	FileProcessed  FileStatus = "processed"
	FileError      FileStatus = "error"
)

func (s FileStatus) Valid() bool {
	switch s {
	case FilePending, FileProcessing, FileProcessed, FileError:
		return true
	default:
		return false
	}
}

// FileType is the declared kind of an uploaded spreadsheet. Each type has a
// fixed column contract; a file whose header does not match its declared
// type's signature is rejected whole.
type FileType string

const (
	FileMentoria    FileType = "mentoria"
	FileEventos     FileType = "eventos"
	FilePerformance FileType = "performance"
)

func (t FileType) Valid() bool {
	switch t {
	case FileMentoria, FileEventos, FilePerformance:
		return true
	default:
		return false
	}
}

// UploadBatch is one weekly drop of spreadsheets for a program.
type UploadBatch struct {
	BatchID   uuid.UUID   `gorm:"type:uuid;primaryKey" json:"batch_id"`
	ProgramID uuid.UUID   `gorm:"type:uuid;not null;index" json:"program_id"`
	Week      int         `gorm:"not null" json:"week"`
	Year      int         `gorm:"not null" json:"year"`
	Notes     string      `json:"notes,omitempty"`
	Status    BatchStatus `gorm:"not null;default:pending" json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`

	Files []UploadedFile `gorm:"foreignKey:BatchID" json:"files,omitempty"`
}

func (UploadBatch) TableName() string {
	return "upload_batches"
}

// UploadedFile is one spreadsheet inside a batch. Row/column counts come from
// the parsed sheet; Warnings and RowErrors are serialized per-row issue lists.
type UploadedFile struct {
	FileID    uuid.UUID  `gorm:"type:uuid;primaryKey" json:"file_id"`
	BatchID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"batch_id"`
	Name      string     `gorm:"not null" json:"name"`
	Type      FileType   `gorm:"not null" json:"type"`
	RowCount  int        `json:"row_count"`
	ColCount  int        `json:"col_count"`
	Status    FileStatus `gorm:"not null;default:pending" json:"status"`
	ErrorMsg  string     `json:"error_msg,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (UploadedFile) TableName() string {
	return "uploaded_files"
}

// BatchContext carries the identity of the upload being applied through
// resolver and ledger calls. It replaces any process-wide "current batch"
// state so programs can ingest concurrently without cross-talk.
type BatchContext struct {
	ProgramID uuid.UUID
	BatchID   uuid.UUID
	FileID    uuid.UUID
	FileType  FileType
	// Strict files reject rows with unresolvable references; lenient files
	// skip them with a warning.
	Strict bool
}

// RowIssue is one row-scoped failure or warning collected while a file is
// processed. Row numbering is 1-based and counts the header.
type RowIssue struct {
	Row     int    `json:"row"`
	Column  string `json:"column,omitempty"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FileReport summarizes what happened to a single file.
type FileReport struct {
	FileID      uuid.UUID  `json:"file_id"`
	Name        string     `json:"name"`
	Type        FileType   `json:"type"`
	Status      FileStatus `json:"status"`
	RowsApplied int        `json:"rows_applied"`
	RowsSkipped int        `json:"rows_skipped"`
	Issues      []RowIssue `json:"issues,omitempty"`
}

// BatchReport is the orchestrator's result for one batch run.
type BatchReport struct {
	BatchID uuid.UUID    `json:"batch_id"`
	Status  BatchStatus  `json:"status"`
	Files   []FileReport `json:"files"`
}
