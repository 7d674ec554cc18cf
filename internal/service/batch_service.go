package service

import (
	"context"
	"errors"
	"io"
	"sync"

	"mentoria_engine/internal/config"
	"mentoria_engine/internal/ingest"
	"mentoria_engine/internal/middleware"
	"mentoria_engine/internal/model"
	"mentoria_engine/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BatchService orchestrates the weekly ingestion: it owns the batch and file
// state machines and walks each spreadsheet row through resolver, ledger and
// progress writes. Each program ingests under its own lock, so two programs
// can run concurrently but one program's files apply strictly in sequence.
type BatchService interface {
	CreateBatch(ctx context.Context, programID uuid.UUID, week, year int, notes string) (*model.UploadBatch, error)
	// IngestFile registers and processes one spreadsheet inside a batch. A
	// signature mismatch or unreadable file fails the file, never the batch's
	// other files.
	IngestFile(ctx context.Context, batchID uuid.UUID, name string, fileType model.FileType, src io.Reader) (*model.FileReport, error)
	// ReprocessFile clears everything the file previously produced and ingests
	// the new content under the same file id. Replace, not merge.
	ReprocessFile(ctx context.Context, fileID uuid.UUID, src io.Reader) (*model.FileReport, error)
	GetBatchReport(ctx context.Context, batchID uuid.UUID) (*model.BatchReport, error)
}

type batchService struct {
	db         *gorm.DB
	batchRepo  repository.BatchRepository
	resolver   ResolverService
	ledger     LedgerService
	progress   ProgressService
	indicators IndicatorService

	// programLocks serializes ingestion per program id.
	programLocks sync.Map
}

func NewBatchService(db *gorm.DB, batchRepo repository.BatchRepository, resolver ResolverService, ledger LedgerService, progress ProgressService, indicators IndicatorService) BatchService {
	return &batchService{
		db:         db,
		batchRepo:  batchRepo,
		resolver:   resolver,
		ledger:     ledger,
		progress:   progress,
		indicators: indicators,
	}
}

func (s *batchService) lockProgram(programID uuid.UUID) func() {
	v, _ := s.programLocks.LoadOrStore(programID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (s *batchService) CreateBatch(ctx context.Context, programID uuid.UUID, week, year int, notes string) (*model.UploadBatch, error) {
	if week < 1 || week > 53 {
		return nil, model.NewAppError("VALIDATION_ERROR",
			"week must be between 1 and 53", "week", model.ErrValidation)
	}

	batch := &model.UploadBatch{
		BatchID:   uuid.New(),
		ProgramID: programID,
		Week:      week,
		Year:      year,
		Notes:     notes,
		Status:    model.BatchPending,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.batchRepo.CreateBatch(ctx, tx, batch)
	})
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to create batch", "error", err)
		return nil, model.ErrInternalServer
	}
	return batch, nil
}

func (s *batchService) IngestFile(ctx context.Context, batchID uuid.UUID, name string, fileType model.FileType, src io.Reader) (*model.FileReport, error) {
	logger := middleware.GetLogger(ctx).With("batch_id", batchID, "file", name)

	if !fileType.Valid() {
		return nil, model.NewAppError("UNKNOWN_FILE_TYPE",
			"unknown file type "+string(fileType), "type", model.ErrInvalidInput)
	}

	batch, err := s.batchRepo.FindBatch(ctx, s.db, batchID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Failed to load batch", "error", err)
		return nil, model.ErrInternalServer
	}

	unlock := s.lockProgram(batch.ProgramID)
	defer unlock()

	file := &model.UploadedFile{
		FileID:  uuid.New(),
		BatchID: batch.BatchID,
		Name:    name,
		Type:    fileType,
		Status:  model.FilePending,
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if batch.Status == model.BatchPending {
			if err := s.batchRepo.UpdateBatchStatus(ctx, tx, batch.BatchID, model.BatchProcessing); err != nil {
				return err
			}
		}
		return s.batchRepo.CreateFile(ctx, tx, file)
	})
	if err != nil {
		logger.Error("Failed to register file", "error", err)
		return nil, model.ErrInternalServer
	}

	return s.processFile(ctx, batch, file, src)
}

func (s *batchService) ReprocessFile(ctx context.Context, fileID uuid.UUID, src io.Reader) (*model.FileReport, error) {
	logger := middleware.GetLogger(ctx).With("file_id", fileID)

	file, err := s.batchRepo.FindFile(ctx, s.db, fileID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Failed to load file", "error", err)
		return nil, model.ErrInternalServer
	}
	batch, err := s.batchRepo.FindBatch(ctx, s.db, file.BatchID)
	if err != nil {
		logger.Error("Failed to load batch for file", "error", err)
		return nil, model.ErrInternalServer
	}

	unlock := s.lockProgram(batch.ProgramID)
	defer unlock()

	if _, err := s.ledger.ClearFileSessions(ctx, file.FileID); err != nil {
		return nil, err
	}
	if err := s.batchRepo.UpdateBatchStatus(ctx, s.db, batch.BatchID, model.BatchProcessing); err != nil {
		logger.Error("Failed to reopen batch", "error", err)
		return nil, model.ErrInternalServer
	}

	return s.processFile(ctx, batch, file, src)
}

func (s *batchService) processFile(ctx context.Context, batch *model.UploadBatch, file *model.UploadedFile, src io.Reader) (*model.FileReport, error) {
	logger := middleware.GetLogger(ctx).With("batch_id", batch.BatchID, "file_id", file.FileID, "type", file.Type)

	report := &model.FileReport{
		FileID: file.FileID,
		Name:   file.Name,
		Type:   file.Type,
	}

	if err := s.markFile(ctx, file.FileID, model.FileProcessing, nil); err != nil {
		return nil, err
	}

	reader, err := ingest.NewReader(src, file.Type)
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			s.failFile(ctx, batch, file.FileID, appErr.Message)
			report.Status = model.FileError
			report.Issues = append(report.Issues, model.RowIssue{
				Row: 1, Column: appErr.Field, Code: appErr.Code, Message: appErr.Message,
			})
			return report, nil
		}
		logger.Error("Failed to open spreadsheet", "error", err)
		s.failFile(ctx, batch, file.FileID, "file could not be read")
		report.Status = model.FileError
		return report, nil
	}

	bctx := model.BatchContext{
		ProgramID: batch.ProgramID,
		BatchID:   batch.BatchID,
		FileID:    file.FileID,
		FileType:  file.Type,
		Strict:    !config.Cfg.LenientFileType(string(file.Type)),
	}

	errorCount := 0
	for _, row := range reader.Rows() {
		issue := s.applyRow(ctx, bctx, row)
		if issue == nil {
			report.RowsApplied++
			continue
		}
		report.Issues = append(report.Issues, *issue)
		report.RowsSkipped++
		if issue.Code != "SKIPPED_ROW" {
			errorCount++
		}
		if errorCount > config.Cfg.Ingest.MaxRowErrors {
			logger.Warn("Row error cap exceeded, failing file", "errors", errorCount)
			s.failFile(ctx, batch, file.FileID, "too many row errors")
			report.Status = model.FileError
			return report, nil
		}
	}

	if bctx.Strict && errorCount > 0 {
		s.failFile(ctx, batch, file.FileID, "strict file had failing rows")
		report.Status = model.FileError
		return report, nil
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.batchRepo.UpdateFile(ctx, tx, file.FileID, map[string]interface{}{
			"status":    model.FileProcessed,
			"row_count": reader.RowCount,
			"col_count": reader.ColCount,
			"error_msg": "",
		})
	})
	if err != nil {
		logger.Error("Failed to mark file processed", "error", err)
		return nil, model.ErrInternalServer
	}
	report.Status = model.FileProcessed

	s.maybeCompleteBatch(ctx, batch)

	logger.Info("File processed",
		"rows_applied", report.RowsApplied,
		"rows_skipped", report.RowsSkipped,
		"issues", len(report.Issues),
	)
	return report, nil
}

// applyRow dispatches one row by file type. A nil return means the row was
// applied; otherwise the issue says why it was not.
func (s *batchService) applyRow(ctx context.Context, bctx model.BatchContext, row ingest.Row) *model.RowIssue {
	switch bctx.FileType {
	case model.FileMentoria:
		return s.applyMentoriaRow(ctx, bctx, row)
	case model.FileEventos:
		return s.applyEventosRow(ctx, bctx, row)
	case model.FilePerformance:
		return s.applyPerformanceRow(ctx, bctx, row)
	default:
		return &model.RowIssue{Row: row.Number, Code: "UNKNOWN_FILE_TYPE",
			Message: "no row handler for file type " + string(bctx.FileType)}
	}
}

func (s *batchService) applyMentoriaRow(ctx context.Context, bctx model.BatchContext, row ingest.Row) *model.RowIssue {
	logger := middleware.GetLogger(ctx)

	var cohortID *uuid.UUID
	cohort, err := s.resolver.LookupCohort(ctx, bctx.ProgramID, row.Get("turma"))
	if err != nil {
		if issue := referenceIssue(bctx, row.Number, "turma", err); issue != nil {
			return issue
		}
		// Lenient file: the session is kept, just not tied to a cohort.
		logger.Warn("Cohort unresolved, session kept without cohort",
			"row", row.Number, "turma", row.Get("turma"))
	} else {
		cohortID = &cohort.CohortID
	}

	student, err := s.resolver.ResolveStudent(ctx, bctx, row.Get("id_aluno"), row.Get("nome_aluno"), "", cohortID)
	if err != nil {
		return rowIssueFromError(row.Number, "id_aluno", err)
	}

	mentor, err := s.resolver.ResolveMentor(ctx, bctx, row.Get("consultor"))
	if err != nil {
		if !errors.Is(err, model.ErrMissingIdentifier) {
			return rowIssueFromError(row.Number, "consultor", err)
		}
		// Rows without a mentor name land in the per-program fallback bucket
		// so the session still counts for the student.
		mentor, err = s.resolver.FallbackMentor(ctx, bctx)
		if err != nil {
			return rowIssueFromError(row.Number, "consultor", err)
		}
	}

	sessionNumber, err := ingest.ParseSessionNumber(row.Get("numero_sessao"))
	if err != nil {
		return &model.RowIssue{Row: row.Number, Column: "numero_sessao",
			Code: "VALIDATION_ERROR", Message: err.Error()}
	}
	date, err := ingest.ParseDate(row.Get("data_sessao"))
	if err != nil {
		return &model.RowIssue{Row: row.Number, Column: "data_sessao",
			Code: "VALIDATION_ERROR", Message: err.Error()}
	}
	presence, err := ingest.ParsePresence(row.Get("presenca"))
	if err != nil {
		return &model.RowIssue{Row: row.Number, Column: "presenca",
			Code: "VALIDATION_ERROR", Message: err.Error()}
	}
	rating, err := ingest.ParseRating(row.Get("engajamento"))
	if err != nil {
		return &model.RowIssue{Row: row.Number, Column: "engajamento",
			Code: "VALIDATION_ERROR", Message: err.Error()}
	}

	fileID := bctx.FileID
	_, err = s.ledger.RecordSession(ctx, &model.RecordSessionRequest{
		StudentID:       student.StudentID,
		MentorID:        mentor.MentorID,
		CohortID:        cohortID,
		Cycle:           row.Get("ciclo"),
		SessionNumber:   sessionNumber,
		Date:            date,
		Presence:        presence,
		TaskStatus:      ingest.ParseTaskStatus(row.Get("tarefa")),
		EngagementScore: rating,
		SourceFileID:    &fileID,
	})
	if err != nil {
		return rowIssueFromError(row.Number, "", err)
	}
	return nil
}

func (s *batchService) applyEventosRow(ctx context.Context, bctx model.BatchContext, row ingest.Row) *model.RowIssue {
	student, err := s.resolver.ResolveStudent(ctx, bctx, row.Get("id_aluno"), row.Get("nome_aluno"), "", nil)
	if err != nil {
		return rowIssueFromError(row.Number, "id_aluno", err)
	}

	date, err := ingest.ParseDate(row.Get("data_evento"))
	if err != nil {
		return &model.RowIssue{Row: row.Number, Column: "data_evento",
			Code: "VALIDATION_ERROR", Message: err.Error()}
	}
	title := row.Get("titulo_evento")
	if title == "" {
		return &model.RowIssue{Row: row.Number, Column: "titulo_evento",
			Code: "MISSING_IDENTIFIER", Message: "row lacks the event title"}
	}
	presence, err := ingest.ParsePresence(row.Get("presenca"))
	if err != nil {
		return &model.RowIssue{Row: row.Number, Column: "presenca",
			Code: "VALIDATION_ERROR", Message: err.Error()}
	}

	event, err := s.ledger.FindOrCreateEvent(ctx, bctx.ProgramID, title, model.EventWebinar, date)
	if err != nil {
		return rowIssueFromError(row.Number, "titulo_evento", err)
	}
	if _, err := s.ledger.RecordEventParticipation(ctx, student.StudentID, event.EventID, presence); err != nil {
		return rowIssueFromError(row.Number, "", err)
	}
	return nil
}

func (s *batchService) applyPerformanceRow(ctx context.Context, bctx model.BatchContext, row ingest.Row) *model.RowIssue {
	cohort, err := s.resolver.LookupCohort(ctx, bctx.ProgramID, row.Get("id_turma"))
	if err != nil {
		if issue := referenceIssue(bctx, row.Number, "id_turma", err); issue != nil {
			return issue
		}
	}
	var cohortID *uuid.UUID
	if cohort != nil {
		cohortID = &cohort.CohortID
	}

	student, err := s.resolver.ResolveStudent(ctx, bctx, row.Get("id_aluno"), row.Get("nome_aluno"), row.Get("email"), cohortID)
	if err != nil {
		return rowIssueFromError(row.Number, "id_aluno", err)
	}

	competency, err := s.resolver.LookupCompetency(ctx, row.Get("id_competencia"))
	if err != nil {
		if issue := referenceIssue(bctx, row.Number, "id_competencia", err); issue != nil {
			return issue
		}
		return &model.RowIssue{Row: row.Number, Column: "id_competencia",
			Code: "SKIPPED_ROW", Message: "competency unresolved, row skipped"}
	}

	score, err := ingest.ParseScore(row.Get("progresso"))
	if err != nil {
		return &model.RowIssue{Row: row.Number, Column: "progresso",
			Code: "VALIDATION_ERROR", Message: err.Error()}
	}
	if score == nil {
		return &model.RowIssue{Row: row.Number, Column: "progresso",
			Code: "VALIDATION_ERROR", Message: "row lacks the progress score"}
	}
	assessment, err := ingest.ParseScore(row.Get("media_avaliacoes"))
	if err != nil {
		return &model.RowIssue{Row: row.Number, Column: "media_avaliacoes",
			Code: "VALIDATION_ERROR", Message: err.Error()}
	}

	_, err = s.progress.UpsertProgress(ctx, &model.UpsertProgressRequest{
		StudentID:       student.StudentID,
		CompetencyID:    competency.CompetencyID,
		Score:           *score,
		AssessmentScore: assessment,
		Required:        true,
	})
	if err != nil {
		return rowIssueFromError(row.Number, "", err)
	}
	return nil
}

// referenceIssue translates an unresolved reference into a row issue: an error
// on strict files, a skip warning on lenient ones. Non-reference errors always
// come back as issues; nil means the caller may proceed without the reference.
func referenceIssue(bctx model.BatchContext, rowNumber int, column string, err error) *model.RowIssue {
	if !errors.Is(err, model.ErrUnresolvedReference) {
		return rowIssueFromError(rowNumber, column, err)
	}
	if bctx.Strict {
		return rowIssueFromError(rowNumber, column, err)
	}
	return nil
}

func rowIssueFromError(rowNumber int, column string, err error) *model.RowIssue {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		col := column
		if appErr.Field != "" {
			col = appErr.Field
		}
		return &model.RowIssue{Row: rowNumber, Column: col, Code: appErr.Code, Message: appErr.Message}
	}
	return &model.RowIssue{Row: rowNumber, Column: column, Code: "INTERNAL_ERROR", Message: "row could not be applied"}
}

func (s *batchService) markFile(ctx context.Context, fileID uuid.UUID, status model.FileStatus, extra map[string]interface{}) error {
	updates := map[string]interface{}{"status": status}
	for k, v := range extra {
		updates[k] = v
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.batchRepo.UpdateFile(ctx, tx, fileID, updates)
	})
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to update file status", "error", err, "file_id", fileID)
		return model.ErrInternalServer
	}
	return nil
}

func (s *batchService) failFile(ctx context.Context, batch *model.UploadBatch, fileID uuid.UUID, msg string) {
	_ = s.markFile(ctx, fileID, model.FileError, map[string]interface{}{"error_msg": msg})
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.batchRepo.UpdateBatchStatus(ctx, tx, batch.BatchID, model.BatchError)
	})
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to mark batch errored", "error", err, "batch_id", batch.BatchID)
	}
}

// maybeCompleteBatch flips the batch to completed once every file reached
// processed, then drops the program's cached indicators so dashboards see the
// new data immediately.
func (s *batchService) maybeCompleteBatch(ctx context.Context, batch *model.UploadBatch) {
	logger := middleware.GetLogger(ctx).With("batch_id", batch.BatchID)

	files, err := s.batchRepo.FindFilesByBatch(ctx, s.db, batch.BatchID)
	if err != nil {
		logger.Error("Failed to list batch files", "error", err)
		return
	}
	for _, f := range files {
		if f.Status != model.FileProcessed {
			return
		}
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.batchRepo.UpdateBatchStatus(ctx, tx, batch.BatchID, model.BatchCompleted)
	})
	if err != nil {
		logger.Error("Failed to mark batch completed", "error", err)
		return
	}

	if err := s.indicators.InvalidateProgram(ctx, batch.ProgramID); err != nil {
		logger.Warn("Indicator invalidation after batch failed", "error", err)
	}
	logger.Info("Batch completed", "files", len(files))
}

func (s *batchService) GetBatchReport(ctx context.Context, batchID uuid.UUID) (*model.BatchReport, error) {
	batch, err := s.batchRepo.FindBatch(ctx, s.db, batchID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Failed to load batch", "error", err, "batch_id", batchID)
		return nil, model.ErrInternalServer
	}

	report := &model.BatchReport{BatchID: batch.BatchID, Status: batch.Status}
	for _, f := range batch.Files {
		fr := model.FileReport{
			FileID: f.FileID,
			Name:   f.Name,
			Type:   f.Type,
			Status: f.Status,
		}
		if f.ErrorMsg != "" {
			fr.Issues = append(fr.Issues, model.RowIssue{Row: 0, Code: "FILE_ERROR", Message: f.ErrorMsg})
		}
		report.Files = append(report.Files, fr)
	}
	return report, nil
}
