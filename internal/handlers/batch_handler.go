package handlers

import (
	"log/slog"
	"net/http"

	"mentoria_engine/internal/model"
	"mentoria_engine/internal/service"
	"mentoria_engine/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// maxUploadBytes caps one spreadsheet upload. Weekly exports are well under a
// megabyte; anything bigger is a wrong file.
const maxUploadBytes = 32 << 20

type BatchHandler struct {
	service service.BatchService
	logger  *slog.Logger
}

func NewBatchHandler(s service.BatchService, logger *slog.Logger) *BatchHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &BatchHandler{service: s, logger: logger}
}

type createBatchRequest struct {
	Week  int    `json:"week" validate:"required,gte=1,lte=53"`
	Year  int    `json:"year" validate:"required,gte=2000"`
	Notes string `json:"notes"`
}

// CreateBatch opens a new weekly upload batch for a program.
func (h *BatchHandler) CreateBatch(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CreateBatch"))

	programID, err := uuid.Parse(chi.URLParam(r, "program_id"))
	if err != nil {
		appErr := model.NewAppError("INVALID_URL_PARAM", "program_id is not a valid UUID.", "program_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("program_id", programID.String()))

	var req createBatchRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	batch, err := h.service.CreateBatch(r.Context(), programID, req.Week, req.Year, req.Notes)
	if err != nil {
		logger.Error("Error creating batch in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Batch created", slog.String("batch_id", batch.BatchID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, batch, logger)
}

// UploadFile receives one spreadsheet as multipart form data (fields: "type",
// "file") and processes it synchronously. The response is the file report
// including per-row issues.
func (h *BatchHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "UploadFile"))

	batchID, err := uuid.Parse(chi.URLParam(r, "batch_id"))
	if err != nil {
		appErr := model.NewAppError("INVALID_URL_PARAM", "batch_id is not a valid UUID.", "batch_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("batch_id", batchID.String()))

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		logger.Warn("Failed to parse multipart form", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "Expected multipart form data with a file.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	fileType := model.FileType(r.FormValue("type"))
	file, header, err := r.FormFile("file")
	if err != nil {
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "Form field 'file' is required.", "file", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	defer file.Close()

	report, err := h.service.IngestFile(r.Context(), batchID, header.Filename, fileType, file)
	if err != nil {
		logger.Error("Error ingesting file in service", slog.Any("error", err), slog.String("file", header.Filename))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("File ingested",
		slog.String("file", header.Filename),
		slog.String("status", string(report.Status)),
		slog.Int("rows_applied", report.RowsApplied),
	)
	webutil.RespondWithJSON(w, http.StatusOK, report, logger)
}

// ReprocessFile re-ingests a previously uploaded file. Everything the file
// produced before is cleared first.
func (h *BatchHandler) ReprocessFile(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ReprocessFile"))

	fileID, err := uuid.Parse(chi.URLParam(r, "file_id"))
	if err != nil {
		appErr := model.NewAppError("INVALID_URL_PARAM", "file_id is not a valid UUID.", "file_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("file_id", fileID.String()))

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "Expected multipart form data with a file.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "Form field 'file' is required.", "file", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	defer file.Close()

	report, err := h.service.ReprocessFile(r.Context(), fileID, file)
	if err != nil {
		logger.Error("Error reprocessing file in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("File reprocessed", slog.String("status", string(report.Status)))
	webutil.RespondWithJSON(w, http.StatusOK, report, logger)
}

// GetBatchReport returns the batch status and the per-file summary.
func (h *BatchHandler) GetBatchReport(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetBatchReport"))

	batchID, err := uuid.Parse(chi.URLParam(r, "batch_id"))
	if err != nil {
		appErr := model.NewAppError("INVALID_URL_PARAM", "batch_id is not a valid UUID.", "batch_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	report, err := h.service.GetBatchReport(r.Context(), batchID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, report, logger)
}
