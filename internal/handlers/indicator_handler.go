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

type IndicatorHandler struct {
	service service.IndicatorService
	logger  *slog.Logger
}

func NewIndicatorHandler(s service.IndicatorService, logger *slog.Logger) *IndicatorHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &IndicatorHandler{service: s, logger: logger}
}

// GetStudentIndicators returns the six indicators, the composite and the stage
// for one student.
func (h *IndicatorHandler) GetStudentIndicators(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetStudentIndicators"))

	studentID, err := uuid.Parse(chi.URLParam(r, "student_id"))
	if err != nil {
		appErr := model.NewAppError("INVALID_URL_PARAM", "student_id is not a valid UUID.", "student_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("student_id", studentID.String()))

	ind, err := h.service.GetIndicators(r.Context(), studentID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, ind, logger)
}

// PrecomputeProgram recomputes and caches indicators for every student of a
// program. Meant to run right after a weekly batch completes.
func (h *IndicatorHandler) PrecomputeProgram(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PrecomputeProgram"))

	programID, err := uuid.Parse(chi.URLParam(r, "program_id"))
	if err != nil {
		appErr := model.NewAppError("INVALID_URL_PARAM", "program_id is not a valid UUID.", "program_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("program_id", programID.String()))

	count, err := h.service.PrecomputeProgram(r.Context(), programID)
	if err != nil {
		logger.Error("Error precomputing indicators", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Indicators precomputed", slog.Int("students", count))
	webutil.RespondWithJSON(w, http.StatusOK, map[string]int{"students": count}, logger)
}
