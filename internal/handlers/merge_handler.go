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

type MergeHandler struct {
	service service.MergeService
	logger  *slog.Logger
}

func NewMergeHandler(s service.MergeService, logger *slog.Logger) *MergeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &MergeHandler{service: s, logger: logger}
}

// MergeMentors consolidates duplicate mentor rows onto one survivor. The
// request body carries the human decision; the engine only executes it.
func (h *MergeHandler) MergeMentors(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "MergeMentors"))

	programID, err := uuid.Parse(chi.URLParam(r, "program_id"))
	if err != nil {
		appErr := model.NewAppError("INVALID_URL_PARAM", "program_id is not a valid UUID.", "program_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("program_id", programID.String()))

	var req model.MergeMentorsRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	result, err := h.service.MergeMentors(r.Context(), programID, &req)
	if err != nil {
		logger.Error("Error merging mentors in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Mentors merged",
		slog.String("survivor_id", result.SurvivorID.String()),
		slog.Int64("reassigned_rows", result.ReassignedRows),
	)
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

// GetDuplicateCandidates lists mentors grouped by normalized name so operators
// can decide which rows to merge.
func (h *MergeHandler) GetDuplicateCandidates(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetDuplicateCandidates"))

	programID, err := uuid.Parse(chi.URLParam(r, "program_id"))
	if err != nil {
		appErr := model.NewAppError("INVALID_URL_PARAM", "program_id is not a valid UUID.", "program_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	candidates, err := h.service.DuplicateCandidates(r.Context(), programID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if candidates == nil {
		candidates = []model.MentorDuplicateCandidate{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, candidates, logger)
}
