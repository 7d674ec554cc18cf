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

type PlanHandler struct {
	service service.ProgressService
	logger  *slog.Logger
}

func NewPlanHandler(s service.ProgressService, logger *slog.Logger) *PlanHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlanHandler{service: s, logger: logger}
}

// UpsertProgress writes one student-competency progress row. The pair is the
// natural key; repeated writes converge on the latest state.
func (h *PlanHandler) UpsertProgress(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "UpsertProgress"))

	var req model.UpsertProgressRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	item, err := h.service.UpsertProgress(r.Context(), &req)
	if err != nil {
		logger.Error("Error upserting progress in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Progress upserted",
		slog.String("student_id", req.StudentID.String()),
		slog.String("status", string(item.Status)),
	)
	webutil.RespondWithJSON(w, http.StatusOK, item, logger)
}

// ListPlan returns every plan item of a student, active and frozen alike.
func (h *PlanHandler) ListPlan(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListPlan"))

	studentID, err := uuid.Parse(chi.URLParam(r, "student_id"))
	if err != nil {
		appErr := model.NewAppError("INVALID_URL_PARAM", "student_id is not a valid UUID.", "student_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	items, err := h.service.ListPlan(r.Context(), studentID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if items == nil {
		items = []*model.PlanItem{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, items, logger)
}

// FinalizeCycle freezes an assessment cycle, making its items visible to the
// competency and learning indicators.
func (h *PlanHandler) FinalizeCycle(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "FinalizeCycle"))

	cycleID, err := uuid.Parse(chi.URLParam(r, "cycle_id"))
	if err != nil {
		appErr := model.NewAppError("INVALID_URL_PARAM", "cycle_id is not a valid UUID.", "cycle_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("cycle_id", cycleID.String()))

	if err := h.service.FinalizeCycle(r.Context(), cycleID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Cycle finalized")
	w.WriteHeader(http.StatusNoContent)
}
