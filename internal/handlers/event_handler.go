package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"mentoria_engine/internal/model"
	"mentoria_engine/internal/service"
	"mentoria_engine/internal/webutil"
)

type EventHandler struct {
	service service.LedgerService
	logger  *slog.Logger
}

func NewEventHandler(s service.LedgerService, logger *slog.Logger) *EventHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventHandler{service: s, logger: logger}
}

// SelfReport lets a student confirm attendance at a finished event with a
// written reflection. Repeating the call updates the reflection in place.
func (h *EventHandler) SelfReport(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SelfReport"))

	var req model.SelfReportRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	participation, err := h.service.SelfReport(r.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrSelfReportTooEarly) || errors.Is(err, model.ErrValidation) {
			logger.Info("Self-report rejected", slog.Any("error", err))
		} else {
			logger.Error("Error in self-report service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Self-report recorded",
		slog.String("student_id", req.StudentID.String()),
		slog.String("event_id", req.EventID.String()),
	)
	webutil.RespondWithJSON(w, http.StatusOK, participation, logger)
}
