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

type CatalogHandler struct {
	service service.CatalogService
	logger  *slog.Logger
}

func NewCatalogHandler(s service.CatalogService, logger *slog.Logger) *CatalogHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogHandler{service: s, logger: logger}
}

type createProgramRequest struct {
	Name string `json:"name" validate:"required,min=1"`
}

func (h *CatalogHandler) CreateProgram(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CreateProgram"))

	var req createProgramRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	program, err := h.service.CreateProgram(r.Context(), req.Name)
	if err != nil {
		logger.Error("Error creating program in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Program created", slog.String("program_id", program.ProgramID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, program, logger)
}

func (h *CatalogHandler) ListPrograms(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListPrograms"))

	programs, err := h.service.ListPrograms(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if programs == nil {
		programs = []*model.Program{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, programs, logger)
}

type createCohortRequest struct {
	ExternalID string `json:"external_id" validate:"required,min=1"`
	Name       string `json:"name" validate:"required,min=1"`
	Year       int    `json:"year"`
}

func (h *CatalogHandler) CreateCohort(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CreateCohort"))

	programID, err := uuid.Parse(chi.URLParam(r, "program_id"))
	if err != nil {
		appErr := model.NewAppError("INVALID_URL_PARAM", "program_id is not a valid UUID.", "program_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	var req createCohortRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	cohort, err := h.service.CreateCohort(r.Context(), programID, req.ExternalID, req.Name, req.Year)
	if err != nil {
		logger.Error("Error creating cohort in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, cohort, logger)
}

type createCompetencyRequest struct {
	TrackID    *uuid.UUID `json:"track_id,omitempty"`
	ExternalID string     `json:"external_id"`
	Name       string     `json:"name" validate:"required,min=1"`
	Ordering   int        `json:"ordering"`
}

func (h *CatalogHandler) CreateCompetency(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CreateCompetency"))

	var req createCompetencyRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	competency, err := h.service.CreateCompetency(r.Context(), req.TrackID, req.ExternalID, req.Name, req.Ordering)
	if err != nil {
		logger.Error("Error creating competency in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, competency, logger)
}
