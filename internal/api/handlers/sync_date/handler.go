package sync_date

import (
	"errors"
	"net/http"

	"github.com/GuilhermePeritto/campo-e-gole-sub000/internal/api/handlers"
	syncDate "github.com/GuilhermePeritto/campo-e-gole-sub000/internal/usecase/sync_date"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidParams      = "некорректные параметры запроса"
)

type Handler struct {
	useCase SyncDateUseCase
	logger  Logger
}

func NewHandler(useCase SyncDateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/calendar/sync-date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SyncRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /calendar/sync-date - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /calendar/sync-date - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, syncDate.ErrInvalidInput):
			h.logger.Warn("POST /calendar/sync-date - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("POST /calendar/sync-date - Failed to sync: action=%s, error=%v", req.Action, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /calendar/sync-date - State transition applied: action=%s, view=%s, navigated=%t",
		req.Action, result.View, result.Navigated)
	handlers.RespondJSON(w, http.StatusOK, ToHTTPResponse(result))
}
