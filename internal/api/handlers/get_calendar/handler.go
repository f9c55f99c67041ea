package get_calendar

import (
	"errors"
	"net/http"
	"time"

	"github.com/GuilhermePeritto/campo-e-gole-sub000/internal/api/handlers"
	buildCalendar "github.com/GuilhermePeritto/campo-e-gole-sub000/internal/usecase/build_calendar"
)

const (
	msgInvalidParams = "некорректные параметры запроса"
)

type Handler struct {
	useCase BuildCalendarUseCase
	logger  Logger
}

func NewHandler(useCase BuildCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar
// Query params: view, date, venues, q (все опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ToUseCaseRequest(r.URL.Query(), time.Now())
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, buildCalendar.ErrInvalidInput):
			h.logger.Warn("GET /calendar - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /calendar - Failed to build grid: view=%s, error=%v", req.View, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar - Grid built successfully: view=%s, date=%s",
		req.View, req.Date.Format("2006-01-02"))
	handlers.RespondJSON(w, http.StatusOK, result)
}
