package get_venues

import (
	"net/http"

	"github.com/GuilhermePeritto/campo-e-gole-sub000/internal/api/handlers"
	"github.com/GuilhermePeritto/campo-e-gole-sub000/internal/domain"
)

type Handler struct {
	store  ScheduleStore
	agenda AgendaService
	logger Logger
}

func NewHandler(store ScheduleStore, agenda AgendaService, logger Logger) *Handler {
	return &Handler{
		store:  store,
		agenda: agenda,
		logger: logger,
	}
}

// Handle GET /api/v1/venues
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	aggregates := h.agenda.BuildAgenda(domain.AllVenues(), "")
	result := ToResponse(h.store.Venues(), aggregates.EventCountByVenue)

	h.logger.Info("GET /venues - Venues retrieved successfully: count=%d", len(result.Venues))
	handlers.RespondJSON(w, http.StatusOK, result)
}
