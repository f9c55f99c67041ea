package get_agenda

import (
	"net/http"

	"github.com/GuilhermePeritto/campo-e-gole-sub000/internal/api/handlers"
)

type Handler struct {
	service AgendaService
	venues  VenueResolver
	logger  Logger
}

func NewHandler(service AgendaService, venues VenueResolver, logger Logger) *Handler {
	return &Handler{
		service: service,
		venues:  venues,
		logger:  logger,
	}
}

// Handle GET /api/v1/agenda
// Query params: venues, q (опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	selection := ParseVenueSelection(query)
	textQuery := query.Get("q")

	aggregates := h.service.BuildAgenda(selection, textQuery)
	result := ToResponse(aggregates, h.venues)

	h.logger.Info("GET /agenda - Aggregates built successfully: days=%d, revision=%d",
		len(result.Days), result.Revision)
	handlers.RespondJSON(w, http.StatusOK, result)
}
