package get_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/GuilhermePeritto/campo-e-gole-sub000/internal/api/handlers"
	"github.com/GuilhermePeritto/campo-e-gole-sub000/internal/service/schedule"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgNotFound             = "бронирование не найдено"
	msgNotLoaded            = "расписание еще не загружено"
)

type Handler struct {
	store  ScheduleStore
	venues VenueResolver
	logger Logger
}

func NewHandler(store ScheduleStore, venues VenueResolver, logger Logger) *Handler {
	return &Handler{
		store:  store,
		venues: venues,
		logger: logger,
	}
}

// Handle GET /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationIDStr := vars["reservationId"]

	reservationID, err := strconv.ParseInt(reservationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	res, err := h.store.GetByID(reservationID)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrReservationNotFound):
			h.logger.Warn("GET /reservations/{id} - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, schedule.ErrNotLoaded):
			h.logger.Error("GET /reservations/{id} - Schedule store not loaded")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgNotLoaded)

		default:
			h.logger.Error("GET /reservations/{id} - Failed to get reservation: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations/{id} - Reservation retrieved successfully: reservation_id=%d", reservationID)
	handlers.RespondJSON(w, http.StatusOK, ToResponse(res, h.venues))
}
