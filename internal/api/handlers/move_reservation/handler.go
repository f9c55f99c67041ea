package move_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/GuilhermePeritto/campo-e-gole-sub000/internal/api/handlers"
	moveReservation "github.com/GuilhermePeritto/campo-e-gole-sub000/internal/usecase/move_reservation"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidSchedule      = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgNotFound             = "бронирование не найдено"
)

type Handler struct {
	useCase MoveReservationUseCase
	logger  Logger
}

func NewHandler(useCase MoveReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/move
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationIDStr := vars["reservationId"]

	reservationID, err := strconv.ParseInt(reservationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/move - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req MoveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id}/move - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(reservationID)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/move - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSchedule)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, moveReservation.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/move - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, moveReservation.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/{id}/move - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSchedule)

		default:
			h.logger.Error("PATCH /reservations/{id}/move - Failed to move reservation: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Отклонение политикой - 409 с типизированным результатом,
	// фронтенд возвращает событие на исходное место
	if !result.Accepted {
		h.logger.Info("PATCH /reservations/{id}/move - Move rejected: reservation_id=%d, reason=%s",
			reservationID, result.Reason)
		handlers.RespondJSON(w, http.StatusConflict, result)
		return
	}

	h.logger.Info("PATCH /reservations/{id}/move - Reservation moved successfully: reservation_id=%d", reservationID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
