package move_reservation

import (
	"fmt"
	"time"

	"github.com/GuilhermePeritto/campo-e-gole-sub000/internal/domain"
	moveReservation "github.com/GuilhermePeritto/campo-e-gole-sub000/internal/usecase/move_reservation"
	"github.com/GuilhermePeritto/campo-e-gole-sub000/pkg/types"
)

// MoveRequest тело запроса на перенос бронирования
// Пустое startTime означает перенос только по дате с сохранением времени
type MoveRequest struct {
	Date      string `json:"date"`                // YYYY-MM-DD
	StartTime string `json:"startTime,omitempty"` // HH:MM
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *MoveRequest) ToUseCaseRequest(reservationID int64) (*moveReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", r.Date, err)
	}

	var start types.TimeString
	if r.StartTime != "" {
		start, err = types.NewTimeStringFromString(r.StartTime)
		if err != nil {
			return nil, fmt.Errorf("invalid start time %q: %w", r.StartTime, err)
		}
	}

	return &moveReservation.Request{
		ReservationID: reservationID,
		TargetDate:    date,
		TargetStart:   start,
	}, nil
}
