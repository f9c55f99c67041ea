package move_reservation

import (
	"time"

	"github.com/GuilhermePeritto/campo-e-gole-sub000/internal/domain"
	"github.com/GuilhermePeritto/campo-e-gole-sub000/pkg/types"
)

// Request запрос на перенос бронирования
// Целевой слот задается датой и временем начала; время окончания
// вычисляется из исходной длительности бронирования. Пустое TargetStart
// означает перенос только по дате с сохранением текущего времени
type Request struct {
	ReservationID int64
	TargetDate    time.Time
	TargetStart   types.TimeString
}

// Reservation бронирование в ответе
type Reservation struct {
	ID         int64   `json:"id"`
	VenueID    string  `json:"venueId"`
	ClientName string  `json:"clientName"`
	Date       string  `json:"date"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	Status     string  `json:"status"`
	Sport      *string `json:"sport,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// Response результат переноса
// Отклоненный перенос - не ошибка, а типизированный отказ с причиной:
// хранилище при этом остается нетронутым
type Response struct {
	Accepted    bool         `json:"accepted"`
	Reason      string       `json:"reason,omitempty"`
	Reservation *Reservation `json:"reservation,omitempty"`
}

func toResponseReservation(res domain.Reservation) *Reservation {
	out := &Reservation{
		ID:         res.ID,
		VenueID:    res.VenueID,
		ClientName: res.ClientName,
		StartTime:  res.StartTime.String(),
		EndTime:    res.EndTime.String(),
		Status:     string(res.Status),
		Sport:      res.Sport,
		Notes:      res.Notes,
	}
	if res.HasValidDate() {
		out.Date = res.Date.Format(domain.DateFormat)
	}
	return out
}
