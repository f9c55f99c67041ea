package get_reservation

import "github.com/GuilhermePeritto/campo-e-gole-sub000/internal/domain"

type ScheduleStore interface {
	GetByID(id int64) (domain.Reservation, error)
}

type VenueResolver interface {
	VenueName(id string) string
	VenueColor(id string) string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
