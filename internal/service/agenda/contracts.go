package agenda

import "github.com/GuilhermePeritto/campo-e-gole-sub000/internal/domain"

// Store интерфейс хранилища расписания
type Store interface {
	GetAll() []domain.Reservation
	VenueName(id string) string
	VenueColor(id string) string
	Revision() uint64
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
