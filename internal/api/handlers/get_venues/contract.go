package get_venues

import (
	"github.com/GuilhermePeritto/campo-e-gole-sub000/internal/domain"
	"github.com/GuilhermePeritto/campo-e-gole-sub000/internal/service/agenda"
)

type ScheduleStore interface {
	Venues() []domain.Venue
}

type AgendaService interface {
	BuildAgenda(selection domain.VenueSelection, query string) *agenda.Aggregates
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
