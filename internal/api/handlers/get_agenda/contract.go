package get_agenda

import (
	"github.com/GuilhermePeritto/campo-e-gole-sub000/internal/domain"
	"github.com/GuilhermePeritto/campo-e-gole-sub000/internal/service/agenda"
)

type AgendaService interface {
	BuildAgenda(selection domain.VenueSelection, query string) *agenda.Aggregates
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
