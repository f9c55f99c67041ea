package build_calendar

import (
	"time"

	"github.com/GuilhermePeritto/campo-e-gole-sub000/internal/domain"
	"github.com/GuilhermePeritto/campo-e-gole-sub000/internal/service/agenda"
)

// AgendaService интерфейс конвейера фильтрации и агрегации
// Внутри каждого дня EventsByDay отсортированы по времени начала, затем
// по ID - усечение видимых событий месячной сетки полагается на этот порядок
type AgendaService interface {
	BuildAgenda(selection domain.VenueSelection, query string) *agenda.Aggregates
}

// VenueResolver интерфейс разрешения ссылок на площадки
type VenueResolver interface {
	VenueName(id string) string
	VenueColor(id string) string
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
