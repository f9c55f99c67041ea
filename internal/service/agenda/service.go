package agenda

import "github.com/GuilhermePeritto/campo-e-gole-sub000/internal/domain"

// Aggregates производные отображения по отфильтрованным бронированиям
type Aggregates struct {
	// EventsByDay бронирования по дням, ключ YYYY-MM-DD
	// Записи с неразрешимой датой лежат под ключом domain.InvalidDateKey
	EventsByDay map[string][]domain.Reservation

	// EventCountByVenue количество выживших бронирований по площадкам
	EventCountByVenue map[string]int

	// Revision номер снимка хранилища, по которому построены агрегаты
	Revision uint64
}

// Service конвейер фильтрации и агрегации бронирований
type Service struct {
	store  Store
	logger Logger
}

// NewService создает новый экземпляр конвейера
func NewService(store Store, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// FilterReservations прогоняет снимок хранилища через фильтры площадок и текста
// Порядок фиксирован: сначала фильтр по площадкам, затем текстовый
func (s *Service) FilterReservations(selection domain.VenueSelection, query string) []domain.Reservation {
	reservations := s.store.GetAll()
	reservations = filterByVenues(reservations, selection)
	reservations = filterByQuery(reservations, query, s.store.VenueName)
	return reservations
}

// BuildAgenda строит агрегаты по текущему снимку хранилища
// Пересчитывается целиком на каждый вызов - конвейер достаточно дешев,
// чтобы выполняться на каждое изменение входа
func (s *Service) BuildAgenda(selection domain.VenueSelection, query string) *Aggregates {
	revision := s.store.Revision()
	survivors := s.FilterReservations(selection, query)

	s.logger.Info("BuildAgenda: %d reservations survived filtering (all=%t, venues=%d, query=%q, revision=%d)",
		len(survivors), selection.All, len(selection.IDs), query, revision)

	return &Aggregates{
		EventsByDay:       groupByDay(survivors),
		EventCountByVenue: countByVenue(survivors),
		Revision:          revision,
	}
}
