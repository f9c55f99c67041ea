package schedule

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/GuilhermePeritto/campo-e-gole-sub000/internal/domain"
	reservationRepo "github.com/GuilhermePeritto/campo-e-gole-sub000/internal/infra/storage/reservation"
	"github.com/GuilhermePeritto/campo-e-gole-sub000/pkg/types"
)

// Service хранилище расписания - единственный владелец коллекции бронирований
//
// Держит снимок бронирований и справочник площадок в памяти. Снимок
// загружается один раз на старте (Load) и далее меняется только через
// ApplyMove - единственную точку мутации. Все остальные методы работают
// в режиме read-only и возвращают копии, чтобы вызывающие стороны не могли
// изменить общее состояние в обход хранилища.
type Service struct {
	reservationRepo ReservationRepository
	venueClient     VenueServiceClient
	logger          Logger

	mu           sync.RWMutex
	loaded       bool
	reservations map[int64]*domain.Reservation
	venues       map[string]domain.Venue
	revision     uint64
}

// NewService создает новый экземпляр хранилища расписания
func NewService(
	reservationRepo ReservationRepository,
	venueClient VenueServiceClient,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		venueClient:     venueClient,
		logger:          logger,
		reservations:    make(map[int64]*domain.Reservation),
		venues:          make(map[string]domain.Venue),
	}
}

// Load выполняет первичную загрузку бронирований и площадок
// Вызывается один раз на старте сервиса; ошибка загрузки фатальна,
// поскольку без данных движок календаря бесполезен
func (s *Service) Load(ctx context.Context) error {
	s.logger.Info("Load: fetching reservations and venues")

	reservations, err := s.reservationRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("Load: failed to fetch reservations: %v", err)
		return fmt.Errorf("%w: Load - repository error: %v", ErrInternal, err)
	}

	venues, err := s.venueClient.GetVenues(ctx)
	if err != nil {
		s.logger.Error("Load: failed to fetch venues: %v", err)
		return fmt.Errorf("%w: Load - venue service error: %v", ErrInternal, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.reservations = make(map[int64]*domain.Reservation, len(reservations))
	for _, res := range reservations {
		s.reservations[res.ID] = res
	}

	s.venues = make(map[string]domain.Venue, len(venues))
	for _, v := range venues {
		s.venues[v.ID] = v.ToDomain()
	}

	s.loaded = true
	s.revision++

	s.logger.Info("Load: loaded %d reservations and %d venues (revision=%d)",
		len(s.reservations), len(s.venues), s.revision)
	return nil
}

// Reload перечитывает данные, сохраняя работоспособность при деградации
// При недоступности VenueService продолжает работать с последним
// успешно загруженным справочником площадок
func (s *Service) Reload(ctx context.Context) error {
	reservations, err := s.reservationRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("Reload: failed to fetch reservations: %v", err)
		return fmt.Errorf("%w: Reload - repository error: %v", ErrInternal, err)
	}

	venues, err := s.venueClient.GetVenuesWithGracefulDegradation(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.reservations = make(map[int64]*domain.Reservation, len(reservations))
	for _, res := range reservations {
		s.reservations[res.ID] = res
	}

	if err == nil {
		s.venues = make(map[string]domain.Venue, len(venues))
		for _, v := range venues {
			s.venues[v.ID] = v.ToDomain()
		}
	} else {
		s.logger.Warn("Reload: keeping previous venue snapshot (%d venues)", len(s.venues))
	}

	s.loaded = true
	s.revision++

	s.logger.Info("Reload: snapshot refreshed, %d reservations (revision=%d)",
		len(s.reservations), s.revision)
	return nil
}

// GetAll возвращает копии всех бронирований, отсортированные по дате,
// времени начала и ID (стабильный порядок для детерминированной агрегации)
func (s *Service) GetAll() []domain.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Reservation, 0, len(s.reservations))
	for _, res := range s.reservations {
		result = append(result, *res)
	}

	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if !a.Date.Equal(b.Date) {
			// Записи без даты уходят в конец
			if a.Date.IsZero() || b.Date.IsZero() {
				return b.Date.IsZero()
			}
			return a.Date.Before(b.Date)
		}
		if a.StartTime != b.StartTime {
			return a.StartTime.IsBefore(b.StartTime)
		}
		return a.ID < b.ID
	})

	return result
}

// GetByID возвращает копию бронирования по ID
func (s *Service) GetByID(id int64) (domain.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return domain.Reservation{}, ErrNotLoaded
	}

	res, ok := s.reservations[id]
	if !ok {
		return domain.Reservation{}, ErrReservationNotFound
	}

	return *res, nil
}

// GetVenueByID возвращает площадку из справочника
func (s *Service) GetVenueByID(id string) (domain.Venue, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	venue, ok := s.venues[id]
	return venue, ok
}

// VenueColor возвращает цвет площадки
// Неразрешимая ссылка деградирует до нейтрального серого цвета -
// цвет всегда берется из справочника на момент обращения и не кэшируется
// в бронировании между правками площадок
func (s *Service) VenueColor(id string) string {
	if venue, ok := s.GetVenueByID(id); ok && venue.Color != "" {
		return venue.Color
	}
	return domain.DefaultVenueColor
}

// VenueName возвращает название площадки или заглушку для неразрешимой ссылки
func (s *Service) VenueName(id string) string {
	if venue, ok := s.GetVenueByID(id); ok {
		return venue.Name
	}
	return domain.UnknownVenueName
}

// Venues возвращает справочник площадок, отсортированный по названию
func (s *Service) Venues() []domain.Venue {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Venue, 0, len(s.venues))
	for _, v := range s.venues {
		result = append(result, v)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Revision возвращает номер текущего снимка
// Увеличивается при каждой мутации: агрегаты, построенные до мутации,
// по нему определяются как устаревшие
func (s *Service) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// ApplyMove переносит бронирование на новую дату и время
//
// Единственная точка мутации хранилища. Сначала блокирует и фиксирует
// перенос в БД, затем обновляет запись в снимке - порядок
// "mutate-then-recompute" гарантирует, что агрегация никогда не видит
// состояние новее снимка
func (s *Service) ApplyMove(ctx context.Context, id int64, date time.Time, start, end types.TimeString) (domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return domain.Reservation{}, ErrNotLoaded
	}

	res, ok := s.reservations[id]
	if !ok {
		return domain.Reservation{}, ErrReservationNotFound
	}

	// Блокируем строку до обновления: внутри сериализуемой транзакции
	// перемещения GetByID выполняет SELECT ... FOR UPDATE
	if _, err := s.reservationRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			delete(s.reservations, id)
			s.revision++
			s.logger.Warn("ApplyMove: reservation id=%d vanished from storage", id)
			return domain.Reservation{}, ErrReservationNotFound
		}
		s.logger.Error("ApplyMove: failed to lock reservation id=%d: %v", id, err)
		return domain.Reservation{}, fmt.Errorf("%w: ApplyMove - repository error: %v", ErrInternal, err)
	}

	if err := s.reservationRepo.UpdateSchedule(ctx, id, date, start, end); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			// Запись исчезла из БД - убираем её и из снимка
			delete(s.reservations, id)
			s.revision++
			s.logger.Warn("ApplyMove: reservation id=%d vanished from storage", id)
			return domain.Reservation{}, ErrReservationNotFound
		}
		s.logger.Error("ApplyMove: repository error for reservation id=%d: %v", id, err)
		return domain.Reservation{}, fmt.Errorf("%w: ApplyMove - repository error: %v", ErrInternal, err)
	}

	res.Date = date
	res.StartTime = start
	res.EndTime = end
	res.UpdatedAt = time.Now()
	s.revision++

	s.logger.Info("ApplyMove: reservation id=%d moved to %s %s-%s (revision=%d)",
		id, date.Format(domain.DateFormat), start, end, s.revision)

	return *res, nil
}
