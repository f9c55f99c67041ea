package agenda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GuilhermePeritto/campo-e-gole-sub000/internal/domain"
)

type stubStore struct {
	reservations []domain.Reservation
	names        map[string]string
	revision     uint64
}

func (s *stubStore) GetAll() []domain.Reservation { return s.reservations }

func (s *stubStore) VenueName(id string) string {
	if name, ok := s.names[id]; ok {
		return name
	}
	return domain.UnknownVenueName
}

func (s *stubStore) VenueColor(id string) string { return domain.DefaultVenueColor }

func (s *stubStore) Revision() uint64 { return s.revision }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestBuildAgenda(t *testing.T) {
	store := &stubStore{
		reservations: []domain.Reservation{
			{ID: 1, VenueID: "v1", ClientName: "Ana", Date: day(2024, 6, 10), StartTime: "14:00", EndTime: "15:00"},
			{ID: 2, VenueID: "v2", ClientName: "Bruno", Date: day(2024, 6, 10), StartTime: "09:00", EndTime: "10:00"},
			{ID: 3, VenueID: "v1", ClientName: "Carla", StartTime: "09:00", EndTime: "10:00"},
		},
		names:    map[string]string{"v1": "Quadra Azul", "v2": "Campo Verde"},
		revision: 7,
	}
	svc := NewService(store, nopLogger{})

	aggregates := svc.BuildAgenda(domain.AllVenues(), "")

	assert.Equal(t, uint64(7), aggregates.Revision)
	assert.Equal(t, map[string]int{"v1": 2, "v2": 1}, aggregates.EventCountByVenue)

	monday := aggregates.EventsByDay["2024-06-10"]
	require.Len(t, monday, 2)
	assert.Equal(t, int64(2), monday[0].ID)
	assert.Equal(t, int64(1), monday[1].ID)

	require.Len(t, aggregates.EventsByDay[domain.InvalidDateKey], 1)
}

func TestBuildAgendaFilterOrder(t *testing.T) {
	store := &stubStore{
		reservations: []domain.Reservation{
			{ID: 1, VenueID: "v1", ClientName: "Ana", Date: day(2024, 6, 10), StartTime: "09:00", EndTime: "10:00"},
			{ID: 2, VenueID: "v2", ClientName: "Ana", Date: day(2024, 6, 10), StartTime: "10:00", EndTime: "11:00"},
		},
		names: map[string]string{"v1": "Quadra Azul", "v2": "Campo Verde"},
	}
	svc := NewService(store, nopLogger{})

	// Фильтр площадок сужает вход текстового фильтра
	aggregates := svc.BuildAgenda(domain.SelectVenues([]string{"v2"}), "ana")
	assert.Equal(t, map[string]int{"v2": 1}, aggregates.EventCountByVenue)
	require.Len(t, aggregates.EventsByDay["2024-06-10"], 1)
	assert.Equal(t, int64(2), aggregates.EventsByDay["2024-06-10"][0].ID)
}

func TestBuildAgendaEmptySelection(t *testing.T) {
	store := &stubStore{
		reservations: []domain.Reservation{
			{ID: 1, VenueID: "v1", Date: day(2024, 6, 10), StartTime: "09:00", EndTime: "10:00"},
		},
	}
	svc := NewService(store, nopLogger{})

	aggregates := svc.BuildAgenda(domain.SelectVenues(nil), "")
	assert.Empty(t, aggregates.EventsByDay)
	assert.Empty(t, aggregates.EventCountByVenue)
}

func TestBuildAgendaDeterministic(t *testing.T) {
	store := &stubStore{
		reservations: []domain.Reservation{
			{ID: 1, VenueID: "v1", ClientName: "Ana", Date: day(2024, 6, 10), StartTime: "09:00", EndTime: "10:00"},
			{ID: 2, VenueID: "v1", ClientName: "Bruno", Date: day(2024, 6, 10), StartTime: "09:00", EndTime: "10:00"},
		},
	}
	svc := NewService(store, nopLogger{})

	first := svc.BuildAgenda(domain.AllVenues(), "")
	second := svc.BuildAgenda(domain.AllVenues(), "")
	assert.Equal(t, first, second)
}
