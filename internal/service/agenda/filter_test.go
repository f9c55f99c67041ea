package agenda

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GuilhermePeritto/campo-e-gole-sub000/internal/domain"
	"github.com/GuilhermePeritto/campo-e-gole-sub000/pkg/ptr"
)

func day(yyyy int, mm time.Month, dd int) time.Time {
	return time.Date(yyyy, mm, dd, 0, 0, 0, 0, time.UTC)
}

func TestFilterByVenues(t *testing.T) {
	reservations := []domain.Reservation{
		{ID: 1, VenueID: "v1"},
		{ID: 2, VenueID: "v2"},
		{ID: 3, VenueID: "v1"},
	}

	all := filterByVenues(reservations, domain.AllVenues())
	assert.Len(t, all, 3)

	only := filterByVenues(reservations, domain.SelectVenues([]string{"v1"}))
	require.Len(t, only, 2)
	assert.Equal(t, int64(1), only[0].ID)
	assert.Equal(t, int64(3), only[1].ID)

	// Явно пустой набор - "ничего не показывать", а не "все"
	none := filterByVenues(reservations, domain.SelectVenues(nil))
	assert.Empty(t, none)
}

func TestFilterByQuery(t *testing.T) {
	reservations := []domain.Reservation{
		{ID: 1, VenueID: "v1", ClientName: "Ana Souza"},
		{ID: 2, VenueID: "v2", ClientName: "Bruno Lima", Sport: ptr.Ptr("futsal")},
		{ID: 3, VenueID: "v3", ClientName: "Carla"},
	}
	venueName := func(id string) string {
		if id == "v3" {
			return "Quadra Azul"
		}
		return "Campo Verde"
	}

	// Пустой и пробельный запрос пропускают всё
	assert.Len(t, filterByQuery(reservations, "", venueName), 3)
	assert.Len(t, filterByQuery(reservations, "   ", venueName), 3)

	// Регистронезависимое совпадение по имени клиента
	byClient := filterByQuery(reservations, "ANA", venueName)
	require.Len(t, byClient, 1)
	assert.Equal(t, int64(1), byClient[0].ID)

	// По названию площадки из справочника
	byVenue := filterByQuery(reservations, "azul", venueName)
	require.Len(t, byVenue, 1)
	assert.Equal(t, int64(3), byVenue[0].ID)

	// По виду спорта
	bySport := filterByQuery(reservations, "futsal", venueName)
	require.Len(t, bySport, 1)
	assert.Equal(t, int64(2), bySport[0].ID)

	assert.Empty(t, filterByQuery(reservations, "nothing-matches", venueName))
}

func TestFilterIdempotence(t *testing.T) {
	reservations := []domain.Reservation{
		{ID: 1, VenueID: "v1", ClientName: "Ana Souza"},
		{ID: 2, VenueID: "v2", ClientName: "Bruno Lima"},
		{ID: 3, VenueID: "v1", ClientName: "Ana Prado"},
	}
	original := make([]domain.Reservation, len(reservations))
	copy(original, reservations)

	venueName := func(string) string { return "Campo Verde" }
	selection := domain.SelectVenues([]string{"v1"})

	// Повторная фильтрация уже отфильтрованного набора - неподвижная точка
	byVenue := filterByVenues(reservations, selection)
	assert.Equal(t, byVenue, filterByVenues(byVenue, selection))

	byQuery := filterByQuery(reservations, "ana", venueName)
	assert.Equal(t, byQuery, filterByQuery(byQuery, "ana", venueName))

	// Исходный слайс не мутирован
	assert.Equal(t, original, reservations)
}

func TestGroupByDay(t *testing.T) {
	reservations := []domain.Reservation{
		{ID: 1, VenueID: "v1", Date: day(2024, 6, 10), StartTime: "14:00", EndTime: "15:00"},
		{ID: 2, VenueID: "v1", Date: day(2024, 6, 10), StartTime: "09:00", EndTime: "10:00"},
		{ID: 3, VenueID: "v2", Date: day(2024, 6, 11), StartTime: "09:00", EndTime: "10:00"},
		{ID: 4, VenueID: "v2", StartTime: "09:00", EndTime: "10:00"}, // без даты
	}

	byDay := groupByDay(reservations)
	require.Len(t, byDay, 3)

	// Внутри дня порядок по времени начала
	monday := byDay["2024-06-10"]
	require.Len(t, monday, 2)
	assert.Equal(t, int64(2), monday[0].ID)
	assert.Equal(t, int64(1), monday[1].ID)

	// Запись без даты попадает в сигнальный бакет, а не теряется
	invalid := byDay[domain.InvalidDateKey]
	require.Len(t, invalid, 1)
	assert.Equal(t, int64(4), invalid[0].ID)
}

func TestGroupByDayInvalidTimeLast(t *testing.T) {
	reservations := []domain.Reservation{
		{ID: 1, Date: day(2024, 6, 10), StartTime: "bad", EndTime: "10:00"},
		{ID: 2, Date: day(2024, 6, 10), StartTime: "09:00", EndTime: "10:00"},
	}

	monday := groupByDay(reservations)["2024-06-10"]
	require.Len(t, monday, 2)
	assert.Equal(t, int64(2), monday[0].ID)
	assert.Equal(t, int64(1), monday[1].ID)
}

func TestCountByVenue(t *testing.T) {
	reservations := []domain.Reservation{
		{ID: 1, VenueID: "v1", Date: day(2024, 6, 10)},
		{ID: 2, VenueID: "v1"}, // без даты, но площадка считается
		{ID: 3, VenueID: "v2", Date: day(2024, 6, 11)},
	}

	counts := countByVenue(reservations)
	assert.Equal(t, map[string]int{"v1": 2, "v2": 1}, counts)
}
