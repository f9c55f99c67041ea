package build_calendar

import (
	"time"

	"github.com/GuilhermePeritto/campo-e-gole-sub000/internal/domain"
)

// buildList строит списочное представление
//
// Скользящее окно от опорной даты (по умолчанию 30 дней) по возрастанию
// дат; внутри дня - по возрастанию времени начала. Дни без бронирований
// опускаются из результата
func (uc *UseCase) buildList(anchor time.Time, byDay map[string][]domain.Reservation) *ListGrid {
	from := startOfDay(anchor)
	to := from.AddDate(0, 0, uc.geometry.ListWindowDays-1)

	grid := &ListGrid{
		From: from.Format(domain.DateFormat),
		To:   to.Format(domain.DateFormat),
	}

	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		key := day.Format(domain.DateFormat)
		reservations := byDay[key]
		if len(reservations) == 0 {
			continue
		}

		events := make([]Event, 0, len(reservations))
		for _, res := range reservations {
			events = append(events, uc.toEvent(res))
		}

		grid.Days = append(grid.Days, ListDay{
			Date:   key,
			Events: events,
		})
	}

	return grid
}
