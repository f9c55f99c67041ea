package build_calendar

import (
	"time"

	"github.com/GuilhermePeritto/campo-e-gole-sub000/internal/domain"
)

// Параметры динамического окна дневного представления
const (
	// dayWindowMarginMinutes поля вокруг фактической активности дня
	dayWindowMarginMinutes = 60
	// dayWindowSnapMinutes границы окна выравниваются по получасу
	dayWindowSnapMinutes = 30
	// minutesPerDay верхняя граница окна (24:00)
	minutesPerDay = 24 * 60
)

// buildDay строит дневную сетку
//
// Окно шкалы подстраивается под фактическую активность:
// [самое раннее начало - 60 мин, самое позднее окончание + 60 мин],
// выровненное по получасовым границам. День без размещаемых бронирований
// получает фиксированное рабочее окно из конфигурации
func (uc *UseCase) buildDay(anchor time.Time, byDay map[string][]domain.Reservation, now time.Time) *DayGrid {
	key := anchor.Format(domain.DateFormat)
	reservations := byDay[key]

	open, closeAt := uc.dayWindow(reservations)

	return &DayGrid{
		Date:          key,
		IsToday:       sameDay(anchor, now),
		WindowOpen:    minutesToClock(open),
		WindowClose:   minutesToClock(closeAt),
		PixelsPerHour: uc.geometry.PixelsPerHour,
		Slots:         uc.slotMarks(open, closeAt),
		Events:        uc.positionDay(reservations, open),
	}
}

// dayWindow вычисляет границы окна дневной шкалы в минутах с полуночи
func (uc *UseCase) dayWindow(reservations []domain.Reservation) (open, closeAt int) {
	earliest, latest := -1, -1
	for _, res := range reservations {
		startMin, err := res.StartTime.Minutes()
		if err != nil {
			continue
		}
		endMin, err := res.EndTime.Minutes()
		if err != nil || endMin <= startMin {
			continue
		}
		if earliest == -1 || startMin < earliest {
			earliest = startMin
		}
		if endMin > latest {
			latest = endMin
		}
	}

	// Нет размещаемых бронирований - фиксированное рабочее окно
	if earliest == -1 {
		return uc.geometry.WindowOpenMinutes, uc.geometry.WindowCloseMinutes
	}

	open = snapDown(earliest-dayWindowMarginMinutes, dayWindowSnapMinutes)
	closeAt = snapUp(latest+dayWindowMarginMinutes, dayWindowSnapMinutes)
	if closeAt > minutesPerDay {
		closeAt = minutesPerDay
	}
	return open, closeAt
}
