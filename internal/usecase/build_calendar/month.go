package build_calendar

import (
	"time"

	"github.com/GuilhermePeritto/campo-e-gole-sub000/internal/domain"
)

// buildMonth строит месячную сетку
//
// Сетка покрывает полные недели: от воскресенья недели первого числа месяца
// до субботы недели последнего числа. Каждая ячейка несет дату, признаки
// "в текущем месяце" и "сегодня", первые N бронирований по возрастанию
// времени начала и счетчик переполнения для остальных
func (uc *UseCase) buildMonth(anchor time.Time, byDay map[string][]domain.Reservation, now time.Time) *MonthGrid {
	firstOfMonth := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

	gridStart := startOfWeek(firstOfMonth)
	gridEnd := startOfWeek(lastOfMonth).AddDate(0, 0, domain.DaysPerWeek-1)

	grid := &MonthGrid{
		Anchor: firstOfMonth.Format(domain.DateFormat),
	}

	var week []MonthCell
	for day := gridStart; !day.After(gridEnd); day = day.AddDate(0, 0, 1) {
		week = append(week, uc.buildMonthCell(day, firstOfMonth, byDay, now))
		if len(week) == domain.DaysPerWeek {
			grid.Weeks = append(grid.Weeks, week)
			week = nil
		}
	}

	return grid
}

// buildMonthCell строит одну ячейку месячной сетки
func (uc *UseCase) buildMonthCell(day, firstOfMonth time.Time, byDay map[string][]domain.Reservation, now time.Time) MonthCell {
	key := day.Format(domain.DateFormat)
	reservations := byDay[key]

	// Порядок внутри дня уже стабильный (по времени начала, затем по ID):
	// первые N видимы, остальные уходят в счетчик переполнения
	visible := len(reservations)
	if visible > uc.geometry.MaxVisiblePerDay {
		visible = uc.geometry.MaxVisiblePerDay
	}

	events := make([]Event, 0, visible)
	for _, res := range reservations[:visible] {
		events = append(events, uc.toEvent(res))
	}

	return MonthCell{
		Date:           key,
		InCurrentMonth: day.Month() == firstOfMonth.Month() && day.Year() == firstOfMonth.Year(),
		IsToday:        sameDay(day, now),
		Events:         events,
		OverflowCount:  len(reservations) - visible,
	}
}
