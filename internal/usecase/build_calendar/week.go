package build_calendar

import (
	"time"

	"github.com/GuilhermePeritto/campo-e-gole-sub000/internal/domain"
)

// buildWeek строит недельную сетку
//
// Семь дней недели, содержащей опорную дату (с воскресенья), общая шкала
// слотов рабочего окна и события с абсолютной пиксельной геометрией.
// Записи с неразрешимым временем не размещаются на шкале
func (uc *UseCase) buildWeek(anchor time.Time, byDay map[string][]domain.Reservation, now time.Time) *WeekGrid {
	weekStart := startOfWeek(anchor)
	open := uc.geometry.WindowOpenMinutes
	closeAt := uc.geometry.WindowCloseMinutes

	grid := &WeekGrid{
		WindowOpen:    minutesToClock(open),
		WindowClose:   minutesToClock(closeAt),
		PixelsPerHour: uc.geometry.PixelsPerHour,
		Slots:         uc.slotMarks(open, closeAt),
		Days:          make([]DayColumn, 0, domain.DaysPerWeek),
	}

	for i := 0; i < domain.DaysPerWeek; i++ {
		day := weekStart.AddDate(0, 0, i)
		grid.Days = append(grid.Days, DayColumn{
			Date:    day.Format(domain.DateFormat),
			IsToday: sameDay(day, now),
			Events:  uc.positionDay(byDay[day.Format(domain.DateFormat)], open),
		})
	}

	return grid
}

// positionDay размещает бронирования одного дня на вертикальной шкале
func (uc *UseCase) positionDay(reservations []domain.Reservation, windowOpenMinutes int) []PositionedEvent {
	events := make([]PositionedEvent, 0, len(reservations))
	for _, res := range reservations {
		top, height, ok := uc.position(res, windowOpenMinutes)
		if !ok {
			continue
		}
		events = append(events, PositionedEvent{
			Event:    uc.toEvent(res),
			TopPx:    top,
			HeightPx: height,
		})
	}
	return events
}
