package build_calendar

import (
	"fmt"
	"time"

	"github.com/GuilhermePeritto/campo-e-gole-sub000/internal/domain"
)

// Вспомогательные функции геометрии и работы с датами

// position вычисляет пиксельную позицию бронирования относительно окна
// top = (минут от начала окна / 60) * px/час
// height = max((длительность / 60) * px/час, минимальная высота)
// Минимальная высота гарантирует кликабельность коротких бронирований
// ok=false для записей с неразрешимым временем - их нельзя разместить на шкале
func (uc *UseCase) position(res domain.Reservation, windowOpenMinutes int) (top, height float64, ok bool) {
	startMin, err := res.StartTime.Minutes()
	if err != nil {
		return 0, 0, false
	}
	endMin, err := res.EndTime.Minutes()
	if err != nil || endMin <= startMin {
		return 0, 0, false
	}

	pph := float64(uc.geometry.PixelsPerHour)
	top = float64(startMin-windowOpenMinutes) / 60 * pph
	height = float64(endMin-startMin) / 60 * pph
	if min := float64(uc.geometry.MinEventHeightPx); height < min {
		height = min
	}
	return top, height, true
}

// slotMarks строит вертикальную шкалу слотов для окна [open, close)
func (uc *UseCase) slotMarks(windowOpenMinutes, windowCloseMinutes int) []SlotMark {
	pph := float64(uc.geometry.PixelsPerHour)
	marks := make([]SlotMark, 0, (windowCloseMinutes-windowOpenMinutes)/uc.geometry.SlotMinutes)
	for m := windowOpenMinutes; m < windowCloseMinutes; m += uc.geometry.SlotMinutes {
		marks = append(marks, SlotMark{
			Start: minutesToClock(m),
			TopPx: float64(m-windowOpenMinutes) / 60 * pph,
		})
	}
	return marks
}

// toEvent конвертирует бронирование в отображаемую модель,
// разрешая название и цвет площадки через справочник
func (uc *UseCase) toEvent(res domain.Reservation) Event {
	return Event{
		ID:         res.ID,
		VenueID:    res.VenueID,
		VenueName:  uc.venues.VenueName(res.VenueID),
		VenueColor: uc.venues.VenueColor(res.VenueID),
		ClientName: res.ClientName,
		Sport:      res.Sport,
		Status:     string(res.Status),
		Date:       res.DayKey(),
		StartTime:  res.StartTime.String(),
		EndTime:    res.EndTime.String(),
	}
}

// minutesToClock форматирует минуты с полуночи в "HH:MM"
// В отличие от types.TimeString допускает значение 24:00 -
// верхнюю границу динамического окна дневного представления
func minutesToClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// startOfDay обнуляет время, оставляя только дату
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek возвращает воскресенье недели, содержащей дату
// Недели календаря начинаются с воскресенья
func startOfWeek(t time.Time) time.Time {
	day := startOfDay(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// sameDay проверяет, что две даты относятся к одному календарному дню
func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// snapDown округляет минуты вниз до границы step
func snapDown(minutes, step int) int {
	if minutes < 0 {
		return 0
	}
	return minutes - minutes%step
}

// snapUp округляет минуты вверх до границы step
func snapUp(minutes, step int) int {
	if rem := minutes % step; rem != 0 {
		minutes += step - rem
	}
	return minutes
}
