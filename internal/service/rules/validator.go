package rules

import (
	"time"

	"github.com/GuilhermePeritto/campo-e-gole-sub000/internal/domain"
	"github.com/GuilhermePeritto/campo-e-gole-sub000/pkg/types"
)

// Store интерфейс хранилища расписания
type Store interface {
	GetAll() []domain.Reservation
}

// Validator базовая политика проверки переносов бронирований
//
// Реализация хука MoveValidator по умолчанию: рабочее окно, запрет переноса
// отмененных бронирований и занятость точного слота той же площадки.
// Конкретные правила предметной области (допуски пересечений, блэкауты)
// подключаются внешним коллаборатором через тот же контракт
type Validator struct {
	store       Store
	windowOpen  types.TimeString
	windowClose types.TimeString
}

// NewValidator создает валидатор с заданным рабочим окном
func NewValidator(store Store, windowOpen, windowClose types.TimeString) *Validator {
	return &Validator{
		store:       store,
		windowOpen:  windowOpen,
		windowClose: windowClose,
	}
}

// Validate проверяет допустимость переноса бронирования
// на указанную дату и время начала (длительность сохраняется)
func (v *Validator) Validate(res domain.Reservation, date time.Time, start types.TimeString) domain.MoveDecision {
	if date.IsZero() {
		return domain.Deny("target date is not a valid calendar date")
	}

	if res.IsCancelled() {
		return domain.Deny("cancelled reservations cannot be moved")
	}

	duration, err := res.DurationMinutes()
	if err != nil || duration <= 0 {
		return domain.Deny("reservation has an invalid time range")
	}

	end, err := start.AddMinutes(duration)
	if err != nil {
		return domain.Deny("move would push the reservation past midnight")
	}

	if start.IsBefore(v.windowOpen) || end.IsAfter(v.windowClose) {
		return domain.Deny("target slot is outside business hours")
	}

	if v.slotTaken(res, date, start) {
		return domain.Deny("another reservation already occupies this slot for the venue")
	}

	return domain.Allow()
}

// slotTaken проверяет, занят ли точный слот (площадка + день + время начала)
// другим активным бронированием
func (v *Validator) slotTaken(res domain.Reservation, date time.Time, start types.TimeString) bool {
	for _, other := range v.store.GetAll() {
		if other.ID == res.ID || !other.IsActive() {
			continue
		}
		if other.VenueID != res.VenueID || !other.HasValidDate() {
			continue
		}
		if sameDay(other.Date, date) && other.StartTime == start {
			return true
		}
	}
	return false
}

// sameDay проверяет, что две даты относятся к одному календарному дню
func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
