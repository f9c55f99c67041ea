package sync_date

import (
	"time"

	"github.com/GuilhermePeritto/campo-e-gole-sub000/internal/domain"
)

// Action действие над состоянием синхронизации дат
type Action string

const (
	// ActionPick выбор даты в мини-календаре
	ActionPick Action = "pick"
	// ActionNavigate навигация основного представления (prev/next/today)
	ActionNavigate Action = "navigate"
	// ActionSetView смена вида представления
	ActionSetView Action = "set_view"
)

// Direction направление навигации
type Direction string

const (
	DirectionPrev  Direction = "prev"
	DirectionNext  Direction = "next"
	DirectionToday Direction = "today"
)

// Request запрос на переход состояния
// Контроллер без собственного состояния: клиент передает текущее
// отображаемое представление и дату мини-календаря
type Request struct {
	Action Action

	View   domain.ViewKind // Текущий вид представления
	Anchor time.Time       // Опорная дата отображаемого периода
	Picked time.Time       // Текущая дата мини-календаря

	// Для ActionPick: выбранная дата
	Target time.Time
	// Для ActionNavigate: направление
	Direction Direction
	// Для ActionSetView: новый вид представления
	TargetView domain.ViewKind
}

// Response результат перехода
type Response struct {
	View   domain.ViewKind
	Anchor time.Time
	Picked time.Time

	// Navigated true, если основному представлению нужно перецентрироваться
	Navigated bool
}
