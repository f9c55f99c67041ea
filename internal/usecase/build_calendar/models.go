package build_calendar

import (
	"time"

	"github.com/GuilhermePeritto/campo-e-gole-sub000/internal/domain"
)

// Request запрос на построение календарной сетки
type Request struct {
	View      domain.ViewKind       // Представление (month/week/day/list)
	Date      time.Time             // Опорная дата представления
	Selection domain.VenueSelection // Выбор площадок
	Query     string                // Текстовый фильтр
}

// Geometry параметры геометрии сетки (из конфигурации)
type Geometry struct {
	WindowOpenMinutes  int // Начало рабочего окна, минут с полуночи
	WindowCloseMinutes int // Конец рабочего окна, минут с полуночи
	SlotMinutes        int // Шаг временных слотов
	PixelsPerHour      int // Вертикальный масштаб (px/час)
	MinEventHeightPx   int // Минимальная высота события
	MaxVisiblePerDay   int // Видимых событий в ячейке месяца
	ListWindowDays     int // Окно списочного представления, дней
}

// Event отображаемое бронирование с разрешенными полями площадки
// Название и цвет всегда берутся из справочника в момент построения
type Event struct {
	ID         int64   `json:"id"`
	VenueID    string  `json:"venueId"`
	VenueName  string  `json:"venueName"`
	VenueColor string  `json:"venueColor"`
	ClientName string  `json:"clientName"`
	Sport      *string `json:"sport,omitempty"`
	Status     string  `json:"status"`
	Date       string  `json:"date"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
}

// PositionedEvent событие с абсолютной пиксельной геометрией
type PositionedEvent struct {
	Event
	TopPx    float64 `json:"topPx"`
	HeightPx float64 `json:"heightPx"`
}

// MonthCell ячейка месячной сетки
type MonthCell struct {
	Date           string  `json:"date"`
	InCurrentMonth bool    `json:"inCurrentMonth"`
	IsToday        bool    `json:"isToday"`
	Events         []Event `json:"events"`
	OverflowCount  int     `json:"overflowCount"`
}

// MonthGrid месячная сетка: только полные недели, 7 колонок
type MonthGrid struct {
	Anchor string        `json:"anchor"` // Первый день отображаемого месяца
	Weeks  [][]MonthCell `json:"weeks"`
}

// SlotMark метка временного слота на вертикальной шкале
type SlotMark struct {
	Start string  `json:"start"`
	TopPx float64 `json:"topPx"`
}

// DayColumn колонка одного дня в недельной сетке
type DayColumn struct {
	Date    string            `json:"date"`
	IsToday bool              `json:"isToday"`
	Events  []PositionedEvent `json:"events"`
}

// WeekGrid недельная сетка: 7 дней с воскресенья, общая шкала слотов
type WeekGrid struct {
	WindowOpen    string      `json:"windowOpen"`
	WindowClose   string      `json:"windowClose"`
	PixelsPerHour int         `json:"pixelsPerHour"`
	Slots         []SlotMark  `json:"slots"`
	Days          []DayColumn `json:"days"`
}

// DayGrid дневная сетка с динамическим рабочим окном
type DayGrid struct {
	Date          string            `json:"date"`
	IsToday       bool              `json:"isToday"`
	WindowOpen    string            `json:"windowOpen"`
	WindowClose   string            `json:"windowClose"`
	PixelsPerHour int               `json:"pixelsPerHour"`
	Slots         []SlotMark        `json:"slots"`
	Events        []PositionedEvent `json:"events"`
}

// ListDay день списочного представления
type ListDay struct {
	Date   string  `json:"date"`
	Events []Event `json:"events"`
}

// ListGrid списочное представление: скользящее окно дней
// Дни без бронирований опускаются
type ListGrid struct {
	From string    `json:"from"`
	To   string    `json:"to"`
	Days []ListDay `json:"days"`
}

// Response дескриптор сетки для рендеринга
// Заполнено ровно одно поле, соответствующее виду представления
type Response struct {
	View  domain.ViewKind `json:"view"`
	Month *MonthGrid      `json:"month,omitempty"`
	Week  *WeekGrid       `json:"week,omitempty"`
	Day   *DayGrid        `json:"day,omitempty"`
	List  *ListGrid       `json:"list,omitempty"`
}
