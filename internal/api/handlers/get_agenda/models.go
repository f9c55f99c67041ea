package get_agenda

import (
	"net/url"
	"sort"
	"strings"

	"github.com/GuilhermePeritto/campo-e-gole-sub000/internal/domain"
	"github.com/GuilhermePeritto/campo-e-gole-sub000/internal/service/agenda"
)

// Event бронирование в ответе агрегации
type Event struct {
	ID         int64   `json:"id"`
	VenueID    string  `json:"venueId"`
	VenueName  string  `json:"venueName"`
	VenueColor string  `json:"venueColor"`
	ClientName string  `json:"clientName"`
	Sport      *string `json:"sport,omitempty"`
	Status     string  `json:"status"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
}

// Day группа бронирований одного дня
type Day struct {
	Date   string  `json:"date"`
	Events []Event `json:"events"`
}

// Response агрегаты по отфильтрованным бронированиям
type Response struct {
	Days              []Day          `json:"days"`
	EventCountByVenue map[string]int `json:"eventCountByVenue"`
	Revision          uint64         `json:"revision"`
}

// ToResponse сериализует агрегаты в ответ
// Дни отсортированы по возрастанию даты; корзина "invalid" идет последней
func ToResponse(aggregates *agenda.Aggregates, venues VenueResolver) *Response {
	keys := make([]string, 0, len(aggregates.EventsByDay))
	for key := range aggregates.EventsByDay {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i] == domain.InvalidDateKey {
			return false
		}
		if keys[j] == domain.InvalidDateKey {
			return true
		}
		return keys[i] < keys[j]
	})

	days := make([]Day, 0, len(keys))
	for _, key := range keys {
		reservations := aggregates.EventsByDay[key]
		events := make([]Event, 0, len(reservations))
		for _, res := range reservations {
			events = append(events, Event{
				ID:         res.ID,
				VenueID:    res.VenueID,
				VenueName:  venues.VenueName(res.VenueID),
				VenueColor: venues.VenueColor(res.VenueID),
				ClientName: res.ClientName,
				Sport:      res.Sport,
				Status:     string(res.Status),
				StartTime:  res.StartTime.String(),
				EndTime:    res.EndTime.String(),
			})
		}
		days = append(days, Day{Date: key, Events: events})
	}

	return &Response{
		Days:              days,
		EventCountByVenue: aggregates.EventCountByVenue,
		Revision:          aggregates.Revision,
	}
}

// ParseVenueSelection разбирает параметр venues
// Отсутствие параметра или "all" - все площадки, пустое значение - пустой выбор
func ParseVenueSelection(query url.Values) domain.VenueSelection {
	if !query.Has("venues") {
		return domain.AllVenues()
	}

	raw := query.Get("venues")
	if raw == "all" {
		return domain.AllVenues()
	}

	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return domain.SelectVenues(ids)
}
