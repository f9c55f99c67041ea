package get_reservation

import "github.com/GuilhermePeritto/campo-e-gole-sub000/internal/domain"

// Response бронирование с разрешенными полями площадки
type Response struct {
	ID         int64   `json:"id"`
	VenueID    string  `json:"venueId"`
	VenueName  string  `json:"venueName"`
	VenueColor string  `json:"venueColor"`
	ClientName string  `json:"clientName"`
	Date       string  `json:"date"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	Status     string  `json:"status"`
	Sport      *string `json:"sport,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// ToResponse сериализует бронирование
// Неразрешимая дата отдается пустой строкой, а не нулевым временем
func ToResponse(res domain.Reservation, venues VenueResolver) *Response {
	out := &Response{
		ID:         res.ID,
		VenueID:    res.VenueID,
		VenueName:  venues.VenueName(res.VenueID),
		VenueColor: venues.VenueColor(res.VenueID),
		ClientName: res.ClientName,
		StartTime:  res.StartTime.String(),
		EndTime:    res.EndTime.String(),
		Status:     string(res.Status),
		Sport:      res.Sport,
		Notes:      res.Notes,
	}
	if res.HasValidDate() {
		out.Date = res.Date.Format(domain.DateFormat)
	}
	return out
}
