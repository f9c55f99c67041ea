package get_venues

import "github.com/GuilhermePeritto/campo-e-gole-sub000/internal/domain"

// Venue площадка в ответе
type Venue struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Color      string `json:"color"`
	Type       string `json:"type,omitempty"`
	EventCount int    `json:"eventCount"`
}

// Response справочник площадок с количеством бронирований
type Response struct {
	Venues []Venue `json:"venues"`
}

// ToResponse сериализует справочник площадок
func ToResponse(venues []domain.Venue, counts map[string]int) *Response {
	result := make([]Venue, 0, len(venues))
	for _, v := range venues {
		result = append(result, Venue{
			ID:         v.ID,
			Name:       v.Name,
			Color:      v.Color,
			Type:       v.Type,
			EventCount: counts[v.ID],
		})
	}
	return &Response{Venues: result}
}
