package venueservice

import "github.com/GuilhermePeritto/campo-e-gole-sub000/internal/domain"

// Venue модель площадки из VenueService
type Venue struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"` // RGB hex, например "#2196F3"
	Type  string `json:"type"`  // Тип площадки (quadra, campo, salao, ...)
}

// ErrorResponse модель ошибки от VenueService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ToDomain конвертирует модель клиента в доменную модель
func (v Venue) ToDomain() domain.Venue {
	return domain.Venue{
		ID:    v.ID,
		Name:  v.Name,
		Color: v.Color,
		Type:  v.Type,
	}
}
