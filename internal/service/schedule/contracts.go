package schedule

import (
	"context"
	"time"

	"github.com/GuilhermePeritto/campo-e-gole-sub000/internal/domain"
	"github.com/GuilhermePeritto/campo-e-gole-sub000/internal/integrations/venueservice"
	"github.com/GuilhermePeritto/campo-e-gole-sub000/pkg/types"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetAll(ctx context.Context) ([]*domain.Reservation, error)
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	UpdateSchedule(ctx context.Context, id int64, date time.Time, start, end types.TimeString) error
}

// VenueServiceClient интерфейс клиента для VenueService
type VenueServiceClient interface {
	GetVenues(ctx context.Context) ([]venueservice.Venue, error)
	GetVenuesWithGracefulDegradation(ctx context.Context) ([]venueservice.Venue, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
