package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GuilhermePeritto/campo-e-gole-sub000/internal/domain"
	reservationRepo "github.com/GuilhermePeritto/campo-e-gole-sub000/internal/infra/storage/reservation"
	"github.com/GuilhermePeritto/campo-e-gole-sub000/internal/integrations/venueservice"
	"github.com/GuilhermePeritto/campo-e-gole-sub000/pkg/types"
)

type stubRepo struct {
	reservations []*domain.Reservation
	getAllErr    error
	getByIDErr   error
	updateErr    error
	locked       []int64
	updated      []int64
}

func (r *stubRepo) GetAll(ctx context.Context) ([]*domain.Reservation, error) {
	if r.getAllErr != nil {
		return nil, r.getAllErr
	}
	return r.reservations, nil
}

func (r *stubRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	if r.getByIDErr != nil {
		return nil, r.getByIDErr
	}
	for _, res := range r.reservations {
		if res.ID == id {
			r.locked = append(r.locked, id)
			return res, nil
		}
	}
	return nil, reservationRepo.ErrReservationNotFound
}

func (r *stubRepo) UpdateSchedule(ctx context.Context, id int64, date time.Time, start, end types.TimeString) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updated = append(r.updated, id)
	return nil
}

type stubVenueClient struct {
	venues      []venueservice.Venue
	err         error
	degradedErr error
}

func (c *stubVenueClient) GetVenues(ctx context.Context) ([]venueservice.Venue, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.venues, nil
}

func (c *stubVenueClient) GetVenuesWithGracefulDegradation(ctx context.Context) ([]venueservice.Venue, error) {
	if c.degradedErr != nil {
		return nil, c.degradedErr
	}
	return c.venues, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func day(yyyy int, mm time.Month, dd int) time.Time {
	return time.Date(yyyy, mm, dd, 0, 0, 0, 0, time.UTC)
}

func loadedService(t *testing.T, repo *stubRepo, client *stubVenueClient) *Service {
	t.Helper()
	svc := NewService(repo, client, nopLogger{})
	require.NoError(t, svc.Load(context.Background()))
	return svc
}

func TestLoad(t *testing.T) {
	repo := &stubRepo{reservations: []*domain.Reservation{
		{ID: 1, VenueID: "v1", Date: day(2024, 6, 10), StartTime: "09:00", EndTime: "10:00"},
	}}
	client := &stubVenueClient{venues: []venueservice.Venue{
		{ID: "v1", Name: "Quadra Azul", Color: "#2196F3"},
	}}

	svc := loadedService(t, repo, client)

	assert.Equal(t, uint64(1), svc.Revision())
	assert.Len(t, svc.GetAll(), 1)
	assert.Len(t, svc.Venues(), 1)
}

func TestLoadFailsOnRepositoryError(t *testing.T) {
	repo := &stubRepo{getAllErr: errors.New("db down")}
	svc := NewService(repo, &stubVenueClient{}, nopLogger{})

	err := svc.Load(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetAllSortedCopies(t *testing.T) {
	repo := &stubRepo{reservations: []*domain.Reservation{
		{ID: 2, VenueID: "v1", Date: day(2024, 6, 11), StartTime: "09:00", EndTime: "10:00"},
		{ID: 1, VenueID: "v1", Date: day(2024, 6, 10), StartTime: "14:00", EndTime: "15:00"},
		{ID: 3, VenueID: "v1", StartTime: "09:00", EndTime: "10:00"}, // без даты
	}}
	svc := loadedService(t, repo, &stubVenueClient{})

	all := svc.GetAll()
	require.Len(t, all, 3)
	assert.Equal(t, int64(1), all[0].ID)
	assert.Equal(t, int64(2), all[1].ID)
	// Запись без даты в конце
	assert.Equal(t, int64(3), all[2].ID)

	// Мутация копии не затрагивает снимок
	all[0].ClientName = "mutated"
	fresh, err := svc.GetByID(1)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", fresh.ClientName)
}

func TestVenueFallbacks(t *testing.T) {
	client := &stubVenueClient{venues: []venueservice.Venue{
		{ID: "v1", Name: "Quadra Azul", Color: "#2196F3"},
	}}
	svc := loadedService(t, &stubRepo{}, client)

	assert.Equal(t, "Quadra Azul", svc.VenueName("v1"))
	assert.Equal(t, "#2196F3", svc.VenueColor("v1"))

	// Неразрешимая ссылка деградирует, а не падает
	assert.Equal(t, domain.UnknownVenueName, svc.VenueName("ghost"))
	assert.Equal(t, domain.DefaultVenueColor, svc.VenueColor("ghost"))
}

func TestReloadKeepsVenuesOnDegradation(t *testing.T) {
	client := &stubVenueClient{venues: []venueservice.Venue{
		{ID: "v1", Name: "Quadra Azul"},
	}}
	svc := loadedService(t, &stubRepo{}, client)

	client.degradedErr = errors.New("venue service down")
	require.NoError(t, svc.Reload(context.Background()))

	// Старый справочник площадок сохранен
	assert.Equal(t, "Quadra Azul", svc.VenueName("v1"))
	assert.Equal(t, uint64(2), svc.Revision())
}

func TestApplyMove(t *testing.T) {
	repo := &stubRepo{reservations: []*domain.Reservation{
		{ID: 1, VenueID: "v1", Date: day(2024, 6, 10), StartTime: "14:00", EndTime: "15:30"},
	}}
	svc := loadedService(t, repo, &stubVenueClient{})

	moved, err := svc.ApplyMove(context.Background(), 1, day(2024, 6, 11), "09:00", "10:30")
	require.NoError(t, err)

	assert.Equal(t, day(2024, 6, 11), moved.Date)
	assert.Equal(t, types.TimeString("09:00"), moved.StartTime)
	assert.Equal(t, types.TimeString("10:30"), moved.EndTime)
	assert.Equal(t, []int64{1}, repo.updated)

	// Мутация видна последующим чтениям, ревизия выросла
	fresh, err := svc.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, day(2024, 6, 11), fresh.Date)
	assert.Equal(t, uint64(2), svc.Revision())
}

func TestApplyMoveLocksRowBeforeUpdate(t *testing.T) {
	repo := &stubRepo{reservations: []*domain.Reservation{
		{ID: 1, VenueID: "v1", Date: day(2024, 6, 10), StartTime: "14:00", EndTime: "15:00"},
	}}
	svc := loadedService(t, repo, &stubVenueClient{})

	_, err := svc.ApplyMove(context.Background(), 1, day(2024, 6, 11), "09:00", "10:00")
	require.NoError(t, err)

	// Строка сначала заблокирована чтением, затем обновлена
	assert.Equal(t, []int64{1}, repo.locked)
	assert.Equal(t, []int64{1}, repo.updated)
}

func TestApplyMoveVanishedOnLock(t *testing.T) {
	repo := &stubRepo{
		reservations: []*domain.Reservation{
			{ID: 1, VenueID: "v1", Date: day(2024, 6, 10), StartTime: "14:00", EndTime: "15:00"},
		},
	}
	svc := loadedService(t, repo, &stubVenueClient{})
	repo.getByIDErr = reservationRepo.ErrReservationNotFound

	_, err := svc.ApplyMove(context.Background(), 1, day(2024, 6, 11), "09:00", "10:00")
	assert.ErrorIs(t, err, ErrReservationNotFound)

	// До обновления дело не дошло, снимок очищен
	assert.Empty(t, repo.updated)
	_, err = svc.GetByID(1)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestApplyMoveNotFound(t *testing.T) {
	svc := loadedService(t, &stubRepo{}, &stubVenueClient{})

	_, err := svc.ApplyMove(context.Background(), 99, day(2024, 6, 11), "09:00", "10:00")
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestApplyMoveVanishedRecord(t *testing.T) {
	repo := &stubRepo{
		reservations: []*domain.Reservation{
			{ID: 1, VenueID: "v1", Date: day(2024, 6, 10), StartTime: "14:00", EndTime: "15:00"},
		},
		updateErr: reservationRepo.ErrReservationNotFound,
	}
	svc := loadedService(t, repo, &stubVenueClient{})

	_, err := svc.ApplyMove(context.Background(), 1, day(2024, 6, 11), "09:00", "10:00")
	assert.ErrorIs(t, err, ErrReservationNotFound)

	// Исчезнувшая запись убрана и из снимка
	_, err = svc.GetByID(1)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestGetByIDBeforeLoad(t *testing.T) {
	svc := NewService(&stubRepo{}, &stubVenueClient{}, nopLogger{})

	_, err := svc.GetByID(1)
	assert.ErrorIs(t, err, ErrNotLoaded)
}
