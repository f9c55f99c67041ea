package move_reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GuilhermePeritto/campo-e-gole-sub000/internal/domain"
	"github.com/GuilhermePeritto/campo-e-gole-sub000/internal/service/schedule"
	"github.com/GuilhermePeritto/campo-e-gole-sub000/pkg/types"
)

type stubStore struct {
	reservations map[int64]domain.Reservation
	applyErr     error
	applied      int
}

func (s *stubStore) GetByID(id int64) (domain.Reservation, error) {
	res, ok := s.reservations[id]
	if !ok {
		return domain.Reservation{}, schedule.ErrReservationNotFound
	}
	return res, nil
}

func (s *stubStore) ApplyMove(ctx context.Context, id int64, date time.Time, start, end types.TimeString) (domain.Reservation, error) {
	if s.applyErr != nil {
		return domain.Reservation{}, s.applyErr
	}
	s.applied++
	res := s.reservations[id]
	res.Date = date
	res.StartTime = start
	res.EndTime = end
	s.reservations[id] = res
	return res, nil
}

type allowValidator struct{}

func (allowValidator) Validate(res domain.Reservation, date time.Time, start types.TimeString) domain.MoveDecision {
	return domain.Allow()
}

type denyValidator struct{ reason string }

func (v denyValidator) Validate(res domain.Reservation, date time.Time, start types.TimeString) domain.MoveDecision {
	return domain.Deny(v.reason)
}

type passthroughTx struct{}

func (passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func day(yyyy int, mm time.Month, dd int) time.Time {
	return time.Date(yyyy, mm, dd, 0, 0, 0, 0, time.UTC)
}

func storeWith(res domain.Reservation) *stubStore {
	return &stubStore{reservations: map[int64]domain.Reservation{res.ID: res}}
}

func TestExecuteAcceptsMove(t *testing.T) {
	store := storeWith(domain.Reservation{
		ID: 1, VenueID: "v1", ClientName: "Ana",
		Date: day(2024, 6, 10), StartTime: "14:00", EndTime: "15:30",
		Status: domain.StatusConfirmed,
	})
	uc := NewUseCase(store, allowValidator{}, passthroughTx{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ReservationID: 1, TargetDate: day(2024, 6, 11), TargetStart: "09:00",
	})
	require.NoError(t, err)

	assert.True(t, resp.Accepted)
	assert.Empty(t, resp.Reason)
	require.NotNil(t, resp.Reservation)
	assert.Equal(t, "2024-06-11", resp.Reservation.Date)
	assert.Equal(t, "09:00", resp.Reservation.StartTime)
	// Полуторачасовая длительность сохранена
	assert.Equal(t, "10:30", resp.Reservation.EndTime)
	assert.Equal(t, 1, store.applied)
}

func TestExecuteDateOnlyMoveKeepsTime(t *testing.T) {
	store := storeWith(domain.Reservation{
		ID: 1, VenueID: "v1", ClientName: "Ana",
		Date: day(2024, 6, 10), StartTime: "14:00", EndTime: "15:30",
		Status: domain.StatusConfirmed,
	})
	uc := NewUseCase(store, allowValidator{}, passthroughTx{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ReservationID: 1, TargetDate: day(2024, 6, 12),
	})
	require.NoError(t, err)

	assert.True(t, resp.Accepted)
	assert.Equal(t, "2024-06-12", resp.Reservation.Date)
	assert.Equal(t, "14:00", resp.Reservation.StartTime)
	assert.Equal(t, "15:30", resp.Reservation.EndTime)
}

func TestExecuteRejectedMoveLeavesStoreUntouched(t *testing.T) {
	store := storeWith(domain.Reservation{
		ID: 1, VenueID: "v1", Date: day(2024, 6, 10),
		StartTime: "14:00", EndTime: "15:30", Status: domain.StatusConfirmed,
	})
	uc := NewUseCase(store, denyValidator{reason: "slot taken"}, passthroughTx{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ReservationID: 1, TargetDate: day(2024, 6, 11), TargetStart: "09:00",
	})
	require.NoError(t, err)

	assert.False(t, resp.Accepted)
	assert.Equal(t, "slot taken", resp.Reason)
	assert.Nil(t, resp.Reservation)
	assert.Zero(t, store.applied)

	// Бронирование осталось на прежнем месте
	res, err := store.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, day(2024, 6, 10), res.Date)
}

func TestExecuteRejectsPastMidnight(t *testing.T) {
	store := storeWith(domain.Reservation{
		ID: 1, VenueID: "v1", Date: day(2024, 6, 10),
		StartTime: "14:00", EndTime: "16:00", Status: domain.StatusConfirmed,
	})
	uc := NewUseCase(store, allowValidator{}, passthroughTx{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ReservationID: 1, TargetDate: day(2024, 6, 11), TargetStart: "23:00",
	})
	require.NoError(t, err)

	assert.False(t, resp.Accepted)
	assert.Zero(t, store.applied)
}

func TestExecuteNotFound(t *testing.T) {
	store := &stubStore{reservations: map[int64]domain.Reservation{}}
	uc := NewUseCase(store, allowValidator{}, passthroughTx{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: 99, TargetDate: day(2024, 6, 11), TargetStart: "09:00",
	})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestExecuteValidatesInput(t *testing.T) {
	uc := NewUseCase(&stubStore{}, allowValidator{}, passthroughTx{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: 0, TargetDate: day(2024, 6, 11), TargetStart: "09:00",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		ReservationID: 1, TargetStart: "09:00",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		ReservationID: 1, TargetDate: day(2024, 6, 11), TargetStart: "9am",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecuteApplyFailure(t *testing.T) {
	store := storeWith(domain.Reservation{
		ID: 1, VenueID: "v1", Date: day(2024, 6, 10),
		StartTime: "14:00", EndTime: "15:00", Status: domain.StatusConfirmed,
	})
	store.applyErr = errors.New("db down")
	uc := NewUseCase(store, allowValidator{}, passthroughTx{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: 1, TargetDate: day(2024, 6, 11), TargetStart: "09:00",
	})
	assert.ErrorIs(t, err, ErrInternal)
}
