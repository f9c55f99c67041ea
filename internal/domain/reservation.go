package domain

import (
	"time"

	"github.com/GuilhermePeritto/campo-e-gole-sub000/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusConfirmed ReservationStatus = "confirmed"
	StatusPending   ReservationStatus = "pending"
	StatusCancelled ReservationStatus = "cancelled"
)

// Reservation represents a single time-boxed booking of a venue by a client
type Reservation struct {
	ID         int64
	VenueID    string
	ClientName string

	// Date is the calendar day of the booking. A zero value marks a record
	// whose source date could not be resolved; such reservations are kept
	// for per-venue counting but cannot be placed on a timeline.
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    ReservationStatus

	Sport *string
	Notes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation still occupies its slot
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// HasValidDate returns true if the reservation can be placed on a calendar day
func (r *Reservation) HasValidDate() bool {
	return !r.Date.IsZero()
}

// DayKey returns the aggregation key for the reservation's day.
// Reservations without a resolvable date share the InvalidDateKey bucket.
func (r *Reservation) DayKey() string {
	if !r.HasValidDate() {
		return InvalidDateKey
	}
	return r.Date.Format(DateFormat)
}

// DurationMinutes returns the booked duration derived from start and end time
func (r *Reservation) DurationMinutes() (int, error) {
	return r.StartTime.MinutesUntil(r.EndTime)
}

// HasValidTimeRange returns true if start and end parse and start < end
func (r *Reservation) HasValidTimeRange() bool {
	d, err := r.DurationMinutes()
	return err == nil && d > 0
}

// ValidStatuses lists every status a reservation may carry
var ValidStatuses = []ReservationStatus{
	StatusConfirmed,
	StatusPending,
	StatusCancelled,
}

// ParseReservationStatus validates and converts a raw status string
func ParseReservationStatus(s string) (ReservationStatus, bool) {
	status := ReservationStatus(s)
	for _, valid := range ValidStatuses {
		if status == valid {
			return status, true
		}
	}
	return "", false
}
