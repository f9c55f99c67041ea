package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Fallbacks for reservations referencing a venue the engine cannot resolve.
// Unresolved references never fail; they degrade to these defaults.
const (
	DefaultVenueColor = "#9E9E9E"
	UnknownVenueName  = "unknown venue"
)

// InvalidDateKey is the sentinel aggregation bucket for reservations whose
// date could not be resolved. Surfacing them keeps data problems visible
// instead of silently dropping records.
const InvalidDateKey = "invalid"

// Default calendar geometry
const (
	DefaultWindowOpen       = "06:00"
	DefaultWindowClose      = "23:00"
	DefaultSlotMinutes      = 30
	DefaultPixelsPerHour    = 60
	DefaultMinEventHeightPx = 20
	DefaultMaxVisiblePerDay = 2
	DefaultListWindowDays   = 30
)

// DaysPerWeek is the number of columns of the month grid (Sunday-first weeks)
const DaysPerWeek = 7

// MoveDecision is the verdict of a relocation policy hook.
// Concrete conflict policy is supplied by the booking-rules collaborator;
// the engine only defines this contract.
type MoveDecision struct {
	Valid  bool
	Reason string
}

// Allow returns an accepting decision
func Allow() MoveDecision {
	return MoveDecision{Valid: true}
}

// Deny returns a rejecting decision with a user-facing reason
func Deny(reason string) MoveDecision {
	return MoveDecision{Valid: false, Reason: reason}
}
