package domain

// Venue represents a bookable resource with a display color.
// Venues are owned by the external venue-management service and are
// read-only reference data inside the scheduling engine.
type Venue struct {
	ID    string
	Name  string
	Color string // RGB hex, e.g. "#2196F3"
	Type  string // e.g. "quadra", "campo", "salao"
}

// VenueSelection describes which venues the user wants to see.
// An explicitly empty non-All selection is a valid state meaning
// "show nothing" and is not equivalent to All.
type VenueSelection struct {
	All bool
	IDs []string
}

// AllVenues returns a selection that passes every venue through
func AllVenues() VenueSelection {
	return VenueSelection{All: true}
}

// SelectVenues returns a selection limited to the given venue IDs
func SelectVenues(ids []string) VenueSelection {
	return VenueSelection{IDs: ids}
}

// Contains reports whether reservations of the given venue pass the selection
func (s VenueSelection) Contains(venueID string) bool {
	if s.All {
		return true
	}
	for _, id := range s.IDs {
		if id == venueID {
			return true
		}
	}
	return false
}
