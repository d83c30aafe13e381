package services

import (
	"strings"
	"time"

	"frontdesk-backend/models"
)

// Search criteria are built per request from query parameters. Nothing about
// a search is remembered between requests; callers that want the default
// window construct a fresh criteria value and override what they need.

// AvailabilitySearch describes one availability lookup.
type AvailabilitySearch struct {
	StartDate    time.Time
	LengthOfStay int
	RoomTypeCode string
}

// NewAvailabilitySearch returns the default lookup: tonight, one night,
// every room type.
func NewAvailabilitySearch(now time.Time) AvailabilitySearch {
	return AvailabilitySearch{StartDate: dateOnly(now), LengthOfStay: 1}
}

// Validate rejects criteria that could never match anything sensible.
func (c AvailabilitySearch) Validate() error {
	if c.StartDate.IsZero() {
		return models.NewValidationError("start_date", "Start date is required")
	}
	if c.LengthOfStay < 1 {
		return models.NewValidationError("length_of_stay", "Length of stay must be at least 1 night")
	}
	return nil
}

// ReservationSearch narrows the reservation list. From and To bound the stay
// window: a reservation matches when it ends on or after From and starts on
// or before To.
type ReservationSearch struct {
	From          time.Time
	To            time.Time
	GuestLastName string
	RoomNumber    int
	StatusCode    string
}

// NewReservationSearch returns the default listing window of today through
// fourteen days out.
func NewReservationSearch(now time.Time) ReservationSearch {
	today := dateOnly(now)
	return ReservationSearch{From: today, To: today.AddDate(0, 0, 14)}
}

func (c ReservationSearch) Validate() error {
	if c.GuestLastName != "" && !models.ValidPersonName(c.GuestLastName) {
		return models.NewValidationError("last_name", "Last name can only contain letters, hyphens, apostrophes and spaces")
	}
	if c.RoomNumber != 0 && (c.RoomNumber < 1 || c.RoomNumber > 9999) {
		return models.NewValidationError("room_number", "Room number must be between 1 and 9999")
	}
	if c.StatusCode != "" && !models.ValidStatusCode(c.StatusCode) {
		return models.NewValidationError("status_code", "Status must be one of RE, IN or OT")
	}
	if !c.From.IsZero() && !c.To.IsZero() && c.To.Before(c.From) {
		return models.NewValidationError("to", "End of the search window cannot be before its start")
	}
	return nil
}

// GuestSearch matches guests by last name, postcode or both. A postcode on
// its own matches by area: searching "SW1A" finds every guest in that
// outward code, while a full postcode with a last name must match exactly.
type GuestSearch struct {
	LastName string
	Postcode string
}

func (c GuestSearch) Validate() error {
	if c.LastName != "" && !models.ValidPersonName(c.LastName) {
		return models.NewValidationError("last_name", "Last name can only contain letters, hyphens, apostrophes and spaces")
	}
	if c.Postcode != "" && !models.ValidUKPostcode(c.Postcode) {
		return models.NewValidationError("postcode", "Please enter a valid UK postcode (e.g., 'SW1A 1AA', 'M1 1AA' or 'B338TH')")
	}
	return nil
}

// OutwardCode returns the leading half of the postcode term, used for
// area-prefix matching when no last name narrows the search.
func (c GuestSearch) OutwardCode() string {
	term := strings.ToUpper(strings.TrimSpace(c.Postcode))
	if i := strings.IndexByte(term, ' '); i > 0 {
		return term[:i]
	}
	if len(term) > 3 {
		// Compact full postcodes such as B338TH always end in the
		// three-character inward code.
		return term[:len(term)-3]
	}
	return term
}

// compactPostcode normalises a postcode for space-insensitive comparison.
func compactPostcode(s string) string {
	return strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), " ", "")
}

// RoomSearch narrows the room list.
type RoomSearch struct {
	RoomNumber   int
	RoomTypeCode string
}

func (c RoomSearch) Validate() error {
	if c.RoomNumber != 0 && (c.RoomNumber < 1 || c.RoomNumber > 9999) {
		return models.NewValidationError("room_number", "Room number must be between 1 and 9999")
	}
	return nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
