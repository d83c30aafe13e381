package models

import (
	"fmt"
	"time"
)

// Reservation status codes, stored as the two-letter code with the display
// name derived.
const (
	StatusReserved   = "RE"
	StatusCheckedIn  = "IN"
	StatusCheckedOut = "OT"
)

// StatusName maps a status code to its display name.
func StatusName(code string) string {
	switch code {
	case StatusReserved:
		return "Reserved"
	case StatusCheckedIn:
		return "Checked In"
	case StatusCheckedOut:
		return "Checked Out"
	default:
		return code
	}
}

func ValidStatusCode(code string) bool {
	return code == StatusReserved || code == StatusCheckedIn || code == StatusCheckedOut
}

// CanTransition reports whether a manual status change is allowed. Checked-Out
// is terminal, a checked-in guest cannot return to Reserved, and a direct
// Reserved to Checked-Out write is allowed (no-shows, same-day departures).
func CanTransition(from, to string) bool {
	if !ValidStatusCode(from) || !ValidStatusCode(to) {
		return false
	}
	if from == to {
		return true
	}
	switch from {
	case StatusReserved:
		return to == StatusCheckedIn || to == StatusCheckedOut
	case StatusCheckedIn:
		return to == StatusCheckedOut
	default:
		return false
	}
}

// Reservation is a booking of one room for one stay. Guest and room
// references survive deletion of the referenced record (set to null, the
// reservation itself is kept). EndDate is derived from StartOfStay and
// LengthOfStay before every write; caller-supplied values are ignored.
type Reservation struct {
	ReservationID uint   `gorm:"primaryKey;column:reservation_id" json:"reservation_id"`
	ReferenceCode string `gorm:"uniqueIndex;size:16;column:reference_code" json:"reference_code"`

	GuestID    *uint `gorm:"column:guest_id;index" json:"guest_id"`
	RoomNumber *int  `gorm:"column:room_number;index" json:"room_number"`

	ReservedAt     time.Time `gorm:"column:reserved_at" json:"reserved_at"`
	Price          float64   `gorm:"type:decimal(6,2)" json:"price"`
	AmountPaid     float64   `gorm:"type:decimal(6,2);column:amount_paid" json:"amount_paid"`
	NumberOfGuests int       `gorm:"column:number_of_guests" json:"number_of_guests"`
	StartOfStay    time.Time `gorm:"type:date;column:start_of_stay" json:"start_of_stay"`
	LengthOfStay   int       `gorm:"column:length_of_stay" json:"length_of_stay"`
	EndDate        time.Time `gorm:"type:date;column:end_date" json:"end_date"`
	StatusCode     string    `gorm:"size:2;column:status_code" json:"status_code"`
	Notes          string    `gorm:"size:500" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Guest *Guest `gorm:"foreignKey:GuestID;references:GuestID;constraint:OnDelete:SET NULL" json:"guest,omitempty"`
	Room  *Room  `gorm:"foreignKey:RoomNumber;references:RoomNumber;constraint:OnDelete:SET NULL" json:"room,omitempty"`
}

// RecomputeEndDate derives the exclusive checkout date from the stay fields.
func (r *Reservation) RecomputeEndDate() {
	r.EndDate = ComputeEndDate(r.StartOfStay, r.LengthOfStay)
}

// ConflictsWith reports whether two reservations occupy the same room for at
// least one shared night. A reservation never conflicts with itself, and a
// reservation without a room cannot conflict with anything.
func (r *Reservation) ConflictsWith(other *Reservation) bool {
	if r.RoomNumber == nil || other.RoomNumber == nil || *r.RoomNumber != *other.RoomNumber {
		return false
	}
	if r.ReservationID != 0 && r.ReservationID == other.ReservationID {
		return false
	}
	return StaysOverlap(
		other.StartOfStay, other.EndDate,
		r.StartOfStay, ComputeEndDate(r.StartOfStay, r.LengthOfStay),
	)
}

// Validate applies the field and cross-field rules that do not need another
// record: stay length, guest count floor, payment bounds, status code and
// notes format. Room capacity needs the room type and is checked by the
// reservation service.
func (r *Reservation) Validate() error {
	if r.StartOfStay.IsZero() {
		return NewValidationError("start_of_stay", "Start of stay is required")
	}
	if r.LengthOfStay < 1 {
		return NewValidationError("length_of_stay", "Length of stay must be at least 1 night")
	}
	if r.NumberOfGuests < 1 {
		return NewValidationError("number_of_guests", "Number of guests must be at least 1")
	}
	if r.Price < 0 {
		return NewValidationError("price", "Please enter a valid price (must be 0 or greater)")
	}
	if r.AmountPaid < 0 {
		return NewValidationError("amount_paid", "Please enter a valid payment amount (must be 0 or greater)")
	}
	if r.AmountPaid > r.Price {
		return NewValidationError("amount_paid", "Payment amount cannot exceed the total price")
	}
	if !ValidStatusCode(r.StatusCode) {
		return NewValidationError("status_code", fmt.Sprintf("%q is not a valid status code", r.StatusCode))
	}
	if r.Notes != "" {
		if len(r.Notes) > 500 {
			return NewValidationError("notes", "Notes cannot exceed 500 characters")
		}
		if !notesPattern.MatchString(r.Notes) {
			return NewValidationError("notes", "Notes can only contain letters, numbers, basic punctuation and spaces")
		}
	}
	return nil
}
