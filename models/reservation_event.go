package models

import (
	"time"

	"gorm.io/datatypes"
)

// Event types recorded on the reservation audit trail and mirrored to the
// message broker.
const (
	EventReservationCreated    = "reservation.created"
	EventReservationUpdated    = "reservation.updated"
	EventReservationCheckedIn  = "reservation.checked_in"
	EventReservationCheckedOut = "reservation.checked_out"
	EventReservationCancelled  = "reservation.cancelled"
)

// ReservationEvent is one append-only audit row. Rows are written in the
// same transaction as the change they record and are kept after the
// reservation itself is deleted, so the column carries no FK constraint.
type ReservationEvent struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	ReservationID uint           `gorm:"index;column:reservation_id" json:"reservation_id"`
	EventType     string         `gorm:"size:64;column:event_type" json:"event_type"`
	Payload       datatypes.JSON `gorm:"column:payload" json:"payload"`
	CreatedAt     time.Time      `json:"created_at"`
}
