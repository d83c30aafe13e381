package models

import "time"

// StayDateLayout is the wire format for stay dates across the API.
const StayDateLayout = "2006-01-02"

// ParseStayDate parses a yyyy-mm-dd value into a UTC midnight date.
func ParseStayDate(value string) (time.Time, error) {
	return time.Parse(StayDateLayout, value)
}

// ComputeEndDate returns the exclusive end of a stay: the checkout morning
// lengthOfStay nights after startOfStay.
func ComputeEndDate(startOfStay time.Time, lengthOfStay int) time.Time {
	return startOfStay.AddDate(0, 0, lengthOfStay)
}

// StaysOverlap reports whether the half-open intervals [startA, endA) and
// [startB, endB) share at least one night. Touching intervals do not
// overlap: a stay ending on the morning of day D leaves the room free for
// another stay starting on day D.
func StaysOverlap(startA, endA, startB, endB time.Time) bool {
	return startA.Before(endB) && endA.After(startB)
}

// FirstConflict scans existing reservations for one whose stay overlaps the
// candidate stay on the given room. excludeID skips the reservation being
// edited; pass 0 when creating. The candidate end date is always derived
// from startOfStay and lengthOfStay, never read from a caller.
func FirstConflict(existing []Reservation, roomNumber int, startOfStay time.Time, lengthOfStay int, excludeID uint) *Reservation {
	endDate := ComputeEndDate(startOfStay, lengthOfStay)
	for i := range existing {
		r := &existing[i]
		if excludeID != 0 && r.ReservationID == excludeID {
			continue
		}
		if r.RoomNumber == nil || *r.RoomNumber != roomNumber {
			continue
		}
		if StaysOverlap(r.StartOfStay, r.EndDate, startOfStay, endDate) {
			return r
		}
	}
	return nil
}
