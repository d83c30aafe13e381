package models

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validReservation() Reservation {
	room := 101
	guest := uint(1)
	return Reservation{
		GuestID:        &guest,
		RoomNumber:     &room,
		StartOfStay:    date(2025, 2, 23),
		LengthOfStay:   3,
		EndDate:        date(2025, 2, 26),
		Price:          255.00,
		AmountPaid:     100.00,
		NumberOfGuests: 2,
		StatusCode:     StatusReserved,
	}
}

func TestReservationValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Reservation)
		wantField string
	}{
		{"valid reservation", func(r *Reservation) {}, ""},
		{"missing start of stay", func(r *Reservation) { r.StartOfStay = time.Time{} }, "start_of_stay"},
		{"zero nights", func(r *Reservation) { r.LengthOfStay = 0 }, "length_of_stay"},
		{"negative nights", func(r *Reservation) { r.LengthOfStay = -2 }, "length_of_stay"},
		{"zero guests", func(r *Reservation) { r.NumberOfGuests = 0 }, "number_of_guests"},
		{"negative price", func(r *Reservation) { r.Price = -1 }, "price"},
		{"negative payment", func(r *Reservation) { r.AmountPaid = -0.01 }, "amount_paid"},
		{"payment above price", func(r *Reservation) { r.AmountPaid = r.Price + 50 }, "amount_paid"},
		{"unknown status code", func(r *Reservation) { r.StatusCode = "XX" }, "status_code"},
		{"notes with forbidden characters", func(r *Reservation) { r.Notes = "late arrival <urgent>" }, "notes"},
		{"notes too long", func(r *Reservation) { r.Notes = strings.Repeat("a", 501) }, "notes"},
		{"notes with allowed punctuation", func(r *Reservation) { r.Notes = "Early check-in requested, cot needed!" }, ""},
		{"payment equal to price", func(r *Reservation) { r.AmountPaid = r.Price }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validReservation()
			tt.mutate(&r)
			err := r.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
			assert.NotEmpty(t, verr.Message)
		})
	}
}

func TestReservationValidatePaymentMessage(t *testing.T) {
	r := validReservation()
	r.AmountPaid = r.Price + 1
	err := r.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Payment amount cannot exceed the total price")
}

func TestRecomputeEndDate(t *testing.T) {
	r := validReservation()
	// A caller-supplied end date is never trusted.
	r.EndDate = date(2030, 1, 1)
	r.RecomputeEndDate()
	assert.Equal(t, date(2025, 2, 26), r.EndDate)

	r.StartOfStay = date(2025, 3, 1)
	r.LengthOfStay = 2
	r.RecomputeEndDate()
	assert.Equal(t, date(2025, 3, 3), r.EndDate)
}

func TestConflictsWith(t *testing.T) {
	existing := validReservation()
	existing.ReservationID = 10

	t.Run("overlapping candidate conflicts", func(t *testing.T) {
		candidate := validReservation()
		candidate.StartOfStay = date(2025, 2, 22)
		candidate.LengthOfStay = 2
		// Stale end date on the candidate must not mask the conflict.
		candidate.EndDate = date(2025, 2, 22)
		assert.True(t, candidate.ConflictsWith(&existing))
	})

	t.Run("adjacent candidate does not conflict", func(t *testing.T) {
		candidate := validReservation()
		candidate.StartOfStay = date(2025, 2, 26)
		candidate.LengthOfStay = 1
		assert.False(t, candidate.ConflictsWith(&existing))
	})

	t.Run("different rooms never conflict", func(t *testing.T) {
		other := 102
		candidate := validReservation()
		candidate.RoomNumber = &other
		assert.False(t, candidate.ConflictsWith(&existing))
	})

	t.Run("a reservation does not conflict with itself", func(t *testing.T) {
		candidate := existing
		assert.False(t, candidate.ConflictsWith(&existing))
	})

	t.Run("roomless reservations cannot conflict", func(t *testing.T) {
		candidate := validReservation()
		candidate.RoomNumber = nil
		assert.False(t, candidate.ConflictsWith(&existing))
	})
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{StatusReserved, StatusCheckedIn, true},
		{StatusReserved, StatusCheckedOut, true},
		{StatusCheckedIn, StatusCheckedOut, true},
		{StatusReserved, StatusReserved, true},
		{StatusCheckedIn, StatusCheckedIn, true},
		{StatusCheckedOut, StatusCheckedOut, true},
		{StatusCheckedIn, StatusReserved, false},
		{StatusCheckedOut, StatusReserved, false},
		{StatusCheckedOut, StatusCheckedIn, false},
		{"XX", StatusReserved, false},
		{StatusReserved, "XX", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestStatusName(t *testing.T) {
	assert.Equal(t, "Reserved", StatusName(StatusReserved))
	assert.Equal(t, "Checked In", StatusName(StatusCheckedIn))
	assert.Equal(t, "Checked Out", StatusName(StatusCheckedOut))
	assert.Equal(t, "ZZ", StatusName("ZZ"))
}

func TestValidationErrorUnwrapsThroughWrapping(t *testing.T) {
	r := validReservation()
	r.LengthOfStay = 0
	err := r.Validate()
	wrapped := fmt.Errorf("create reservation: %w", err)

	var verr *ValidationError
	require.True(t, errors.As(wrapped, &verr))
	assert.Equal(t, "length_of_stay", verr.Field)
}
