package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseStayDate(t *testing.T) {
	got, err := ParseStayDate("2025-02-23")
	require.NoError(t, err)
	assert.Equal(t, date(2025, 2, 23), got)

	_, err = ParseStayDate("23/02/2025")
	assert.Error(t, err)

	_, err = ParseStayDate("")
	assert.Error(t, err)
}

func TestComputeEndDate(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		nights int
		want   time.Time
	}{
		{"single night", date(2025, 2, 23), 1, date(2025, 2, 24)},
		{"three nights", date(2025, 2, 23), 3, date(2025, 2, 26)},
		{"crosses month end", date(2025, 2, 27), 3, date(2025, 3, 2)},
		{"crosses year end", date(2025, 12, 30), 4, date(2026, 1, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeEndDate(tt.start, tt.nights))
		})
	}
}

func TestComputeEndDateIsDeterministic(t *testing.T) {
	start := date(2025, 2, 23)
	first := ComputeEndDate(start, 3)
	assert.Equal(t, first, ComputeEndDate(start, 3))
	assert.Equal(t, date(2025, 2, 23), start, "input date must not be mutated")
}

func TestStaysOverlap(t *testing.T) {
	// Existing stay: 2025-02-23 for 3 nights, so it occupies the 23rd, 24th
	// and 25th and ends on the morning of the 26th.
	existingStart := date(2025, 2, 23)
	existingEnd := date(2025, 2, 26)

	tests := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"identical stay", date(2025, 2, 23), date(2025, 2, 26), true},
		{"starts the day before, shares one night", date(2025, 2, 22), date(2025, 2, 24), true},
		{"starts exactly on the checkout morning", date(2025, 2, 26), date(2025, 2, 27), false},
		{"ends exactly on the existing start", date(2025, 2, 20), date(2025, 2, 23), false},
		{"starts one day before the existing end", date(2025, 2, 25), date(2025, 2, 27), true},
		{"fully contained", date(2025, 2, 24), date(2025, 2, 25), true},
		{"fully containing", date(2025, 2, 20), date(2025, 3, 1), true},
		{"well before", date(2025, 2, 1), date(2025, 2, 10), false},
		{"well after", date(2025, 3, 10), date(2025, 3, 12), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StaysOverlap(existingStart, existingEnd, tt.start, tt.end))
			assert.Equal(t, tt.want, StaysOverlap(tt.start, tt.end, existingStart, existingEnd),
				"overlap must be symmetric")
		})
	}
}

func TestFirstConflict(t *testing.T) {
	roomFive := 5
	roomSix := 6
	existing := []Reservation{
		{
			ReservationID: 1,
			RoomNumber:    &roomFive,
			StartOfStay:   date(2025, 2, 23),
			LengthOfStay:  3,
			EndDate:       date(2025, 2, 26),
			StatusCode:    StatusReserved,
		},
		{
			ReservationID: 2,
			RoomNumber:    &roomSix,
			StartOfStay:   date(2025, 2, 23),
			LengthOfStay:  3,
			EndDate:       date(2025, 2, 26),
			StatusCode:    StatusReserved,
		},
		{
			// A reservation whose room was deleted can never conflict.
			ReservationID: 3,
			RoomNumber:    nil,
			StartOfStay:   date(2025, 2, 23),
			LengthOfStay:  3,
			EndDate:       date(2025, 2, 26),
			StatusCode:    StatusReserved,
		},
	}

	t.Run("overlapping stay on the same room conflicts", func(t *testing.T) {
		got := FirstConflict(existing, 5, date(2025, 2, 22), 2, 0)
		require.NotNil(t, got)
		assert.Equal(t, uint(1), got.ReservationID)
	})

	t.Run("stay starting on the checkout morning does not conflict", func(t *testing.T) {
		assert.Nil(t, FirstConflict(existing, 5, date(2025, 2, 26), 1, 0))
	})

	t.Run("excluded reservation is skipped when editing", func(t *testing.T) {
		assert.Nil(t, FirstConflict(existing, 5, date(2025, 2, 22), 2, 1))
	})

	t.Run("other rooms are not consulted", func(t *testing.T) {
		assert.Nil(t, FirstConflict(existing, 7, date(2025, 2, 23), 3, 0))
	})

	t.Run("roomless reservations are ignored", func(t *testing.T) {
		onlyRoomless := existing[2:]
		assert.Nil(t, FirstConflict(onlyRoomless, 5, date(2025, 2, 23), 3, 0))
	})
}
