package services

import (
	"fmt"

	"frontdesk-backend/models"

	"gorm.io/gorm"
)

// AvailableRoom is one row of an availability result: the room, its type
// details and the total price for the requested window. Rooms without a
// type still appear; their price fields stay zero until a type is assigned.
type AvailableRoom struct {
	RoomNumber    int     `json:"room_number"`
	RoomTypeCode  string  `json:"room_type_code,omitempty"`
	RoomTypeName  string  `json:"room_type_name,omitempty"`
	PricePerNight float64 `json:"price_per_night"`
	MaximumGuests int     `json:"maximum_guests"`
	TotalPrice    float64 `json:"total_price"`
}

type AvailabilityService struct {
	DB *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

// FindAvailableRooms returns every room with no Reserved or Checked-In stay
// overlapping the window, ordered by room number. Checked-Out stays never
// block a room. The query takes no locks; availability is advisory and the
// booking transaction re-checks under the room lock.
func (s *AvailabilityService) FindAvailableRooms(criteria AvailabilitySearch) ([]AvailableRoom, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	windowEnd := models.ComputeEndDate(criteria.StartDate, criteria.LengthOfStay)

	// Roomless reservations can never block a room, and a NULL inside
	// NOT IN would empty the whole result.
	blocked := s.DB.Model(&models.Reservation{}).
		Select("room_number").
		Where("room_number IS NOT NULL").
		Where("status_code IN ?", []string{models.StatusReserved, models.StatusCheckedIn}).
		Where("start_of_stay < ? AND end_date > ?", windowEnd, criteria.StartDate)

	q := s.DB.
		Preload("RoomType").
		Where("room_number NOT IN (?)", blocked).
		Order("room_number ASC")
	if criteria.RoomTypeCode != "" {
		q = q.Where("room_type_code = ?", criteria.RoomTypeCode)
	}

	var rooms []models.Room
	if err := q.Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to find available rooms: %w", err)
	}

	results := make([]AvailableRoom, 0, len(rooms))
	for _, room := range rooms {
		row := AvailableRoom{RoomNumber: room.RoomNumber}
		if room.RoomType != nil {
			row.RoomTypeCode = room.RoomType.RoomTypeCode
			row.RoomTypeName = room.RoomType.RoomTypeName
			row.PricePerNight = room.RoomType.Price
			row.MaximumGuests = room.RoomType.MaximumGuests
			row.TotalPrice = room.RoomType.Price * float64(criteria.LengthOfStay)
		}
		results = append(results, row)
	}
	return results, nil
}
