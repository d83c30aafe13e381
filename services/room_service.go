package services

import (
	"errors"
	"fmt"

	"frontdesk-backend/models"

	"gorm.io/gorm"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

// Create adds a room under an explicit room number. The number doubles as
// the primary key, so creating an existing room fails rather than updating
// it.
func (s *RoomService) Create(room *models.Room) error {
	if err := room.Validate(); err != nil {
		return err
	}
	if room.RoomTypeCode != nil {
		if _, err := s.roomType(*room.RoomTypeCode); err != nil {
			return err
		}
	}
	var count int64
	if err := s.DB.Model(&models.Room{}).Where("room_number = ?", room.RoomNumber).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check room %d: %w", room.RoomNumber, err)
	}
	if count > 0 {
		return ErrDuplicateRoom
	}
	if err := s.DB.Create(room).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrDuplicateRoom
		}
		if isForeignKeyError(err) {
			return ErrRoomTypeNotFound
		}
		return fmt.Errorf("failed to create room %d: %w", room.RoomNumber, err)
	}
	return nil
}

func (s *RoomService) List(criteria RoomSearch) ([]models.Room, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}
	q := s.DB.Preload("RoomType").Order("room_number ASC")
	if criteria.RoomNumber != 0 {
		q = q.Where("room_number = ?", criteria.RoomNumber)
	}
	if criteria.RoomTypeCode != "" {
		q = q.Where("room_type_code = ?", criteria.RoomTypeCode)
	}
	var rooms []models.Room
	if err := q.Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) GetByNumber(number int) (*models.Room, error) {
	var room models.Room
	err := s.DB.Preload("RoomType").First(&room, "room_number = ?", number).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to find room %d: %w", number, err)
	}
	return &room, nil
}

// Update changes the room's type assignment. The room number itself is
// immovable; renumbering means deleting and recreating the room. An update
// that re-assigns the current type is a valid no-op, so existence is checked
// by loading the row rather than by counting affected rows.
func (s *RoomService) Update(number int, room *models.Room) error {
	room.RoomNumber = number
	if err := room.Validate(); err != nil {
		return err
	}
	if room.RoomTypeCode != nil {
		if _, err := s.roomType(*room.RoomTypeCode); err != nil {
			return err
		}
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Room
		if err := tx.First(&existing, "room_number = ?", number).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("failed to find room %d: %w", number, err)
		}
		existing.RoomTypeCode = room.RoomTypeCode
		if err := tx.Save(&existing).Error; err != nil {
			return fmt.Errorf("failed to update room %d: %w", number, err)
		}
		return nil
	})
}

// Delete removes a room. Reservations pointing at it are kept with their
// room link nulled, which also takes them out of every future overlap
// check.
func (s *RoomService) Delete(number int) error {
	result := s.DB.Delete(&models.Room{}, "room_number = ?", number)
	if result.Error != nil {
		return fmt.Errorf("failed to delete room %d: %w", number, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}

func (s *RoomService) roomType(code string) (*models.RoomType, error) {
	var rt models.RoomType
	err := s.DB.First(&rt, "room_type_code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, fmt.Errorf("failed to find room type %s: %w", code, err)
	}
	return &rt, nil
}
