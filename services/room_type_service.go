package services

import (
	"errors"
	"fmt"

	"frontdesk-backend/models"

	"gorm.io/gorm"
)

type RoomTypeService struct {
	DB *gorm.DB
}

func NewRoomTypeService(db *gorm.DB) *RoomTypeService {
	return &RoomTypeService{DB: db}
}

func (s *RoomTypeService) Create(rt *models.RoomType) error {
	if err := rt.Validate(); err != nil {
		return err
	}
	if err := s.DB.Create(rt).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrDuplicateRoomType
		}
		return fmt.Errorf("failed to create room type %s: %w", rt.RoomTypeCode, err)
	}
	return nil
}

func (s *RoomTypeService) List() ([]models.RoomType, error) {
	var types []models.RoomType
	if err := s.DB.Order("room_type_code ASC").Find(&types).Error; err != nil {
		return nil, fmt.Errorf("failed to list room types: %w", err)
	}
	return types, nil
}

func (s *RoomTypeService) GetByCode(code string) (*models.RoomType, error) {
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

// Update changes a room type's description, price or capacity. The code is
// the primary key and cannot be edited afterwards.
func (s *RoomTypeService) Update(code string, rt *models.RoomType) error {
	rt.RoomTypeCode = code
	if err := rt.Validate(); err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.RoomType
		if err := tx.First(&existing, "room_type_code = ?", code).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomTypeNotFound
			}
			return fmt.Errorf("failed to find room type %s: %w", code, err)
		}
		if err := tx.Save(rt).Error; err != nil {
			return fmt.Errorf("failed to update room type %s: %w", code, err)
		}
		return nil
	})
}

// Delete removes a room type. Rooms of that type stay on the floor plan
// with their type link nulled; they show up untyped until reassigned.
func (s *RoomTypeService) Delete(code string) error {
	result := s.DB.Delete(&models.RoomType{}, "room_type_code = ?", code)
	if result.Error != nil {
		return fmt.Errorf("failed to delete room type %s: %w", code, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRoomTypeNotFound
	}
	return nil
}
