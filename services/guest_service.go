package services

import (
	"errors"
	"fmt"

	"frontdesk-backend/models"

	"gorm.io/gorm"
)

type GuestService struct {
	DB *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{DB: db}
}

// Create validates the guest and then persists it. Validation never touches
// the database; a guest that fails validation is never written.
func (s *GuestService) Create(guest *models.Guest) error {
	if err := guest.Validate(); err != nil {
		return err
	}
	if err := s.DB.Create(guest).Error; err != nil {
		return fmt.Errorf("failed to create guest: %w", err)
	}
	return nil
}

// List returns guests matching the criteria, ordered by last then first
// name. A postcode on its own matches the whole outward-code area; combined
// with a last name it must match exactly.
func (s *GuestService) List(criteria GuestSearch) ([]models.Guest, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	q := s.DB.Order("last_name ASC, first_name ASC")
	if criteria.LastName != "" {
		q = q.Where("last_name LIKE ?", "%"+criteria.LastName+"%")
	}
	if criteria.Postcode != "" {
		if criteria.LastName != "" {
			q = q.Where("REPLACE(UPPER(postcode), ' ', '') = ?", compactPostcode(criteria.Postcode))
		} else {
			q = q.Where("UPPER(postcode) LIKE ?", criteria.OutwardCode()+"%")
		}
	}

	var guests []models.Guest
	if err := q.Find(&guests).Error; err != nil {
		return nil, fmt.Errorf("failed to list guests: %w", err)
	}
	return guests, nil
}

func (s *GuestService) GetByID(id uint) (*models.Guest, error) {
	var guest models.Guest
	if err := s.DB.First(&guest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, fmt.Errorf("failed to find guest %d: %w", id, err)
	}
	return &guest, nil
}

// Update replaces every field of an existing guest. The record must already
// exist and the replacement must validate before anything is written.
func (s *GuestService) Update(id uint, guest *models.Guest) error {
	if err := guest.Validate(); err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Guest
		if err := tx.First(&existing, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrGuestNotFound
			}
			return fmt.Errorf("failed to find guest %d: %w", id, err)
		}
		guest.GuestID = id
		guest.CreatedAt = existing.CreatedAt
		if err := tx.Save(guest).Error; err != nil {
			return fmt.Errorf("failed to update guest %d: %w", id, err)
		}
		return nil
	})
}

// Delete removes a guest. Reservations that reference the guest keep their
// rows; the database nulls the link so the stay history survives.
func (s *GuestService) Delete(id uint) error {
	result := s.DB.Delete(&models.Guest{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete guest %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrGuestNotFound
	}
	return nil
}

// Reservations returns the guest's stay history, most recent first.
func (s *GuestService) Reservations(id uint) ([]models.Reservation, error) {
	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}
	var reservations []models.Reservation
	err := s.DB.
		Preload("Room").
		Preload("Room.RoomType").
		Where("guest_id = ?", id).
		Order("start_of_stay DESC").
		Find(&reservations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations for guest %d: %w", id, err)
	}
	return reservations, nil
}
