package services

import (
	"errors"
	"fmt"

	"frontdesk-backend/models"
	"frontdesk-backend/utils"

	"gorm.io/gorm"
)

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

// Authenticate verifies a staff login. Unknown usernames and wrong
// passwords both come back as ErrInvalidCredentials so the response never
// reveals which half failed.
func (s *AuthService) Authenticate(username, password string) (*models.StaffUser, error) {
	var staff models.StaffUser
	err := s.DB.First(&staff, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up staff %s: %w", username, err)
	}
	if !utils.VerifyPassword(staff.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return &staff, nil
}

// GetProfile returns the staff record behind an authenticated token.
func (s *AuthService) GetProfile(id uint) (*models.StaffUser, error) {
	var staff models.StaffUser
	if err := s.DB.First(&staff, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to find staff %d: %w", id, err)
	}
	return &staff, nil
}
