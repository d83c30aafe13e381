package models

import (
	"time"

	"gorm.io/gorm"
)

// Staff roles. Managers additionally administer the room and room-type
// catalogs; receptionists handle guests and reservations.
const (
	RoleManager      = "manager"
	RoleReceptionist = "receptionist"
)

type StaffUser struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	FullName  string         `gorm:"size:255" json:"full_name"`
	Username  string         `gorm:"uniqueIndex;size:150" json:"username"`
	Password  string         `gorm:"size:255" json:"-"` // bcrypt hash, never serialized
	Role      string         `gorm:"size:32;default:receptionist" json:"role"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *StaffUser) IsManager() bool {
	return u.Role == RoleManager
}
