package models

import (
	"fmt"
	"strings"
	"time"
)

// Guest holds the contact and address details the front desk records for a
// booking party. Every field is format-validated before persisting; the
// formats are UK conventions (phone numbers, postcodes).
type Guest struct {
	GuestID uint `gorm:"primaryKey;column:guest_id" json:"guest_id"`

	Title        string `gorm:"size:10" json:"title" validate:"required,persontitle"`
	FirstName    string `gorm:"size:50;column:first_name" json:"first_name" validate:"required,max=50,personname"`
	LastName     string `gorm:"size:50;column:last_name" json:"last_name" validate:"required,max=50,personname"`
	PhoneNumber  string `gorm:"size:11;column:phone_number" json:"phone_number" validate:"required,ukphone"`
	Email        string `gorm:"size:320" json:"email" validate:"required,max=320,email"`
	AddressLine1 string `gorm:"size:80;column:address_line1" json:"address_line1" validate:"required,max=80,addrline"`
	AddressLine2 string `gorm:"size:80;column:address_line2" json:"address_line2" validate:"omitempty,max=80,addrline"`
	City         string `gorm:"size:80" json:"city" validate:"required,max=80,personname"`
	County       string `gorm:"size:80" json:"county" validate:"required,max=80,personname"`
	Postcode     string `gorm:"size:8" json:"postcode" validate:"required,ukpostcode"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (g *Guest) Validate() error {
	return checkStruct(g)
}

// DisplayName returns the short front-desk form, e.g. "Mr J. Smith".
func (g *Guest) DisplayName() string {
	if g.FirstName == "" {
		return strings.TrimSpace(g.Title + " " + g.LastName)
	}
	return fmt.Sprintf("%s %c. %s", g.Title, g.FirstName[0], g.LastName)
}
